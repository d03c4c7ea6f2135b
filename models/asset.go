package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionAssets        = "assets"
	CollectionAssetCounters = "counters"
)

type CrossChainAsset struct {
	Id              *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AssetId         string              `bson:"asset_id" json:"asset_id"`
	OriginChainType uint32              `bson:"origin_chain_type" json:"origin_chain_type"`
	TargetChainType uint32              `bson:"target_chain_type" json:"target_chain_type"`
	OriginContract  string              `bson:"origin_contract" json:"origin_contract"`
	TargetContract  string              `bson:"target_contract" json:"target_contract"`
	TokenId         string              `bson:"token_id" json:"token_id"`
	LastSyncPrice   string              `bson:"last_sync_price" json:"last_sync_price"`
	LastSyncBlock   int64               `bson:"last_sync_block" json:"last_sync_block"`
	IsActive        bool                `bson:"is_active" json:"is_active"`
	IsVerified      bool                `bson:"is_verified" json:"is_verified"`
	IsLocked        bool                `bson:"is_locked" json:"is_locked"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}

type AssetCounter struct {
	Id        *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Key       string              `bson:"key" json:"key"`
	Count     int64               `bson:"count" json:"count"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updated_at"`
}
