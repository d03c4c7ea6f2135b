package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionBridgeRequests = "bridge_requests"
)

// types of bridged asset
const (
	AssetTypeNft     uint8 = 0
	AssetTypeListing uint8 = 1
)

// types of bridge request status
const (
	RequestStatusPending = "pending"
)

type BridgeRequest struct {
	Id              *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RequestId       string              `bson:"request_id" json:"request_id"`
	Owner           string              `bson:"owner" json:"owner"`
	NftContract     string              `bson:"nft_contract" json:"nft_contract"`
	TokenId         string              `bson:"token_id" json:"token_id"`
	TargetChainType uint32              `bson:"target_chain_type" json:"target_chain_type"`
	TargetContract  string              `bson:"target_contract" json:"target_contract"`
	Fee             string              `bson:"fee" json:"fee"`
	IsNft           bool                `bson:"is_nft" json:"is_nft"`
	AssetType       uint8               `bson:"asset_type" json:"asset_type"`
	AssetId         string              `bson:"asset_id" json:"asset_id"`
	Status          string              `bson:"status" json:"status"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}
