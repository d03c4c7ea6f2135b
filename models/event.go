package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionEvents = "events"
)

// types of bridge event
const (
	EventAssetRegistered       = "asset_registered"
	EventSyncCompleted         = "sync_completed"
	EventChainConfigUpdated    = "chain_config_updated"
	EventAssetBridged          = "asset_bridged"
	EventNonNftAssetBridged    = "non_nft_asset_bridged"
	EventBridgeRequestCreated  = "bridge_request_created"
	EventAssetUnlocked         = "asset_unlocked"
	EventNonNftAssetUnlocked   = "non_nft_asset_unlocked"
	EventMessageFailed         = "message_failed"
	EventRetrySuccess          = "retry_success"
	EventTrustedRemoteSet      = "trusted_remote_set"
	EventChainSupportedUpdated = "chain_supported_updated"
)

type BridgeEvent struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Type        string              `bson:"type" json:"type"`
	AssetId     string              `bson:"asset_id,omitempty" json:"asset_id,omitempty"`
	RequestId   string              `bson:"request_id,omitempty" json:"request_id,omitempty"`
	MessageHash string              `bson:"message_hash,omitempty" json:"message_hash,omitempty"`
	Owner       string              `bson:"owner,omitempty" json:"owner,omitempty"`
	ChainType   uint32              `bson:"chain_type,omitempty" json:"chain_type,omitempty"`
	Detail      string              `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
}
