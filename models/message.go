package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionMessages          = "messages"
	CollectionProcessedMessages = "processed_messages"
	CollectionFailedMessages    = "failed_messages"
)

// types of cross-chain message
const (
	MessageTypeAssetTransfer uint8 = 1
	MessageTypeAssetSync     uint8 = 2
)

type QueuedMessage struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MessageHash string              `bson:"message_hash" json:"message_hash"`
	MessageType uint8               `bson:"message_type" json:"message_type"`
	SourceChain uint32              `bson:"source_chain" json:"source_chain"`
	TargetChain uint32              `bson:"target_chain" json:"target_chain"`
	Payload     string              `bson:"payload" json:"payload"`
	Sender      string              `bson:"sender" json:"sender"`
	Processed   bool                `bson:"processed" json:"processed"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}

type ProcessedMessage struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MessageHash string              `bson:"message_hash" json:"message_hash"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
}

type FailedMessage struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SrcRelayId  uint16              `bson:"src_relay_id" json:"src_relay_id"`
	SrcAddress  string              `bson:"src_address" json:"src_address"`
	Nonce       int64               `bson:"nonce" json:"nonce"`
	PayloadHash string              `bson:"payload_hash" json:"payload_hash"`
	Reason      string              `bson:"reason" json:"reason"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}
