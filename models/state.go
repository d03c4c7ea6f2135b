package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionAuthorizedCallers = "authorized_callers"
	CollectionBridgeState       = "bridge_state"
	CollectionLocks             = "locks"
)

// singleton key for the bridge state document
const BridgeStateId = "bridge"

type AuthorizedCaller struct {
	Id         *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Address    string              `bson:"address" json:"address"`
	Authorized bool                `bson:"authorized" json:"authorized"`
	UpdatedAt  time.Time           `bson:"updated_at" json:"updated_at"`
}

type BridgeState struct {
	Id            *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	StateId       string              `bson:"state_id" json:"state_id"`
	Paused        bool                `bson:"paused" json:"paused"`
	MinimumFeeWei string              `bson:"minimum_fee_wei" json:"minimum_fee_wei"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updated_at"`
}
