package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionChainConfigs    = "chain_configs"
	CollectionSupportedChains = "supported_chains"
	CollectionTrustedRemotes  = "trusted_remotes"
)

// logical chain types
const (
	ChainTypeEthereum uint32 = 1
	ChainTypePolygon  uint32 = 2
	ChainTypeBase     uint32 = 3
	ChainTypeArbitrum uint32 = 4
)

type ChainConfig struct {
	Id                 *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ChainType          uint32              `bson:"chain_type" json:"chain_type"`
	BridgeContract     string              `bson:"bridge_contract" json:"bridge_contract"`
	GovernanceContract string              `bson:"governance_contract" json:"governance_contract"`
	ConfirmationBlocks uint32              `bson:"confirmation_blocks" json:"confirmation_blocks"`
	FeeBasisPoints     uint16              `bson:"fee_basis_points" json:"fee_basis_points"`
	IsActive           bool                `bson:"is_active" json:"is_active"`
	LastBlockSynced    int64               `bson:"last_block_synced" json:"last_block_synced"`
	CreatedAt          time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time           `bson:"updated_at" json:"updated_at"`
}

type SupportedChain struct {
	Id           *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ChainType    uint32              `bson:"chain_type" json:"chain_type"`
	RelayChainId uint16              `bson:"relay_chain_id" json:"relay_chain_id"`
	IsSupported  bool                `bson:"is_supported" json:"is_supported"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}

type TrustedRemote struct {
	Id           *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RelayChainId uint16              `bson:"relay_chain_id" json:"relay_chain_id"`
	Address      string              `bson:"address" json:"address"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}
