package registry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/models"
)

// HeightProvider reports the current height of the home chain. Used to stamp
// chain config records when they are written.
type HeightProvider func() int64

type ConfigStore interface {
	SetChainConfig(caller ethcommon.Address, chainType uint32, bridgeContract ethcommon.Address, governanceContract ethcommon.Address, confirmationBlocks uint32, feeBasisPoints uint16, active bool) error
	GetChainConfig(chainType uint32) (models.ChainConfig, error)
	SyncChainHeight(chainType uint32, height int64) error
	LatestChainHeight(chainType uint32) int64
}

type configStore struct {
	height HeightProvider
}

// SetChainConfig replaces the full config record for a chain type. Owner only.
func (x *configStore) SetChainConfig(
	caller ethcommon.Address,
	chainType uint32,
	bridgeContract ethcommon.Address,
	governanceContract ethcommon.Address,
	confirmationBlocks uint32,
	feeBasisPoints uint16,
	active bool,
) error {
	if !strings.EqualFold(caller.Hex(), app.Config.Bridge.OwnerAddress) {
		return ErrNotOwner
	}

	update := bson.M{
		"$set": bson.M{
			"bridge_contract":     strings.ToLower(bridgeContract.Hex()),
			"governance_contract": strings.ToLower(governanceContract.Hex()),
			"confirmation_blocks": confirmationBlocks,
			"fee_basis_points":    feeBasisPoints,
			"is_active":           active,
			"last_block_synced":   x.height(),
			"updated_at":          time.Now(),
		},
		"$setOnInsert": bson.M{
			"chain_type": chainType,
			"created_at": time.Now(),
		},
	}

	err := app.DB.UpsertOne(models.CollectionChainConfigs, bson.M{"chain_type": chainType}, update)
	if err != nil {
		return err
	}

	EmitEvent(models.BridgeEvent{
		Type:      models.EventChainConfigUpdated,
		ChainType: chainType,
		Detail:    fmt.Sprintf("active=%t fee_bps=%d", active, feeBasisPoints),
	})

	log.Info("[CHAIN CONFIG] Set chain config for chain type: ", chainType)
	return nil
}

// GetChainConfig returns the config record for a chain type. A chain type
// that was never configured yields the zero record, callers treat all-zero
// as unconfigured.
func (x *configStore) GetChainConfig(chainType uint32) (models.ChainConfig, error) {
	var config models.ChainConfig
	err := app.DB.FindOne(models.CollectionChainConfigs, bson.M{"chain_type": chainType}, &config)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ChainConfig{}, nil
		}
		return models.ChainConfig{}, err
	}
	return config, nil
}

// SyncChainHeight records the latest synced block height for a chain type.
func (x *configStore) SyncChainHeight(chainType uint32, height int64) error {
	update := bson.M{
		"$set": bson.M{
			"last_block_synced": height,
			"updated_at":        time.Now(),
		},
		"$setOnInsert": bson.M{
			"chain_type": chainType,
			"created_at": time.Now(),
		},
	}
	return app.DB.UpsertOne(models.CollectionChainConfigs, bson.M{"chain_type": chainType}, update)
}

// LatestChainHeight returns the latest synced block height for a chain type,
// or zero if no height was ever recorded.
func (x *configStore) LatestChainHeight(chainType uint32) int64 {
	config, err := x.GetChainConfig(chainType)
	if err != nil {
		log.Error("[CHAIN CONFIG] Error reading chain config for height: ", err)
		return 0
	}
	return config.LastBlockSynced
}

func NewConfigStore(height HeightProvider) ConfigStore {
	if height == nil {
		height = func() int64 { return 0 }
	}
	return &configStore{
		height: height,
	}
}
