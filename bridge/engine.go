package bridge

import (
	"errors"
	"math/big"
	"strings"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/custodian"
	"github.com/chaingallery/nft-bridge-node/models"
	"github.com/chaingallery/nft-bridge-node/registry"
	"github.com/chaingallery/nft-bridge-node/relay"
)

// Engine is the externally facing bridge protocol layer. The outbound half
// prices, records and submits transfers; the inbound half applies relayed
// payloads exactly once. Admin operations are gated on the configured owner.
type Engine interface {
	EstimateBridgeFee(targetChain uint32, payload []byte) (*big.Int, error)
	BridgeAsset(params BridgeAssetParams) (BridgeReceipt, error)
	LzReceive(caller ethcommon.Address, srcRelayId uint16, srcAddress []byte, nonce uint64, payload []byte) error
	RetryMessage(caller ethcommon.Address, srcRelayId uint16, srcAddress []byte, nonce uint64, payload []byte) error

	GetFailedMessage(srcRelayId uint16, srcAddress []byte, nonce uint64) (models.FailedMessage, error)
	Paused() (bool, error)
	SupportedChains() ([]models.SupportedChain, error)

	SetTrustedRemote(caller ethcommon.Address, relayChainId uint16, remoteAddress []byte) error
	SetSupportedChain(caller ethcommon.Address, chainType uint32, relayChainId uint16, supported bool) error
	SetMinimumBridgeFee(caller ethcommon.Address, fee *big.Int) error
	Pause(caller ethcommon.Address) error
	Unpause(caller ethcommon.Address) error
	EmergencyWithdraw(caller ethcommon.Address, contractAddr ethcommon.Address, to ethcommon.Address, tokenId *big.Int) (string, error)

	SetRelayConfig(caller ethcommon.Address, version uint16, relayChainId uint16, configType uint32, config []byte) error
	SetSendVersion(caller ethcommon.Address, version uint16) error
	SetReceiveVersion(caller ethcommon.Address, version uint16) error
	ForceResumeReceive(caller ethcommon.Address, srcRelayId uint16, srcAddress []byte) error
	SetMinDstGas(caller ethcommon.Address, dstRelayId uint16, packetType uint16, minGas uint64) error
	SetPayloadSizeLimit(caller ethcommon.Address, dstRelayId uint16, size uint64) error
}

type engine struct {
	registry  registry.Registry
	custodian custodian.Custodian
	relay     relay.RelayClient
	chainType uint32
}

func (x *engine) bridgeState() (models.BridgeState, error) {
	var state models.BridgeState
	err := app.DB.FindOne(models.CollectionBridgeState, bson.M{"state_id": models.BridgeStateId}, &state)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.BridgeState{
				StateId:       models.BridgeStateId,
				MinimumFeeWei: app.Config.Bridge.MinimumFeeWei,
			}, nil
		}
		return models.BridgeState{}, err
	}
	return state, nil
}

func (x *engine) Paused() (bool, error) {
	state, err := x.bridgeState()
	return state.Paused, err
}

func (x *engine) SupportedChains() ([]models.SupportedChain, error) {
	chains := []models.SupportedChain{}
	err := app.DB.FindMany(models.CollectionSupportedChains, bson.M{"is_supported": true}, &chains)
	return chains, err
}

// relayChainId maps a logical chain type to the relay network's identifier.
func (x *engine) relayChainId(chainType uint32) (uint16, error) {
	var chain models.SupportedChain
	err := app.DB.FindOne(models.CollectionSupportedChains, bson.M{"chain_type": chainType, "is_supported": true}, &chain)
	if err != nil {
		return 0, err
	}
	return chain.RelayChainId, nil
}

// chainTypeForRelay is the reverse mapping.
func (x *engine) chainTypeForRelay(relayId uint16) (uint32, error) {
	var chain models.SupportedChain
	err := app.DB.FindOne(models.CollectionSupportedChains, bson.M{"relay_chain_id": relayId, "is_supported": true}, &chain)
	if err != nil {
		return 0, err
	}
	return chain.ChainType, nil
}

func (x *engine) trustedRemote(relayId uint16) (models.TrustedRemote, error) {
	var remote models.TrustedRemote
	err := app.DB.FindOne(models.CollectionTrustedRemotes, bson.M{"relay_chain_id": relayId}, &remote)
	return remote, err
}

func adapterParams() []byte {
	if app.Config.Relay.AdapterParams == "" {
		return nil
	}
	params, err := hexutil.Decode(app.Config.Relay.AdapterParams)
	if err != nil {
		log.Warn("[BRIDGE] Ignoring invalid relay adapter params: ", err)
		return nil
	}
	return params
}

// seedBridgeState creates the singleton state document. Insert-only so a
// pause survives restarts.
func (x *engine) seedBridgeState() {
	update := bson.M{
		"$setOnInsert": bson.M{
			"state_id":        models.BridgeStateId,
			"paused":          false,
			"minimum_fee_wei": app.Config.Bridge.MinimumFeeWei,
			"updated_at":      time.Now(),
		},
	}
	if err := app.DB.UpsertOne(models.CollectionBridgeState, bson.M{"state_id": models.BridgeStateId}, update); err != nil {
		log.Error("[BRIDGE] Error seeding bridge state: ", err)
	}
}

func (x *engine) seedSupportedChains() {
	for _, chain := range app.Config.Bridge.SupportedChains {
		update := bson.M{
			"$set": bson.M{
				"relay_chain_id": chain.RelayChainID,
				"is_supported":   true,
				"updated_at":     time.Now(),
			},
			"$setOnInsert": bson.M{
				"chain_type": chain.ChainType,
			},
		}
		if err := app.DB.UpsertOne(models.CollectionSupportedChains, bson.M{"chain_type": chain.ChainType}, update); err != nil {
			log.Error("[BRIDGE] Error seeding supported chain ", chain.ChainType, ": ", err)
		}
	}
	log.Debug("[BRIDGE] Seeded supported chains: ", len(app.Config.Bridge.SupportedChains))
}

func (x *engine) seedTrustedRemotes() {
	for _, remote := range app.Config.Bridge.TrustedRemotes {
		update := bson.M{
			"$set": bson.M{
				"address":    strings.ToLower(remote.Address),
				"updated_at": time.Now(),
			},
			"$setOnInsert": bson.M{
				"relay_chain_id": remote.RelayChainID,
			},
		}
		if err := app.DB.UpsertOne(models.CollectionTrustedRemotes, bson.M{"relay_chain_id": remote.RelayChainID}, update); err != nil {
			log.Error("[BRIDGE] Error seeding trusted remote ", remote.RelayChainID, ": ", err)
		}
	}
	log.Debug("[BRIDGE] Seeded trusted remotes: ", len(app.Config.Bridge.TrustedRemotes))
}

func NewEngine(assetRegistry registry.Registry, assetCustodian custodian.Custodian, relayClient relay.RelayClient) Engine {
	x := &engine{
		registry:  assetRegistry,
		custodian: assetCustodian,
		relay:     relayClient,
		chainType: app.Config.Bridge.ChainType,
	}
	x.seedBridgeState()
	x.seedSupportedChains()
	x.seedTrustedRemotes()
	return x
}
