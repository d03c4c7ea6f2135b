package bridge

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/common"
	"github.com/chaingallery/nft-bridge-node/models"
	"github.com/chaingallery/nft-bridge-node/registry"
)

func (x *engine) requireOwner(caller ethcommon.Address) error {
	if !strings.EqualFold(caller.Hex(), app.Config.Bridge.OwnerAddress) {
		return ErrNotOwner
	}
	return nil
}

func (x *engine) SetTrustedRemote(caller ethcommon.Address, relayChainId uint16, remoteAddress []byte) error {
	if err := x.requireOwner(caller); err != nil {
		return err
	}

	address := strings.ToLower(hexutil.Encode(remoteAddress))
	update := bson.M{
		"$set": bson.M{
			"address":    address,
			"updated_at": time.Now(),
		},
		"$setOnInsert": bson.M{
			"relay_chain_id": relayChainId,
		},
	}
	if err := app.DB.UpsertOne(models.CollectionTrustedRemotes, bson.M{"relay_chain_id": relayChainId}, update); err != nil {
		return err
	}

	registry.EmitEvent(models.BridgeEvent{
		Type:      models.EventTrustedRemoteSet,
		ChainType: uint32(relayChainId),
		Detail:    address,
	})

	log.Info("[BRIDGE] Set trusted remote for relay chain ", relayChainId, ": ", address)
	return nil
}

// SetSupportedChain maps a chain type to its relay chain id. Withdrawing
// support flips the flag rather than deleting, so history stays resolvable.
func (x *engine) SetSupportedChain(caller ethcommon.Address, chainType uint32, relayChainId uint16, supported bool) error {
	if err := x.requireOwner(caller); err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"relay_chain_id": relayChainId,
			"is_supported":   supported,
			"updated_at":     time.Now(),
		},
		"$setOnInsert": bson.M{
			"chain_type": chainType,
		},
	}
	if err := app.DB.UpsertOne(models.CollectionSupportedChains, bson.M{"chain_type": chainType}, update); err != nil {
		return err
	}

	registry.EmitEvent(models.BridgeEvent{
		Type:      models.EventChainSupportedUpdated,
		ChainType: chainType,
		Detail:    fmt.Sprintf("relay_chain_id=%d supported=%t", relayChainId, supported),
	})

	log.Info("[BRIDGE] Set supported chain ", chainType, ": ", supported)
	return nil
}

func (x *engine) SetMinimumBridgeFee(caller ethcommon.Address, fee *big.Int) error {
	if err := x.requireOwner(caller); err != nil {
		return err
	}

	feeWei := "0"
	if fee != nil {
		feeWei = fee.String()
	}
	update := bson.M{
		"$set": bson.M{
			"minimum_fee_wei": feeWei,
			"updated_at":      time.Now(),
		},
		"$setOnInsert": bson.M{
			"state_id": models.BridgeStateId,
			"paused":   false,
		},
	}
	if err := app.DB.UpsertOne(models.CollectionBridgeState, bson.M{"state_id": models.BridgeStateId}, update); err != nil {
		return err
	}

	log.Info("[BRIDGE] Set minimum bridge fee: ", feeWei)
	return nil
}

func (x *engine) Pause(caller ethcommon.Address) error {
	return x.setPaused(caller, true)
}

func (x *engine) Unpause(caller ethcommon.Address) error {
	return x.setPaused(caller, false)
}

func (x *engine) setPaused(caller ethcommon.Address, paused bool) error {
	if err := x.requireOwner(caller); err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"paused":     paused,
			"updated_at": time.Now(),
		},
		"$setOnInsert": bson.M{
			"state_id":        models.BridgeStateId,
			"minimum_fee_wei": app.Config.Bridge.MinimumFeeWei,
		},
	}
	if err := app.DB.UpsertOne(models.CollectionBridgeState, bson.M{"state_id": models.BridgeStateId}, update); err != nil {
		return err
	}

	log.Info("[BRIDGE] Bridge paused: ", paused)
	return nil
}

// EmergencyWithdraw hands a vaulted token back to its owner outside the
// normal flow, for assets stranded by a failed send that could not be
// unwound. Returns the release transaction hash.
func (x *engine) EmergencyWithdraw(caller ethcommon.Address, contractAddr ethcommon.Address, to ethcommon.Address, tokenId *big.Int) (string, error) {
	if err := x.requireOwner(caller); err != nil {
		return "", err
	}

	txHash, err := x.custodian.ReleaseCustody(contractAddr, to, tokenId)
	if err != nil {
		return "", err
	}

	requestId := common.RequestId(to, common.NftAssetRef(contractAddr, tokenId), x.chainType, uint64(time.Now().Unix())).Hex()
	err = x.registry.UnlockAsset(caller, requestId, to, contractAddr, tokenId, true, models.AssetTypeNft, "", x.chainType)
	if err != nil {
		log.Error("[BRIDGE] Error unlocking asset after emergency withdraw: ", err)
	}

	log.Info("[BRIDGE] Emergency withdraw ", contractAddr.Hex(), "/", tokenId, " to ", to.Hex(), ": ", txHash)
	return txHash, nil
}

func (x *engine) SetRelayConfig(caller ethcommon.Address, version uint16, relayChainId uint16, configType uint32, config []byte) error {
	if err := x.requireOwner(caller); err != nil {
		return err
	}
	return x.relay.SetConfig(version, relayChainId, configType, config)
}

func (x *engine) SetSendVersion(caller ethcommon.Address, version uint16) error {
	if err := x.requireOwner(caller); err != nil {
		return err
	}
	return x.relay.SetSendVersion(version)
}

func (x *engine) SetReceiveVersion(caller ethcommon.Address, version uint16) error {
	if err := x.requireOwner(caller); err != nil {
		return err
	}
	return x.relay.SetReceiveVersion(version)
}

func (x *engine) ForceResumeReceive(caller ethcommon.Address, srcRelayId uint16, srcAddress []byte) error {
	if err := x.requireOwner(caller); err != nil {
		return err
	}
	return x.relay.ForceResumeReceive(srcRelayId, hexutil.Encode(srcAddress))
}

func (x *engine) SetMinDstGas(caller ethcommon.Address, dstRelayId uint16, packetType uint16, minGas uint64) error {
	if err := x.requireOwner(caller); err != nil {
		return err
	}
	return x.relay.SetMinDstGas(dstRelayId, packetType, minGas)
}

func (x *engine) SetPayloadSizeLimit(caller ethcommon.Address, dstRelayId uint16, size uint64) error {
	if err := x.requireOwner(caller); err != nil {
		return err
	}
	return x.relay.SetPayloadSizeLimit(dstRelayId, size)
}
