package bridge

import (
	"errors"
	"math/big"
	"strings"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chaingallery/nft-bridge-node/models"
	"github.com/chaingallery/nft-bridge-node/registry"
)

// BridgeAssetParams carries one outbound transfer. For NFTs the asset is
// resolved from NftContract and TokenId; listings name their AssetId
// directly. A zero RefundAddress falls back to the owner.
type BridgeAssetParams struct {
	Owner          ethcommon.Address
	NftContract    ethcommon.Address
	TokenId        *big.Int
	TargetChain    uint32
	TargetContract ethcommon.Address
	Fee            *big.Int
	IsNft          bool
	AssetType      uint8
	AssetId        string
	RefundAddress  ethcommon.Address
}

// BridgeReceipt reports where an accepted transfer can be followed up: the
// ledger entry, the queued message and the relay delivery reference.
type BridgeReceipt struct {
	RequestId   string
	MessageHash string
	DeliveryRef string
	TotalFee    *big.Int
}

// BridgeAsset runs the outbound flow: price the transfer, record the
// request, lock the asset, pull it into the vault and hand the payload to
// the relay. State changes are compensated if a later step fails, so a
// rejected transfer leaves no locked asset behind.
func (x *engine) BridgeAsset(params BridgeAssetParams) (BridgeReceipt, error) {
	paused, err := x.Paused()
	if err != nil {
		return BridgeReceipt{}, err
	}
	if paused {
		return BridgeReceipt{}, ErrBridgePaused
	}

	relayId, err := x.relayChainId(params.TargetChain)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return BridgeReceipt{}, ErrInvalidChainType
		}
		return BridgeReceipt{}, err
	}
	remote, err := x.trustedRemote(relayId)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return BridgeReceipt{}, ErrInvalidDestinationChain
		}
		return BridgeReceipt{}, err
	}

	// The request id is only minted after the fee check, so the estimate is
	// probed with a zero id. The probe has the same encoded size as the
	// final payload, which is all the relay prices on.
	probe, err := EncodeBridgePayload(BridgePayload{
		MessageType:    models.MessageTypeAssetTransfer,
		Owner:          params.Owner,
		OriginContract: params.NftContract,
		TargetContract: params.TargetContract,
		TokenId:        params.TokenId,
		AssetType:      params.AssetType,
		IsNft:          params.IsNft,
		AssetId:        params.AssetId,
	})
	if err != nil {
		return BridgeReceipt{}, err
	}
	estimate, err := x.EstimateBridgeFee(params.TargetChain, probe)
	if err != nil {
		return BridgeReceipt{}, err
	}
	if params.Fee == nil || params.Fee.Cmp(estimate) < 0 {
		return BridgeReceipt{}, ErrInsufficientFee
	}

	assetId := params.AssetId
	if params.IsNft {
		assetId, err = x.registry.GetAssetIdByContract(params.NftContract, params.TokenId)
		if err != nil {
			return BridgeReceipt{}, err
		}
	}

	operator := x.custodian.OperatorAddress()
	requestId, err := x.registry.RegisterBridgeRequest(operator, registry.BridgeRequestInput{
		Owner:          params.Owner,
		NftContract:    params.NftContract,
		TokenId:        params.TokenId,
		TargetChain:    params.TargetChain,
		TargetContract: params.TargetContract,
		Fee:            params.Fee,
		IsNft:          params.IsNft,
		AssetType:      params.AssetType,
		AssetId:        assetId,
	})
	if err != nil {
		return BridgeReceipt{}, err
	}

	if err := x.registry.LockAsset(operator, params.Owner, params.NftContract, params.TokenId, params.IsNft, assetId, params.TargetChain); err != nil {
		return BridgeReceipt{}, err
	}

	custodyMoved := false
	if params.IsNft {
		if _, err := x.custodian.TransferCustody(params.NftContract, params.Owner, params.TokenId); err != nil {
			x.compensate(requestId, assetId, params, custodyMoved)
			return BridgeReceipt{}, err
		}
		custodyMoved = true
	}

	payload, err := EncodeBridgePayload(BridgePayload{
		MessageType:    models.MessageTypeAssetTransfer,
		RequestId:      ethcommon.HexToHash(requestId),
		Owner:          params.Owner,
		OriginContract: params.NftContract,
		TargetContract: params.TargetContract,
		TokenId:        params.TokenId,
		Timestamp:      uint64(time.Now().Unix()),
		AssetType:      params.AssetType,
		IsNft:          params.IsNft,
		AssetId:        assetId,
	})
	if err != nil {
		x.compensate(requestId, assetId, params, custodyMoved)
		return BridgeReceipt{}, err
	}

	messageHash, err := x.registry.QueueCrossChainMessage(operator, models.MessageTypeAssetTransfer, x.chainType, params.TargetChain, payload)
	if err != nil {
		x.compensate(requestId, assetId, params, custodyMoved)
		return BridgeReceipt{}, err
	}

	refund := params.RefundAddress
	if refund == (ethcommon.Address{}) {
		refund = params.Owner
	}
	deliveryRef, err := x.relay.Send(relayId, remote.Address, payload, refund.Hex(), adapterParams())
	if err != nil {
		x.compensate(requestId, assetId, params, custodyMoved)
		return BridgeReceipt{}, err
	}

	eventType := models.EventAssetBridged
	if !params.IsNft {
		eventType = models.EventNonNftAssetBridged
	}
	registry.EmitEvent(models.BridgeEvent{
		Type:        eventType,
		AssetId:     assetId,
		RequestId:   requestId,
		MessageHash: messageHash,
		Owner:       strings.ToLower(params.Owner.Hex()),
		ChainType:   params.TargetChain,
		Detail:      deliveryRef,
	})

	log.Info("[BRIDGE] Bridged asset ", assetId, " to chain ", params.TargetChain, ": ", requestId)

	return BridgeReceipt{
		RequestId:   requestId,
		MessageHash: messageHash,
		DeliveryRef: deliveryRef,
		TotalFee:    estimate,
	}, nil
}

// compensate rolls back the lock and any custody move after a failed send.
// Best effort; a stuck asset is recovered through EmergencyWithdraw.
func (x *engine) compensate(requestId string, assetId string, params BridgeAssetParams, custodyMoved bool) {
	operator := x.custodian.OperatorAddress()
	if custodyMoved {
		if _, err := x.custodian.ReleaseCustody(params.NftContract, params.Owner, params.TokenId); err != nil {
			log.Error("[BRIDGE] Error releasing custody while unwinding ", requestId, ": ", err)
		}
	}
	err := x.registry.UnlockAsset(operator, requestId, params.Owner, params.NftContract, params.TokenId, params.IsNft, params.AssetType, assetId, params.TargetChain)
	if err != nil {
		log.Error("[BRIDGE] Error unlocking asset while unwinding ", requestId, ": ", err)
	}
}
