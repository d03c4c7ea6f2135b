package bridge

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/common"
	"github.com/chaingallery/nft-bridge-node/models"
	"github.com/chaingallery/nft-bridge-node/registry"
)

// remoteMatches reports whether srcAddress is the configured trusted remote.
// An unset remote never matches.
func remoteMatches(trusted string, srcAddress []byte) bool {
	if trusted == "" || len(srcAddress) == 0 {
		return false
	}
	return strings.EqualFold(trusted, hexutil.Encode(srcAddress))
}

// peekMessageType reads the message type out of the first encoded word
// without decoding the full payload.
func peekMessageType(payload []byte) uint8 {
	if len(payload) < 32 {
		return 0
	}
	return payload[31]
}

// LzReceive applies a payload delivered by the relay network. Delivery is
// idempotent on the payload hash: a hash already in the processed set is
// rejected, and concurrent deliveries of the same payload serialize on a
// distributed lock. A payload that fails to apply is parked as a failed
// message and the call still returns nil, so the relay channel keeps moving.
func (x *engine) LzReceive(caller ethcommon.Address, srcRelayId uint16, srcAddress []byte, nonce uint64, payload []byte) error {
	if !strings.EqualFold(caller.Hex(), app.Config.Relay.EndpointAddress) {
		return ErrOnlyEndpoint
	}

	remote, err := x.trustedRemote(srcRelayId)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUntrustedRemote
		}
		return err
	}
	if !remoteMatches(remote.Address, srcAddress) {
		return ErrUntrustedRemote
	}

	messageHash := common.PayloadHash(payload).Hex()

	lockId, err := app.DB.XLock(messageHash)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.DB.Unlock(lockId); err != nil {
			log.Error("[BRIDGE] Error unlocking message: ", err)
		}
	}()

	processed, err := x.registry.IsMessageProcessed(messageHash)
	if err != nil {
		return err
	}
	if processed {
		return ErrMessageAlreadyProcessed
	}

	x.recordInbound(srcRelayId, messageHash, payload)

	if err := x.applyInbound(payload); err != nil {
		x.storeFailedMessage(srcRelayId, srcAddress, nonce, messageHash, err)
		return nil
	}

	if err := x.registry.MarkMessageProcessed(x.custodian.OperatorAddress(), messageHash); err != nil {
		return err
	}
	x.clearFailedMessage(srcRelayId, srcAddress, nonce)

	log.Info("[BRIDGE] Processed inbound message: ", messageHash)
	return nil
}

// recordInbound keeps the raw payload in the message queue for the API and
// for operators diagnosing a parked message. Best effort.
func (x *engine) recordInbound(srcRelayId uint16, messageHash string, payload []byte) {
	sourceChain, err := x.chainTypeForRelay(srcRelayId)
	if err != nil {
		sourceChain = 0
	}
	now := time.Now()
	doc := models.QueuedMessage{
		MessageHash: messageHash,
		MessageType: peekMessageType(payload),
		SourceChain: sourceChain,
		TargetChain: x.chainType,
		Payload:     hexutil.Encode(payload),
		Sender:      strings.ToLower(app.Config.Relay.EndpointAddress),
		Processed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := app.DB.InsertOne(models.CollectionMessages, doc); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			log.Error("[BRIDGE] Error recording inbound message: ", err)
		}
	}
}

func (x *engine) applyInbound(payload []byte) error {
	decoded, err := DecodeBridgePayload(payload)
	if err != nil {
		return err
	}
	switch decoded.MessageType {
	case models.MessageTypeAssetTransfer:
		return x.applyTransfer(decoded)
	default:
		return fmt.Errorf("unsupported message type %d", decoded.MessageType)
	}
}

// applyTransfer lands a transfer on this chain. A token the vault already
// holds is released to the owner; one that never existed here is minted. The
// asset record must exist, registering it and retrying recovers a transfer
// that arrived early.
func (x *engine) applyTransfer(decoded BridgePayload) error {
	assetId := decoded.AssetId
	if decoded.IsNft {
		var err error
		assetId, err = x.registry.GetAssetIdByContract(decoded.OriginContract, decoded.TokenId)
		if err != nil {
			return err
		}
	}

	operator := x.custodian.OperatorAddress()
	requestId := ethcommon.BytesToHash(decoded.RequestId[:]).Hex()

	if decoded.IsNft {
		holder, err := x.custodian.CustodianOf(decoded.TargetContract, decoded.TokenId)
		if err == nil && holder == x.custodian.VaultAddress() {
			if _, err := x.custodian.ReleaseCustody(decoded.TargetContract, decoded.Owner, decoded.TokenId); err != nil {
				return err
			}
		} else {
			if _, err := x.custodian.Mint(decoded.TargetContract, decoded.Owner, decoded.TokenId, decoded.AssetId); err != nil {
				return err
			}
		}
	}

	return x.registry.UnlockAsset(operator, requestId, decoded.Owner, decoded.TargetContract, decoded.TokenId, decoded.IsNft, decoded.AssetType, assetId, x.chainType)
}

func failedFilter(srcRelayId uint16, srcAddress []byte, nonce uint64) bson.M {
	return bson.M{
		"src_relay_id": srcRelayId,
		"src_address":  strings.ToLower(hexutil.Encode(srcAddress)),
		"nonce":        int64(nonce),
	}
}

// storeFailedMessage parks a payload that could not be applied so it can be
// retried once the underlying cause is fixed. Only the payload hash is
// stored, the retry must present the original bytes.
func (x *engine) storeFailedMessage(srcRelayId uint16, srcAddress []byte, nonce uint64, messageHash string, cause error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"payload_hash": messageHash,
			"reason":       cause.Error(),
			"updated_at":   now,
		},
		"$setOnInsert": bson.M{
			"src_relay_id": srcRelayId,
			"src_address":  strings.ToLower(hexutil.Encode(srcAddress)),
			"nonce":        int64(nonce),
			"created_at":   now,
		},
	}
	if err := app.DB.UpsertOne(models.CollectionFailedMessages, failedFilter(srcRelayId, srcAddress, nonce), update); err != nil {
		log.Error("[BRIDGE] Error storing failed message: ", err)
		return
	}

	registry.EmitEvent(models.BridgeEvent{
		Type:        models.EventMessageFailed,
		MessageHash: messageHash,
		ChainType:   x.chainType,
		Detail:      cause.Error(),
	})

	log.Warn("[BRIDGE] Stored failed message for retry ", messageHash, ": ", cause)
}

func (x *engine) clearFailedMessage(srcRelayId uint16, srcAddress []byte, nonce uint64) {
	if err := app.DB.DeleteOne(models.CollectionFailedMessages, failedFilter(srcRelayId, srcAddress, nonce)); err != nil {
		log.Error("[BRIDGE] Error clearing failed message: ", err)
	}
}
