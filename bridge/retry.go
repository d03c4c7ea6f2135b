package bridge

import (
	"errors"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/common"
	"github.com/chaingallery/nft-bridge-node/models"
	"github.com/chaingallery/nft-bridge-node/registry"
)

func (x *engine) GetFailedMessage(srcRelayId uint16, srcAddress []byte, nonce uint64) (models.FailedMessage, error) {
	var stored models.FailedMessage
	err := app.DB.FindOne(models.CollectionFailedMessages, failedFilter(srcRelayId, srcAddress, nonce), &stored)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.FailedMessage{}, ErrNoStoredMessage
		}
		return models.FailedMessage{}, err
	}
	return stored, nil
}

// RetryMessage replays a parked payload. The caller must present the exact
// bytes that failed, anything else is rejected against the stored hash. On
// success the parked entry is cleared, on failure it stays for another try.
func (x *engine) RetryMessage(caller ethcommon.Address, srcRelayId uint16, srcAddress []byte, nonce uint64, payload []byte) error {
	stored, err := x.GetFailedMessage(srcRelayId, srcAddress, nonce)
	if err != nil {
		return err
	}

	messageHash := common.PayloadHash(payload).Hex()
	if !strings.EqualFold(messageHash, stored.PayloadHash) {
		return ErrInvalidPayload
	}

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

	if err := x.applyInbound(payload); err != nil {
		log.Warn("[BRIDGE] Retry failed for message ", messageHash, ": ", err)
		return err
	}

	if err := x.registry.MarkMessageProcessed(x.custodian.OperatorAddress(), messageHash); err != nil {
		return err
	}
	x.clearFailedMessage(srcRelayId, srcAddress, nonce)

	registry.EmitEvent(models.BridgeEvent{
		Type:        models.EventRetrySuccess,
		MessageHash: messageHash,
		Owner:       strings.ToLower(caller.Hex()),
		ChainType:   x.chainType,
	})

	log.Info("[BRIDGE] Retried message successfully: ", messageHash)
	return nil
}
