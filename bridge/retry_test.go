package bridge

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/app/mocks"
	"github.com/chaingallery/nft-bridge-node/common"
	"github.com/chaingallery/nft-bridge-node/models"
	"github.com/chaingallery/nft-bridge-node/registry"
)

func expectStoredFailure(mockDB *mocks.MockDatabase, srcRelayId uint16, srcAddressHex string, nonce uint64, payloadHash string) {
	call := mockDB.EXPECT().FindOne(models.CollectionFailedMessages, bson.M{"src_relay_id": srcRelayId, "src_address": srcAddressHex, "nonce": int64(nonce)}, mock.Anything)
	call.Run(func(_ string, _ interface{}, result interface{}) {
		doc := result.(*models.FailedMessage)
		doc.SrcRelayId = srcRelayId
		doc.SrcAddress = srcAddressHex
		doc.Nonce = int64(nonce)
		doc.PayloadHash = payloadHash
		doc.Reason = "asset not registered"
	})
	call.Return(nil)
}

func TestGetFailedMessage(t *testing.T) {
	srcAddress := testRemote.Bytes()
	srcAddressHex := hexutil.Encode(srcAddress)

	t.Run("Success", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		expectStoredFailure(mockDB, relayIdPolygon, srcAddressHex, 7, "0xstoredhash")

		stored, err := x.GetFailedMessage(relayIdPolygon, srcAddress, 7)

		assert.NoError(t, err)
		assert.Equal(t, "0xstoredhash", stored.PayloadHash)
		assert.Equal(t, int64(7), stored.Nonce)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		mockDB.EXPECT().FindOne(models.CollectionFailedMessages, mock.Anything, mock.Anything).Return(mongo.ErrNoDocuments)

		_, err := x.GetFailedMessage(relayIdPolygon, srcAddress, 7)

		assert.ErrorIs(t, err, ErrNoStoredMessage)
	})

	t.Run("With Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		mockDB.EXPECT().FindOne(models.CollectionFailedMessages, mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := x.GetFailedMessage(relayIdPolygon, srcAddress, 7)

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestRetryMessage(t *testing.T) {
	srcAddress := testRemote.Bytes()
	srcAddressHex := hexutil.Encode(srcAddress)
	nonce := uint64(7)

	t.Run("No Stored Message", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		mockDB.EXPECT().FindOne(models.CollectionFailedMessages, mock.Anything, mock.Anything).Return(mongo.ErrNoDocuments)

		err := x.RetryMessage(testOwner, relayIdPolygon, srcAddress, nonce, testTransferPayload(t))

		assert.ErrorIs(t, err, ErrNoStoredMessage)
	})

	t.Run("Payload Mismatch", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		expectStoredFailure(mockDB, relayIdPolygon, srcAddressHex, nonce, "0xsomeotherhash")

		err := x.RetryMessage(testOwner, relayIdPolygon, srcAddress, nonce, testTransferPayload(t))

		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("Already Processed", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, _, _ := NewTestEngine(t)

		payload := testTransferPayload(t)
		messageHash := common.PayloadHash(payload).Hex()

		expectStoredFailure(mockDB, relayIdPolygon, srcAddressHex, nonce, messageHash)
		mockDB.EXPECT().XLock(messageHash).Return("lockId", nil)
		mockDB.EXPECT().Unlock("lockId").Return(nil)
		mockRegistry.EXPECT().IsMessageProcessed(messageHash).Return(true, nil)

		err := x.RetryMessage(testOwner, relayIdPolygon, srcAddress, nonce, payload)

		assert.ErrorIs(t, err, ErrMessageAlreadyProcessed)
	})

	t.Run("Still Failing", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, _, _ := NewTestEngine(t)

		payload := testTransferPayload(t)
		messageHash := common.PayloadHash(payload).Hex()

		expectStoredFailure(mockDB, relayIdPolygon, srcAddressHex, nonce, messageHash)
		mockDB.EXPECT().XLock(messageHash).Return("lockId", nil)
		mockDB.EXPECT().Unlock("lockId").Return(nil)
		mockRegistry.EXPECT().IsMessageProcessed(messageHash).Return(false, nil)
		mockRegistry.EXPECT().GetAssetIdByContract(testContract, testTokenId).Return("", registry.ErrAssetNotExists)

		err := x.RetryMessage(testOwner, relayIdPolygon, srcAddress, nonce, payload)

		assert.ErrorIs(t, err, registry.ErrAssetNotExists)
	})

	t.Run("Succeeds After Asset Registered", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, mockCustodian, _ := NewTestEngine(t)

		payload := testTransferPayload(t)
		messageHash := common.PayloadHash(payload).Hex()

		expectStoredFailure(mockDB, relayIdPolygon, srcAddressHex, nonce, messageHash)
		mockDB.EXPECT().XLock(messageHash).Return("lockId", nil)
		mockDB.EXPECT().Unlock("lockId").Return(nil)
		mockRegistry.EXPECT().IsMessageProcessed(messageHash).Return(false, nil)

		mockRegistry.EXPECT().GetAssetIdByContract(testContract, testTokenId).Return(testAssetId, nil)
		mockCustodian.EXPECT().OperatorAddress().Return(testOperator)
		mockCustodian.EXPECT().CustodianOf(testTargetContract, testTokenId).Return(testVault, nil)
		mockCustodian.EXPECT().VaultAddress().Return(testVault)
		mockCustodian.EXPECT().ReleaseCustody(testTargetContract, testUser, testTokenId).Return("0xreleasetx", nil)
		mockRegistry.EXPECT().UnlockAsset(testOperator, testRequestId, testUser, testTargetContract, testTokenId, true, models.AssetTypeNft, testAssetId, models.ChainTypeEthereum).Return(nil)
		mockRegistry.EXPECT().MarkMessageProcessed(testOperator, messageHash).Return(nil)
		mockDB.EXPECT().DeleteOne(models.CollectionFailedMessages, bson.M{"src_relay_id": relayIdPolygon, "src_address": srcAddressHex, "nonce": int64(nonce)}).Return(nil)

		eventCall := mockDB.EXPECT().InsertOne(models.CollectionEvents, mock.Anything)
		eventCall.Run(func(_ string, data interface{}) {
			event := data.(models.BridgeEvent)
			assert.Equal(t, models.EventRetrySuccess, event.Type)
			assert.Equal(t, messageHash, event.MessageHash)
			assert.Equal(t, strings.ToLower(testOwner.Hex()), event.Owner)
		})
		eventCall.Return(nil)

		err := x.RetryMessage(testOwner, relayIdPolygon, srcAddress, nonce, payload)

		assert.NoError(t, err)
	})
}
