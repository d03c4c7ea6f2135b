package bridge

import (
	"strings"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
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

func expectChainForRelay(mockDB *mocks.MockDatabase, relayId uint16, chainType uint32) {
	call := mockDB.EXPECT().FindOne(models.CollectionSupportedChains, bson.M{"relay_chain_id": relayId, "is_supported": true}, mock.Anything)
	call.Run(func(_ string, _ interface{}, result interface{}) {
		doc := result.(*models.SupportedChain)
		doc.ChainType = chainType
		doc.RelayChainId = relayId
		doc.IsSupported = true
	})
	call.Return(nil)
}

func testTransferPayload(t *testing.T) []byte {
	payload, err := EncodeBridgePayload(BridgePayload{
		MessageType:    models.MessageTypeAssetTransfer,
		RequestId:      ethcommon.HexToHash(testRequestId),
		Owner:          testUser,
		OriginContract: testContract,
		TargetContract: testTargetContract,
		TokenId:        testTokenId,
		Timestamp:      1700000000,
		AssetType:      models.AssetTypeNft,
		IsNft:          true,
		AssetId:        testAssetId,
	})
	assert.NoError(t, err)
	return payload
}

func TestRemoteMatches(t *testing.T) {
	remoteBytes := testRemote.Bytes()

	assert.True(t, remoteMatches(strings.ToLower(testRemote.Hex()), remoteBytes))
	assert.True(t, remoteMatches(testRemote.Hex(), remoteBytes))
	assert.False(t, remoteMatches("", remoteBytes))
	assert.False(t, remoteMatches(testRemote.Hex(), nil))
	assert.False(t, remoteMatches(testRemote.Hex(), testUser.Bytes()))
}

func TestPeekMessageType(t *testing.T) {
	payload, err := EncodeBridgePayload(BridgePayload{
		MessageType: models.MessageTypeAssetTransfer,
		Owner:       testUser,
		AssetId:     testAssetId,
	})
	assert.NoError(t, err)

	assert.Equal(t, models.MessageTypeAssetTransfer, peekMessageType(payload))
	assert.Equal(t, uint8(0), peekMessageType([]byte("short")))
	assert.Equal(t, uint8(0), peekMessageType(nil))
}

func TestLzReceive(t *testing.T) {
	srcAddress := testRemote.Bytes()
	srcAddressHex := hexutil.Encode(srcAddress)
	nonce := uint64(7)

	t.Run("Rejects Non Endpoint Caller", func(t *testing.T) {
		app.Config.Relay.EndpointAddress = testEndpoint.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		err := x.LzReceive(testUser, relayIdPolygon, srcAddress, nonce, testTransferPayload(t))

		assert.ErrorIs(t, err, ErrOnlyEndpoint)
	})

	t.Run("Unknown Source Chain", func(t *testing.T) {
		app.Config.Relay.EndpointAddress = testEndpoint.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		mockDB.EXPECT().FindOne(models.CollectionTrustedRemotes, bson.M{"relay_chain_id": relayIdPolygon}, mock.Anything).Return(mongo.ErrNoDocuments)

		err := x.LzReceive(testEndpoint, relayIdPolygon, srcAddress, nonce, testTransferPayload(t))

		assert.ErrorIs(t, err, ErrUntrustedRemote)
	})

	t.Run("Wrong Source Address", func(t *testing.T) {
		app.Config.Relay.EndpointAddress = testEndpoint.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		expectTrustedRemote(mockDB, relayIdPolygon, strings.ToLower(testRemote.Hex()))

		err := x.LzReceive(testEndpoint, relayIdPolygon, testUser.Bytes(), nonce, testTransferPayload(t))

		assert.ErrorIs(t, err, ErrUntrustedRemote)
	})

	t.Run("Already Processed", func(t *testing.T) {
		app.Config.Relay.EndpointAddress = testEndpoint.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, _, _ := NewTestEngine(t)

		payload := testTransferPayload(t)
		messageHash := common.PayloadHash(payload).Hex()

		expectTrustedRemote(mockDB, relayIdPolygon, strings.ToLower(testRemote.Hex()))
		mockDB.EXPECT().XLock(messageHash).Return("lockId", nil)
		mockDB.EXPECT().Unlock("lockId").Return(nil)
		mockRegistry.EXPECT().IsMessageProcessed(messageHash).Return(true, nil)

		err := x.LzReceive(testEndpoint, relayIdPolygon, srcAddress, nonce, payload)

		assert.ErrorIs(t, err, ErrMessageAlreadyProcessed)
	})

	t.Run("Releases Vaulted Token", func(t *testing.T) {
		app.Config.Relay.EndpointAddress = testEndpoint.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, mockCustodian, _ := NewTestEngine(t)

		payload := testTransferPayload(t)
		messageHash := common.PayloadHash(payload).Hex()

		expectTrustedRemote(mockDB, relayIdPolygon, strings.ToLower(testRemote.Hex()))
		mockDB.EXPECT().XLock(messageHash).Return("lockId", nil)
		mockDB.EXPECT().Unlock("lockId").Return(nil)
		mockRegistry.EXPECT().IsMessageProcessed(messageHash).Return(false, nil)

		expectChainForRelay(mockDB, relayIdPolygon, models.ChainTypePolygon)
		recordCall := mockDB.EXPECT().InsertOne(models.CollectionMessages, mock.Anything)
		recordCall.Run(func(_ string, data interface{}) {
			record := data.(models.QueuedMessage)
			assert.Equal(t, messageHash, record.MessageHash)
			assert.Equal(t, models.MessageTypeAssetTransfer, record.MessageType)
			assert.Equal(t, models.ChainTypePolygon, record.SourceChain)
			assert.Equal(t, models.ChainTypeEthereum, record.TargetChain)
			assert.False(t, record.Processed)
		})
		recordCall.Return(nil)

		mockRegistry.EXPECT().GetAssetIdByContract(testContract, testTokenId).Return(testAssetId, nil)
		mockCustodian.EXPECT().OperatorAddress().Return(testOperator)
		mockCustodian.EXPECT().CustodianOf(testTargetContract, testTokenId).Return(testVault, nil)
		mockCustodian.EXPECT().VaultAddress().Return(testVault)
		mockCustodian.EXPECT().ReleaseCustody(testTargetContract, testUser, testTokenId).Return("0xreleasetx", nil)
		mockRegistry.EXPECT().UnlockAsset(testOperator, testRequestId, testUser, testTargetContract, testTokenId, true, models.AssetTypeNft, testAssetId, models.ChainTypeEthereum).Return(nil)
		mockRegistry.EXPECT().MarkMessageProcessed(testOperator, messageHash).Return(nil)
		mockDB.EXPECT().DeleteOne(models.CollectionFailedMessages, bson.M{"src_relay_id": relayIdPolygon, "src_address": srcAddressHex, "nonce": int64(nonce)}).Return(nil)

		err := x.LzReceive(testEndpoint, relayIdPolygon, srcAddress, nonce, payload)

		assert.NoError(t, err)
	})

	t.Run("Mints Missing Token", func(t *testing.T) {
		app.Config.Relay.EndpointAddress = testEndpoint.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, mockCustodian, _ := NewTestEngine(t)

		payload := testTransferPayload(t)
		messageHash := common.PayloadHash(payload).Hex()

		expectTrustedRemote(mockDB, relayIdPolygon, strings.ToLower(testRemote.Hex()))
		mockDB.EXPECT().XLock(messageHash).Return("lockId", nil)
		mockDB.EXPECT().Unlock("lockId").Return(nil)
		mockRegistry.EXPECT().IsMessageProcessed(messageHash).Return(false, nil)
		expectChainForRelay(mockDB, relayIdPolygon, models.ChainTypePolygon)
		mockDB.EXPECT().InsertOne(models.CollectionMessages, mock.Anything).Return(nil)

		mockRegistry.EXPECT().GetAssetIdByContract(testContract, testTokenId).Return(testAssetId, nil)
		mockCustodian.EXPECT().OperatorAddress().Return(testOperator)
		mockCustodian.EXPECT().CustodianOf(testTargetContract, testTokenId).Return(ethcommon.Address{}, assert.AnError)
		mockCustodian.EXPECT().Mint(testTargetContract, testUser, testTokenId, testAssetId).Return("0xminttx", nil)
		mockRegistry.EXPECT().UnlockAsset(testOperator, testRequestId, testUser, testTargetContract, testTokenId, true, models.AssetTypeNft, testAssetId, models.ChainTypeEthereum).Return(nil)
		mockRegistry.EXPECT().MarkMessageProcessed(testOperator, messageHash).Return(nil)
		mockDB.EXPECT().DeleteOne(models.CollectionFailedMessages, mock.Anything).Return(nil)

		err := x.LzReceive(testEndpoint, relayIdPolygon, srcAddress, nonce, payload)

		assert.NoError(t, err)
	})

	t.Run("Parks Undecodable Payload", func(t *testing.T) {
		app.Config.Relay.EndpointAddress = testEndpoint.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, _, _ := NewTestEngine(t)

		payload := []byte("garbage payload")
		messageHash := common.PayloadHash(payload).Hex()

		expectTrustedRemote(mockDB, relayIdPolygon, strings.ToLower(testRemote.Hex()))
		mockDB.EXPECT().XLock(messageHash).Return("lockId", nil)
		mockDB.EXPECT().Unlock("lockId").Return(nil)
		mockRegistry.EXPECT().IsMessageProcessed(messageHash).Return(false, nil)
		expectChainForRelay(mockDB, relayIdPolygon, models.ChainTypePolygon)
		mockDB.EXPECT().InsertOne(models.CollectionMessages, mock.Anything).Return(nil)

		storeCall := mockDB.EXPECT().UpsertOne(models.CollectionFailedMessages, bson.M{"src_relay_id": relayIdPolygon, "src_address": srcAddressHex, "nonce": int64(nonce)}, mock.Anything)
		storeCall.Return(nil)
		eventCall := mockDB.EXPECT().InsertOne(models.CollectionEvents, mock.Anything)
		eventCall.Run(func(_ string, data interface{}) {
			event := data.(models.BridgeEvent)
			assert.Equal(t, models.EventMessageFailed, event.Type)
			assert.Equal(t, messageHash, event.MessageHash)
		})
		eventCall.Return(nil)

		err := x.LzReceive(testEndpoint, relayIdPolygon, srcAddress, nonce, payload)

		assert.NoError(t, err)
	})

	t.Run("Parks Unregistered Asset", func(t *testing.T) {
		app.Config.Relay.EndpointAddress = testEndpoint.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, _, _ := NewTestEngine(t)

		payload := testTransferPayload(t)
		messageHash := common.PayloadHash(payload).Hex()

		expectTrustedRemote(mockDB, relayIdPolygon, strings.ToLower(testRemote.Hex()))
		mockDB.EXPECT().XLock(messageHash).Return("lockId", nil)
		mockDB.EXPECT().Unlock("lockId").Return(nil)
		mockRegistry.EXPECT().IsMessageProcessed(messageHash).Return(false, nil)
		expectChainForRelay(mockDB, relayIdPolygon, models.ChainTypePolygon)
		mockDB.EXPECT().InsertOne(models.CollectionMessages, mock.Anything).Return(nil)

		mockRegistry.EXPECT().GetAssetIdByContract(testContract, testTokenId).Return("", registry.ErrAssetNotExists)

		mockDB.EXPECT().UpsertOne(models.CollectionFailedMessages, mock.Anything, mock.Anything).Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionEvents, mock.Anything).Return(nil)

		err := x.LzReceive(testEndpoint, relayIdPolygon, srcAddress, nonce, payload)

		assert.NoError(t, err)
	})

	t.Run("Parks Unsupported Message Type", func(t *testing.T) {
		app.Config.Relay.EndpointAddress = testEndpoint.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, _, _ := NewTestEngine(t)

		payload, err := EncodeBridgePayload(BridgePayload{
			MessageType: models.MessageTypeAssetSync,
			Owner:       testUser,
			AssetId:     testAssetId,
		})
		assert.NoError(t, err)
		messageHash := common.PayloadHash(payload).Hex()

		expectTrustedRemote(mockDB, relayIdPolygon, strings.ToLower(testRemote.Hex()))
		mockDB.EXPECT().XLock(messageHash).Return("lockId", nil)
		mockDB.EXPECT().Unlock("lockId").Return(nil)
		mockRegistry.EXPECT().IsMessageProcessed(messageHash).Return(false, nil)
		expectChainForRelay(mockDB, relayIdPolygon, models.ChainTypePolygon)
		mockDB.EXPECT().InsertOne(models.CollectionMessages, mock.Anything).Return(nil)

		storeCall := mockDB.EXPECT().UpsertOne(models.CollectionFailedMessages, mock.Anything, mock.Anything)
		storeCall.Run(func(_ string, _ interface{}, update interface{}) {
			set := update.(bson.M)["$set"].(bson.M)
			assert.Contains(t, set["reason"], "unsupported message type")
		})
		storeCall.Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionEvents, mock.Anything).Return(nil)

		err = x.LzReceive(testEndpoint, relayIdPolygon, srcAddress, nonce, payload)

		assert.NoError(t, err)
	})
}
