package bridge

import (
	"math/big"
	"strings"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/app/mocks"
	"github.com/chaingallery/nft-bridge-node/models"
	"github.com/chaingallery/nft-bridge-node/registry"
)

var (
	testTargetContract = ethcommon.HexToAddress("0x14dC79964da2C08b23698B3D3cc7Ca32193d9955")
	testRequestId      = "0x3a7c1f92d4e8b05614f7a2c9e8d3b6a1905c4e7f2b8d1a6c3e9f5b2d8a4c7e1f"
	testAssetId        = "CG-1-1234"
)

func testNftParams(fee *big.Int) BridgeAssetParams {
	return BridgeAssetParams{
		Owner:          testUser,
		NftContract:    testContract,
		TokenId:        testTokenId,
		TargetChain:    models.ChainTypePolygon,
		TargetContract: testTargetContract,
		Fee:            fee,
		IsNft:          true,
		AssetType:      models.AssetTypeNft,
	}
}

func testProbePayload(t *testing.T, params BridgeAssetParams) []byte {
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
	assert.NoError(t, err)
	return probe
}

func TestBridgeAsset(t *testing.T) {
	t.Run("While Paused", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		expectBridgeState(mockDB, true, "1000")

		_, err := x.BridgeAsset(testNftParams(big.NewInt(1000000)))

		assert.ErrorIs(t, err, ErrBridgePaused)
	})

	t.Run("Unmapped Target Chain", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		params := testNftParams(big.NewInt(1000000))
		params.TargetChain = 99

		expectBridgeState(mockDB, false, "1000")
		mockDB.EXPECT().FindOne(models.CollectionSupportedChains, bson.M{"chain_type": uint32(99), "is_supported": true}, mock.Anything).Return(mongo.ErrNoDocuments)

		_, err := x.BridgeAsset(params)

		assert.ErrorIs(t, err, ErrInvalidChainType)
	})

	t.Run("No Trusted Remote", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		expectBridgeState(mockDB, false, "1000")
		expectRelayLookup(mockDB, models.ChainTypePolygon, relayIdPolygon)
		mockDB.EXPECT().FindOne(models.CollectionTrustedRemotes, bson.M{"relay_chain_id": relayIdPolygon}, mock.Anything).Return(mongo.ErrNoDocuments)

		_, err := x.BridgeAsset(testNftParams(big.NewInt(1000000)))

		assert.ErrorIs(t, err, ErrInvalidDestinationChain)
	})

	t.Run("Missing Fee", func(t *testing.T) {
		app.Config.Relay.AdapterParams = ""

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, mockRelay := NewTestEngine(t)

		params := testNftParams(nil)

		expectBridgeState(mockDB, false, "1000")
		expectRelayLookup(mockDB, models.ChainTypePolygon, relayIdPolygon)
		expectTrustedRemote(mockDB, relayIdPolygon, strings.ToLower(testRemote.Hex()))
		mockRelay.EXPECT().EstimateFee(relayIdPolygon, testProbePayload(t, params), []byte(nil)).Return(big.NewInt(200000), nil)

		_, err := x.BridgeAsset(params)

		assert.ErrorIs(t, err, ErrInsufficientFee)
	})

	t.Run("Insufficient Fee", func(t *testing.T) {
		app.Config.Relay.AdapterParams = ""

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, mockRelay := NewTestEngine(t)

		params := testNftParams(big.NewInt(100))

		expectBridgeState(mockDB, false, "1000")
		expectRelayLookup(mockDB, models.ChainTypePolygon, relayIdPolygon)
		expectTrustedRemote(mockDB, relayIdPolygon, strings.ToLower(testRemote.Hex()))
		mockRelay.EXPECT().EstimateFee(relayIdPolygon, testProbePayload(t, params), []byte(nil)).Return(big.NewInt(200000), nil)

		_, err := x.BridgeAsset(params)

		assert.ErrorIs(t, err, ErrInsufficientFee)
	})

	t.Run("Unregistered Asset", func(t *testing.T) {
		app.Config.Relay.AdapterParams = ""

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, _, mockRelay := NewTestEngine(t)

		params := testNftParams(big.NewInt(201000))

		expectBridgeState(mockDB, false, "1000")
		expectRelayLookup(mockDB, models.ChainTypePolygon, relayIdPolygon)
		expectTrustedRemote(mockDB, relayIdPolygon, strings.ToLower(testRemote.Hex()))
		mockRelay.EXPECT().EstimateFee(relayIdPolygon, testProbePayload(t, params), []byte(nil)).Return(big.NewInt(200000), nil)
		mockRegistry.EXPECT().GetAssetIdByContract(testContract, testTokenId).Return("", registry.ErrAssetNotExists)

		_, err := x.BridgeAsset(params)

		assert.ErrorIs(t, err, registry.ErrAssetNotExists)
	})

	t.Run("Inactive Target Chain", func(t *testing.T) {
		app.Config.Relay.AdapterParams = ""

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, mockCustodian, mockRelay := NewTestEngine(t)

		params := testNftParams(big.NewInt(201000))

		expectBridgeState(mockDB, false, "1000")
		expectRelayLookup(mockDB, models.ChainTypePolygon, relayIdPolygon)
		expectTrustedRemote(mockDB, relayIdPolygon, strings.ToLower(testRemote.Hex()))
		mockRelay.EXPECT().EstimateFee(relayIdPolygon, testProbePayload(t, params), []byte(nil)).Return(big.NewInt(200000), nil)
		mockRegistry.EXPECT().GetAssetIdByContract(testContract, testTokenId).Return(testAssetId, nil)
		mockCustodian.EXPECT().OperatorAddress().Return(testOperator)
		mockRegistry.EXPECT().RegisterBridgeRequest(testOperator, mock.Anything).Return("", registry.ErrInactiveChain)

		_, err := x.BridgeAsset(params)

		assert.ErrorIs(t, err, registry.ErrInactiveChain)
	})

	t.Run("Success For Nft", func(t *testing.T) {
		app.Config.Relay.AdapterParams = ""

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, mockCustodian, mockRelay := NewTestEngine(t)

		params := testNftParams(big.NewInt(201000))
		remoteLower := strings.ToLower(testRemote.Hex())

		expectBridgeState(mockDB, false, "1000")
		expectRelayLookup(mockDB, models.ChainTypePolygon, relayIdPolygon)
		expectTrustedRemote(mockDB, relayIdPolygon, remoteLower)
		mockRelay.EXPECT().EstimateFee(relayIdPolygon, testProbePayload(t, params), []byte(nil)).Return(big.NewInt(200000), nil)
		mockRegistry.EXPECT().GetAssetIdByContract(testContract, testTokenId).Return(testAssetId, nil)
		mockCustodian.EXPECT().OperatorAddress().Return(testOperator)

		registerCall := mockRegistry.EXPECT().RegisterBridgeRequest(testOperator, mock.Anything)
		registerCall.Run(func(_ ethcommon.Address, input registry.BridgeRequestInput) {
			assert.Equal(t, testUser, input.Owner)
			assert.Equal(t, testContract, input.NftContract)
			assert.Equal(t, models.ChainTypePolygon, input.TargetChain)
			assert.Equal(t, testAssetId, input.AssetId)
			assert.True(t, input.IsNft)
		})
		registerCall.Return(testRequestId, nil)

		mockRegistry.EXPECT().LockAsset(testOperator, testUser, testContract, testTokenId, true, testAssetId, models.ChainTypePolygon).Return(nil)
		mockCustodian.EXPECT().TransferCustody(testContract, testUser, testTokenId).Return("0xpulltx", nil)

		queueCall := mockRegistry.EXPECT().QueueCrossChainMessage(testOperator, models.MessageTypeAssetTransfer, models.ChainTypeEthereum, models.ChainTypePolygon, mock.Anything)
		queueCall.Run(func(_ ethcommon.Address, _ uint8, _ uint32, _ uint32, payload []byte) {
			decoded, err := DecodeBridgePayload(payload)
			assert.NoError(t, err)
			assert.Equal(t, testRequestId, ethcommon.BytesToHash(decoded.RequestId[:]).Hex())
			assert.Equal(t, testAssetId, decoded.AssetId)
			assert.NotZero(t, decoded.Timestamp)
		})
		queueCall.Return("0xmessagehash", nil)

		mockRelay.EXPECT().Send(relayIdPolygon, remoteLower, mock.Anything, testUser.Hex(), []byte(nil)).Return("delivery-ref", nil)

		eventCall := mockDB.EXPECT().InsertOne(models.CollectionEvents, mock.Anything)
		eventCall.Run(func(_ string, data interface{}) {
			event := data.(models.BridgeEvent)
			assert.Equal(t, models.EventAssetBridged, event.Type)
			assert.Equal(t, testRequestId, event.RequestId)
			assert.Equal(t, "delivery-ref", event.Detail)
		})
		eventCall.Return(nil)

		receipt, err := x.BridgeAsset(params)

		assert.NoError(t, err)
		assert.Equal(t, testRequestId, receipt.RequestId)
		assert.Equal(t, "0xmessagehash", receipt.MessageHash)
		assert.Equal(t, "delivery-ref", receipt.DeliveryRef)
		assert.Equal(t, big.NewInt(201000), receipt.TotalFee)
	})

	t.Run("Success For Listing", func(t *testing.T) {
		app.Config.Relay.AdapterParams = ""

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, mockCustodian, mockRelay := NewTestEngine(t)

		params := BridgeAssetParams{
			Owner:         testUser,
			TargetChain:   models.ChainTypePolygon,
			Fee:           big.NewInt(201000),
			IsNft:         false,
			AssetType:     models.AssetTypeListing,
			AssetId:       "CG-2-77",
			RefundAddress: testOwner,
		}
		remoteLower := strings.ToLower(testRemote.Hex())

		expectBridgeState(mockDB, false, "1000")
		expectRelayLookup(mockDB, models.ChainTypePolygon, relayIdPolygon)
		expectTrustedRemote(mockDB, relayIdPolygon, remoteLower)
		mockRelay.EXPECT().EstimateFee(relayIdPolygon, testProbePayload(t, params), []byte(nil)).Return(big.NewInt(200000), nil)
		mockCustodian.EXPECT().OperatorAddress().Return(testOperator)
		mockRegistry.EXPECT().RegisterBridgeRequest(testOperator, mock.Anything).Return(testRequestId, nil)
		mockRegistry.EXPECT().LockAsset(testOperator, testUser, ethcommon.Address{}, (*big.Int)(nil), false, "CG-2-77", models.ChainTypePolygon).Return(nil)
		mockRegistry.EXPECT().QueueCrossChainMessage(testOperator, models.MessageTypeAssetTransfer, models.ChainTypeEthereum, models.ChainTypePolygon, mock.Anything).Return("0xmessagehash", nil)
		mockRelay.EXPECT().Send(relayIdPolygon, remoteLower, mock.Anything, testOwner.Hex(), []byte(nil)).Return("delivery-ref", nil)

		eventCall := mockDB.EXPECT().InsertOne(models.CollectionEvents, mock.Anything)
		eventCall.Run(func(_ string, data interface{}) {
			event := data.(models.BridgeEvent)
			assert.Equal(t, models.EventNonNftAssetBridged, event.Type)
		})
		eventCall.Return(nil)

		receipt, err := x.BridgeAsset(params)

		assert.NoError(t, err)
		assert.Equal(t, testRequestId, receipt.RequestId)
	})

	t.Run("Custody Failure Unwinds Lock", func(t *testing.T) {
		app.Config.Relay.AdapterParams = ""

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, mockCustodian, mockRelay := NewTestEngine(t)

		params := testNftParams(big.NewInt(201000))

		expectBridgeState(mockDB, false, "1000")
		expectRelayLookup(mockDB, models.ChainTypePolygon, relayIdPolygon)
		expectTrustedRemote(mockDB, relayIdPolygon, strings.ToLower(testRemote.Hex()))
		mockRelay.EXPECT().EstimateFee(relayIdPolygon, testProbePayload(t, params), []byte(nil)).Return(big.NewInt(200000), nil)
		mockRegistry.EXPECT().GetAssetIdByContract(testContract, testTokenId).Return(testAssetId, nil)
		mockCustodian.EXPECT().OperatorAddress().Return(testOperator)
		mockRegistry.EXPECT().RegisterBridgeRequest(testOperator, mock.Anything).Return(testRequestId, nil)
		mockRegistry.EXPECT().LockAsset(testOperator, testUser, testContract, testTokenId, true, testAssetId, models.ChainTypePolygon).Return(nil)
		mockCustodian.EXPECT().TransferCustody(testContract, testUser, testTokenId).Return("", assert.AnError)
		mockRegistry.EXPECT().UnlockAsset(testOperator, testRequestId, testUser, testContract, testTokenId, true, models.AssetTypeNft, testAssetId, models.ChainTypePolygon).Return(nil)

		_, err := x.BridgeAsset(params)

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Relay Failure Unwinds Custody", func(t *testing.T) {
		app.Config.Relay.AdapterParams = ""

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, mockCustodian, mockRelay := NewTestEngine(t)

		params := testNftParams(big.NewInt(201000))
		remoteLower := strings.ToLower(testRemote.Hex())

		expectBridgeState(mockDB, false, "1000")
		expectRelayLookup(mockDB, models.ChainTypePolygon, relayIdPolygon)
		expectTrustedRemote(mockDB, relayIdPolygon, remoteLower)
		mockRelay.EXPECT().EstimateFee(relayIdPolygon, testProbePayload(t, params), []byte(nil)).Return(big.NewInt(200000), nil)
		mockRegistry.EXPECT().GetAssetIdByContract(testContract, testTokenId).Return(testAssetId, nil)
		mockCustodian.EXPECT().OperatorAddress().Return(testOperator)
		mockRegistry.EXPECT().RegisterBridgeRequest(testOperator, mock.Anything).Return(testRequestId, nil)
		mockRegistry.EXPECT().LockAsset(testOperator, testUser, testContract, testTokenId, true, testAssetId, models.ChainTypePolygon).Return(nil)
		mockCustodian.EXPECT().TransferCustody(testContract, testUser, testTokenId).Return("0xpulltx", nil)
		mockRegistry.EXPECT().QueueCrossChainMessage(testOperator, models.MessageTypeAssetTransfer, models.ChainTypeEthereum, models.ChainTypePolygon, mock.Anything).Return("0xmessagehash", nil)
		mockRelay.EXPECT().Send(relayIdPolygon, remoteLower, mock.Anything, testUser.Hex(), []byte(nil)).Return("", assert.AnError)
		mockCustodian.EXPECT().ReleaseCustody(testContract, testUser, testTokenId).Return("0xreleasetx", nil)
		mockRegistry.EXPECT().UnlockAsset(testOperator, testRequestId, testUser, testContract, testTokenId, true, models.AssetTypeNft, testAssetId, models.ChainTypePolygon).Return(nil)

		_, err := x.BridgeAsset(params)

		assert.ErrorIs(t, err, assert.AnError)
	})
}
