package bridge

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/app/mocks"
	"github.com/chaingallery/nft-bridge-node/models"
)

func TestSetTrustedRemote(t *testing.T) {
	remoteBytes := testRemote.Bytes()

	t.Run("Not Owner", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		err := x.SetTrustedRemote(testUser, relayIdPolygon, remoteBytes)

		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("Success", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		upsertCall := mockDB.EXPECT().UpsertOne(models.CollectionTrustedRemotes, bson.M{"relay_chain_id": relayIdPolygon}, mock.Anything)
		upsertCall.Run(func(_ string, _ interface{}, update interface{}) {
			set := update.(bson.M)["$set"].(bson.M)
			assert.Equal(t, strings.ToLower(hexutil.Encode(remoteBytes)), set["address"])
		})
		upsertCall.Return(nil)

		eventCall := mockDB.EXPECT().InsertOne(models.CollectionEvents, mock.Anything)
		eventCall.Run(func(_ string, data interface{}) {
			event := data.(models.BridgeEvent)
			assert.Equal(t, models.EventTrustedRemoteSet, event.Type)
		})
		eventCall.Return(nil)

		err := x.SetTrustedRemote(testOwner, relayIdPolygon, remoteBytes)

		assert.NoError(t, err)
	})
}

func TestSetSupportedChain(t *testing.T) {
	t.Run("Not Owner", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		err := x.SetSupportedChain(testUser, models.ChainTypePolygon, relayIdPolygon, true)

		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("Withdraws Support Without Deleting", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		upsertCall := mockDB.EXPECT().UpsertOne(models.CollectionSupportedChains, bson.M{"chain_type": models.ChainTypePolygon}, mock.Anything)
		upsertCall.Run(func(_ string, _ interface{}, update interface{}) {
			set := update.(bson.M)["$set"].(bson.M)
			assert.Equal(t, false, set["is_supported"])
			assert.Equal(t, relayIdPolygon, set["relay_chain_id"])
		})
		upsertCall.Return(nil)

		eventCall := mockDB.EXPECT().InsertOne(models.CollectionEvents, mock.Anything)
		eventCall.Run(func(_ string, data interface{}) {
			event := data.(models.BridgeEvent)
			assert.Equal(t, models.EventChainSupportedUpdated, event.Type)
			assert.Equal(t, models.ChainTypePolygon, event.ChainType)
		})
		eventCall.Return(nil)

		err := x.SetSupportedChain(testOwner, models.ChainTypePolygon, relayIdPolygon, false)

		assert.NoError(t, err)
	})
}

func TestSetMinimumBridgeFee(t *testing.T) {
	t.Run("Not Owner", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		err := x.SetMinimumBridgeFee(testUser, big.NewInt(5000))

		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("Success", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		upsertCall := mockDB.EXPECT().UpsertOne(models.CollectionBridgeState, bson.M{"state_id": models.BridgeStateId}, mock.Anything)
		upsertCall.Run(func(_ string, _ interface{}, update interface{}) {
			set := update.(bson.M)["$set"].(bson.M)
			assert.Equal(t, "5000", set["minimum_fee_wei"])
		})
		upsertCall.Return(nil)

		err := x.SetMinimumBridgeFee(testOwner, big.NewInt(5000))

		assert.NoError(t, err)
	})

	t.Run("Defaults Nil Fee To Zero", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		upsertCall := mockDB.EXPECT().UpsertOne(models.CollectionBridgeState, bson.M{"state_id": models.BridgeStateId}, mock.Anything)
		upsertCall.Run(func(_ string, _ interface{}, update interface{}) {
			set := update.(bson.M)["$set"].(bson.M)
			assert.Equal(t, "0", set["minimum_fee_wei"])
		})
		upsertCall.Return(nil)

		err := x.SetMinimumBridgeFee(testOwner, nil)

		assert.NoError(t, err)
	})
}

func TestPauseUnpause(t *testing.T) {
	t.Run("Not Owner", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		assert.ErrorIs(t, x.Pause(testUser), ErrNotOwner)
		assert.ErrorIs(t, x.Unpause(testUser), ErrNotOwner)
	})

	t.Run("Pause", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		upsertCall := mockDB.EXPECT().UpsertOne(models.CollectionBridgeState, bson.M{"state_id": models.BridgeStateId}, mock.Anything)
		upsertCall.Run(func(_ string, _ interface{}, update interface{}) {
			set := update.(bson.M)["$set"].(bson.M)
			assert.Equal(t, true, set["paused"])
		})
		upsertCall.Return(nil)

		assert.NoError(t, x.Pause(testOwner))
	})

	t.Run("Unpause", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		upsertCall := mockDB.EXPECT().UpsertOne(models.CollectionBridgeState, bson.M{"state_id": models.BridgeStateId}, mock.Anything)
		upsertCall.Run(func(_ string, _ interface{}, update interface{}) {
			set := update.(bson.M)["$set"].(bson.M)
			assert.Equal(t, false, set["paused"])
		})
		upsertCall.Return(nil)

		assert.NoError(t, x.Unpause(testOwner))
	})
}

func TestEmergencyWithdraw(t *testing.T) {
	t.Run("Not Owner", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		_, err := x.EmergencyWithdraw(testUser, testContract, testUser, testTokenId)

		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("Release Failure", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, mockCustodian, _ := NewTestEngine(t)

		mockCustodian.EXPECT().ReleaseCustody(testContract, testUser, testTokenId).Return("", assert.AnError)

		_, err := x.EmergencyWithdraw(testOwner, testContract, testUser, testTokenId)

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Success", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, mockRegistry, mockCustodian, _ := NewTestEngine(t)

		mockCustodian.EXPECT().ReleaseCustody(testContract, testUser, testTokenId).Return("0xreleasetx", nil)
		mockRegistry.EXPECT().UnlockAsset(testOwner, mock.Anything, testUser, testContract, testTokenId, true, models.AssetTypeNft, "", models.ChainTypeEthereum).Return(nil)

		txHash, err := x.EmergencyWithdraw(testOwner, testContract, testUser, testTokenId)

		assert.NoError(t, err)
		assert.Equal(t, "0xreleasetx", txHash)
	})
}

func TestRelayAdminPassthroughs(t *testing.T) {
	config := []byte{0x01, 0x02}
	srcAddress := testRemote.Bytes()

	t.Run("Not Owner", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		assert.ErrorIs(t, x.SetRelayConfig(testUser, 2, relayIdPolygon, 6, config), ErrNotOwner)
		assert.ErrorIs(t, x.SetSendVersion(testUser, 2), ErrNotOwner)
		assert.ErrorIs(t, x.SetReceiveVersion(testUser, 2), ErrNotOwner)
		assert.ErrorIs(t, x.ForceResumeReceive(testUser, relayIdPolygon, srcAddress), ErrNotOwner)
		assert.ErrorIs(t, x.SetMinDstGas(testUser, relayIdPolygon, 1, 200000), ErrNotOwner)
		assert.ErrorIs(t, x.SetPayloadSizeLimit(testUser, relayIdPolygon, 10000), ErrNotOwner)
	})

	t.Run("Forwards To Relay", func(t *testing.T) {
		app.Config.Bridge.OwnerAddress = testOwner.Hex()

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, mockRelay := NewTestEngine(t)

		mockRelay.EXPECT().SetConfig(uint16(2), relayIdPolygon, uint32(6), config).Return(nil)
		mockRelay.EXPECT().SetSendVersion(uint16(2)).Return(nil)
		mockRelay.EXPECT().SetReceiveVersion(uint16(2)).Return(nil)
		mockRelay.EXPECT().ForceResumeReceive(relayIdPolygon, hexutil.Encode(srcAddress)).Return(nil)
		mockRelay.EXPECT().SetMinDstGas(relayIdPolygon, uint16(1), uint64(200000)).Return(nil)
		mockRelay.EXPECT().SetPayloadSizeLimit(relayIdPolygon, uint64(10000)).Return(nil)

		assert.NoError(t, x.SetRelayConfig(testOwner, 2, relayIdPolygon, 6, config))
		assert.NoError(t, x.SetSendVersion(testOwner, 2))
		assert.NoError(t, x.SetReceiveVersion(testOwner, 2))
		assert.NoError(t, x.ForceResumeReceive(testOwner, relayIdPolygon, srcAddress))
		assert.NoError(t, x.SetMinDstGas(testOwner, relayIdPolygon, 1, 200000))
		assert.NoError(t, x.SetPayloadSizeLimit(testOwner, relayIdPolygon, 10000))
	})
}
