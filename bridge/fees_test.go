package bridge

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/app/mocks"
	"github.com/chaingallery/nft-bridge-node/models"
)

func TestEstimateBridgeFee(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}

	t.Run("Adds Minimum To Native Fee", func(t *testing.T) {
		app.Config.Relay.AdapterParams = ""

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, mockRelay := NewTestEngine(t)

		expectRelayLookup(mockDB, models.ChainTypePolygon, relayIdPolygon)
		expectBridgeState(mockDB, false, "1000")
		mockRelay.EXPECT().EstimateFee(relayIdPolygon, payload, []byte(nil)).Return(big.NewInt(200000), nil)

		fee, err := x.EstimateBridgeFee(models.ChainTypePolygon, payload)

		assert.NoError(t, err)
		assert.Equal(t, big.NewInt(201000), fee)
	})

	t.Run("No Configured Minimum", func(t *testing.T) {
		app.Config.Relay.AdapterParams = ""

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, mockRelay := NewTestEngine(t)

		expectRelayLookup(mockDB, models.ChainTypePolygon, relayIdPolygon)
		expectBridgeState(mockDB, false, "")
		mockRelay.EXPECT().EstimateFee(relayIdPolygon, payload, []byte(nil)).Return(big.NewInt(200000), nil)

		fee, err := x.EstimateBridgeFee(models.ChainTypePolygon, payload)

		assert.NoError(t, err)
		assert.Equal(t, big.NewInt(200000), fee)
	})

	t.Run("Scales With Native Fee", func(t *testing.T) {
		app.Config.Relay.AdapterParams = ""

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, mockRelay := NewTestEngine(t)

		expectRelayLookup(mockDB, models.ChainTypePolygon, relayIdPolygon)
		expectBridgeState(mockDB, false, "1000")
		mockRelay.EXPECT().EstimateFee(relayIdPolygon, payload, []byte(nil)).Return(big.NewInt(100000), nil).Once()
		mockRelay.EXPECT().EstimateFee(relayIdPolygon, payload, []byte(nil)).Return(big.NewInt(300000), nil).Once()

		first, err := x.EstimateBridgeFee(models.ChainTypePolygon, payload)
		assert.NoError(t, err)
		second, err := x.EstimateBridgeFee(models.ChainTypePolygon, payload)
		assert.NoError(t, err)

		assert.Positive(t, second.Cmp(first))
	})

	t.Run("Unmapped Destination", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		mockDB.EXPECT().FindOne(models.CollectionSupportedChains, bson.M{"chain_type": uint32(77), "is_supported": true}, mock.Anything).Return(mongo.ErrNoDocuments)

		_, err := x.EstimateBridgeFee(77, payload)

		assert.ErrorIs(t, err, ErrInvalidDestinationChain)
	})

	t.Run("Relay Error", func(t *testing.T) {
		app.Config.Relay.AdapterParams = ""

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, mockRelay := NewTestEngine(t)

		expectRelayLookup(mockDB, models.ChainTypePolygon, relayIdPolygon)
		mockRelay.EXPECT().EstimateFee(relayIdPolygon, payload, []byte(nil)).Return(nil, assert.AnError)

		_, err := x.EstimateBridgeFee(models.ChainTypePolygon, payload)

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Invalid Stored Minimum", func(t *testing.T) {
		app.Config.Relay.AdapterParams = ""

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, mockRelay := NewTestEngine(t)

		expectRelayLookup(mockDB, models.ChainTypePolygon, relayIdPolygon)
		expectBridgeState(mockDB, false, "not-a-number")
		mockRelay.EXPECT().EstimateFee(relayIdPolygon, payload, []byte(nil)).Return(big.NewInt(200000), nil)

		_, err := x.EstimateBridgeFee(models.ChainTypePolygon, payload)

		assert.ErrorContains(t, err, "invalid minimum bridge fee")
	})
}
