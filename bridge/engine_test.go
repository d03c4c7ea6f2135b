package bridge

import (
	"io"
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/app/mocks"
	custodianmocks "github.com/chaingallery/nft-bridge-node/custodian/mocks"
	"github.com/chaingallery/nft-bridge-node/models"
	registrymocks "github.com/chaingallery/nft-bridge-node/registry/mocks"
	relaymocks "github.com/chaingallery/nft-bridge-node/relay/mocks"
)

func init() {
	log.SetOutput(io.Discard)
}

var (
	testOwner    = ethcommon.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	testOperator = ethcommon.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	testVault    = ethcommon.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	testUser     = ethcommon.HexToAddress("0x9965507D1a55bcC2695C58ba16FB37d819B0A4dc")
	testContract = ethcommon.HexToAddress("0x15d34AAf54267DB7D7c367839AAf71A00a2C6A65")
	testRemote   = ethcommon.HexToAddress("0x976EA74026E726554dB657fA54763abd0C3a0aa9")
	testEndpoint = ethcommon.HexToAddress("0x66A71Dcef29A0fFBDBE3c6a460a3B5BC225Cd675")
	testTokenId  = big.NewInt(1234)

	relayIdPolygon = uint16(109)
)

func NewTestEngine(t *testing.T) (*engine, *registrymocks.MockRegistry, *custodianmocks.MockCustodian, *relaymocks.MockRelayClient) {
	mockRegistry := registrymocks.NewMockRegistry(t)
	mockCustodian := custodianmocks.NewMockCustodian(t)
	mockRelay := relaymocks.NewMockRelayClient(t)

	x := &engine{
		registry:  mockRegistry,
		custodian: mockCustodian,
		relay:     mockRelay,
		chainType: models.ChainTypeEthereum,
	}
	return x, mockRegistry, mockCustodian, mockRelay
}

func expectRelayLookup(mockDB *mocks.MockDatabase, chainType uint32, relayId uint16) {
	call := mockDB.EXPECT().FindOne(models.CollectionSupportedChains, bson.M{"chain_type": chainType, "is_supported": true}, mock.Anything)
	call.Run(func(_ string, _ interface{}, result interface{}) {
		doc := result.(*models.SupportedChain)
		doc.ChainType = chainType
		doc.RelayChainId = relayId
		doc.IsSupported = true
	})
	call.Return(nil)
}

func expectTrustedRemote(mockDB *mocks.MockDatabase, relayId uint16, address string) {
	call := mockDB.EXPECT().FindOne(models.CollectionTrustedRemotes, bson.M{"relay_chain_id": relayId}, mock.Anything)
	call.Run(func(_ string, _ interface{}, result interface{}) {
		doc := result.(*models.TrustedRemote)
		doc.RelayChainId = relayId
		doc.Address = address
	})
	call.Return(nil)
}

func expectBridgeState(mockDB *mocks.MockDatabase, paused bool, minimumFeeWei string) {
	call := mockDB.EXPECT().FindOne(models.CollectionBridgeState, bson.M{"state_id": models.BridgeStateId}, mock.Anything)
	call.Run(func(_ string, _ interface{}, result interface{}) {
		doc := result.(*models.BridgeState)
		doc.StateId = models.BridgeStateId
		doc.Paused = paused
		doc.MinimumFeeWei = minimumFeeWei
	})
	call.Return(nil)
}

func TestNewEngine(t *testing.T) {
	t.Run("Seeds State And Chain Maps", func(t *testing.T) {
		app.Config.Bridge.ChainType = models.ChainTypeEthereum
		app.Config.Bridge.MinimumFeeWei = "1000"
		app.Config.Bridge.SupportedChains = []models.SupportedChainConfig{
			{ChainType: models.ChainTypePolygon, RelayChainID: relayIdPolygon},
		}
		app.Config.Bridge.TrustedRemotes = []models.TrustedRemoteConfig{
			{RelayChainID: relayIdPolygon, Address: testRemote.Hex()},
		}

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		mockRegistry := registrymocks.NewMockRegistry(t)
		mockCustodian := custodianmocks.NewMockCustodian(t)
		mockRelay := relaymocks.NewMockRelayClient(t)

		mockDB.EXPECT().UpsertOne(models.CollectionBridgeState, bson.M{"state_id": models.BridgeStateId}, mock.Anything).Return(nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionSupportedChains, bson.M{"chain_type": models.ChainTypePolygon}, mock.Anything).Return(nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionTrustedRemotes, bson.M{"relay_chain_id": relayIdPolygon}, mock.Anything).Return(nil).Once()

		x := NewEngine(mockRegistry, mockCustodian, mockRelay)

		assert.NotNil(t, x)
	})

	t.Run("Tolerates Seeding Errors", func(t *testing.T) {
		app.Config.Bridge.ChainType = models.ChainTypeEthereum
		app.Config.Bridge.SupportedChains = []models.SupportedChainConfig{
			{ChainType: models.ChainTypePolygon, RelayChainID: relayIdPolygon},
		}
		app.Config.Bridge.TrustedRemotes = nil

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		mockRegistry := registrymocks.NewMockRegistry(t)
		mockCustodian := custodianmocks.NewMockCustodian(t)
		mockRelay := relaymocks.NewMockRelayClient(t)

		mockDB.EXPECT().UpsertOne(models.CollectionBridgeState, bson.M{"state_id": models.BridgeStateId}, mock.Anything).Return(assert.AnError).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionSupportedChains, bson.M{"chain_type": models.ChainTypePolygon}, mock.Anything).Return(assert.AnError).Once()

		x := NewEngine(mockRegistry, mockCustodian, mockRelay)

		assert.NotNil(t, x)
	})
}

func TestPaused(t *testing.T) {
	t.Run("Reads Stored State", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		expectBridgeState(mockDB, true, "1000")

		paused, err := x.Paused()

		assert.NoError(t, err)
		assert.True(t, paused)
	})

	t.Run("Defaults When Unset", func(t *testing.T) {
		app.Config.Bridge.MinimumFeeWei = "5000"

		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		mockDB.EXPECT().FindOne(models.CollectionBridgeState, bson.M{"state_id": models.BridgeStateId}, mock.Anything).Return(mongo.ErrNoDocuments)

		paused, err := x.Paused()

		assert.NoError(t, err)
		assert.False(t, paused)
	})

	t.Run("With Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		mockDB.EXPECT().FindOne(models.CollectionBridgeState, bson.M{"state_id": models.BridgeStateId}, mock.Anything).Return(assert.AnError)

		_, err := x.Paused()

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestSupportedChains(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		call := mockDB.EXPECT().FindMany(models.CollectionSupportedChains, bson.M{"is_supported": true}, mock.Anything)
		call.Run(func(_ string, _ interface{}, result interface{}) {
			out := result.(*[]models.SupportedChain)
			*out = append(*out, models.SupportedChain{ChainType: models.ChainTypePolygon, RelayChainId: relayIdPolygon, IsSupported: true})
		})
		call.Return(nil)

		chains, err := x.SupportedChains()

		assert.NoError(t, err)
		assert.Len(t, chains, 1)
		assert.Equal(t, models.ChainTypePolygon, chains[0].ChainType)
	})

	t.Run("With Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		x, _, _, _ := NewTestEngine(t)

		mockDB.EXPECT().FindMany(models.CollectionSupportedChains, bson.M{"is_supported": true}, mock.Anything).Return(assert.AnError)

		_, err := x.SupportedChains()

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestAdapterParams(t *testing.T) {
	t.Run("Unset", func(t *testing.T) {
		app.Config.Relay.AdapterParams = ""

		assert.Nil(t, adapterParams())
	})

	t.Run("Valid Hex", func(t *testing.T) {
		app.Config.Relay.AdapterParams = "0x00010000000000000000000000000000000000000000000000000000000000030d40"

		params := adapterParams()

		assert.NotNil(t, params)
		assert.Equal(t, byte(0x00), params[0])
		assert.Equal(t, byte(0x01), params[1])
	})

	t.Run("Invalid Hex", func(t *testing.T) {
		app.Config.Relay.AdapterParams = "not-hex"

		assert.Nil(t, adapterParams())
	})
}
