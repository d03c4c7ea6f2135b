package api

import (
	"math/big"
	"net/http"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/app/mocks"
	"github.com/chaingallery/nft-bridge-node/models"
	"github.com/chaingallery/nft-bridge-node/registry"
)

func TestGetHealth(t *testing.T) {
	t.Run("Returns Recent Health Documents", func(t *testing.T) {
		x, _, _, _, _ := NewTestServer(t)
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().FindMany(models.CollectionHealthChecks, mock.Anything, mock.Anything).Run(
			func(collection string, filter interface{}, result interface{}) {
				cutoff := filter.(bson.M)["updated_at"].(bson.M)["$gte"].(time.Time)
				assert.WithinDuration(t, time.Now().Add(-3*time.Minute), cutoff, 5*time.Second)

				healths := result.(*[]models.Health)
				*healths = append(*healths, models.Health{InstanceId: "nft-bridge-1-test"})
			},
		).Return(nil)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/health", "", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var healths []models.Health
		decodeResponse(t, recorder, &healths)
		assert.Len(t, healths, 1)
		assert.Equal(t, "nft-bridge-1-test", healths[0].InstanceId)
	})

	t.Run("Database Error", func(t *testing.T) {
		x, _, _, _, _ := NewTestServer(t)
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().FindMany(models.CollectionHealthChecks, mock.Anything, mock.Anything).Return(assert.AnError)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/health", "", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestGetState(t *testing.T) {
	t.Run("Reports State", func(t *testing.T) {
		x, mockEngine, mockRegistry, mockConfigs, _ := NewTestServer(t)

		mockEngine.EXPECT().Paused().Return(false, nil)
		mockEngine.EXPECT().SupportedChains().Return([]models.SupportedChain{
			{ChainType: models.ChainTypePolygon, RelayChainId: relayIdPolygon, IsSupported: true},
		}, nil)
		mockRegistry.EXPECT().GetPendingMessageCount(models.ChainTypePolygon).Return(int64(4), nil)
		mockConfigs.EXPECT().LatestChainHeight(models.ChainTypeEthereum).Return(int64(123456))

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/state", "", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var state StateResponse
		decodeResponse(t, recorder, &state)
		assert.Equal(t, "ok", state.Status)
		assert.False(t, state.Paused)
		assert.Equal(t, models.ChainTypeEthereum, state.ChainType)
		assert.Equal(t, int64(123456), state.ChainHeight)
		assert.Len(t, state.SupportedChains, 1)
		assert.Equal(t, relayIdPolygon, state.SupportedChains[0].RelayChainId)
		assert.Equal(t, int64(4), state.SupportedChains[0].PendingMessages)
	})

	t.Run("Reports Paused", func(t *testing.T) {
		x, mockEngine, _, mockConfigs, _ := NewTestServer(t)

		mockEngine.EXPECT().Paused().Return(true, nil)
		mockEngine.EXPECT().SupportedChains().Return([]models.SupportedChain{}, nil)
		mockConfigs.EXPECT().LatestChainHeight(models.ChainTypeEthereum).Return(int64(0))

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/state", "", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var state StateResponse
		decodeResponse(t, recorder, &state)
		assert.Equal(t, "paused", state.Status)
		assert.True(t, state.Paused)
	})

	t.Run("Skips Chains That Fail To Count", func(t *testing.T) {
		x, mockEngine, mockRegistry, mockConfigs, _ := NewTestServer(t)

		mockEngine.EXPECT().Paused().Return(false, nil)
		mockEngine.EXPECT().SupportedChains().Return([]models.SupportedChain{
			{ChainType: models.ChainTypePolygon, RelayChainId: relayIdPolygon, IsSupported: true},
			{ChainType: models.ChainTypeBase, RelayChainId: uint16(184), IsSupported: true},
		}, nil)
		mockRegistry.EXPECT().GetPendingMessageCount(models.ChainTypePolygon).Return(int64(0), assert.AnError)
		mockRegistry.EXPECT().GetPendingMessageCount(models.ChainTypeBase).Return(int64(2), nil)
		mockConfigs.EXPECT().LatestChainHeight(models.ChainTypeEthereum).Return(int64(0))

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/state", "", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var state StateResponse
		decodeResponse(t, recorder, &state)
		assert.Len(t, state.SupportedChains, 1)
		assert.Equal(t, models.ChainTypeBase, state.SupportedChains[0].ChainType)
	})

	t.Run("Bridge State Error", func(t *testing.T) {
		x, mockEngine, _, _, _ := NewTestServer(t)

		mockEngine.EXPECT().Paused().Return(false, assert.AnError)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/state", "", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestGetAsset(t *testing.T) {
	t.Run("Returns Asset", func(t *testing.T) {
		x, _, mockRegistry, _, _ := NewTestServer(t)

		mockRegistry.EXPECT().GetCrossChainAsset("CG-1-1234").Return(models.CrossChainAsset{AssetId: "CG-1-1234"}, nil)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/assets/CG-1-1234", "", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var asset models.CrossChainAsset
		decodeResponse(t, recorder, &asset)
		assert.Equal(t, "CG-1-1234", asset.AssetId)
	})

	t.Run("Not Found", func(t *testing.T) {
		x, _, mockRegistry, _, _ := NewTestServer(t)

		mockRegistry.EXPECT().GetCrossChainAsset("CG-9-999").Return(models.CrossChainAsset{}, registry.ErrAssetNotExists)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/assets/CG-9-999", "", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestGetAssetByContract(t *testing.T) {
	t.Run("Invalid Contract", func(t *testing.T) {
		x, _, _, _, _ := NewTestServer(t)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/assets?contract=nope&token_id=1", "", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Invalid Token Id", func(t *testing.T) {
		x, _, _, _, _ := NewTestServer(t)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/assets?contract="+testContract.Hex()+"&token_id=abc", "", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Returns Asset", func(t *testing.T) {
		x, _, mockRegistry, _, _ := NewTestServer(t)

		mockRegistry.EXPECT().GetAssetIdByContract(testContract, testTokenId).Return("CG-1-1234", nil)
		mockRegistry.EXPECT().GetCrossChainAsset("CG-1-1234").Return(models.CrossChainAsset{AssetId: "CG-1-1234"}, nil)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/assets?contract="+testContract.Hex()+"&token_id=1234", "", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var asset models.CrossChainAsset
		decodeResponse(t, recorder, &asset)
		assert.Equal(t, "CG-1-1234", asset.AssetId)
	})

	t.Run("Unregistered Contract", func(t *testing.T) {
		x, _, mockRegistry, _, _ := NewTestServer(t)

		mockRegistry.EXPECT().GetAssetIdByContract(testContract, testTokenId).Return("", registry.ErrAssetNotExists)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/assets?contract="+testContract.Hex()+"&token_id=1234", "", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestGetBridgeRequest(t *testing.T) {
	t.Run("Returns Request", func(t *testing.T) {
		x, _, mockRegistry, _, _ := NewTestServer(t)

		mockRegistry.EXPECT().GetBridgeRequest("0xabc123").Return(models.BridgeRequest{RequestId: "0xabc123"}, nil)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/requests/0xabc123", "", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var request models.BridgeRequest
		decodeResponse(t, recorder, &request)
		assert.Equal(t, "0xabc123", request.RequestId)
	})

	t.Run("Not Found", func(t *testing.T) {
		x, _, mockRegistry, _, _ := NewTestServer(t)

		mockRegistry.EXPECT().GetBridgeRequest("0xmissing").Return(models.BridgeRequest{}, registry.ErrRequestNotExists)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/requests/0xmissing", "", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestGetUserBridgeRequests(t *testing.T) {
	t.Run("Invalid Address", func(t *testing.T) {
		x, _, _, _, _ := NewTestServer(t)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/users/nobody/requests", "", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Returns Requests", func(t *testing.T) {
		x, _, mockRegistry, _, _ := NewTestServer(t)

		mockRegistry.EXPECT().GetUserBridgeRequests(testUser).Return([]models.BridgeRequest{
			{RequestId: "0xabc123", Owner: testUser.Hex()},
		}, nil)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/users/"+testUser.Hex()+"/requests", "", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var requests []models.BridgeRequest
		decodeResponse(t, recorder, &requests)
		assert.Len(t, requests, 1)
	})
}

func TestGetChainConfig(t *testing.T) {
	t.Run("Invalid Chain Type", func(t *testing.T) {
		x, _, _, _, _ := NewTestServer(t)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/chains/notanumber/config", "", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Not Configured", func(t *testing.T) {
		x, _, _, mockConfigs, _ := NewTestServer(t)

		mockConfigs.EXPECT().GetChainConfig(uint32(77)).Return(models.ChainConfig{}, nil)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/chains/77/config", "", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Store Error", func(t *testing.T) {
		x, _, _, mockConfigs, _ := NewTestServer(t)

		mockConfigs.EXPECT().GetChainConfig(uint32(77)).Return(models.ChainConfig{}, assert.AnError)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/chains/77/config", "", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})

	t.Run("Returns Config", func(t *testing.T) {
		x, _, _, mockConfigs, _ := NewTestServer(t)

		mockConfigs.EXPECT().GetChainConfig(models.ChainTypePolygon).Return(models.ChainConfig{
			ChainType: models.ChainTypePolygon,
			IsActive:  true,
		}, nil)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/chains/2/config", "", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var config models.ChainConfig
		decodeResponse(t, recorder, &config)
		assert.Equal(t, models.ChainTypePolygon, config.ChainType)
		assert.True(t, config.IsActive)
	})
}

func TestGetChainMessages(t *testing.T) {
	x, _, mockRegistry, _, _ := NewTestServer(t)

	mockRegistry.EXPECT().GetChainMessageQueue(models.ChainTypePolygon).Return([]models.QueuedMessage{
		{MessageHash: "0xmessage", TargetChain: models.ChainTypePolygon},
	}, nil)

	recorder := serveRequest(x, newRequest(t, http.MethodGet, "/chains/2/messages", "", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	var messages []models.QueuedMessage
	decodeResponse(t, recorder, &messages)
	assert.Len(t, messages, 1)
	assert.Equal(t, "0xmessage", messages[0].MessageHash)
}

func TestGetPendingCount(t *testing.T) {
	x, _, mockRegistry, _, _ := NewTestServer(t)

	mockRegistry.EXPECT().GetPendingMessageCount(models.ChainTypePolygon).Return(int64(7), nil)

	recorder := serveRequest(x, newRequest(t, http.MethodGet, "/chains/2/pending", "", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	var pending PendingCountResponse
	decodeResponse(t, recorder, &pending)
	assert.Equal(t, models.ChainTypePolygon, pending.ChainType)
	assert.Equal(t, int64(7), pending.Pending)
}

func TestGetTransaction(t *testing.T) {
	newTestTransaction := func() *types.Transaction {
		return types.NewTx(&types.LegacyTx{
			Nonce:    1,
			To:       &testContract,
			Value:    big.NewInt(0),
			Gas:      21000,
			GasPrice: big.NewInt(1),
		})
	}

	t.Run("Not Found", func(t *testing.T) {
		x, _, _, _, mockEth := NewTestServer(t)

		mockEth.EXPECT().GetTransactionByHash("0xdead").Return(nil, false, assert.AnError)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/transactions/0xdead", "", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Pending", func(t *testing.T) {
		x, _, _, _, mockEth := NewTestServer(t)
		tx := newTestTransaction()
		txHash := tx.Hash().Hex()

		mockEth.EXPECT().GetTransactionByHash(txHash).Return(tx, true, nil)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/transactions/"+txHash, "", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response TransactionResponse
		decodeResponse(t, recorder, &response)
		assert.Equal(t, txHash, response.Hash)
		assert.Equal(t, "pending", response.Status)
		assert.Empty(t, response.BlockNumber)
	})

	t.Run("Confirmed Success", func(t *testing.T) {
		x, _, _, _, mockEth := NewTestServer(t)
		tx := newTestTransaction()
		txHash := tx.Hash().Hex()

		mockEth.EXPECT().GetTransactionByHash(txHash).Return(tx, false, nil)
		mockEth.EXPECT().GetTransactionReceipt(txHash).Return(&types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			BlockNumber: big.NewInt(98765),
			GasUsed:     21000,
		}, nil)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/transactions/"+txHash, "", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response TransactionResponse
		decodeResponse(t, recorder, &response)
		assert.Equal(t, "success", response.Status)
		assert.Equal(t, "98765", response.BlockNumber)
		assert.Equal(t, uint64(21000), response.GasUsed)
	})

	t.Run("Confirmed Failed", func(t *testing.T) {
		x, _, _, _, mockEth := NewTestServer(t)
		tx := newTestTransaction()
		txHash := tx.Hash().Hex()

		mockEth.EXPECT().GetTransactionByHash(txHash).Return(tx, false, nil)
		mockEth.EXPECT().GetTransactionReceipt(txHash).Return(&types.Receipt{
			Status:      types.ReceiptStatusFailed,
			BlockNumber: big.NewInt(98765),
			GasUsed:     21000,
		}, nil)

		recorder := serveRequest(x, newRequest(t, http.MethodGet, "/transactions/"+txHash, "", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response TransactionResponse
		decodeResponse(t, recorder, &response)
		assert.Equal(t, "failed", response.Status)
	})
}
