package api

import (
	"math/big"
	"net/http"
	"strconv"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/models"
)

type ChainStateResponse struct {
	ChainType       uint32 `json:"chain_type"`
	RelayChainId    uint16 `json:"relay_chain_id"`
	PendingMessages int64  `json:"pending_messages"`
}

type StateResponse struct {
	Status          string                 `json:"status"`
	ChainType       uint32                 `json:"chain_type"`
	ChainHeight     int64                  `json:"chain_height"`
	Paused          bool                   `json:"paused"`
	SupportedChains []ChainStateResponse   `json:"supported_chains"`
	ServiceHealths  []models.ServiceHealth `json:"service_healths"`
}

type TransactionResponse struct {
	Hash        string `json:"hash"`
	Status      string `json:"status"`
	BlockNumber string `json:"block_number,omitempty"`
	GasUsed     uint64 `json:"gas_used,omitempty"`
}

type PendingCountResponse struct {
	ChainType uint32 `json:"chain_type"`
	Pending   int64  `json:"pending"`
}

// getHealth returns health documents posted recently, covering every replica
// writing to the same database.
func (x *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	interval := time.Duration(app.Config.HealthCheck.IntervalMillis) * time.Millisecond
	cutoff := time.Now().Add(-3 * interval)

	var healths []models.Health
	filter := bson.M{"updated_at": bson.M{"$gte": cutoff}}
	if err := app.DB.FindMany(models.CollectionHealthChecks, filter, &healths); err != nil {
		responseError(w, http.StatusInternalServerError, "error reading health checks")
		return
	}
	responseJSON(w, healths, http.StatusOK)
}

func (x *Server) getState(w http.ResponseWriter, r *http.Request) {
	paused, err := x.engine.Paused()
	if err != nil {
		responseError(w, http.StatusInternalServerError, "error reading bridge state")
		return
	}
	chains, err := x.engine.SupportedChains()
	if err != nil {
		responseError(w, http.StatusInternalServerError, "error reading supported chains")
		return
	}

	chainStates := make([]ChainStateResponse, 0, len(chains))
	for _, chain := range chains {
		pending, err := x.registry.GetPendingMessageCount(chain.ChainType)
		if err != nil {
			log.Error("[API] Error counting pending messages for chain ", chain.ChainType, ": ", err)
			continue
		}
		chainStates = append(chainStates, ChainStateResponse{
			ChainType:       chain.ChainType,
			RelayChainId:    chain.RelayChainId,
			PendingMessages: pending,
		})
	}

	status := "ok"
	if paused {
		status = "paused"
	}

	responseJSON(w, StateResponse{
		Status:          status,
		ChainType:       app.Config.Bridge.ChainType,
		ChainHeight:     x.configs.LatestChainHeight(app.Config.Bridge.ChainType),
		Paused:          paused,
		SupportedChains: chainStates,
		ServiceHealths:  x.health.ServiceHealths(),
	}, http.StatusOK)
}

func (x *Server) getAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := x.registry.GetCrossChainAsset(chi.URLParam(r, "assetId"))
	if err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, asset, http.StatusOK)
}

func (x *Server) getAssetByContract(w http.ResponseWriter, r *http.Request) {
	contract := r.URL.Query().Get("contract")
	if !ethcommon.IsHexAddress(contract) {
		responseError(w, http.StatusBadRequest, "invalid contract address")
		return
	}
	tokenId, ok := new(big.Int).SetString(r.URL.Query().Get("token_id"), 10)
	if !ok {
		responseError(w, http.StatusBadRequest, "invalid token id")
		return
	}

	assetId, err := x.registry.GetAssetIdByContract(ethcommon.HexToAddress(contract), tokenId)
	if err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	asset, err := x.registry.GetCrossChainAsset(assetId)
	if err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, asset, http.StatusOK)
}

func (x *Server) getBridgeRequest(w http.ResponseWriter, r *http.Request) {
	request, err := x.registry.GetBridgeRequest(chi.URLParam(r, "requestId"))
	if err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, request, http.StatusOK)
}

func (x *Server) getUserBridgeRequests(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	if !ethcommon.IsHexAddress(address) {
		responseError(w, http.StatusBadRequest, "invalid user address")
		return
	}
	requests, err := x.registry.GetUserBridgeRequests(ethcommon.HexToAddress(address))
	if err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, requests, http.StatusOK)
}

func (x *Server) getChainConfig(w http.ResponseWriter, r *http.Request) {
	chainType, ok := parseChainType(r)
	if !ok {
		responseError(w, http.StatusBadRequest, "invalid chain type")
		return
	}
	config, err := x.configs.GetChainConfig(chainType)
	if err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	// the store yields the zero record for chains never configured
	if config.ChainType == 0 {
		responseError(w, http.StatusNotFound, "chain is not configured")
		return
	}
	responseJSON(w, config, http.StatusOK)
}

func (x *Server) getChainMessages(w http.ResponseWriter, r *http.Request) {
	chainType, ok := parseChainType(r)
	if !ok {
		responseError(w, http.StatusBadRequest, "invalid chain type")
		return
	}
	messages, err := x.registry.GetChainMessageQueue(chainType)
	if err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, messages, http.StatusOK)
}

func (x *Server) getPendingCount(w http.ResponseWriter, r *http.Request) {
	chainType, ok := parseChainType(r)
	if !ok {
		responseError(w, http.StatusBadRequest, "invalid chain type")
		return
	}
	pending, err := x.registry.GetPendingMessageCount(chainType)
	if err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, PendingCountResponse{ChainType: chainType, Pending: pending}, http.StatusOK)
}

func (x *Server) getTransaction(w http.ResponseWriter, r *http.Request) {
	txHash := chi.URLParam(r, "txHash")
	tx, pending, err := x.eth.GetTransactionByHash(txHash)
	if err != nil {
		responseError(w, http.StatusNotFound, "transaction not found")
		return
	}

	response := TransactionResponse{Hash: tx.Hash().Hex(), Status: "pending"}
	if !pending {
		receipt, err := x.eth.GetTransactionReceipt(txHash)
		if err != nil {
			responseError(w, http.StatusInternalServerError, "error reading transaction receipt")
			return
		}
		if receipt.Status == types.ReceiptStatusSuccessful {
			response.Status = "success"
		} else {
			response.Status = "failed"
		}
		response.BlockNumber = receipt.BlockNumber.String()
		response.GasUsed = receipt.GasUsed
	}
	responseJSON(w, response, http.StatusOK)
}

func parseChainType(r *http.Request) (uint32, bool) {
	value, err := strconv.ParseUint(chi.URLParam(r, "chainType"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(value), true
}
