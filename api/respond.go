package api

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chaingallery/nft-bridge-node/bridge"
	"github.com/chaingallery/nft-bridge-node/registry"
)

type StatusResponse struct {
	Status  string `json:"status"`
	TxHash  string `json:"tx_hash,omitempty"`
	AssetId string `json:"asset_id,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func responseJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("[API] Error encoding response: ", err)
	}
}

func responseError(w http.ResponseWriter, code int, message string) {
	responseJSON(w, ErrorResponse{Error: message}, code)
}

func decodeRequest(w http.ResponseWriter, r *http.Request, into interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		responseError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// statusForError maps engine and registry sentinels onto HTTP status codes.
// Unknown errors are treated as internal.
func statusForError(err error) int {
	switch {
	case errors.Is(err, bridge.ErrNotOwner),
		errors.Is(err, bridge.ErrOnlyEndpoint),
		errors.Is(err, bridge.ErrUntrustedRemote),
		errors.Is(err, registry.ErrNotOwner),
		errors.Is(err, registry.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, bridge.ErrMessageAlreadyProcessed),
		errors.Is(err, registry.ErrAssetAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, bridge.ErrNoStoredMessage),
		errors.Is(err, registry.ErrAssetNotExists),
		errors.Is(err, registry.ErrRequestNotExists),
		errors.Is(err, mongo.ErrNoDocuments):
		return http.StatusNotFound
	case errors.Is(err, bridge.ErrInvalidPayload),
		errors.Is(err, bridge.ErrInvalidChainType),
		errors.Is(err, bridge.ErrInvalidDestinationChain),
		errors.Is(err, bridge.ErrInsufficientFee),
		errors.Is(err, registry.ErrInactiveChain):
		return http.StatusBadRequest
	case errors.Is(err, bridge.ErrBridgePaused):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
