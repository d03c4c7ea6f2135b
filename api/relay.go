package api

import (
	"fmt"
	"net/http"
	"strconv"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/chaingallery/nft-bridge-node/app"
)

// RelayMessageRequest is the wire form of an inbound relay message. The
// endpoint field is only set on deliveries and names the endpoint contract
// the message claims to originate from.
type RelayMessageRequest struct {
	Endpoint   string `json:"endpoint,omitempty"`
	SrcRelayId uint16 `json:"src_relay_id"`
	SrcAddress string `json:"src_address"`
	Nonce      uint64 `json:"nonce"`
	Payload    string `json:"payload"`
}

func parseRelayMessage(req RelayMessageRequest) ([]byte, []byte, error) {
	srcAddress, err := hexutil.Decode(req.SrcAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid src_address: %w", err)
	}
	payload, err := hexutil.Decode(req.Payload)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid payload: %w", err)
	}
	return srcAddress, payload, nil
}

// postRelayReceive accepts a relay delivery. Handler failures inside the
// engine are parked for retry and still acknowledged with 200, so the relay
// channel keeps moving.
func (x *Server) postRelayReceive(w http.ResponseWriter, r *http.Request) {
	var req RelayMessageRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !ethcommon.IsHexAddress(req.Endpoint) {
		responseError(w, http.StatusBadRequest, "invalid endpoint address")
		return
	}
	srcAddress, payload, err := parseRelayMessage(req)
	if err != nil {
		responseError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = x.engine.LzReceive(ethcommon.HexToAddress(req.Endpoint), req.SrcRelayId, srcAddress, req.Nonce, payload)
	if err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

// postRelayRetry re-presents a parked payload on behalf of the owner.
func (x *Server) postRelayRetry(w http.ResponseWriter, r *http.Request) {
	var req RelayMessageRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	srcAddress, payload, err := parseRelayMessage(req)
	if err != nil {
		responseError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = x.engine.RetryMessage(ownerAddress(), req.SrcRelayId, srcAddress, req.Nonce, payload)
	if err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (x *Server) getFailedMessage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	srcRelayId, err := strconv.ParseUint(query.Get("src_relay_id"), 10, 16)
	if err != nil {
		responseError(w, http.StatusBadRequest, "invalid src_relay_id")
		return
	}
	srcAddress, err := hexutil.Decode(query.Get("src_address"))
	if err != nil {
		responseError(w, http.StatusBadRequest, "invalid src_address")
		return
	}
	nonce, err := strconv.ParseUint(query.Get("nonce"), 10, 64)
	if err != nil {
		responseError(w, http.StatusBadRequest, "invalid nonce")
		return
	}

	message, err := x.engine.GetFailedMessage(uint16(srcRelayId), srcAddress, nonce)
	if err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, message, http.StatusOK)
}

func ownerAddress() ethcommon.Address {
	return ethcommon.HexToAddress(app.Config.Bridge.OwnerAddress)
}
