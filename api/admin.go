package api

import (
	"math/big"
	"net/http"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type TrustedRemoteRequest struct {
	RelayChainId uint16 `json:"relay_chain_id"`
	Address      string `json:"address"`
}

type SupportedChainRequest struct {
	ChainType    uint32 `json:"chain_type"`
	RelayChainId uint16 `json:"relay_chain_id"`
	Supported    bool   `json:"supported"`
}

type MinimumFeeRequest struct {
	MinimumFeeWei string `json:"minimum_fee_wei"`
}

type EmergencyWithdrawRequest struct {
	NftContract string `json:"nft_contract"`
	To          string `json:"to"`
	TokenId     string `json:"token_id"`
}

type ChainConfigRequest struct {
	ChainType          uint32 `json:"chain_type"`
	BridgeContract     string `json:"bridge_contract"`
	GovernanceContract string `json:"governance_contract"`
	ConfirmationBlocks uint32 `json:"confirmation_blocks"`
	FeeBasisPoints     uint16 `json:"fee_basis_points"`
	Active             bool   `json:"active"`
}

type AuthorizeCallerRequest struct {
	Contract   string `json:"contract"`
	Authorized bool   `json:"authorized"`
}

type RegisterAssetRequest struct {
	OriginContract  string `json:"origin_contract"`
	TokenId         string `json:"token_id"`
	OriginChain     uint32 `json:"origin_chain"`
	TargetChain     uint32 `json:"target_chain"`
	TargetContract  string `json:"target_contract"`
	InitialPriceWei string `json:"initial_price_wei"`
}

type AssetSyncRequest struct {
	AssetId     string `json:"asset_id"`
	NewPriceWei string `json:"new_price_wei"`
	ChainType   uint32 `json:"chain_type"`
}

type RelayConfigRequest struct {
	Version      uint16 `json:"version"`
	RelayChainId uint16 `json:"relay_chain_id"`
	ConfigType   uint32 `json:"config_type"`
	Config       string `json:"config"`
}

type VersionRequest struct {
	Version uint16 `json:"version"`
}

type ForceResumeRequest struct {
	SrcRelayId uint16 `json:"src_relay_id"`
	SrcAddress string `json:"src_address"`
}

type MinDstGasRequest struct {
	DstRelayId uint16 `json:"dst_relay_id"`
	PacketType uint16 `json:"packet_type"`
	MinGas     uint64 `json:"min_gas"`
}

type PayloadSizeLimitRequest struct {
	DstRelayId uint16 `json:"dst_relay_id"`
	Size       uint64 `json:"size"`
}

func (x *Server) postPause(w http.ResponseWriter, r *http.Request) {
	if err := x.engine.Pause(ownerAddress()); err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (x *Server) postUnpause(w http.ResponseWriter, r *http.Request) {
	if err := x.engine.Unpause(ownerAddress()); err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (x *Server) postTrustedRemote(w http.ResponseWriter, r *http.Request) {
	var req TrustedRemoteRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	remote, err := hexutil.Decode(req.Address)
	if err != nil {
		responseError(w, http.StatusBadRequest, "invalid remote address")
		return
	}
	if err := x.engine.SetTrustedRemote(ownerAddress(), req.RelayChainId, remote); err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (x *Server) postSupportedChain(w http.ResponseWriter, r *http.Request) {
	var req SupportedChainRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if err := x.engine.SetSupportedChain(ownerAddress(), req.ChainType, req.RelayChainId, req.Supported); err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (x *Server) postMinimumFee(w http.ResponseWriter, r *http.Request) {
	var req MinimumFeeRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	fee, ok := new(big.Int).SetString(req.MinimumFeeWei, 10)
	if !ok {
		responseError(w, http.StatusBadRequest, "invalid minimum fee")
		return
	}
	if err := x.engine.SetMinimumBridgeFee(ownerAddress(), fee); err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (x *Server) postEmergencyWithdraw(w http.ResponseWriter, r *http.Request) {
	var req EmergencyWithdrawRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !ethcommon.IsHexAddress(req.NftContract) || !ethcommon.IsHexAddress(req.To) {
		responseError(w, http.StatusBadRequest, "invalid contract or recipient address")
		return
	}
	tokenId, ok := new(big.Int).SetString(req.TokenId, 10)
	if !ok {
		responseError(w, http.StatusBadRequest, "invalid token id")
		return
	}

	txHash, err := x.engine.EmergencyWithdraw(
		ownerAddress(),
		ethcommon.HexToAddress(req.NftContract),
		ethcommon.HexToAddress(req.To),
		tokenId,
	)
	if err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok", TxHash: txHash}, http.StatusOK)
}

func (x *Server) postChainConfig(w http.ResponseWriter, r *http.Request) {
	var req ChainConfigRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !ethcommon.IsHexAddress(req.BridgeContract) || !ethcommon.IsHexAddress(req.GovernanceContract) {
		responseError(w, http.StatusBadRequest, "invalid bridge or governance contract address")
		return
	}
	err := x.configs.SetChainConfig(
		ownerAddress(),
		req.ChainType,
		ethcommon.HexToAddress(req.BridgeContract),
		ethcommon.HexToAddress(req.GovernanceContract),
		req.ConfirmationBlocks,
		req.FeeBasisPoints,
		req.Active,
	)
	if err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (x *Server) postAuthorizeCaller(w http.ResponseWriter, r *http.Request) {
	var req AuthorizeCallerRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !ethcommon.IsHexAddress(req.Contract) {
		responseError(w, http.StatusBadRequest, "invalid contract address")
		return
	}
	if err := x.registry.AuthorizeContract(ownerAddress(), ethcommon.HexToAddress(req.Contract), req.Authorized); err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (x *Server) postRegisterAsset(w http.ResponseWriter, r *http.Request) {
	var req RegisterAssetRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !ethcommon.IsHexAddress(req.OriginContract) || !ethcommon.IsHexAddress(req.TargetContract) {
		responseError(w, http.StatusBadRequest, "invalid origin or target contract address")
		return
	}
	tokenId, ok := new(big.Int).SetString(req.TokenId, 10)
	if !ok {
		responseError(w, http.StatusBadRequest, "invalid token id")
		return
	}
	price, ok := new(big.Int).SetString(req.InitialPriceWei, 10)
	if !ok {
		responseError(w, http.StatusBadRequest, "invalid initial price")
		return
	}

	assetId, err := x.registry.RegisterCrossChainAsset(
		ownerAddress(),
		ethcommon.HexToAddress(req.OriginContract),
		tokenId,
		req.OriginChain,
		req.TargetChain,
		ethcommon.HexToAddress(req.TargetContract),
		price,
	)
	if err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok", AssetId: assetId}, http.StatusOK)
}

func (x *Server) postAssetSync(w http.ResponseWriter, r *http.Request) {
	var req AssetSyncRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	price, ok := new(big.Int).SetString(req.NewPriceWei, 10)
	if !ok {
		responseError(w, http.StatusBadRequest, "invalid price")
		return
	}
	if err := x.registry.UpdateAssetSync(ownerAddress(), req.AssetId, price, req.ChainType); err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (x *Server) postRelayConfig(w http.ResponseWriter, r *http.Request) {
	var req RelayConfigRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	config, err := hexutil.Decode(req.Config)
	if err != nil {
		responseError(w, http.StatusBadRequest, "invalid config bytes")
		return
	}
	if err := x.engine.SetRelayConfig(ownerAddress(), req.Version, req.RelayChainId, req.ConfigType, config); err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (x *Server) postSendVersion(w http.ResponseWriter, r *http.Request) {
	var req VersionRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if err := x.engine.SetSendVersion(ownerAddress(), req.Version); err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (x *Server) postReceiveVersion(w http.ResponseWriter, r *http.Request) {
	var req VersionRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if err := x.engine.SetReceiveVersion(ownerAddress(), req.Version); err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (x *Server) postForceResume(w http.ResponseWriter, r *http.Request) {
	var req ForceResumeRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	srcAddress, err := hexutil.Decode(req.SrcAddress)
	if err != nil {
		responseError(w, http.StatusBadRequest, "invalid src_address")
		return
	}
	if err := x.engine.ForceResumeReceive(ownerAddress(), req.SrcRelayId, srcAddress); err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (x *Server) postMinDstGas(w http.ResponseWriter, r *http.Request) {
	var req MinDstGasRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if err := x.engine.SetMinDstGas(ownerAddress(), req.DstRelayId, req.PacketType, req.MinGas); err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (x *Server) postPayloadSizeLimit(w http.ResponseWriter, r *http.Request) {
	var req PayloadSizeLimitRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if err := x.engine.SetPayloadSizeLimit(ownerAddress(), req.DstRelayId, req.Size); err != nil {
		responseError(w, statusForError(err), err.Error())
		return
	}
	responseJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}
