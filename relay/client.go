package relay

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ybbus/jsonrpc"

	log "github.com/sirupsen/logrus"

	"github.com/chaingallery/nft-bridge-node/app"
)

// RelayClient speaks JSON-RPC to the relay endpoint service. The relay owns
// cross chain delivery and fee quoting; this node hands payloads over and
// forwards endpoint configuration, nothing more.
type RelayClient interface {
	ValidateNetwork()
	EstimateFee(dstRelayId uint16, payload []byte, adapterParams []byte) (*big.Int, error)
	Send(dstRelayId uint16, dstAddress string, payload []byte, refundAddress string, adapterParams []byte) (string, error)
	SetConfig(version uint16, relayChainId uint16, configType uint32, config []byte) error
	SetSendVersion(version uint16) error
	SetReceiveVersion(version uint16) error
	ForceResumeReceive(srcRelayId uint16, srcAddress string) error
	SetMinDstGas(dstRelayId uint16, packetType uint16, minGas uint64) error
	SetPayloadSizeLimit(dstRelayId uint16, size uint64) error
}

type relayClient struct {
	rpc jsonrpc.RPCClient
}

type feeQuote struct {
	NativeFee string `json:"nativeFee"`
	ZroFee    string `json:"zroFee"`
}

type estimateFeeRequest struct {
	DstChainId    uint16 `json:"dstChainId"`
	Payload       string `json:"payload"`
	AdapterParams string `json:"adapterParams"`
}

type sendRequest struct {
	DstChainId    uint16 `json:"dstChainId"`
	DstAddress    string `json:"dstAddress"`
	Payload       string `json:"payload"`
	RefundAddress string `json:"refundAddress"`
	AdapterParams string `json:"adapterParams"`
}

type setConfigRequest struct {
	Version    uint16 `json:"version"`
	ChainId    uint16 `json:"chainId"`
	ConfigType uint32 `json:"configType"`
	Config     string `json:"config"`
}

type versionRequest struct {
	Version uint16 `json:"version"`
}

type resumeReceiveRequest struct {
	SrcChainId uint16 `json:"srcChainId"`
	SrcAddress string `json:"srcAddress"`
}

type minDstGasRequest struct {
	DstChainId uint16 `json:"dstChainId"`
	PacketType uint16 `json:"packetType"`
	MinGas     uint64 `json:"minGas"`
}

type payloadSizeLimitRequest struct {
	DstChainId uint16 `json:"dstChainId"`
	Size       uint64 `json:"size"`
}

func (x *relayClient) call(method string, params interface{}) (*jsonrpc.RPCResponse, error) {
	resp, err := x.rpc.Call(method, params)
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("%s failed: %d %s", method, resp.Error.Code, resp.Error.Message)
	}
	return resp, nil
}

func (x *relayClient) ValidateNetwork() {
	log.Debugln("[RELAY]", "Validating network")
	log.Debugln("[RELAY]", "uri", app.Config.Relay.RPCURL)

	resp, err := x.rpc.Call("relay_endpoint")
	if err != nil {
		log.Fatalln("[RELAY]", "Failed to reach relay endpoint:", err)
	}
	if resp.Error != nil {
		log.Fatalln("[RELAY]", "Relay endpoint error:", resp.Error.Message)
	}
	endpoint, err := resp.GetString()
	if err != nil {
		log.Fatalln("[RELAY]", "Malformed relay endpoint response:", err)
	}

	if !strings.EqualFold(endpoint, app.Config.Relay.EndpointAddress) {
		log.Fatalln("[RELAY]", "Endpoint Mismatch", "expected", app.Config.Relay.EndpointAddress, "got", endpoint)
	}

	log.Infoln("[RELAY]", "Validated network")
}

// EstimateFee asks the relay for the native fee of delivering payload to the
// destination relay chain.
func (x *relayClient) EstimateFee(dstRelayId uint16, payload []byte, adapterParams []byte) (*big.Int, error) {
	resp, err := x.call("relay_estimateFee", estimateFeeRequest{
		DstChainId:    dstRelayId,
		Payload:       hexutil.Encode(payload),
		AdapterParams: hexutil.Encode(adapterParams),
	})
	if err != nil {
		return nil, err
	}

	var quote feeQuote
	if err := resp.GetObject(&quote); err != nil {
		return nil, err
	}
	nativeFee, ok := new(big.Int).SetString(quote.NativeFee, 10)
	if !ok {
		return nil, fmt.Errorf("invalid native fee in relay quote: %q", quote.NativeFee)
	}
	return nativeFee, nil
}

// Send hands a payload to the relay for delivery and returns the relay's
// delivery hash.
func (x *relayClient) Send(dstRelayId uint16, dstAddress string, payload []byte, refundAddress string, adapterParams []byte) (string, error) {
	resp, err := x.call("relay_send", sendRequest{
		DstChainId:    dstRelayId,
		DstAddress:    dstAddress,
		Payload:       hexutil.Encode(payload),
		RefundAddress: refundAddress,
		AdapterParams: hexutil.Encode(adapterParams),
	})
	if err != nil {
		return "", err
	}

	deliveryHash, err := resp.GetString()
	if err != nil {
		return "", err
	}
	log.Info("[RELAY] Sent payload to relay chain ", dstRelayId, ": ", deliveryHash)
	return deliveryHash, nil
}

func (x *relayClient) SetConfig(version uint16, relayChainId uint16, configType uint32, config []byte) error {
	_, err := x.call("relay_setConfig", setConfigRequest{
		Version:    version,
		ChainId:    relayChainId,
		ConfigType: configType,
		Config:     hexutil.Encode(config),
	})
	return err
}

func (x *relayClient) SetSendVersion(version uint16) error {
	_, err := x.call("relay_setSendVersion", versionRequest{Version: version})
	return err
}

func (x *relayClient) SetReceiveVersion(version uint16) error {
	_, err := x.call("relay_setReceiveVersion", versionRequest{Version: version})
	return err
}

func (x *relayClient) ForceResumeReceive(srcRelayId uint16, srcAddress string) error {
	_, err := x.call("relay_forceResumeReceive", resumeReceiveRequest{
		SrcChainId: srcRelayId,
		SrcAddress: srcAddress,
	})
	return err
}

func (x *relayClient) SetMinDstGas(dstRelayId uint16, packetType uint16, minGas uint64) error {
	_, err := x.call("relay_setMinDstGas", minDstGasRequest{
		DstChainId: dstRelayId,
		PacketType: packetType,
		MinGas:     minGas,
	})
	return err
}

func (x *relayClient) SetPayloadSizeLimit(dstRelayId uint16, size uint64) error {
	_, err := x.call("relay_setPayloadSizeLimit", payloadSizeLimitRequest{
		DstChainId: dstRelayId,
		Size:       size,
	})
	return err
}

func NewClient() RelayClient {
	httpClient := &http.Client{
		Timeout: time.Duration(app.Config.Relay.RPCTimeoutMillis) * time.Millisecond,
	}
	headers := map[string]string{}
	if app.Config.Relay.WebhookToken != "" {
		headers["Authorization"] = "Bearer " + app.Config.Relay.WebhookToken
	}
	rpc := jsonrpc.NewClientWithOpts(app.Config.Relay.RPCURL, &jsonrpc.RPCClientOpts{
		HTTPClient:    httpClient,
		CustomHeaders: headers,
	})
	return &relayClient{
		rpc: rpc,
	}
}
