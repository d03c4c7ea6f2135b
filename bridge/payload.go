package bridge

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// BridgePayload is the structured record relayed between chain contexts. It
// must round trip losslessly through Encode and Decode; the relay only ever
// sees the packed bytes.
type BridgePayload struct {
	MessageType    uint8
	RequestId      [32]byte
	Owner          ethcommon.Address
	OriginContract ethcommon.Address
	TargetContract ethcommon.Address
	TokenId        *big.Int
	Timestamp      uint64
	AssetType      uint8
	IsNft          bool
	AssetId        string
}

func mustType(signature string) abi.Type {
	parsed, err := abi.NewType(signature, "", nil)
	if err != nil {
		panic(err)
	}
	return parsed
}

var payloadArguments = abi.Arguments{
	{Name: "messageType", Type: mustType("uint8")},
	{Name: "requestId", Type: mustType("bytes32")},
	{Name: "owner", Type: mustType("address")},
	{Name: "originContract", Type: mustType("address")},
	{Name: "targetContract", Type: mustType("address")},
	{Name: "tokenId", Type: mustType("uint256")},
	{Name: "timestamp", Type: mustType("uint64")},
	{Name: "assetType", Type: mustType("uint8")},
	{Name: "isNft", Type: mustType("bool")},
	{Name: "assetId", Type: mustType("string")},
}

func EncodeBridgePayload(payload BridgePayload) ([]byte, error) {
	tokenId := payload.TokenId
	if tokenId == nil {
		tokenId = big.NewInt(0)
	}
	return payloadArguments.Pack(
		payload.MessageType,
		payload.RequestId,
		payload.Owner,
		payload.OriginContract,
		payload.TargetContract,
		tokenId,
		payload.Timestamp,
		payload.AssetType,
		payload.IsNft,
		payload.AssetId,
	)
}

// DecodeBridgePayload unpacks relayed bytes back into a BridgePayload.
// Malformed bytes fail deterministically, they never yield a partial record.
func DecodeBridgePayload(data []byte) (BridgePayload, error) {
	values, err := payloadArguments.Unpack(data)
	if err != nil {
		return BridgePayload{}, fmt.Errorf("invalid bridge payload: %w", err)
	}

	return BridgePayload{
		MessageType:    values[0].(uint8),
		RequestId:      values[1].([32]byte),
		Owner:          values[2].(ethcommon.Address),
		OriginContract: values[3].(ethcommon.Address),
		TargetContract: values[4].(ethcommon.Address),
		TokenId:        values[5].(*big.Int),
		Timestamp:      values[6].(uint64),
		AssetType:      values[7].(uint8),
		IsNft:          values[8].(bool),
		AssetId:        values[9].(string),
	}, nil
}
