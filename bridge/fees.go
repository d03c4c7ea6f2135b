package bridge

import (
	"errors"
	"fmt"
	"math/big"

	"go.mongodb.org/mongo-driver/mongo"
)

// EstimateBridgeFee quotes the native fee for delivering payload to
// targetChain. The quote is the relay network's fee for a payload of that
// size plus the bridge's configured minimum, so callers can pass the result
// straight back in as the paid fee.
func (x *engine) EstimateBridgeFee(targetChain uint32, payload []byte) (*big.Int, error) {
	relayId, err := x.relayChainId(targetChain)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidDestinationChain
		}
		return nil, err
	}
	nativeFee, err := x.relay.EstimateFee(relayId, payload, adapterParams())
	if err != nil {
		return nil, err
	}
	minimumFee, err := x.minimumFee()
	if err != nil {
		return nil, err
	}
	return new(big.Int).Add(nativeFee, minimumFee), nil
}

func (x *engine) minimumFee() (*big.Int, error) {
	state, err := x.bridgeState()
	if err != nil {
		return nil, err
	}
	if state.MinimumFeeWei == "" {
		return big.NewInt(0), nil
	}
	fee, ok := new(big.Int).SetString(state.MinimumFeeWei, 10)
	if !ok {
		return nil, fmt.Errorf("invalid minimum bridge fee: %q", state.MinimumFeeWei)
	}
	return fee, nil
}
