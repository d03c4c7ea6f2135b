package bridge

import "errors"

var (
	ErrNotOwner                = errors.New("caller is not the bridge owner")
	ErrBridgePaused            = errors.New("bridge is paused")
	ErrInvalidChainType        = errors.New("target chain type is not supported")
	ErrInvalidDestinationChain = errors.New("destination chain is not mapped to a relay chain")
	ErrInsufficientFee         = errors.New("paid fee is below the estimated bridge fee")
	ErrOnlyEndpoint            = errors.New("caller is not the relay endpoint")
	ErrUntrustedRemote         = errors.New("source address is not the trusted remote")
	ErrMessageAlreadyProcessed = errors.New("message has already been processed")
	ErrNoStoredMessage         = errors.New("no stored failed message to retry")
	ErrInvalidPayload          = errors.New("payload does not match the stored failed message")
)
