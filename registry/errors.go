package registry

import "errors"

var (
	ErrNotOwner             = errors.New("caller is not the registry owner")
	ErrNotAuthorized        = errors.New("caller is not in the authorization set")
	ErrAssetAlreadyExists   = errors.New("cross chain asset already exists")
	ErrAssetNotExists       = errors.New("cross chain asset does not exist")
	ErrUnauthorizedTransfer = errors.New("owner does not custody the asset")
	ErrRequestAlreadyExists = errors.New("bridge request already exists")
	ErrRequestNotExists     = errors.New("bridge request does not exist")
	ErrInactiveChain        = errors.New("chain config is missing or inactive")
)
