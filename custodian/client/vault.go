package client

import (
	"strings"

	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// VaultABI covers the four vault entrypoints this node drives. The vault
// holds bridged NFTs on the home chain; custody moves through it and never
// directly between users, and the vault is the minter of record for tokens
// arriving from a remote chain that never existed here.
const VaultABI = `[{"inputs":[{"internalType":"address","name":"collection","type":"address"},{"internalType":"uint256","name":"tokenId","type":"uint256"}],"name":"custodianOf","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},{"inputs":[{"internalType":"address","name":"collection","type":"address"},{"internalType":"address","name":"to","type":"address"},{"internalType":"uint256","name":"tokenId","type":"uint256"},{"internalType":"string","name":"metadataURI","type":"string"}],"name":"mintAsset","outputs":[],"stateMutability":"nonpayable","type":"function"},{"inputs":[{"internalType":"address","name":"collection","type":"address"},{"internalType":"address","name":"from","type":"address"},{"internalType":"uint256","name":"tokenId","type":"uint256"}],"name":"pullAsset","outputs":[],"stateMutability":"nonpayable","type":"function"},{"inputs":[{"internalType":"address","name":"collection","type":"address"},{"internalType":"address","name":"to","type":"address"},{"internalType":"uint256","name":"tokenId","type":"uint256"}],"name":"releaseAsset","outputs":[],"stateMutability":"nonpayable","type":"function"}]`

type VaultContract interface {
	CustodianOf(opts *bind.CallOpts, collection ethcommon.Address, tokenId *big.Int) (ethcommon.Address, error)
	MintAsset(opts *bind.TransactOpts, collection ethcommon.Address, to ethcommon.Address, tokenId *big.Int, metadataURI string) (*types.Transaction, error)
	PullAsset(opts *bind.TransactOpts, collection ethcommon.Address, from ethcommon.Address, tokenId *big.Int) (*types.Transaction, error)
	ReleaseAsset(opts *bind.TransactOpts, collection ethcommon.Address, to ethcommon.Address, tokenId *big.Int) (*types.Transaction, error)
}

type vaultContract struct {
	contract *bind.BoundContract
}

func (x *vaultContract) CustodianOf(opts *bind.CallOpts, collection ethcommon.Address, tokenId *big.Int) (ethcommon.Address, error) {
	var out []interface{}
	err := x.contract.Call(opts, &out, "custodianOf", collection, tokenId)
	if err != nil {
		return ethcommon.Address{}, err
	}
	return *abi.ConvertType(out[0], new(ethcommon.Address)).(*ethcommon.Address), nil
}

func (x *vaultContract) MintAsset(opts *bind.TransactOpts, collection ethcommon.Address, to ethcommon.Address, tokenId *big.Int, metadataURI string) (*types.Transaction, error) {
	return x.contract.Transact(opts, "mintAsset", collection, to, tokenId, metadataURI)
}

func (x *vaultContract) PullAsset(opts *bind.TransactOpts, collection ethcommon.Address, from ethcommon.Address, tokenId *big.Int) (*types.Transaction, error) {
	return x.contract.Transact(opts, "pullAsset", collection, from, tokenId)
}

func (x *vaultContract) ReleaseAsset(opts *bind.TransactOpts, collection ethcommon.Address, to ethcommon.Address, tokenId *big.Int) (*types.Transaction, error) {
	return x.contract.Transact(opts, "releaseAsset", collection, to, tokenId)
}

func NewVaultContract(address ethcommon.Address, backend bind.ContractBackend) (VaultContract, error) {
	parsed, err := abi.JSON(strings.NewReader(VaultABI))
	if err != nil {
		return nil, err
	}
	contract := bind.NewBoundContract(address, parsed, backend, backend, backend)
	return &vaultContract{contract: contract}, nil
}
