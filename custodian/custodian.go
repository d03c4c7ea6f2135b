package custodian

import (
	"context"
	"fmt"
	"time"

	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	log "github.com/sirupsen/logrus"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/common"
	"github.com/chaingallery/nft-bridge-node/custodian/client"
)

// Custodian moves NFTs in and out of the home chain vault. Custody always
// passes through the vault, never directly between users; the operator key
// signs every vault transaction.
type Custodian interface {
	CustodianOf(contractAddr ethcommon.Address, tokenId *big.Int) (ethcommon.Address, error)
	TransferCustody(contractAddr ethcommon.Address, from ethcommon.Address, tokenId *big.Int) (string, error)
	ReleaseCustody(contractAddr ethcommon.Address, to ethcommon.Address, tokenId *big.Int) (string, error)
	Mint(contractAddr ethcommon.Address, to ethcommon.Address, tokenId *big.Int, metadataURI string) (string, error)
	VaultAddress() ethcommon.Address
	OperatorAddress() ethcommon.Address
}

type evmCustodian struct {
	vault        client.VaultContract
	signer       common.Signer
	chainId      *big.Int
	vaultAddress ethcommon.Address
}

func (x *evmCustodian) signerOpts() *bind.TransactOpts {
	from := x.signer.EthAddress()
	return &bind.TransactOpts{
		From: from,
		Signer: func(address ethcommon.Address, tx *types.Transaction) (*types.Transaction, error) {
			if address != from {
				return nil, bind.ErrNotAuthorized
			}
			ethSigner := types.LatestSignerForChainID(x.chainId)
			signature, err := x.signer.EthSign(ethSigner.Hash(tx).Bytes())
			if err != nil {
				return nil, err
			}
			// EthSign yields 27/28 recovery ids, the tx signer wants 0/1
			if signature[64] >= 27 {
				signature[64] -= 27
			}
			return tx.WithSignature(ethSigner, signature)
		},
	}
}

func (x *evmCustodian) CustodianOf(contractAddr ethcommon.Address, tokenId *big.Int) (ethcommon.Address, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(app.Config.Ethereum.RPCTimeoutMillis)*time.Millisecond)
	defer cancel()

	return x.vault.CustodianOf(&bind.CallOpts{Context: ctx}, contractAddr, tokenId)
}

// TransferCustody pulls a token from its owner into the vault and returns the
// transaction hash.
func (x *evmCustodian) TransferCustody(contractAddr ethcommon.Address, from ethcommon.Address, tokenId *big.Int) (string, error) {
	tx, err := x.vault.PullAsset(x.signerOpts(), contractAddr, from, tokenId)
	if err != nil {
		return "", err
	}

	log.Info("[CUSTODIAN] Pulled asset into vault: ", tx.Hash().Hex())
	return tx.Hash().Hex(), nil
}

// ReleaseCustody hands a token from the vault to the recipient and returns
// the transaction hash.
func (x *evmCustodian) ReleaseCustody(contractAddr ethcommon.Address, to ethcommon.Address, tokenId *big.Int) (string, error) {
	tx, err := x.vault.ReleaseAsset(x.signerOpts(), contractAddr, to, tokenId)
	if err != nil {
		return "", err
	}

	log.Info("[CUSTODIAN] Released asset from vault: ", tx.Hash().Hex())
	return tx.Hash().Hex(), nil
}

// Mint creates a token that arrived from a remote chain and never existed on
// this one. The vault is the minter of record.
func (x *evmCustodian) Mint(contractAddr ethcommon.Address, to ethcommon.Address, tokenId *big.Int, metadataURI string) (string, error) {
	tx, err := x.vault.MintAsset(x.signerOpts(), contractAddr, to, tokenId, metadataURI)
	if err != nil {
		return "", err
	}

	log.Info("[CUSTODIAN] Minted bridged asset: ", tx.Hash().Hex())
	return tx.Hash().Hex(), nil
}

func (x *evmCustodian) VaultAddress() ethcommon.Address {
	return x.vaultAddress
}

func (x *evmCustodian) OperatorAddress() ethcommon.Address {
	return x.signer.EthAddress()
}

func NewCustodian(ethClient client.EthereumClient, signer common.Signer) (Custodian, error) {
	chainId, ok := new(big.Int).SetString(app.Config.Ethereum.ChainID, 10)
	if !ok {
		return nil, fmt.Errorf("invalid ethereum chain id: %q", app.Config.Ethereum.ChainID)
	}

	vaultAddress := ethcommon.HexToAddress(app.Config.Ethereum.VaultAddress)
	vault, err := client.NewVaultContract(vaultAddress, ethClient.GetClient())
	if err != nil {
		return nil, err
	}

	return &evmCustodian{
		vault:        vault,
		signer:       signer,
		chainId:      chainId,
		vaultAddress: vaultAddress,
	}, nil
}
