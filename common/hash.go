package common

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// AssetId derives the deterministic cross-chain asset identifier for a
// (origin chain, target chain, contract, token) tuple. Identical inputs
// always yield the identical id.
func AssetId(originChain uint32, targetChain uint32, originContract common.Address, tokenId *big.Int) common.Hash {
	var chains [8]byte
	binary.BigEndian.PutUint32(chains[0:4], originChain)
	binary.BigEndian.PutUint32(chains[4:8], targetChain)

	token := make([]byte, 32)
	if tokenId != nil {
		tokenId.FillBytes(token)
	}

	return crypto.Keccak256Hash(chains[:], originContract.Bytes(), token)
}

// NftAssetRef encodes the asset reference of an NFT for request id derivation.
func NftAssetRef(contract common.Address, tokenId *big.Int) []byte {
	token := make([]byte, 32)
	if tokenId != nil {
		tokenId.FillBytes(token)
	}
	return append(contract.Bytes(), token...)
}

// RequestId derives the bridge request identifier from the requesting owner,
// the asset reference, the target chain and the request timestamp.
func RequestId(owner common.Address, assetRef []byte, targetChain uint32, timestamp uint64) common.Hash {
	var suffix [12]byte
	binary.BigEndian.PutUint32(suffix[0:4], targetChain)
	binary.BigEndian.PutUint64(suffix[4:12], timestamp)

	return crypto.Keccak256Hash(owner.Bytes(), assetRef, suffix[:])
}

// QueueMessageHash derives the unique handle of a queued cross-chain message.
func QueueMessageHash(sender common.Address, payload []byte, timestamp uint64, nonce uint64) common.Hash {
	var suffix [16]byte
	binary.BigEndian.PutUint64(suffix[0:8], timestamp)
	binary.BigEndian.PutUint64(suffix[8:16], nonce)

	return crypto.Keccak256Hash(sender.Bytes(), payload, suffix[:])
}

// PayloadHash derives the hash of an inbound relay payload. It is stable
// across redeliveries of the same message and is the key of both the
// processed set and the stored failure entries.
func PayloadHash(payload []byte) common.Hash {
	return crypto.Keccak256Hash(payload)
}
