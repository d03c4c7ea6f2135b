package app

import (
	"fmt"

	"github.com/chaingallery/nft-bridge-node/common"
)

// CreateOperatorSigner builds the signer for the configured operator key
// material, preferring an explicit private key over a mnemonic over a
// GCP KMS key.
func CreateOperatorSigner() (common.Signer, error) {
	config := Config.Ethereum
	if config.PrivateKey != "" {
		return common.NewPrivateKeySigner(config.PrivateKey)
	}
	if config.Mnemonic != "" {
		return common.NewMnemonicSigner(config.Mnemonic)
	}
	if config.GcpKmsKeyName != "" {
		return common.NewGcpKmsSigner(config.GcpKmsKeyName)
	}

	return nil, fmt.Errorf("no ethereum key material configured")
}
