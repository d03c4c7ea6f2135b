package main

import (
	"fmt"
	"log"
	"os"

	"github.com/chaingallery/nft-bridge-node/common"

	"github.com/ethereum/go-ethereum/crypto"
)

// Checks that a GCP KMS key is usable as the node's operator signer: prints
// the derived address, signs sample data and verifies the recovery.
func main() {
	keyName := os.Getenv("GCP_KMS_KEY_NAME")

	fmt.Println("Google KMS Key Name: ", keyName)
	if keyName == "" {
		log.Fatalf("GCP KMS Key Name not set")
	}

	signer, err := common.NewGcpKmsSigner(keyName)
	if err != nil {
		log.Fatalf("failed to create GCP KMS signer: %v", err)
	}
	defer signer.Destroy()

	fmt.Println("Operator Eth Address: ", signer.EthAddress())

	txData := []byte("example transaction data")

	signature, err := signer.EthSign(txData)
	if err != nil {
		log.Fatalf("failed to sign sample data: %v", err)
	}
	fmt.Printf("Signature: %x\n", signature)

	digest := crypto.Keccak256(txData)
	recovery := make([]byte, len(signature))
	copy(recovery, signature)
	if recovery[64] >= 27 {
		recovery[64] -= 27
	}

	publicKey, err := crypto.SigToPub(digest, recovery)
	if err != nil {
		log.Fatalf("failed to recover public key: %v", err)
	}
	recovered := crypto.PubkeyToAddress(*publicKey)
	fmt.Println("Recovered Address: ", recovered)

	if recovered != signer.EthAddress() {
		log.Fatalf("recovered address does not match signer address")
	}
	fmt.Println("Signature verified")
}
