package app

import (
	"math/big"
	"os"

	ethcommon "github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"

	"github.com/chaingallery/nft-bridge-node/models"
	"gopkg.in/yaml.v2"
)

var (
	Config models.Config
)

func InitConfig(configFile string, envFile string) {
	log.Debug("[CONFIG] Initializing config")
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readSecretsFromGSM()
	validateConfig()
	log.Info("[CONFIG] Config initialized")
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}
	log.Debug("[CONFIG] Reading config file: ", configFile)
	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s", configFile, err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s", configFile, err.Error())
	}
	return true
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")
	if Config.MongoDB.URI == "" {
		log.Fatal("[CONFIG] MongoDB.URI is required")
	}
	if Config.MongoDB.Database == "" {
		log.Fatal("[CONFIG] MongoDB.Database is required")
	}
	if Config.MongoDB.TimeoutMillis == 0 {
		log.Fatal("[CONFIG] MongoDB.TimeoutMillis is required")
	}
	if Config.Ethereum.RPCURL == "" {
		log.Fatal("[CONFIG] Ethereum.RPCURL is required")
	}
	if Config.Ethereum.ChainID == "" {
		log.Fatal("[CONFIG] Ethereum.ChainID is required")
	}
	if Config.Ethereum.PrivateKey == "" && Config.Ethereum.Mnemonic == "" && Config.Ethereum.GcpKmsKeyName == "" {
		log.Fatal("[CONFIG] One of Ethereum.PrivateKey, Ethereum.Mnemonic or Ethereum.GcpKmsKeyName is required")
	}
	if !ethcommon.IsHexAddress(Config.Ethereum.VaultAddress) {
		log.Fatal("[CONFIG] Ethereum.VaultAddress is required and must be a valid address")
	}
	if Config.Relay.RPCURL == "" {
		log.Fatal("[CONFIG] Relay.RPCURL is required")
	}
	if !ethcommon.IsHexAddress(Config.Relay.EndpointAddress) {
		log.Fatal("[CONFIG] Relay.EndpointAddress is required and must be a valid address")
	}
	if !ethcommon.IsHexAddress(Config.Bridge.OwnerAddress) {
		log.Fatal("[CONFIG] Bridge.OwnerAddress is required and must be a valid address")
	}
	if Config.Bridge.ChainType == 0 {
		log.Fatal("[CONFIG] Bridge.ChainType is required")
	}
	if _, ok := new(big.Int).SetString(Config.Bridge.MinimumFeeWei, 10); !ok {
		log.Fatal("[CONFIG] Bridge.MinimumFeeWei is required and must be a decimal integer")
	}
	for _, caller := range Config.Bridge.AuthorizedCallers {
		if !ethcommon.IsHexAddress(caller) {
			log.Fatal("[CONFIG] Bridge.AuthorizedCallers contains an invalid address: ", caller)
		}
	}
	for _, remote := range Config.Bridge.TrustedRemotes {
		if remote.RelayChainID == 0 || remote.Address == "" {
			log.Fatal("[CONFIG] Bridge.TrustedRemotes entries require a relay chain id and an address")
		}
	}
	for _, chain := range Config.Bridge.SupportedChains {
		if chain.ChainType == 0 || chain.RelayChainID == 0 {
			log.Fatal("[CONFIG] Bridge.SupportedChains entries require a chain type and a relay chain id")
		}
	}
	if Config.API.Enabled {
		if Config.API.Port == 0 {
			log.Fatal("[CONFIG] API.Port is required")
		}
		if Config.API.AdminToken == "" {
			log.Fatal("[CONFIG] API.AdminToken is required")
		}
		if Config.Relay.WebhookToken == "" {
			log.Fatal("[CONFIG] Relay.WebhookToken is required")
		}
	}
	if Config.HealthCheck.IntervalMillis == 0 {
		log.Fatal("[CONFIG] HealthCheck.IntervalMillis is required")
	}
	if Config.HeightMonitor.Enabled && Config.HeightMonitor.IntervalMillis == 0 {
		log.Fatal("[CONFIG] HeightMonitor.IntervalMillis is required")
	}
	if Config.QueueMonitor.Enabled && Config.QueueMonitor.IntervalMillis == 0 {
		log.Fatal("[CONFIG] QueueMonitor.IntervalMillis is required")
	}
	log.Debug("[CONFIG] Config validated")
}
