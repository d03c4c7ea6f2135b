package app

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func parseInt64ENV(target *int64, name string) {
	if os.Getenv(name) == "" {
		return
	}
	value, err := strconv.ParseInt(os.Getenv(name), 10, 64)
	if err != nil {
		log.Warnf("[ENV] Error parsing %s: %s", name, err.Error())
		return
	}
	*target = value
}

func parseBoolENV(target *bool, name string) {
	if os.Getenv(name) == "" {
		return
	}
	value, err := strconv.ParseBool(os.Getenv(name))
	if err != nil {
		log.Warnf("[ENV] Error parsing %s: %s", name, err.Error())
		return
	}
	*target = value
}

func parseStringENV(target *string, name string) {
	if os.Getenv(name) != "" {
		*target = os.Getenv(name)
	}
}

func readConfigFromENV(envFile string) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	// mongodb
	parseStringENV(&Config.MongoDB.URI, "MONGODB_URI")
	parseStringENV(&Config.MongoDB.Database, "MONGODB_DATABASE")
	parseInt64ENV(&Config.MongoDB.TimeoutMillis, "MONGODB_TIMEOUT_MS")

	// ethereum
	parseStringENV(&Config.Ethereum.RPCURL, "ETH_RPC_URL")
	parseInt64ENV(&Config.Ethereum.RPCTimeoutMillis, "ETH_RPC_TIMEOUT_MS")
	parseStringENV(&Config.Ethereum.ChainID, "ETH_CHAIN_ID")
	parseInt64ENV(&Config.Ethereum.Confirmations, "ETH_CONFIRMATIONS")
	parseStringENV(&Config.Ethereum.VaultAddress, "ETH_VAULT_ADDRESS")
	parseStringENV(&Config.Ethereum.PrivateKey, "ETH_PRIVATE_KEY")
	parseStringENV(&Config.Ethereum.Mnemonic, "ETH_MNEMONIC")
	parseStringENV(&Config.Ethereum.GcpKmsKeyName, "ETH_GCP_KMS_KEY_NAME")

	// relay
	parseStringENV(&Config.Relay.RPCURL, "RELAY_RPC_URL")
	parseInt64ENV(&Config.Relay.RPCTimeoutMillis, "RELAY_RPC_TIMEOUT_MS")
	parseStringENV(&Config.Relay.EndpointAddress, "RELAY_ENDPOINT_ADDRESS")
	parseStringENV(&Config.Relay.WebhookToken, "RELAY_WEBHOOK_TOKEN")
	parseStringENV(&Config.Relay.AdapterParams, "RELAY_ADAPTER_PARAMS")

	// bridge
	parseStringENV(&Config.Bridge.OwnerAddress, "BRIDGE_OWNER_ADDRESS")
	if os.Getenv("BRIDGE_CHAIN_TYPE") != "" {
		chainType, err := strconv.ParseUint(os.Getenv("BRIDGE_CHAIN_TYPE"), 10, 32)
		if err != nil {
			log.Warn("[ENV] Error parsing BRIDGE_CHAIN_TYPE: ", err.Error())
		} else {
			Config.Bridge.ChainType = uint32(chainType)
		}
	}
	parseStringENV(&Config.Bridge.MinimumFeeWei, "BRIDGE_MINIMUM_FEE_WEI")
	if os.Getenv("BRIDGE_AUTHORIZED_CALLERS") != "" {
		Config.Bridge.AuthorizedCallers = strings.Split(os.Getenv("BRIDGE_AUTHORIZED_CALLERS"), ",")
	}
	parseInt64ENV(&Config.Bridge.StaleFailedMessageMillis, "BRIDGE_STALE_FAILED_MESSAGE_MS")

	// api
	parseBoolENV(&Config.API.Enabled, "API_ENABLED")
	parseInt64ENV(&Config.API.Port, "API_PORT")
	parseStringENV(&Config.API.AdminToken, "API_ADMIN_TOKEN")

	// height monitor
	parseBoolENV(&Config.HeightMonitor.Enabled, "HEIGHT_MONITOR_ENABLED")
	parseInt64ENV(&Config.HeightMonitor.IntervalMillis, "HEIGHT_MONITOR_INTERVAL_MS")

	// queue monitor
	parseBoolENV(&Config.QueueMonitor.Enabled, "QUEUE_MONITOR_ENABLED")
	parseInt64ENV(&Config.QueueMonitor.IntervalMillis, "QUEUE_MONITOR_INTERVAL_MS")

	// health check
	parseInt64ENV(&Config.HealthCheck.IntervalMillis, "HEALTH_CHECK_INTERVAL_MS")
	parseBoolENV(&Config.HealthCheck.ReadLastHealth, "HEALTH_CHECK_READ_LAST_HEALTH")

	// logging
	if Config.Logger.Level == "" {
		logLevel := os.Getenv("LOG_LEVEL")
		if logLevel == "" {
			log.Warn("[ENV] Setting LogLevel to debug")
			Config.Logger.Level = "debug"
		} else {
			Config.Logger.Level = logLevel
		}
	}

	// google secret manager
	parseBoolENV(&Config.GoogleSecretManager.Enabled, "GOOGLE_SECRET_MANAGER_ENABLED")
	parseStringENV(&Config.GoogleSecretManager.ProjectID, "GOOGLE_PROJECT_ID")
	parseStringENV(&Config.GoogleSecretManager.MongoSecretName, "GOOGLE_MONGO_SECRET_NAME")
	parseStringENV(&Config.GoogleSecretManager.EthSecretName, "GOOGLE_ETH_SECRET_NAME")
	parseStringENV(&Config.GoogleSecretManager.MnemonicSecretName, "GOOGLE_MNEMONIC_SECRET_NAME")
}
