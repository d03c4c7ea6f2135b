package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck         HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB             MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	Ethereum            EthereumConfig            `yaml:"ethereum" json:"ethereum"`
	Relay               RelayConfig               `yaml:"relay" json:"relay"`
	Bridge              BridgeConfig              `yaml:"bridge" json:"bridge"`
	API                 APIConfig                 `yaml:"api" json:"api"`
	HeightMonitor       ServiceConfig             `yaml:"height_monitor" json:"height_monitor"`
	QueueMonitor        ServiceConfig             `yaml:"queue_monitor" json:"queue_monitor"`
}

type GoogleSecretManagerConfig struct {
	Enabled            bool   `yaml:"enabled" json:"enabled"`
	ProjectID          string `yaml:"project_id" json:"project_id"`
	MongoSecretName    string `yaml:"mongo_secret_name" json:"mongo_secret_name"`
	EthSecretName      string `yaml:"eth_secret_name" json:"eth_secret_name"`
	MnemonicSecretName string `yaml:"mnemonic_secret_name" json:"mnemonic_secret_name"`
}

type HealthCheckConfig struct {
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	ReadLastHealth bool  `yaml:"read_last_health" json:"read_last_health"`
}

type LoggerConfig struct {
	Level string `yaml:"level" json:"level"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type EthereumConfig struct {
	RPCURL           string `yaml:"rpc_url" json:"rpcurl"`
	RPCTimeoutMillis int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	ChainID          string `yaml:"chain_id" json:"chain_id"`
	Confirmations    int64  `yaml:"confirmations" json:"confirmations"`
	VaultAddress     string `yaml:"vault_address" json:"vault_address"`
	PrivateKey       string `yaml:"private_key" json:"private_key"`
	Mnemonic         string `yaml:"mnemonic" json:"mnemonic"`
	GcpKmsKeyName    string `yaml:"gcp_kms_key_name" json:"gcp_kms_key_name"`
}

type RelayConfig struct {
	RPCURL           string `yaml:"rpc_url" json:"rpcurl"`
	RPCTimeoutMillis int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	EndpointAddress  string `yaml:"endpoint_address" json:"endpoint_address"`
	WebhookToken     string `yaml:"webhook_token" json:"webhook_token"`
	AdapterParams    string `yaml:"adapter_params" json:"adapter_params"`
}

type TrustedRemoteConfig struct {
	RelayChainID uint16 `yaml:"relay_chain_id" json:"relay_chain_id"`
	Address      string `yaml:"address" json:"address"`
}

type SupportedChainConfig struct {
	ChainType    uint32 `yaml:"chain_type" json:"chain_type"`
	RelayChainID uint16 `yaml:"relay_chain_id" json:"relay_chain_id"`
}

type BridgeConfig struct {
	OwnerAddress             string                 `yaml:"owner_address" json:"owner_address"`
	ChainType                uint32                 `yaml:"chain_type" json:"chain_type"`
	MinimumFeeWei            string                 `yaml:"minimum_fee_wei" json:"minimum_fee_wei"`
	AuthorizedCallers        []string               `yaml:"authorized_callers" json:"authorized_callers"`
	TrustedRemotes           []TrustedRemoteConfig  `yaml:"trusted_remotes" json:"trusted_remotes"`
	SupportedChains          []SupportedChainConfig `yaml:"supported_chains" json:"supported_chains"`
	StaleFailedMessageMillis int64                  `yaml:"stale_failed_message_ms" json:"stale_failed_message_ms"`
}

type APIConfig struct {
	Enabled    bool   `yaml:"enabled" json:"enabled"`
	Port       int64  `yaml:"port" json:"port"`
	AdminToken string `yaml:"admin_token" json:"admin_token"`
}

type ServiceConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}
