package main

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/chaingallery/nft-bridge-node/api"
	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/bridge"
	"github.com/chaingallery/nft-bridge-node/custodian"
	"github.com/chaingallery/nft-bridge-node/custodian/client"
	"github.com/chaingallery/nft-bridge-node/models"
	"github.com/chaingallery/nft-bridge-node/registry"
	"github.com/chaingallery/nft-bridge-node/relay"
)

// createServices wires the node. The EVM client and the operator signer feed
// the custodian, the registry reads custody through the custodian, and the
// engine ties registry, custodian and relay together. Every returned service
// is started by main and registered with the health reporter.
func createServices(wg *sync.WaitGroup, healthRunner *app.HealthCheckRunner) []models.Service {
	ethClient, err := client.NewClient()
	if err != nil {
		log.Fatal("[MAIN] Error connecting to ethereum rpc: ", err)
	}
	ethClient.ValidateNetwork()

	signer, err := app.CreateOperatorSigner()
	if err != nil {
		log.Fatal("[MAIN] Error creating operator signer: ", err)
	}

	assetCustodian, err := custodian.NewCustodian(ethClient, signer)
	if err != nil {
		log.Fatal("[MAIN] Error creating custodian: ", err)
	}

	relayClient := relay.NewClient()
	relayClient.ValidateNetwork()

	configStore := registry.NewConfigStore(func() int64 {
		height, err := ethClient.GetBlockNumber()
		if err != nil {
			log.Error("[MAIN] Error fetching block number: ", err)
			return 0
		}
		return int64(height)
	})
	assetRegistry := registry.NewRegistry(configStore, assetCustodian)
	engine := bridge.NewEngine(assetRegistry, assetCustodian, relayClient)

	healthService := app.NewRunnerService(
		app.HealthCheckName,
		healthRunner,
		wg,
		time.Duration(app.Config.HealthCheck.IntervalMillis)*time.Millisecond,
	)

	return []models.Service{
		healthService,
		bridge.NewHeightSyncService(wg, ethClient, configStore),
		bridge.NewQueueMonitorService(wg, assetRegistry),
		api.NewAPIService(wg, engine, assetRegistry, configStore, ethClient, healthRunner),
	}
}
