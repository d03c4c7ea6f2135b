package bridge

import (
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/custodian/client"
	"github.com/chaingallery/nft-bridge-node/models"
	"github.com/chaingallery/nft-bridge-node/registry"
)

// HeightSyncRunner mirrors the chain head into the config store so message
// confirmation depth can be judged without an RPC round trip.
type HeightSyncRunner struct {
	client    client.EthereumClient
	configs   registry.ConfigStore
	chainType uint32
	height    uint64
}

func (x *HeightSyncRunner) Run() {
	height, err := x.client.GetBlockNumber()
	if err != nil {
		log.Error("[HEIGHT MONITOR] Error fetching block number: ", err)
		return
	}
	x.height = height

	if err := x.configs.SyncChainHeight(x.chainType, int64(height)); err != nil {
		log.Error("[HEIGHT MONITOR] Error syncing chain height: ", err)
	}
}

func (x *HeightSyncRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		ChainHeight: strconv.FormatUint(x.height, 10),
	}
}

// QueueMonitorRunner tracks the outbound backlog and flags failed messages
// that have been parked past the configured staleness window.
type QueueMonitorRunner struct {
	registry registry.Registry
	pending  int64
}

func (x *QueueMonitorRunner) Run() {
	x.CheckQueues()
	x.CheckFailedMessages()
}

func (x *QueueMonitorRunner) CheckQueues() {
	chains := []models.SupportedChain{}
	if err := app.DB.FindMany(models.CollectionSupportedChains, bson.M{"is_supported": true}, &chains); err != nil {
		log.Error("[QUEUE MONITOR] Error fetching supported chains: ", err)
		return
	}

	var pending int64
	for _, chain := range chains {
		count, err := x.registry.GetPendingMessageCount(chain.ChainType)
		if err != nil {
			log.Error("[QUEUE MONITOR] Error counting pending messages for chain ", chain.ChainType, ": ", err)
			continue
		}
		pending += count
	}
	x.pending = pending

	log.Debug("[QUEUE MONITOR] Pending messages across ", len(chains), " chains: ", pending)
}

func (x *QueueMonitorRunner) CheckFailedMessages() {
	staleMillis := app.Config.Bridge.StaleFailedMessageMillis
	if staleMillis == 0 {
		return
	}
	cutoff := time.Now().Add(-time.Duration(staleMillis) * time.Millisecond)

	stale := []models.FailedMessage{}
	if err := app.DB.FindMany(models.CollectionFailedMessages, bson.M{"updated_at": bson.M{"$lte": cutoff}}, &stale); err != nil {
		log.Error("[QUEUE MONITOR] Error fetching failed messages: ", err)
		return
	}

	for _, message := range stale {
		log.Warn("[QUEUE MONITOR] Stale failed message from relay chain ", message.SrcRelayId, " nonce ", message.Nonce, ": ", message.Reason)
	}
}

func (x *QueueMonitorRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		PendingMessages: strconv.FormatInt(x.pending, 10),
	}
}

func NewHeightSyncService(wg *sync.WaitGroup, ethClient client.EthereumClient, configStore registry.ConfigStore) models.Service {
	if !app.Config.HeightMonitor.Enabled {
		log.Debug("[HEIGHT MONITOR] Height monitor disabled")
		return models.NewEmptyService(wg)
	}

	runner := &HeightSyncRunner{
		client:    ethClient,
		configs:   configStore,
		chainType: app.Config.Bridge.ChainType,
	}
	return app.NewRunnerService("HEIGHT MONITOR", runner, wg, time.Duration(app.Config.HeightMonitor.IntervalMillis)*time.Millisecond)
}

func NewQueueMonitorService(wg *sync.WaitGroup, assetRegistry registry.Registry) models.Service {
	if !app.Config.QueueMonitor.Enabled {
		log.Debug("[QUEUE MONITOR] Queue monitor disabled")
		return models.NewEmptyService(wg)
	}

	runner := &QueueMonitorRunner{
		registry: assetRegistry,
	}
	return app.NewRunnerService("QUEUE MONITOR", runner, wg, time.Duration(app.Config.QueueMonitor.IntervalMillis)*time.Millisecond)
}
