package app

import (
	"sync"
	"time"

	"github.com/chaingallery/nft-bridge-node/models"
	log "github.com/sirupsen/logrus"
)

// RunnerService drives a Runner on a fixed interval and reports its health.
type RunnerService struct {
	name     string
	runner   models.Runner
	interval time.Duration

	stop chan bool
	wg   *sync.WaitGroup

	healthMu sync.RWMutex
	health   models.ServiceHealth
}

func (x *RunnerService) Start() {
	log.Infof("[%s] Starting service", x.name)
	stop := false
	for !stop {
		log.Debugf("[%s] Starting run", x.name)

		x.runner.Run()

		x.updateHealth()

		log.Debugf("[%s] Finished run, sleeping for %s", x.name, x.interval)

		select {
		case <-x.stop:
			stop = true
			log.Infof("[%s] Stopped service", x.name)
		case <-time.After(x.interval):
		}
	}
	x.wg.Done()
}

func (x *RunnerService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	return x.health
}

func (x *RunnerService) updateHealth() {
	status := x.runner.Status()
	lastSyncTime := time.Now()

	health := models.ServiceHealth{
		Name:            x.name,
		LastSyncTime:    lastSyncTime,
		NextSyncTime:    lastSyncTime.Add(x.interval),
		ChainHeight:     status.ChainHeight,
		PendingMessages: status.PendingMessages,
		Healthy:         true,
	}

	x.healthMu.Lock()
	defer x.healthMu.Unlock()

	x.health = health
}

func (x *RunnerService) Stop() {
	log.Debugf("[%s] Stopping service", x.name)
	x.stop <- true
}

func NewRunnerService(name string, runner models.Runner, wg *sync.WaitGroup, interval time.Duration) models.Service {
	if name == "" || runner == nil || wg == nil || interval == 0 {
		log.Error("[RUNNER] Invalid parameters for runner service")
		return nil
	}

	return &RunnerService{
		name:     name,
		runner:   runner,
		interval: interval,
		// buffered so Stop never blocks, even before Start
		stop: make(chan bool, 1),
		wg:   wg,
		health: models.ServiceHealth{
			Name:    name,
			Healthy: true,
		},
	}
}
