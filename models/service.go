package models

import (
	"sync"
	"time"
)

type Service interface {
	Start()
	Health() ServiceHealth
	Stop()
}

type Runner interface {
	Run()
	Status() RunnerStatus
}

type RunnerStatus struct {
	ChainHeight     string `bson:"chain_height" json:"chain_height"`
	PendingMessages string `bson:"pending_messages" json:"pending_messages"`
}

type ServiceHealth struct {
	Name            string    `bson:"name" json:"name"`
	Healthy         bool      `bson:"healthy" json:"healthy"`
	ChainHeight     string    `bson:"chain_height" json:"chain_height"`
	PendingMessages string    `bson:"pending_messages" json:"pending_messages"`
	LastSyncTime    time.Time `bson:"last_sync_time" json:"last_sync_time"`
	NextSyncTime    time.Time `bson:"next_sync_time" json:"next_sync_time"`
}

type EmptyService struct {
	wg *sync.WaitGroup
}

func (e *EmptyService) Start() {}

func (e *EmptyService) Stop() {
	e.wg.Done()
}

const EmptyServiceName = "empty"

func (e *EmptyService) Health() ServiceHealth {
	return ServiceHealth{
		Name:         EmptyServiceName,
		Healthy:      true,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
	}
}

func NewEmptyService(wg *sync.WaitGroup) *EmptyService {
	return &EmptyService{
		wg: wg,
	}
}
