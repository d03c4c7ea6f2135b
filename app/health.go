package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chaingallery/nft-bridge-node/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	HealthCheckName = "health"
)

type HealthCheckRunner struct {
	instanceId string
	hostname   string
	ethAddress string
	services   []models.Service
}

func (x *HealthCheckRunner) Run() {
	x.PostHealth()
}

func (x *HealthCheckRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

func (x *HealthCheckRunner) SetServices(services []models.Service) {
	x.services = services
}

// ServiceHealths reports the health of every running service, skipping
// placeholders for disabled ones.
func (x *HealthCheckRunner) ServiceHealths() []models.ServiceHealth {
	var serviceHealths []models.ServiceHealth
	for _, service := range x.services {
		health := service.Health()
		if health.Name == models.EmptyServiceName {
			continue
		}
		serviceHealths = append(serviceHealths, health)
	}
	return serviceHealths
}

func (x *HealthCheckRunner) FindLastHealth() (models.Health, error) {
	var health models.Health
	filter := bson.M{
		"instance_id": x.instanceId,
		"hostname":    x.hostname,
	}
	err := DB.FindOne(models.CollectionHealthChecks, filter, &health)
	return health, err
}

func (x *HealthCheckRunner) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

	filter := bson.M{
		"instance_id": x.instanceId,
		"hostname":    x.hostname,
	}

	onInsert := bson.M{
		"instance_id": x.instanceId,
		"hostname":    x.hostname,
		"created_at":  time.Now(),
	}

	onUpdate := bson.M{
		"eth_address":     x.ethAddress,
		"service_healths": x.ServiceHealths(),
		"updated_at":      time.Now(),
	}

	update := bson.M{"$set": onUpdate, "$setOnInsert": onInsert}

	err := DB.UpsertOne(models.CollectionHealthChecks, filter, update)

	if err != nil {
		log.Error("[HEALTH] Error posting health: ", err)
		return false
	}

	log.Info("[HEALTH] Posted health")
	return true
}

func NewHealthCheck() *HealthCheckRunner {
	log.Debug("[HEALTH] Initializing health check")

	signer, err := CreateOperatorSigner()
	if err != nil {
		log.Fatal("[HEALTH] Error creating operator signer: ", err)
	}
	ethAddress := signer.EthAddress().Hex()
	signer.Destroy()

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal("[HEALTH] Error getting hostname: ", err)
	}

	instanceId := fmt.Sprintf("nft-bridge-%d-%s", Config.Bridge.ChainType, strings.ToLower(ethAddress))

	x := &HealthCheckRunner{
		instanceId: instanceId,
		hostname:   hostname,
		ethAddress: ethAddress,
	}

	log.Info("[HEALTH] Initialized health check with instance id: ", instanceId)

	return x
}
