package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/bridge"
	"github.com/chaingallery/nft-bridge-node/custodian/client"
	"github.com/chaingallery/nft-bridge-node/models"
	"github.com/chaingallery/nft-bridge-node/registry"
)

const (
	APIServiceName = "API"

	shutdownTimeout = 5 * time.Second
)

// Server exposes node state, registry reads and the relay delivery webhook
// over HTTP. It runs as a regular service so shutdown and health reporting
// follow the same path as the monitors.
type Server struct {
	engine   bridge.Engine
	registry registry.Registry
	configs  registry.ConfigStore
	eth      client.EthereumClient
	health   *app.HealthCheckRunner

	server *http.Server
	wg     *sync.WaitGroup
}

func (x *Server) Start() {
	log.Info("[API] Starting service on ", x.server.Addr)
	err := x.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("[API] Server error: ", err)
	}
	log.Info("[API] Stopped service")
	x.wg.Done()
}

func (x *Server) Stop() {
	log.Debug("[API] Stopping service")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := x.server.Shutdown(ctx); err != nil {
		log.Error("[API] Error shutting down server: ", err)
	}
}

func (x *Server) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:         APIServiceName,
		Healthy:      true,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
	}
}

func (x *Server) router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", x.getHealth)
	r.Get("/state", x.getState)

	r.Get("/assets", x.getAssetByContract)
	r.Get("/assets/{assetId}", x.getAsset)
	r.Get("/requests/{requestId}", x.getBridgeRequest)
	r.Get("/users/{address}/requests", x.getUserBridgeRequests)
	r.Get("/chains/{chainType}/config", x.getChainConfig)
	r.Get("/chains/{chainType}/messages", x.getChainMessages)
	r.Get("/chains/{chainType}/pending", x.getPendingCount)
	r.Get("/transactions/{txHash}", x.getTransaction)

	r.Post("/relay/receive", x.webhookAuth(x.postRelayReceive))
	r.Post("/relay/retry", x.adminAuth(x.postRelayRetry))
	r.Get("/relay/failed", x.getFailedMessage)

	r.Post("/admin/pause", x.adminAuth(x.postPause))
	r.Post("/admin/unpause", x.adminAuth(x.postUnpause))
	r.Post("/admin/trusted-remote", x.adminAuth(x.postTrustedRemote))
	r.Post("/admin/supported-chain", x.adminAuth(x.postSupportedChain))
	r.Post("/admin/minimum-fee", x.adminAuth(x.postMinimumFee))
	r.Post("/admin/emergency-withdraw", x.adminAuth(x.postEmergencyWithdraw))
	r.Post("/admin/chain-config", x.adminAuth(x.postChainConfig))
	r.Post("/admin/authorize-caller", x.adminAuth(x.postAuthorizeCaller))
	r.Post("/admin/register-asset", x.adminAuth(x.postRegisterAsset))
	r.Post("/admin/asset-sync", x.adminAuth(x.postAssetSync))

	r.Post("/admin/relay/config", x.adminAuth(x.postRelayConfig))
	r.Post("/admin/relay/send-version", x.adminAuth(x.postSendVersion))
	r.Post("/admin/relay/receive-version", x.adminAuth(x.postReceiveVersion))
	r.Post("/admin/relay/force-resume", x.adminAuth(x.postForceResume))
	r.Post("/admin/relay/min-dst-gas", x.adminAuth(x.postMinDstGas))
	r.Post("/admin/relay/payload-size-limit", x.adminAuth(x.postPayloadSizeLimit))

	return r
}

// webhookAuth guards the relay delivery route with the webhook bearer token.
func (x *Server) webhookAuth(next http.HandlerFunc) http.HandlerFunc {
	return requireBearer(func() string { return app.Config.Relay.WebhookToken }, next)
}

// adminAuth guards owner operations with the admin bearer token. The engine
// still verifies the owner address on every call.
func (x *Server) adminAuth(next http.HandlerFunc) http.HandlerFunc {
	return requireBearer(func() string { return app.Config.API.AdminToken }, next)
}

func requireBearer(token func() string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expected := token()
		if expected == "" || bearerToken(r) != expected {
			responseError(w, http.StatusUnauthorized, "invalid bearer token")
			return
		}
		next(w, r)
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return auth[len(prefix):]
}

func NewAPIService(
	wg *sync.WaitGroup,
	engine bridge.Engine,
	assetRegistry registry.Registry,
	configStore registry.ConfigStore,
	ethClient client.EthereumClient,
	healthCheck *app.HealthCheckRunner,
) models.Service {
	if !app.Config.API.Enabled {
		log.Debug("[API] Service disabled")
		return models.NewEmptyService(wg)
	}

	x := &Server{
		engine:   engine,
		registry: assetRegistry,
		configs:  configStore,
		eth:      ethClient,
		health:   healthCheck,
		wg:       wg,
	}
	x.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.Config.API.Port),
		Handler:           x.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("[API] Initialized service on port ", app.Config.API.Port)
	return x
}
