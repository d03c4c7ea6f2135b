package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/chaingallery/nft-bridge-node/app"
)

func main() {

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	configFile, envFile := parseArgs()

	app.InitConfig(configFile, envFile)
	app.InitLogger()
	app.InitDB()

	healthRunner := app.NewHealthCheck()
	reportLastHealth(healthRunner)

	wg := &sync.WaitGroup{}
	services := createServices(wg, healthRunner)
	healthRunner.SetServices(services)

	wg.Add(len(services))
	for _, service := range services {
		go service.Start()
	}
	log.Info("[MAIN] Started ", len(services), " services")

	gracefulStop := make(chan os.Signal, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-gracefulStop
	log.Debug("[MAIN] Caught signal: ", sig)

	log.Info("[MAIN] Stopping services")
	for _, service := range services {
		service.Stop()
	}
	wg.Wait()

	app.DB.Disconnect()
	log.Info("[MAIN] Node stopped")
}

func parseArgs() (string, string) {
	if len(os.Args) < 2 {
		log.Fatal("Please provide config file as parameter")
	}
	configFile, _ := filepath.Abs(os.Args[1])
	envFile := ""
	if len(os.Args) > 2 {
		envFile, _ = filepath.Abs(os.Args[2])
	}
	return configFile, envFile
}

// reportLastHealth surfaces the previous health record for this instance id.
// A fresh record means an unclean shutdown or a second replica posting under
// the same hostname.
func reportLastHealth(healthRunner *app.HealthCheckRunner) {
	if !app.Config.HealthCheck.ReadLastHealth {
		return
	}

	lastHealth, err := healthRunner.FindLastHealth()
	if err != nil {
		log.Debug("[MAIN] No previous health found for this instance")
		return
	}

	freshWindow := 2 * time.Duration(app.Config.HealthCheck.IntervalMillis) * time.Millisecond
	if time.Since(lastHealth.UpdatedAt) < freshWindow {
		log.Warn("[MAIN] Found fresh health for this instance, another replica may be running on this hostname")
	}
	log.Info("[MAIN] Last health recorded at ", lastHealth.UpdatedAt)
}
