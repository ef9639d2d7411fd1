package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/liforra/ipintel/internal/backup"
	"github.com/liforra/ipintel/internal/config"
	"github.com/liforra/ipintel/internal/data"
	"github.com/liforra/ipintel/internal/health"
	"github.com/liforra/ipintel/internal/healthchecksio"
	"github.com/liforra/ipintel/internal/intel"
	"github.com/liforra/ipintel/internal/ipapi"
	"github.com/liforra/ipintel/internal/models"
	"github.com/liforra/ipintel/internal/noop"
	"github.com/liforra/ipintel/internal/notify"
	"github.com/liforra/ipintel/internal/persist"
	persistence "github.com/liforra/ipintel/internal/persistence/json"
	"github.com/liforra/ipintel/internal/ratelimit"
	"github.com/liforra/ipintel/internal/rdns"
	"github.com/liforra/ipintel/internal/server"
	"github.com/qdm12/goservices"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	logger log.LoggerInterface, buildInfo models.BuildInformation) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		case "healthcheck":
			// Running the program in a separate ephemeral instance,
			// for example through the Docker built-in healthcheck, to
			// query the long running instance about its status.
			var healthSettings config.Health
			healthSettings.Read(reader)
			healthSettings.SetDefaults()
			err = healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			client := health.NewClient()
			return client.Query(ctx, *healthSettings.ServerAddress)
		}
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	notifySettings := config.Notify
	notifySettings.Logger = logger.New(log.SetComponent("notify"))
	notifier, err := notify.New(notifySettings)
	if err != nil {
		return fmt.Errorf("setting up notifications: %w", err)
	}

	persistentDB, err := persistence.NewDatabase(*config.Paths.DataDir)
	if err != nil {
		notifier.Notify(err.Error())
		return err
	}

	db := data.NewDatabase(persistentDB)
	logRecordsCount(db.Len(), logger)

	client := &http.Client{Timeout: config.Client.Timeout}
	defer client.CloseIdleConnections()

	fetcher := ipapi.New(client, config.IPAPI)
	limiter := ratelimit.New(config.RateLimit)

	var reverser intel.Reverser
	if *config.RDNS.Enabled {
		reverser = rdns.New(config.RDNS)
	}

	intelLogger := logger.New(log.SetComponent("intel"))
	intelLayer := intel.New(db, fetcher, limiter, reverser, intelLogger, notifier)

	hioClient := healthchecksio.New(client, config.Health.HealthchecksioBaseURL,
		*config.Health.HealthchecksioUUID)

	persistLogger := logger.New(log.SetComponent("persist"))
	persistService := persist.New(*config.Persist.Period, db,
		persistLogger, hioClient)

	healthLogger := logger.New(log.SetComponent("health server"))
	isHealthy := health.MakeIsHealthy(db, healthLogger)
	healthServer, err := health.NewServer(*config.Health.ServerAddress,
		healthLogger, isHealthy)
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}

	mainServer, err := createServer(config.Server, logger, intelLayer)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	var backupService goservices.Service
	backupLogger := logger.New(log.SetComponent("backup"))
	backupService = backup.New(config.Backup.Period, *config.Paths.DataDir,
		*config.Backup.Directory, backupLogger)
	backupService, err = goservices.NewRestarter(goservices.RestarterSettings{Service: backupService})
	if err != nil {
		return fmt.Errorf("creating backup restarter: %w", err)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{db, persistService, healthServer, mainServer, backupService},
		ServicesStop:  []goservices.Service{mainServer, healthServer, persistService, backupService, db},
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		return fmt.Errorf("starting services: %w", startErr)
	}

	notifier.Notify("Launched with " + strconv.Itoa(db.Len()) + " known addresses")

	select {
	case <-ctx.Done():
	case err = <-runError:
		exitHealthchecksio(hioClient, logger, healthchecksio.Exit1)
		notifier.Notify(err.Error())
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		exitHealthchecksio(hioClient, logger, healthchecksio.Exit1)
		notifier.Notify(err.Error())
		return fmt.Errorf("stopping failed: %w", err)
	}

	exitHealthchecksio(hioClient, logger, healthchecksio.Exit0)
	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "liforra",
		Repository: "ipintel",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

func logRecordsCount(recordsCount int, logger log.LeveledLogger) {
	switch recordsCount {
	case 0:
		logger.Info("Starting with an empty record store")
	case 1:
		logger.Info("Loaded a single record from the data file")
	default:
		logger.Info("Loaded " + strconv.Itoa(recordsCount) + " records from the data file")
	}
}

func exitHealthchecksio(hioClient *healthchecksio.Client,
	logger log.LoggerInterface, state healthchecksio.State) {
	const timeout = 3 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err := hioClient.Ping(ctx, state)
	if err != nil {
		logger.Error(err.Error())
	}
}

//nolint:ireturn
func createServer(config config.Server, logger log.LoggerInterface,
	intelLayer server.IntelLayer) (service goservices.Service, err error) {
	if !*config.Enabled {
		return noop.New("server"), nil
	}
	serverLogger := logger.New(log.SetComponent("http server"))
	return server.New(config.ListeningAddress, config.RootURL,
		intelLayer, serverLogger)
}
