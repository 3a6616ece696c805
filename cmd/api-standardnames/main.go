package main

import (
	"context"
	"flag"
	"os"

	services "github.com/diwise/api-standardnames/internal/pkg/application/services/standardnametables"
	"github.com/diwise/api-standardnames/internal/pkg/presentation"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
)

func loadConfig(ctx context.Context, path string) *services.Config {
	log := logging.GetFromContext(ctx)

	configfile, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Msgf("failed to open the configuration file %s", path)
	}
	defer configfile.Close()

	cfg, err := services.LoadConfig(configfile)
	if err != nil {
		log.Fatal().Err(err).Msgf("failed to load the configuration from %s", path)
	}

	log.Info().Msgf("loaded %d table definitions from %s", len(cfg.Tables), path)

	return cfg
}

var configFileName string

func main() {
	serviceName := "api-standardnames"
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.StringVar(&configFileName, "config", "/opt/diwise/config/standardnames.yaml", "A yaml file listing the standard name tables to serve")
	flag.Parse()

	cfg := loadConfig(ctx, configFileName)

	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = env.GetVariableOrDefault(log, "SERVICE_BASE_URL", "http://localhost:8880")
	}

	svc := services.NewTableService(ctx, log, *cfg)
	svc.Start()
	defer svc.Shutdown()

	port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8880")

	r := chi.NewRouter()
	api := presentation.NewAPI(r, ctx, svc)

	err := api.Start(port)
	if err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}
