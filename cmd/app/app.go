package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ecoharmony/park-registration/internal/api"
	"github.com/ecoharmony/park-registration/internal/config"
	"github.com/ecoharmony/park-registration/internal/logger"
)

func Start() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./cmd/app/config.yml"
	}

	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	s := api.NewServer(conf)

	addr := ":" + conf.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr),
		zap.String("booking_api", conf.Booking.BaseURL),
	)
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
