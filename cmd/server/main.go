// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-req-validator/internal/config"
	handler "github.com/MKhiriev/go-req-validator/internal/handler/http"
	"github.com/MKhiriev/go-req-validator/internal/logger"
	"github.com/MKhiriev/go-req-validator/internal/routes"
	"github.com/MKhiriev/go-req-validator/internal/server"
	"github.com/MKhiriev/go-req-validator/models"
	"github.com/MKhiriev/go-req-validator/validator"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("req-validator-server", config.DefaultLogLevel).
			Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("req-validator-server", cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	var table *routes.Table
	if cfg.RoutesFilePath != "" {
		table, err = routes.Load(cfg.RoutesFilePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.RoutesFilePath).Msg("error loading route table")
		}
		log.Info().Int("routes", len(table.Routes)).Msg("route table loaded")
	}

	v := validator.New(validatorOptions(cfg.Validation, log)...)

	router, err := handler.NewHandler(v, table, buildInfo, log).Init()
	if err != nil {
		log.Fatal().Err(err).Msg("error configuring routes")
	}

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func validatorOptions(cfg config.Validation, log *logger.Logger) []validator.Option {
	return []validator.Option{
		validator.WithStatusCode(cfg.StatusCode),
		validator.WithMessage(cfg.Message),
		validator.WithMaxBodyBytes(cfg.MaxBodyBytes),
		validator.WithLogger(log.Logger),
	}
}
