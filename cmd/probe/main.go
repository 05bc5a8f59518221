// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command probe runs the demo request scenarios against a running
// validation server and reports which ones behaved as expected.
package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-req-validator/internal/adapter"
	"github.com/MKhiriev/go-req-validator/internal/config"
	"github.com/MKhiriev/go-req-validator/internal/logger"
)

func main() {
	cfg, err := config.GetProbeConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("req-validator-probe", config.DefaultLogLevel).
			Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("req-validator-probe", cfg.LogLevel)

	prober, err := adapter.NewHTTPProber(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating prober")
	}

	failed, err := run(context.Background(), prober, demoScenarios(), os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("error probing server")
	}
	if failed > 0 {
		log.Error().Int("failed", failed).Msg("scenarios failed")
		os.Exit(1)
	}
}
