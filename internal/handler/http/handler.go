// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-req-validator/internal/logger"
	"github.com/MKhiriev/go-req-validator/internal/routes"
	"github.com/MKhiriev/go-req-validator/models"
	"github.com/MKhiriev/go-req-validator/validator"
)

// Handler owns the dependencies shared by every route.
type Handler struct {
	validator *validator.Validator
	table     *routes.Table
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler creates a Handler. table may be nil when no route table is
// configured.
func NewHandler(v *validator.Validator, table *routes.Table, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		validator: v,
		table:     table,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
