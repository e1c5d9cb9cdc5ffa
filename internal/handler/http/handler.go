package http

import (
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	serverConfig config.Server
	appConfig    config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, serverConfig config.Server, appConfig config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		validator:    validators.NewRequestBodyValidator(),
		serverConfig: serverConfig,
		appConfig:    appConfig,
		logger:       logger,
	}
}
