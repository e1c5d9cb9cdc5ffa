package service

import (
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	CommentService CommentService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		PostService:    NewPostService(storages.PostRepository, cfg.SanitizeHTML, logger),
		CommentService: NewCommentService(storages.CommentRepository, cfg.SanitizeHTML, logger),
		AppInfoService: appInfoService,
	}, nil
}
