package cmd

import (
	"MyStorage/internal/config"
	"MyStorage/internal/services"
	"MyStorage/internal/session"
)

type App struct {
	Configuration *config.Configuration
	LogService    services.LogService
	Session       *session.Session
	AuthService   services.AuthService
	BoxService    services.BoxService
	ItemService   services.ItemService
	UploadService services.UploadService
	SyncService   *services.SyncService
}

func NewApp(
	configuration *config.Configuration,
	logService services.LogService,
	session *session.Session,
	authService services.AuthService,
	boxService services.BoxService,
	itemService services.ItemService,
	uploadService services.UploadService,
	syncService *services.SyncService,
) *App {
	return &App{
		Configuration: configuration,
		LogService:    logService,
		Session:       session,
		AuthService:   authService,
		BoxService:    boxService,
		ItemService:   itemService,
		UploadService: uploadService,
		SyncService:   syncService,
	}
}
