//go:build wireinject
// +build wireinject

package main

import (
	"MyStorage/cmd"
	"MyStorage/database"
	"MyStorage/internal/api"
	"MyStorage/internal/config"
	"MyStorage/internal/repository"
	"MyStorage/internal/server"
	"MyStorage/internal/services"
	"MyStorage/internal/session"

	"github.com/benbjohnson/clock"
	"github.com/google/wire"
)

func InitializeApp(path config.FilePath, overrides config.Overrides) (*cmd.App, func(), error) {
	wire.Build(
		cmd.NewApp,
		config.ProvideConfiguration,
		services.NewLogService,
		services.ProvideLogger,
		database.SetupDatabase,
		repository.NewSettingRepository,
		session.NewSession,
		wire.Bind(new(api.TokenStore), new(*session.Session)),
		server.NewHTTPClient,
		api.NewClient,
		wire.Bind(new(services.AuthAPI), new(*api.Client)),
		wire.Bind(new(services.BoxAPI), new(*api.Client)),
		wire.Bind(new(services.ItemAPI), new(*api.Client)),
		wire.Bind(new(services.UploadAPI), new(*api.Client)),
		services.NewAuthService,
		services.NewBoxService,
		services.NewItemService,
		services.NewUploadService,
		clock.New,
		services.NewSyncService,
	)
	return nil, nil, nil
}
