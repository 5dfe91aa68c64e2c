//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yeonjae/fortune-calendar/internal/bootstrap"
	"github.com/yeonjae/fortune-calendar/internal/domain/calendar"
	"github.com/yeonjae/fortune-calendar/internal/domain/profile"
	"github.com/yeonjae/fortune-calendar/internal/infra/config"
	httpiface "github.com/yeonjae/fortune-calendar/internal/interface/http"
	"github.com/yeonjae/fortune-calendar/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideCalendarConfig,
		providePillarSource,
		provideCalendarCache,
		provideProfileRepository,
		calendar.NewService,
		profile.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
