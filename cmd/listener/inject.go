//go:build wireinject
// +build wireinject

package main

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/wire"
	"github.com/kbsync/minio-listener/internal/http"
	"github.com/kbsync/minio-listener/internal/service"
	"github.com/kbsync/minio-listener/internal/settings"
)

var api = wire.NewSet(
	http.NewChiMux,
	http.NewEventHandler,
)

var knowledge = wire.NewSet(
	NewS3Client,
	service.NewKnowledgeService,
	service.NewFilterStore,
	service.NewDispatcher,
	wire.Bind(new(service.Config), new(*settings.Config)),
	wire.Bind(new(service.ObjectStore), new(*s3.Client)),
	wire.Bind(new(service.Knowledge), new(*service.KnowledgeService)),
)

func InjectApp(cfg *settings.Config) (App, error) {
	wire.Build(
		NewApp,
		api,
		knowledge,
	)
	return App{}, nil
}
