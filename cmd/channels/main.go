// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

// Package main contains channels main function to start the channels service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/communecc/commune/channels"
	"github.com/communecc/commune/channels/api"
	"github.com/communecc/commune/channels/executor"
	"github.com/communecc/commune/channels/middleware"
	channelspg "github.com/communecc/commune/channels/postgres"
	cclog "github.com/communecc/commune/logger"
	authjwt "github.com/communecc/commune/pkg/authn/jwt"
	pgclient "github.com/communecc/commune/pkg/postgres"
	"github.com/communecc/commune/pkg/prometheus"
	"github.com/communecc/commune/pkg/server"
	httpserver "github.com/communecc/commune/pkg/server/http"
	"github.com/communecc/commune/pkg/tracing"
	"github.com/communecc/commune/pkg/uuid"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "channels"
	envPrefixDB    = "CC_CHANNELS_DB_"
	envPrefixHTTP  = "CC_CHANNELS_HTTP_"
	defDB          = "channels"
	defSvcHTTPPort = "9025"
)

type config struct {
	LogLevel   string  `env:"CC_CHANNELS_LOG_LEVEL"   envDefault:"info"`
	JWTSecret  string  `env:"CC_CHANNELS_JWT_SECRET,notEmpty"`
	OtelURL    url.URL `env:"CC_OTEL_URL"             envDefault:"http://localhost:4318/v1/traces"`
	InstanceID string  `env:"CC_CHANNELS_INSTANCE_ID" envDefault:""`
	TraceRatio float64 `env:"CC_OTEL_TRACE_RATIO"     envDefault:"1.0"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := cclog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer cclog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	dbConfig := pgclient.Config{Name: defDB}
	if err := env.ParseWithOptions(&dbConfig, env.Options{Prefix: envPrefixDB}); err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	db, err := pgclient.Setup(dbConfig, *channelspg.Migration())
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	defer db.Close()

	tp, err := tracing.NewProvider(ctx, svcName, cfg.OtelURL, cfg.InstanceID, cfg.TraceRatio)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to init tracing provider: %s", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("error shutting down tracer provider: %s", err))
		}
	}()
	tracer := tp.Tracer(svcName)

	svc := newService(db, tracer, logger)
	authn := authjwt.New([]byte(cfg.JWTSecret))

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.ParseWithOptions(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err.Error()))
		exitCode = 1
		return
	}

	hs := httpserver.NewServer(ctx, cancel, svcName, httpServerConfig, api.MakeHandler(svc, logger, authn, cfg.InstanceID), logger)

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

func newService(db *sqlx.DB, tracer trace.Tracer, logger *slog.Logger) channels.Service {
	database := pgclient.NewDatabase(db, tracer)
	repo := channelspg.NewRepository(database)
	authz := channelspg.NewAuthorization(database)
	idp := uuid.New()
	cmd := executor.New(repo, idp)

	svc := channels.NewService(repo, cmd, cmd, authz)
	svc = middleware.Logging(logger, svc)
	counter, latency := prometheus.MakeMetrics(svcName, "api")
	svc = middleware.Metrics(counter, latency, svc)

	return svc
}
