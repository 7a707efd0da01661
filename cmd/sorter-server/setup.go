package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	_ "google.golang.org/grpc/encoding/gzip" // register gzip compressor

	"github.com/maxpoletaev/sorter/api"
	"github.com/maxpoletaev/sorter/cache"
	"github.com/maxpoletaev/sorter/ready"
	"github.com/maxpoletaev/sorter/rpc"
	"github.com/maxpoletaev/sorter/sorting"
)

type shutdownFunc func(ctx context.Context) error

var noopShutdown = func(ctx context.Context) error { return nil }

func setupLogger() (kitlog.Logger, shutdownFunc) {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	if !opts.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	return logger, noopShutdown
}

func setupEngine(logger kitlog.Logger) (*sorting.Engine, shutdownFunc) {
	conf := sorting.DefaultConfig()
	conf.Logger = logger
	conf.ParallelThreshold = opts.Engine.ParallelThreshold

	if opts.Engine.Workers > 0 {
		conf.Workers = opts.Engine.Workers
	}

	if opts.Cache.Size == 0 {
		level.Info(logger).Log("msg", "result cache disabled")
		return sorting.NewEngine(conf), noopShutdown
	}

	resultCache, err := cache.New(opts.Cache.Size, opts.Cache.MaxValues)
	if err != nil {
		panic(fmt.Sprintf("failed to create result cache: %v", err))
	}

	conf.Cache = resultCache

	shutdown := func(ctx context.Context) error {
		stats := resultCache.Stats()
		logger.Log("msg", "result cache stats", "hits", stats.Hits, "misses", stats.Misses, "entries", stats.Entries)
		resultCache.Purge()

		return nil
	}

	return sorting.NewEngine(conf), shutdown
}

// setupGate starts the initialization in the background; the servers are
// already accepting connections and answer Unavailable until it completes.
func setupGate(wg *sync.WaitGroup, logger kitlog.Logger) (*ready.Gate, shutdownFunc) {
	gate := ready.NewGate(sorting.SelfCheck)
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(opts.InitTimeout)*time.Millisecond)

	wg.Add(1)

	go func() {
		defer wg.Done()
		defer cancel()

		if err := gate.Initialize(ctx); err != nil {
			level.Error(logger).Log("msg", "initialization failed", "err", err)
			return
		}

		level.Info(logger).Log("msg", "service is ready")
	}()

	shutdown := func(ctx context.Context) error {
		cancel()
		return nil
	}

	return gate, shutdown
}

func setupRestServer(wg *sync.WaitGroup, engine *sorting.Engine, gate *ready.Gate, logger kitlog.Logger) (*http.Server, shutdownFunc) {
	restAPI := &http.Server{
		Addr:              opts.HTTP.BindAddr,
		Handler:           api.CreateRouter(engine, gate, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)

	go func() {
		defer wg.Done()

		level.Info(logger).Log("msg", "starting REST API server", "addr", opts.HTTP.BindAddr)

		if err := restAPI.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				panic(fmt.Sprintf("failed to start REST API server: %v", err))
			}
		}
	}()

	shutdown := func(ctx context.Context) error {
		logger.Log("msg", "shutting down REST API server")

		if err := restAPI.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown REST API server: %w", err)
		}

		return nil
	}

	return restAPI, shutdown
}

func setupGrpcServer(wg *sync.WaitGroup, engine *sorting.Engine, gate *ready.Gate, logger kitlog.Logger) (*grpc.Server, shutdownFunc) {
	grpcServer := grpc.NewServer()

	sorterService := rpc.New(engine, gate, logger)
	rpc.RegisterSorterServer(grpcServer, sorterService)

	listener, err := net.Listen("tcp", opts.GRPC.BindAddr)
	if err != nil {
		panic(fmt.Sprintf("failed to create GRPC listener: %v", err))
	}

	wg.Add(1)

	go func() {
		defer wg.Done()

		level.Info(logger).Log("msg", "starting GRPC server", "addr", opts.GRPC.BindAddr)

		if err := grpcServer.Serve(listener); err != nil {
			panic(fmt.Sprintf("failed to start GRPC server: %v", err))
		}
	}()

	shutdown := func(ctx context.Context) error {
		logger.Log("msg", "shutting down GRPC server")
		grpcServer.GracefulStop()

		return nil
	}

	return grpcServer, shutdown
}
