package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"
)

func main() {
	p := flags.NewParser(&opts, flags.Default)

	if _, err := p.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); !ok || flagsErr.Type != flags.ErrHelp {
			fmt.Println("cli error:", err)
		}

		os.Exit(2)
	}

	wg := sync.WaitGroup{}
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)

	// Initialize all components.
	logger, closeLogger := setupLogger()
	engine, closeEngine := setupEngine(logger)
	gate, closeGate := setupGate(&wg, logger)
	_, closeGrpcServer := setupGrpcServer(&wg, engine, gate, logger)

	// Components must be shut down in a particular order.
	shutdownOrder := []shutdownFunc{
		closeGrpcServer,
		closeGate,
		closeEngine,
		closeLogger,
	}

	if opts.HTTP.Enabled {
		_, closeRestServer := setupRestServer(&wg, engine, gate, logger)
		shutdownOrder = append([]shutdownFunc{closeRestServer}, shutdownOrder...)
	}

	// Block until we receive a signal to shut down.
	<-interrupt
	level.Info(logger).Log("msg", "received interrupt signal, shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown all components.
	for _, f := range shutdownOrder {
		if err := f(ctx); err != nil {
			level.Error(logger).Log("msg", "failed to shutdown component", "err", err)
		}
	}

	// Wait for all components to finish background tasks.
	wg.Wait()
}
