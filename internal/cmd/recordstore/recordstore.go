/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package recordstore wires configuration, logging and metrics around the
// users gate and runs the command.
package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/suparena/recordstore"
	"github.com/suparena/recordstore/config"
	"github.com/suparena/recordstore/observability"
	"github.com/suparena/recordstore/record"
)

const metricsNamespace = "recordstore"

// NewLogger builds the logger described by cfg, writing to w.
func NewLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch cfg.LogFormat {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
}

// Run opens the store, writes every user to stdout as one JSON list per page
// and, when cfg.MetricsAddr is set, serves /metrics until ctx is canceled.
func Run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	logger, err := NewLogger(cfg, stderr)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewPrometheusObserver(metricsNamespace, reg)
	if err != nil {
		return err
	}

	users, err := recordstore.Open(ctx, cfg, observability.NewSlogObserver(logger), metrics)
	if err != nil {
		return err
	}
	logger.Info("store opened", "users", users.Size(), "seed", cfg.SeedFile)

	pages, err := WritePages(ctx, stdout, users, cfg.DefaultPageSize)
	if err != nil {
		return err
	}
	logger.Info("users listed", "pages", pages, "users", users.Size())

	if cfg.MetricsAddr == "" {
		return nil
	}
	return serveMetrics(ctx, logger, cfg.MetricsAddr, reg)
}

// WritePages writes each batch of users as a {"users":[...]} JSON line and
// returns the number of pages written.
func WritePages(ctx context.Context, w io.Writer, users recordstore.Users, pageSize int) (int, error) {
	enc := json.NewEncoder(w)
	pages := 0
	cur := users.Iterate(pageSize)
	for cur.Next(ctx) {
		if err := enc.Encode(record.List{Users: record.FromBatch(cur.Batch())}); err != nil {
			return pages, fmt.Errorf("write page %d: %w", pages, err)
		}
		pages++
	}
	if err := cur.Err(); err != nil {
		return pages, fmt.Errorf("list users: %w", err)
	}
	return pages, nil
}

func serveMetrics(ctx context.Context, logger *slog.Logger, addr string, gatherer prometheus.Gatherer) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()
	logger.Info("serving metrics", "addr", lis.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown metrics server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
