package cmd

import (
	"context"
	"fmt"

	"order-hub/core/config"
	"order-hub/core/reconcile"
	"order-hub/core/source"
	"order-hub/core/storage"
	"order-hub/feature/systema"
	"order-hub/feature/systemb"

	"go.uber.org/zap"
)

// newEngine wires the source fetcher selected by cfg and both system adapters.
// Nothing is read until Load is called.
func newEngine(ctx context.Context, cfg *config.Config, l *zap.Logger) (*reconcile.Engine, error) {
	var client storage.Client
	if cfg.Source.Backend == source.BackendS3 {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c

		exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Storage.Bucket, err)
		}
		if !exists {
			l.Warn("Source bucket does not exist, exports will be reported missing", zap.String("bucket", cfg.Storage.Bucket))
		}
	}

	fetcher, err := source.New(cfg.Source, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}

	l.Info("Using order sources",
		zap.String("backend", cfg.Source.Backend),
		zap.String("system_a", fetcher.Location(cfg.Source.SystemAFile)),
		zap.String("system_b", fetcher.Location(cfg.Source.SystemBFile)),
	)

	return reconcile.NewEngine(fetcher, l,
		systema.NewAdapter(cfg.Source.SystemAFile),
		systemb.NewAdapter(cfg.Source.SystemBFile),
	), nil
}
