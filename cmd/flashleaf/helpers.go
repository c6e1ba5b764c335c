package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/flashleaf/flashleaf/internal/config"
	"github.com/flashleaf/flashleaf/internal/kvstore"
	"github.com/flashleaf/flashleaf/internal/remote"
	"github.com/flashleaf/flashleaf/internal/replica"
	"github.com/flashleaf/flashleaf/internal/syncer"
)

// app bundles the collaborators every command needs: configuration, the
// local replica and the remote authority client.
type app struct {
	config       *config.Config
	logger       *slog.Logger
	kv           *kvstore.SQLiteStore
	store        *replica.Store
	session      remote.StaticSession
	remoteClient remote.Client
	synchronizer *syncer.Synchronizer
}

func newApp() (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	kv, err := kvstore.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("kvstore.Open(%s) > %w", cfg.Storage.Path, err)
	}

	session := remote.StaticSession{
		User:  cfg.Remote.UserID,
		Token: cfg.Remote.AccessToken,
	}
	remoteClient := remote.NewRESTClient(
		cfg.Remote.BaseURL,
		cfg.Remote.APIKey,
		session,
		cfg.Remote.Timeout(),
		remote.DefaultRetryAttempts,
	)
	store := replica.New(kv, remoteClient, logger)

	return &app{
		config:       cfg,
		logger:       logger,
		kv:           kv,
		store:        store,
		session:      session,
		remoteClient: remoteClient,
		synchronizer: syncer.New(store, remoteClient, session, logger),
	}, nil
}

// Close drains pending remote pushes before releasing the local store.
func (a *app) Close() error {
	a.store.Wait()
	return a.kv.Close()
}
