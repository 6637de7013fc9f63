package daemon

import (
	"context"
	"strings"

	"github.com/pcarvalho/deskd/internal/api"
	"github.com/pcarvalho/deskd/internal/bus"
	"github.com/pcarvalho/deskd/internal/config"
	"github.com/pcarvalho/deskd/internal/lock"
	"github.com/pcarvalho/deskd/internal/logging"
	"github.com/pcarvalho/deskd/internal/presence"
	"github.com/pcarvalho/deskd/internal/reconcile"
	"github.com/pcarvalho/deskd/internal/refresh"
	"github.com/pcarvalho/deskd/internal/rest"
	"github.com/pcarvalho/deskd/internal/rtc"
	"github.com/pcarvalho/deskd/internal/session"
	"github.com/pcarvalho/deskd/internal/status"
	"github.com/pcarvalho/deskd/internal/store"
	"github.com/pcarvalho/deskd/internal/subs"
	"github.com/pcarvalho/deskd/internal/transport"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved profile configuration passed to the fx module.
type Params struct {
	Profile    string
	Config     *config.Config
	SocketPath string // optional override for testing; empty = use default
}

// Module returns the fx module for the daemon, composing all providers
// and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			provideBus,
			provideStateMachine,
			provideLock,
			provideStore,
			provideInvalidator,
			provideRESTClient,
			provideChannel,
			provideRegistry,
			provideAggregator,
			provideBridge,
			provideWorker,
			provideClient,
			provideSessionService,
			provideConversationService,
			provideMessageService,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideLogger(p Params) (*zap.Logger, error) {
	return logging.New(session.LogPath(p.Profile), p.Profile)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideStateMachine(b *bus.Bus) *status.Machine {
	return status.NewMachine(b)
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := session.EnsureDir(p.Profile); err != nil {
		return nil, err
	}
	logger.Info("acquiring profile lock", zap.String("profile", p.Profile))
	l, err := lock.Acquire(session.Dir(p.Profile))
	if err != nil {
		return nil, err
	}
	logger.Info("profile lock acquired")
	return l, nil
}

func provideStore(p Params, logger *zap.Logger) (*store.DB, error) {
	dbPath := session.CacheDBPath(p.Profile)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("cache initialized", zap.String("path", dbPath))
	return db, nil
}

func provideInvalidator(db *store.DB, b *bus.Bus, logger *zap.Logger) *store.Invalidator {
	return store.NewInvalidator(db, b, logger)
}

func provideRESTClient(p Params) *rest.Client {
	profile := p.Profile
	return rest.NewClient(p.Config.Server.BaseURL, func() string {
		return session.ReadToken(profile)
	})
}

func provideChannel(p Params, logger *zap.Logger) *transport.Channel {
	profile := p.Profile
	return transport.NewChannel(transport.Options{
		URL:               realtimeURL(p.Config),
		Token:             func() string { return session.ReadToken(profile) },
		AutoReconnect:     p.Config.AutoReconnect(),
		ReconnectInterval: p.Config.ReconnectInterval(),
		Logger:            logger,
	})
}

func provideRegistry(channel *transport.Channel, logger *zap.Logger) *subs.Registry {
	return subs.NewRegistry(channel, logger)
}

func provideAggregator(p Params, inv *store.Invalidator, b *bus.Bus, logger *zap.Logger) *presence.Aggregator {
	return presence.NewAggregator(p.Config.TypingTTL(), inv, b, logger)
}

func provideBridge(db *store.DB, inv *store.Invalidator, b *bus.Bus, logger *zap.Logger) *reconcile.Bridge {
	return reconcile.NewBridge(db, inv, b, logger)
}

func provideWorker(db *store.DB, restClient *rest.Client, b *bus.Bus, logger *zap.Logger) *refresh.Worker {
	return refresh.NewWorker(db, restClient, b, logger)
}

func provideClient(
	channel *transport.Channel,
	machine *status.Machine,
	registry *subs.Registry,
	agg *presence.Aggregator,
	bridge *reconcile.Bridge,
	restClient *rest.Client,
	b *bus.Bus,
	logger *zap.Logger,
) *rtc.Client {
	return rtc.NewClient(channel, machine, registry, agg, bridge, restClient, b, logger)
}

func provideSessionService(p Params, client *rtc.Client, db *store.DB) *api.SessionService {
	return api.NewSessionService(p.Profile, client, db)
}

func provideConversationService(p Params, db *store.DB, client *rtc.Client, b *bus.Bus) *api.ConversationService {
	return api.NewConversationService(db, client, b, p.Profile)
}

func provideMessageService(db *store.DB, client *rtc.Client, b *bus.Bus) *api.MessageService {
	return api.NewMessageService(db, client, b)
}

func registerLifecycle(lc fx.Lifecycle, srv *Server, lk *lock.Lock, client *rtc.Client, worker *refresh.Worker, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Start gRPC server in background.
			go func() {
				if err := srv.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()

			worker.Start(context.Background())

			if client.HasCredential() {
				if err := client.Connect(context.Background()); err != nil {
					logger.Error("auto-connect failed", zap.Error(err))
				}
			} else {
				logger.Info("no credential stored, staying offline until auth")
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			worker.Stop()
			if err := client.Disconnect(); err != nil {
				logger.Warn("error disconnecting", zap.Error(err))
			}
			srv.Stop(ctx)
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			return nil
		},
	})
}

// realtimeURL derives the websocket endpoint from the configured HTTP
// base URL and ws path.
func realtimeURL(cfg *config.Config) string {
	base := strings.TrimRight(cfg.Server.BaseURL, "/")
	switch {
	case strings.HasPrefix(base, "https://"):
		base = "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base + cfg.Server.WSPath
}
