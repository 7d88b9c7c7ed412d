// Package api implements app.Runner for the custody service process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apphttp "github.com/kevinbg012/mb-crypto-challenge/pkg/app/http"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/asset"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/auth"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/config"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custodystore"
	depositservice "github.com/kevinbg012/mb-crypto-challenge/pkg/deposit/service"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/ethereum"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/finalizer"
	issuanceservice "github.com/kevinbg012/mb-crypto-challenge/pkg/issuance/service"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/keys"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/pgutil"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/scheduler"
	transferservice "github.com/kevinbg012/mb-crypto-challenge/pkg/transfer/service"
)

// Scheduled job names.
const (
	JobAddressIssuance = "address_issuance"
	JobDispatch        = "dispatch"
	JobFinalization    = "finalization"
)

// Server holds cfg to init the custody service.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new custody server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// services bundles the wired domain services.
type services struct {
	issuance  issuanceservice.Service
	transfer  transferservice.Service
	deposit   depositservice.Service
	finalizer *finalizer.Finalizer
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("custody config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting custody service",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Int64("chain_id", cfg.Ethereum.ChainID),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() { _ = db.Close() }()

	deriver, err := keys.NewDeriverFromEnv(cfg.Keys)
	if err != nil {
		return fmt.Errorf("load key material: %w", err)
	}

	registry, err := asset.NewRegistry(cfg.Tokens)
	if err != nil {
		return fmt.Errorf("build asset registry: %w", err)
	}

	chain, err := ethereum.Dial(ctx, &cfg.Ethereum, logger)
	if err != nil {
		return fmt.Errorf("connect chain: %w", err)
	}
	defer chain.Close()

	store := custodystore.NewStore(db)
	if err := ensureTreasury(ctx, store, deriver); err != nil {
		return err
	}
	logger.Info("Treasury address ready", zap.String("address", deriver.Treasury().Hex()))

	svcs := s.buildServices(store, chain, deriver, registry, logger)
	router := s.setupRouter(db, svcs, logger)
	srv := apphttp.NewServer(&cfg.Server, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return apphttp.ServeAndWait(gctx, srv, logger, cfg.Server.ShutdownTimeout)
	})
	if cfg.Scheduler.Enabled {
		sched := s.buildScheduler(svcs, logger)
		g.Go(func() error { return sched.Run(gctx) })
	} else {
		logger.Warn("Scheduler disabled; address issuance, dispatch and finalization will not run")
	}

	return g.Wait()
}

// ensureTreasury records the fee-funding address so it is recognized as managed.
func ensureTreasury(ctx context.Context, store custodystore.Store, deriver *keys.Deriver) error {
	err := store.EnsureAddress(ctx, &custody.Address{
		ID:              uuid.New(),
		Address:         deriver.Treasury().Hex(),
		Pool:            custody.PoolMaster,
		DerivationIndex: custody.TreasuryIndex,
	})
	if err != nil {
		return fmt.Errorf("ensure treasury address: %w", err)
	}
	return nil
}

func (s *Server) buildServices(
	store custodystore.Store,
	chain *ethereum.Client,
	deriver *keys.Deriver,
	registry *asset.Registry,
	logger *zap.Logger,
) *services {
	cfg := s.cfg

	issuance := issuanceservice.NewService(store, deriver, logger)
	transfer := transferservice.NewService(&cfg.Ethereum, store, chain, deriver, registry, transferservice.NewNonceLocker(), logger)
	deposit := depositservice.NewService(store, chain, registry, cfg.Ethereum.Confirmations, logger)

	return &services{
		issuance:  issuanceservice.NewLog(issuance, logger),
		transfer:  transferservice.NewLog(transfer, logger),
		deposit:   depositservice.NewLog(deposit, logger),
		finalizer: finalizer.New(&cfg.Ethereum, &cfg.Finalizer, store, chain, logger),
	}
}

func (s *Server) buildScheduler(svcs *services, logger *zap.Logger) *scheduler.Scheduler {
	interval := s.cfg.Scheduler.Interval
	timeout := s.cfg.Scheduler.JobTimeout

	var opts []scheduler.Option
	if s.cfg.Scheduler.RunOnStart {
		opts = append(opts, scheduler.WithRunOnStart())
	}

	sched := scheduler.New(logger, opts...)
	sched.Register(JobAddressIssuance, interval, timeout, svcs.issuance.RunCycle)
	sched.Register(JobDispatch, interval, timeout, svcs.transfer.RunDispatchCycle)
	sched.Register(JobFinalization, interval, timeout, svcs.finalizer.RunCycle)
	return sched
}

func (s *Server) setupRouter(db *bun.DB, svcs *services, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.requestTimeout()))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/ready", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			logger.Warn("Readiness check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("database unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if s.cfg.Auth.Enabled {
			r.Use(auth.Middleware(auth.NewJWTValidator(s.cfg.Auth), logger))
			logger.Info("Bearer token authentication enabled", zap.String("jwks_url", s.cfg.Auth.JWKSURL))
		}

		issuanceservice.RegisterRoutes(r, svcs.issuance, logger)
		transferservice.RegisterRoutes(r, svcs.transfer, logger)
		depositservice.RegisterRoutes(r, svcs.deposit, logger)
	})

	return r
}

func (s *Server) requestTimeout() time.Duration {
	if s.cfg.Server.RequestTimeout > 0 {
		return s.cfg.Server.RequestTimeout
	}
	return 60 * time.Second
}
