package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"localdir/internal/audit"
	audithandler "localdir/internal/audit/handler"
	auditmemory "localdir/internal/audit/store/memory"
	auditpostgres "localdir/internal/audit/store/postgres"
	"localdir/internal/moderation/events"
	moderationhandler "localdir/internal/moderation/handler"
	moderationmetrics "localdir/internal/moderation/metrics"
	moderationservice "localdir/internal/moderation/service"
	moderationstore "localdir/internal/moderation/store"
	"localdir/internal/notification"
	notificationhandler "localdir/internal/notification/handler"
	"localdir/internal/notification/resend"
	"localdir/internal/platform/authtoken"
	"localdir/internal/platform/config"
	"localdir/internal/platform/httpserver"
	"localdir/internal/platform/logger"
	"localdir/internal/platform/metrics"
	"localdir/internal/platform/postgres"
	"localdir/internal/platform/redis"
	httptransport "localdir/internal/transport/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		log := logger.New(cfg.LogLevel, cfg.LogFormat)
		return serve(cmd.Context(), cfg, log)
	},
}

// stores holds the persistence chosen at startup.
type stores struct {
	entities moderationstore.Store
	creator  moderationstore.Creator
	audit    audit.Store
	db       *sql.DB
}

func openStores(ctx context.Context, cfg config.Server, log *slog.Logger) (*stores, error) {
	if cfg.DatabaseURL == "" {
		if cfg.IsProduction() {
			return nil, errors.New("DATABASE_URL is required in production")
		}
		log.WarnContext(ctx, "DATABASE_URL not set; using in-memory stores")
		mem := moderationstore.NewInMemory()
		return &stores{entities: mem, creator: mem, audit: auditmemory.NewInMemoryStore()}, nil
	}

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &stores{
		entities: moderationstore.NewPostgres(db),
		audit:    auditpostgres.New(db),
		db:       db,
	}, nil
}

func newSender(cfg config.Server, log *slog.Logger) notification.Sender {
	if cfg.Mail.ResendAPIKey == "" {
		log.Warn("RESEND_API_KEY not set; notifications are logged, not sent")
		return notification.NewLogSender(log)
	}
	return resend.New(cfg.Mail.ResendAPIKey, cfg.Mail.ResendBaseURL, cfg.Mail.From, resend.WithLogger(log))
}

func serve(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	health := map[string]httptransport.HealthCheck{}

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	if st.db != nil {
		defer st.db.Close()
		health["postgres"] = st.db.PingContext
	}
	if st.creator != nil {
		if err := moderationstore.SeedDemo(ctx, st.creator, time.Now().UTC()); err != nil {
			return err
		}
	}

	modMetrics := moderationmetrics.New(reg)
	var opts []moderationservice.Option

	var entities moderationservice.EntityStore = st.entities
	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		health["redis"] = rdb.Health
		cached := moderationstore.NewCached(st.entities, rdb.Client, cfg.PendingCache, log, modMetrics)
		entities = cached
		opts = append(opts, moderationservice.WithCountInvalidator(cached))
	}

	var publisher moderationservice.DecisionPublisher = events.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kp, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			return err
		}
		defer kp.Close()
		if err := kp.EnsureTopic(ctx, 3, 1); err != nil {
			log.WarnContext(ctx, "could not ensure decision topic", "topic", cfg.Kafka.Topic, "error", err)
		}
		publisher = kp
	}
	opts = append(opts, moderationservice.WithPublisher(publisher))

	auditSvc := audit.NewService(st.audit,
		audit.WithLogger(log),
		audit.WithMetrics(audit.NewMetrics(reg)),
	)

	toggle := notification.NewSwitch(newSender(cfg, log))
	notifier := notification.NewService(toggle, notification.NewTemplates(cfg.Mail.ReplyTo),
		notification.WithLogger(log),
		notification.WithMetrics(notification.NewMetrics(reg)),
	)

	opts = append(opts, moderationservice.WithLogger(log), moderationservice.WithMetrics(modMetrics))
	modSvc, err := moderationservice.New(entities, auditSvc, notifier, opts...)
	if err != nil {
		return err
	}

	router := httptransport.NewRouter(httptransport.Config{
		Logger:    log,
		Validator: authtoken.New(cfg.Auth.SigningKey, cfg.Auth.Issuer),
		AdminRole: cfg.Auth.AdminRole,
		Gatherer:  reg,
		Metrics:   metrics.New(reg),
		Health:    health,
		Admin: []httptransport.Registrar{
			moderationhandler.New(modSvc, log),
			audithandler.New(auditSvc, log),
			notificationhandler.New(toggle, auditSvc, log),
		},
	})

	srv := httpserver.New(cfg.Addr, router)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.InfoContext(gctx, "starting localdir", "addr", cfg.Addr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
