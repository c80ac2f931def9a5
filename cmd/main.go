package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "home_relay/docs"
	"home_relay/internal/config"
	"home_relay/internal/handlers"
	"home_relay/internal/ingest"
	"home_relay/internal/logger"
	"home_relay/internal/notify"
	"home_relay/internal/report"
	"home_relay/internal/repository"
	"home_relay/internal/repository/db"
	"home_relay/internal/server"
	"home_relay/internal/service"

	"github.com/go-redis/redis/v8"
)

const (
	configPath      = "configs"
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load(configPath)
	if err != nil {
		// logger config is not known yet
		logger.Get(logger.InfoLevel, logger.ConsoleFormat).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// open DB
	conn, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init store", "err", err, "driver", cfg.Database.Driver)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close store", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn, cfg.Dialect())
	if rdb := openRedis(cfg.Redis, log); rdb != nil {
		defer func() { _ = rdb.Close() }()
		repos.RelayState = repository.NewCachedRelayState(repos.RelayState, repository.NewRedisCache(rdb, cfg.Redis.TTL))
	}

	mailer := notify.NewMailer(cfg.Mail)
	services, err := service.NewService(repos, service.Deps{
		Builder:  report.NewBuilder(repos.Env, repos.RelayLog),
		Notifier: mailer,
		Report:   cfg.Report,
		Log:      log,
	})
	if err != nil {
		log.Fatalw("failed to init services", "err", err)
	}
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// daily report loop returns at once when disabled
	go services.DailyReport.Run(ctx, cfg.Report.Daily.Tick)

	sub := startIngest(cfg.MQTT, services.Env, log)

	// start HTTP server
	srv := server.New(cfg.Server.Port, apiHandler.InitRoutes())
	runHTTPServer(srv, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, sub, services, mailer, log)
}

// openDB opens the configured Store, creating and seeding tables.
func openDB(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	conn, err := db.Open(ctx, cfg.Dialect(), cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	log.Infow("store ready", "driver", cfg.Dialect())
	return conn, nil
}

// openRedis returns nil when no cache is configured or the server is unreachable.
func openRedis(cfg config.RedisConfig, log *logger.Logger) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unavailable; relay state cache disabled", "err", err, "addr", cfg.Addr)
		_ = rdb.Close()
		return nil
	}
	log.Infow("relay state cache enabled", "addr", cfg.Addr, "ttl", cfg.TTL)
	return rdb
}

// startIngest subscribes to the sensor topic when a broker is configured.
func startIngest(cfg config.MQTTConfig, env ingest.Recorder, log *logger.Logger) *ingest.Subscriber {
	if cfg.Broker == "" {
		return nil
	}
	sub := ingest.NewSubscriber(cfg, env, log)
	if err := sub.Start(); err != nil {
		log.Errorw("mqtt ingest disabled", "err", err, "broker", cfg.Broker)
		return nil
	}
	return sub
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, sub *ingest.Subscriber, services *service.Service, mailer *notify.Mailer, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()
	if sub != nil {
		sub.Stop()
	}

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}

	// no new job can be submitted once the daily loop has returned
	<-services.DailyReport.Done()

	// report jobs finish before the store is closed
	services.Reports.Wait()
	log.Infow("report jobs drained")

	// sends abandoned on job timeout have no SMTP deadline of their own
	sent := make(chan struct{})
	go func() {
		mailer.Wait()
		close(sent)
	}()
	select {
	case <-sent:
	case <-ctx.Done():
		log.Warnw("smtp sends still running at exit")
	}
}
