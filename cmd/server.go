package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/srct/whats-open/api"
	"github.com/srct/whats-open/infra"
	"github.com/srct/whats-open/repositories"
	"github.com/srct/whats-open/repositories/clock"
	"github.com/srct/whats-open/usecases"
	"github.com/srct/whats-open/utils"
)

const (
	casClientTimeout = 10 * time.Second
	shutdownTimeout  = 5 * time.Second
)

func RunServer(apiVersion string) error {
	config := LoadServerConfig(apiVersion)

	logger := utils.NewLogger(config.LoggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := config.Validate(); err != nil {
		logger.ErrorContext(ctx, "invalid configuration", slog.String("error", err.Error()))
		return err
	}

	if config.Sentry.Dsn != "" {
		infra.SetupSentry(config.Sentry)
		defer sentry.Flush(3 * time.Second)
	}

	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return errors.Wrap(err, "could not load the campus time zone")
	}
	campusClock := clock.NewInLocation(location)

	signingKey, err := infra.ReadOrGenerateSigningKey(ctx, config.SecretKey, config.Api.Env)
	if err != nil {
		return err
	}

	db, err := infra.NewMysqlConnectionPool(config.Database)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	defer db.Close()
	if err := infra.WaitForDatabase(ctx, db, logger); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	casRepository, err := repositories.NewCasRepository(config.CasUrl, &http.Client{Timeout: casClientTimeout})
	if err != nil {
		return err
	}
	repos := repositories.NewRepositories(
		db,
		repositories.NewJWTRepository(signingKey, campusClock),
		casRepository,
		repositories.WithClock(campusClock),
	)

	uc := usecases.NewUsecases(repos,
		usecases.WithEmailDomain(config.EmailDomain),
		usecases.WithTokenLifetime(config.TokenLifetime),
		usecases.WithExportCacheTTL(config.ExportCacheTTL),
	)

	////////////////////////////////////////////////////////////
	// Seed the database
	////////////////////////////////////////////////////////////
	seedUsecase := uc.NewSeedUsecase()
	if err := seedUsecase.SeedSuperuser(ctx, config.Superuser); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	authUsecase := uc.NewAuthUsecase()
	router := api.InitRouterMiddlewares(ctx, config.Api, prometheus.DefaultRegisterer)
	server := api.NewServer(router, config.Api, uc, api.NewAuthentication(&authUsecase))

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.InfoContext(ctx, "starting server",
		slog.String("port", config.Api.Port),
		slog.String("version", apiVersion),
		slog.String("timezone", location.String()),
	)
	if err := serveUntilDone(notify, server); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	logger.InfoContext(ctx, "server returned")
	return nil
}

// serveUntilDone serves until ctx is done, then shuts the server down gracefully. It
// returns early with the error when the server cannot serve, e.g. when the port is taken.
func serveUntilDone(ctx context.Context, server *http.Server) error {
	serveErr := make(chan error, 1)
	go func() {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serveErr <- err
	}()

	select {
	case err := <-serveErr:
		return errors.Wrap(err, "Error while serving the app")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return errors.Wrap(server.Shutdown(shutdownCtx), "Error while shutting down the server")
}
