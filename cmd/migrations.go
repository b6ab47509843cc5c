package cmd

import (
	"context"
	"fmt"

	"github.com/srct/whats-open/infra"
	"github.com/srct/whats-open/repositories"
	"github.com/srct/whats-open/utils"
)

func RunMigrations() error {
	dbConfig := LoadDatabaseConfig()

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	db, err := infra.NewMysqlConnectionPool(dbConfig)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := infra.WaitForDatabase(ctx, db, logger); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error waiting for the database: %v", err))
		return err
	}

	migrater := repositories.NewMigrater(db, logger)
	if err := migrater.Run(ctx); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error running migrations: %v", err))
		return err
	}

	return nil
}
