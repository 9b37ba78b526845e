package main

import (
	"log/slog"
	"time"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	appdb "github.com/Huzaifa-EJ/business-analyst-adk/db"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools/builtin"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

func openDatabaseFromViper() (*gorm.DB, error) {
	cfg := appdb.DefaultConfig()
	cfg.Driver = viper.GetString("db.driver")
	cfg.DSN = viper.GetString("db.dsn")
	cfg.Pool.MaxOpenConns = viper.GetInt("db.pool.max_open_conns")
	cfg.Pool.MaxIdleConns = viper.GetInt("db.pool.max_idle_conns")
	cfg.Pool.ConnMaxLifetime = viper.GetDuration("db.pool.conn_max_lifetime")
	cfg.SQLite.BusyTimeoutMs = viper.GetInt("db.sqlite.busy_timeout_ms")
	cfg.SQLite.WAL = viper.GetBool("db.sqlite.wal")
	cfg.SQLite.ForeignKeys = viper.GetBool("db.sqlite.foreign_keys")
	cfg.AutoMigrate = viper.GetBool("db.automigrate")
	return appdb.Open(cfg)
}

// buildRuntime opens the database and wires the full tool catalog over it.
func buildRuntime(logger *slog.Logger) (*tools.Registry, *crm.Service, error) {
	gdb, err := openDatabaseFromViper()
	if err != nil {
		return nil, nil, err
	}
	svc := crm.NewServiceWithOptions(gdb, crm.ServiceOptions{
		AutoProvisionAccounts: viper.GetBool("accounts.auto_provision"),
		Logger:                logger,
		Now:                   time.Now,
	})
	reg := tools.NewRegistry()
	builtin.RegisterAll(reg, svc)
	return reg, svc, nil
}
