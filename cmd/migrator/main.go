package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"
)

const storagePathFlag = "storage-path"

func main() {
	storagePath, migrationsPath := getFlagsValues()
	if storagePath == "" {
		slog.Error("too few args",
			"err", fmt.Errorf("--%s flag: required", storagePathFlag))
		fallDown()
	}
	makeMigrations(storagePath, migrationsPath)
}

type MigrationLogger struct {
	logger *slog.Logger
}

func (ml MigrationLogger) Printf(format string, v ...any) {
	ml.logger.Info(fmt.Sprintf(format, v...))
}

func (ml MigrationLogger) Verbose() bool { return true }

func getFlagsValues() (storage, migrations string) {
	storagePath := pflag.StringP(storagePathFlag, "s", "", "postgres DSN")
	migrationsPath := pflag.StringP(
		"migrations-path", "m", "./migrations", "migrations directory",
	)
	pflag.Parse()
	return *storagePath, *migrationsPath
}

func makeMigrations(storagePath, migrationsPath string) {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		fmt.Sprintf("pgx5://%s", storagePath),
	)
	if err != nil {
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}

	m.Log = MigrationLogger{slog.Default()}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.Log.Printf("no migrations to apply")
			return
		}
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}
	m.Log.Printf("migrations applied")
}

func fallDown() {
	os.Exit(2)
}
