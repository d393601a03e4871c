package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
)

// NewMigrator cria a instância do golang-migrate sobre uma conexão reservada do pool.
// Fechar o migrator devolve só essa conexão; o pool continua aberto.
func NewMigrator(ctx context.Context, db *sql.DB, migrationsPath string) (*migrate.Migrate, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao reservar conexão para migração: %w", err)
	}

	driver, err := migratepg.WithConnection(ctx, conn, &migratepg.Config{})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("erro ao criar driver de migração: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres", driver)
	if err != nil {
		_ = driver.Close()
		return nil, fmt.Errorf("erro ao criar instância de migração: %w", err)
	}

	return m, nil
}

// RunMigrations aplica as migrações pendentes; sem migrações pendentes não é erro
func RunMigrations(ctx context.Context, db *sql.DB, migrationsPath string) error {
	m, err := NewMigrator(ctx, db, migrationsPath)
	if err != nil {
		return err
	}
	defer CloseMigrator(m)

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logrus.Info("Nenhuma migração pendente")
		return nil
	}
	if err != nil {
		return fmt.Errorf("erro ao executar migrações: %w", err)
	}

	version, _, _ := m.Version()
	logrus.WithField("version", version).Info("Migrações aplicadas com sucesso")
	return nil
}

func CloseMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logrus.WithError(srcErr).Warn("Erro ao fechar origem das migrações")
	}
	if dbErr != nil {
		logrus.WithError(dbErr).Warn("Erro ao fechar banco das migrações")
	}
}
