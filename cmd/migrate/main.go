package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

var (
	migrationsPath string
	downSteps      int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Aplica as migrações do schema do dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&migrationsPath, "path", "", "diretório das migrações (padrão: MIGRATIONS_PATH)")

	down := &cobra.Command{
		Use:   "down",
		Short: "Reverte migrações",
		RunE: withMigrator(func(m *migrate.Migrate) error {
			if downSteps > 0 {
				return m.Steps(-downSteps)
			}
			return m.Down()
		}),
	}
	down.Flags().IntVar(&downSteps, "steps", 1, "quantidade de migrações a reverter (0 = todas)")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Aplica as migrações pendentes",
			RunE: withMigrator(func(m *migrate.Migrate) error {
				return m.Up()
			}),
		},
		down,
		&cobra.Command{
			Use:   "version",
			Short: "Mostra a versão atual do schema",
			RunE: withMigrator(func(m *migrate.Migrate) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Println("nenhuma migração aplicada")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Printf("versão %d (dirty=%t)\n", version, dirty)
				return nil
			}),
		},
	)

	return root
}

// withMigrator carrega a configuração, abre o banco e entrega o migrator ao comando
func withMigrator(run func(m *migrate.Migrate) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}
		log.Configure(cfg.App.LogLevel, cfg.App.Env)

		path := migrationsPath
		if path == "" {
			path = cfg.Migrations.Path
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		defer conn.Close()

		m, err := postgres.NewMigrator(ctx, conn.DB, path)
		if err != nil {
			return err
		}
		defer postgres.CloseMigrator(m)

		err = run(m)
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.Info("Nenhuma migração pendente")
			return nil
		}
		if err != nil {
			return fmt.Errorf("erro ao executar migração: %w", err)
		}

		logrus.WithField("path", path).Info("Migração concluída")
		return nil
	}
}
