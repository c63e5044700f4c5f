package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/monetization-dashboard-api/internal/config"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
)

func main() {
	log.Setup("info", os.Getenv("APP_ENV"))

	if err := rootCommand().Execute(); err != nil {
		log.L.WithError(err).Error("Erro ao executar migração")
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var database string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Migrações dos bancos advertiser, publisher e offerwall",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&database, "database", "all", "banco lógico (advertiser, publisher, offerwall ou all)")

	up := &cobra.Command{
		Use:   "up",
		Short: "Aplica todas as migrações pendentes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return forEachDatabase(cmd.Context(), database, func(runner *migration.Runner) error {
				return runner.Up()
			})
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Desfaz as últimas migrações",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return forEachDatabase(cmd.Context(), database, func(runner *migration.Runner) error {
				return runner.Down(steps)
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "quantidade de migrações a desfazer")

	version := &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão atual de cada banco",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return forEachDatabase(cmd.Context(), database, func(runner *migration.Runner) error {
				v, dirty, err := runner.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", v, dirty)
				return nil
			})
		},
	}

	root.AddCommand(up, down, version, seedAdminCommand())

	return root
}

func seedAdminCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Cria ou atualiza o login administrativo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			conn, err := postgres.Open(cmd.Context(), cfg.Databases[config.AdvertiserDatabase])
			if err != nil {
				return err
			}
			defer conn.Close()

			id, err := migration.SeedAdmin(cmd.Context(), conn, email, password, cfg.Auth.BcryptCost)
			if err != nil {
				return err
			}

			log.L.WithFields(log.Fields{"login_id": id, "email": email}).Info("Administrador criado")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email do administrador")
	cmd.Flags().StringVar(&password, "password", "", "senha do administrador")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func forEachDatabase(ctx context.Context, database string, fn func(*migration.Runner) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	names := migration.Databases
	if database != "all" {
		names = []string{database}
	}

	for _, name := range names {
		dbConfig, ok := cfg.Databases[name]
		if !ok {
			return fmt.Errorf("%w: %s", migration.ErrUnknownDatabase, name)
		}

		if err := runOn(ctx, dbConfig, fn); err != nil {
			return err
		}

		log.L.WithField("database", name).Info("Migração concluída")
	}

	return nil
}

func runOn(ctx context.Context, dbConfig config.Database, fn func(*migration.Runner) error) error {
	conn, err := postgres.Open(ctx, dbConfig)
	if err != nil {
		return err
	}

	runner, err := migration.NewRunner(conn)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer runner.Close()

	return fn(runner)
}
