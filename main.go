package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"restaurant-backend/cmd/config"
	migration "restaurant-backend/cmd/database/migrate"
	"restaurant-backend/internal/utils"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

var (
	configPath string

	seedEmail    string
	seedPassword string
	seedRole     string
)

var rootCmd = &cobra.Command{
	Use:   "restaurant-backend",
	Short: "Restaurant site API: menu, featured dishes, reservations and admin",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.LoadConfigFrom(configPath)
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB()
		if err != nil {
			return err
		}
		return migration.Migrate(db)
	},
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create or reset an admin account",
	Long: `Create the administrator account, or reset its password and role if it
already exists. Flags override ADMIN_EMAIL and ADMIN_PASSWORD.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB()
		if err != nil {
			return err
		}

		email, password := seedEmail, seedPassword
		if email == "" {
			email = utils.GetConfig("ADMIN_EMAIL")
		}
		if password == "" {
			password = utils.GetConfig("ADMIN_PASSWORD")
		}
		return migration.SeedUser(cmd.Context(), db, email, password, seedRole)
	},
}

func runServe(cmd *cobra.Command, args []string) error {
	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	if err := migration.Migrate(db); err != nil {
		return err
	}
	if utils.GetConfig("ADMIN_EMAIL") != "" {
		if err := migration.SeedAdmin(cmd.Context(), db); err != nil {
			log.Warnw("admin seeding skipped", "err", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + utils.GetConfig("APP_PORT"))
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorw("error shutting down server", "err", err)
	}
	app.Dispatcher.Wait()
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML config file")

	seedAdminCmd.Flags().StringVar(&seedEmail, "email", "", "Account e-mail (default: ADMIN_EMAIL)")
	seedAdminCmd.Flags().StringVar(&seedPassword, "password", "", "Account password (default: ADMIN_PASSWORD)")
	seedAdminCmd.Flags().StringVar(&seedRole, "role", "admin", "Role: admin, manager or user")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
