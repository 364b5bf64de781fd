// Command migrate applies the database schema.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-todo-catalog/internal/app"
	"github.com/adanyl0v/go-todo-catalog/internal/config"
	"github.com/adanyl0v/go-todo-catalog/internal/migrations"
)

// dsn is set by the --dsn flag. When empty the POSTGRES_* variables are used.
var dsn string

func main() {
	app.InitDefaultLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "migrate",
	Short:             "Manage the todo catalog database schema",
	SilenceUsage:      true,
	PersistentPreRunE: resolveDSN,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "postgres connection url (default: built from POSTGRES_* env)")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
	rootCmd.AddCommand(statusCmd)
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return migrations.Up(cmd.Context(), app.Logger(), dsn)
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return migrations.Down(cmd.Context(), app.Logger(), dsn)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the state of every migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return migrations.Status(cmd.Context(), app.Logger(), dsn)
	},
}

func resolveDSN(cmd *cobra.Command, args []string) error {
	if dsn != "" {
		return nil
	}

	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	dsn = cfg.Postgres.URL()
	return nil
}
