package main

import (
	"fmt"
	"log"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/app"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:           "propcloud",
		Short:         "PropCloud.io waitlist and dashboard server",
		RunE:          serve,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE:  serve,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return app.Migrate(cfg)
		},
	}

	adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts",
	}

	promoteCmd = &cobra.Command{
		Use:   "promote <email>",
		Short: "Grant the admin role to a registered account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := app.PromoteAdmin(cmd.Context(), cfg, args[0]); err != nil {
				return fmt.Errorf("failed to promote %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now an admin\n", args[0])
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the propcloud version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion)
		},
	}

	cfgFile string
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	adminCmd.AddCommand(promoteCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd, adminCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("propcloud: %v", err)
	}
}

func loadConfig() (app.Config, error) {
	v, err := app.NewViper(cfgFile)
	if err != nil {
		return app.Config{}, err
	}
	cfg, err := app.LoadConfig(v)
	if err != nil {
		return app.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
