// Package cli implements the console's view shell: each route of the
// inventory interface is a subcommand wired to the catalog and form
// controllers.
package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tair/inventory-console/internal/api"
	"github.com/tair/inventory-console/internal/config"
	"github.com/tair/inventory-console/pkg/logger"
)

var (
	rootCmd = &cobra.Command{
		Use:          "inventory-console",
		Short:        "Supermarket inventory management console",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()

			level := viper.GetString("log-level")
			if level == "" {
				level = cfg.LogLevel
			}
			logger.Init("inventory-console", cfg.IsDevelopment())
			logger.SetLevel(strings.ToLower(level))

			baseURL := viper.GetString("api-url")
			if baseURL == "" {
				baseURL = cfg.APIBaseURL
			}
			timeout := viper.GetDuration("timeout")
			if timeout <= 0 {
				timeout = cfg.Timeout
			}
			apiClient = api.New(baseURL, api.WithTimeout(timeout))
		},
	}

	apiClient *api.Client
)

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "inventory API base URL")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "request timeout")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug|info|warn|error")

	viper.BindPFlag("api-url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("INVENTORY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// routeLogger satisfies form.Navigator for the CLI: route changes after a
// successful submission are logged rather than rendered.
type routeLogger struct{}

func (routeLogger) Navigate(route string) {
	logger.Debug().Str("route", route).Msg("Navigate")
}
