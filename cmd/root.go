package cmd

import (
	"fmt"
	"os"

	"order-hub/core/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "order-hub",
	Short: "Order Status Hub",
	Long: `Order Hub ingests order exports from System A (JSON) and System B (CSV),
reconciles them into one unified schema and serves read-only queries over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with the development config gives readable CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	// Totals are served as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}
