package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "octatile",
	Short: "octatile draws tilings of the hyperbolic plane by octagons",
	Long: `octatile finds an octagon in the Poincaré disk whose opposite sides can be
glued into a genus two surface, and draws the octagons reached by walking
around its vertices.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Values of the persistent flags.
var (
	configPath string
	logLevel   string
)

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with settings; flags override it")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
}
