package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var configFile string

	rootCmd := newRootCmd(&configFile)
	rootCmd.AddCommand(serveCmd(&configFile))
	rootCmd.AddCommand(exportCmd(&configFile))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(configFile *string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Triphorium building energy dashboard",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVarP(configFile, "config", "c", "", "optional config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("api-url", "", "energy backend base URL")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	return rootCmd
}
