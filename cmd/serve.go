package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/begraf/tourenblick/cmd/serve"
	"gitlab.com/begraf/tourenblick/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built tour directory",
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "Listen address")
	serveCmd.Flags().StringP("build-dir", "d", "", "Built tour directory to serve")

	if err := viper.BindPFlag(config.KeyServeAddress, serveCmd.Flags().Lookup("address")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag(config.KeyBuildDirectory, serveCmd.Flags().Lookup("build-dir")); err != nil {
		panic(err)
	}
}
