// Package cmd is for command line interactions with the coonet application
package cmd

import (
	"log"

	"github.com/bnievesgdl/Co-Occurence-Networks/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "coonet",
	Short: `Build de Bruijn graphs from sequencing reads and co-occurrence
networks from abundance tables`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		settings, err := cmd.Flags().GetString("settings")
		if err != nil {
			settings = config.RootSettingsFile
		}
		config.Load(settings)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	// settings is an optional parameter for a settings file (that overrides the defaults)
	rootCmd.PersistentFlags().StringP("settings", "s", config.RootSettingsFile, "path to a YAML settings file")
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
}
