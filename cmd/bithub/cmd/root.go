package cmd

import (
	"github.com/kurumiimari/bithub"
	"github.com/kurumiimari/bithub/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"os"
)

const version = "1.0.0"

var (
	prefix     string
	configFile string
	logLevel   string
	dataDir    *bithub.DataDir
)

var cmdLogger = log.ModuleLogger("cmd")

var rootCmd = &cobra.Command{
	Use:          "bithub",
	Short:        "Deterministic BIP39 seed phrases and real-time quotations",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dd, err := bithub.NewDataDir(prefix)
		if err != nil {
			return errors.Wrap(err, "invalid prefix")
		}

		cfgPath := dd.ConfigFile()
		if configFile != "" {
			cfgPath, err = bithub.ExpandHome(configFile)
			if err != nil {
				return err
			}
		}
		settings, err := bithub.LoadSettings(cfgPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			settings.Log.Level = logLevel
		}
		logFile, err := bithub.ExpandHome(settings.Log.File)
		if err != nil {
			return err
		}
		if err := log.Init(settings.Log.Level, logFile); err != nil {
			return errors.Wrap(err, "error initializing logger")
		}

		bithub.Config.Prefix = dd.Path()
		bithub.Config.Settings = settings
		dataDir = dd
		cmdLogger.Debug("loaded settings", "prefix", dd.Path(), "config", cfgPath)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConsole(cmd, runMenu)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&prefix, "prefix", "~/.bithub", "Sets bithub's data directory")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Sets an alternate config file (defaults to <prefix>/config.yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Sets the log level (trace, debug, info, warning, error)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
