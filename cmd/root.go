package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app       = "jobmatch"
	envPrefix = "JOBMATCH"

	minScoreFlag = "min-score"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobmatch filters, ranks and summarizes job matching results",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobmatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("log-file", "", "also write json logs to this file, rotated by size")
	rootCmd.PersistentFlags().StringP("input", "i", "", "dump file written by the matching service client")
	rootCmd.PersistentFlags().StringP("exclude-file", "e", "", "file with records to exclude. Default is unset.")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format: table, json or yaml")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored tables")

	for _, name := range []string{"debug", "json", "log-file", "input", "exclude-file", "output", "no-color"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			log.Fatalf("binding %s flag: %v", name, err)
		}
	}

	rootCmd.PersistentFlags().StringP("keyword", "k", "", "space separated words that must all appear; #tag also matches tag")
	rootCmd.PersistentFlags().String("location", "", "location substring, case insensitive")
	rootCmd.PersistentFlags().String("experience", "", "experience level substring, case insensitive")
	rootCmd.PersistentFlags().String("status", "", "exact status, e.g. PENDING")
	rootCmd.PersistentFlags().Bool("active-only", false, "drop closed postings")
	// Not bound to viper: its zero default would always set a floor.
	rootCmd.PersistentFlags().Float64(minScoreFlag, 0, "drop unscored records and those scoring below this value (0..1)")

	for _, name := range []string{"keyword", "location", "experience", "status", "active-only"} {
		if err := viper.BindPFlag("filter."+name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			log.Fatalf("binding %s flag: %v", name, err)
		}
	}
}

func initConfig() {
	// A missing .env is fine; values may come from the real environment.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// Flags alone are enough to run, so only an explicit or broken config is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}
