// Package cmd implements the biomap command line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biopragmatics/biomap/pkg/logging"
	"github.com/biopragmatics/biomap/pkg/resources"
)

var (
	configFile string
	verbose    bool
	quiet      bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "biomap",
	Short: "Curated biological mapping tables",
	Long: `Biomap maintains the tab-separated tables of curated biological
entity mappings: confirmed-true mappings, confirmed-false mappings,
"unsure" mappings, and machine-generated predictions.

The commands here are housekeeping only: they reorder tables into
canonical form, retract filtered predictions, and report table status.
Producing and reviewing mappings happens in external tools.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute(version, commit, date string) error {
	Version = version
	Commit = commit
	Date = date
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.biomap.yaml)")
	rootCmd.PersistentFlags().String("dir", "", "resource directory holding the table files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")

	if err := viper.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir")); err != nil {
		panic(fmt.Sprintf("Failed to bind dir flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in the home directory and cwd with name
		// ".biomap" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".biomap")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("biomap")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	configureLogging()
}

// loadEnvFiles loads .env files in order of precedence.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envFile); err == nil && verbose {
			fmt.Fprintf(os.Stderr, "Loaded %s\n", envFile)
		}
	}
}

// configureLogging sets the global log level from flags and environment.
func configureLogging() {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.WarnLevel
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}
	logging.SetLevel(level)
}

// newResources builds the table repositories from the configured
// resource directory.
func newResources() (*resources.Resources, error) {
	dir := viper.GetString("dir")
	if dir == "" {
		return nil, fmt.Errorf("no resource directory configured: pass --dir, set BIOMAP_DIR, or set dir in the config file")
	}
	return resources.New(resources.Dir(dir), resources.WithLogger(*logging.Default())), nil
}
