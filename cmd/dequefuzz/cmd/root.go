package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lucasgdosr/deque/v2/internal/fuzz"
)

const envPrefix = "DEQUEFUZZ"

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds the dequefuzz command with its own configuration, read
// from flags, DEQUEFUZZ_* environment variables and an optional YAML file.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "dequefuzz",
		Short: "Run seeded random operation scripts against every deque configuration",
		Long: `dequefuzz runs the same seeded random scripts of pushes, pops, inserts,
erases, shrinks, copies and moves against deques of several inline capacities
and against a reference deque, and fails as soon as any of them disagree on
contents, live element count or checksum.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, v)
		},
	}

	defaults := fuzz.DefaultConfig()
	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./dequefuzz.yaml)")
	flags.Uint64("seed", defaults.Seed, "seed of the random scripts")
	flags.Int("steps", defaults.Steps, "steps per worker")
	flags.Int("workers", defaults.Workers, "number of workers, each with its own deques")
	flags.Int("max-target", defaults.MaxTarget, fmt.Sprintf("queues wander between 0 and max-target elements, at most %d", fuzz.MaxTargetLimit))
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text or json)")
	flags.Bool("metrics", false, "print allocator metrics after the run")

	bindFlags(v, flags, map[string]string{
		"seed":       "seed",
		"steps":      "steps",
		"workers":    "workers",
		"max-target": "max_target",
		"log-level":  "log.level",
		"log-format": "log.format",
		"metrics":    "metrics",
	})
	return rootCmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for flag, key := range keys {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %s", flag, err))
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigType("yaml")
		v.SetConfigName("dequefuzz")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "read config")
		}
	}
	return nil
}
