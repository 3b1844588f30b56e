package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cosmos/ibc-go/modules/apps/counter/types"
)

const (
	envPrefix = "COUNTERSIM"

	flagRounds              = "rounds"
	flagCallback            = "callback"
	flagDispatchCallbackMsg = "dispatch-callback-msg"
	flagPacketTimeout       = "packet-timeout"
	flagLogLevel            = "log-level"
	flagLogJSON             = "log-json"
)

// Config holds the settings of a simulation run. Values come from flags,
// COUNTERSIM_* environment variables or their defaults, in that order.
type Config struct {
	Rounds              int    `mapstructure:"rounds"`
	Callback            bool   `mapstructure:"callback"`
	DispatchCallbackMsg bool   `mapstructure:"dispatch-callback-msg"`
	PacketTimeout       uint64 `mapstructure:"packet-timeout"`
	LogLevel            string `mapstructure:"log-level"`
	LogJSON             bool   `mapstructure:"log-json"`
}

// Params returns the module params the run configures on both chains.
func (c Config) Params() types.Params {
	return types.NewParams(c.DispatchCallbackMsg, c.PacketTimeout)
}

// Level parses the configured log level.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", c.Rounds)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return c.Params().Validate()
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Int(flagRounds, 2, "number of increment rounds to run")
	cmd.Flags().Bool(flagCallback, true, "request a callback on every increment packet")
	cmd.Flags().Bool(flagDispatchCallbackMsg, types.DefaultDispatchCallbackMsg, "dispatch the follow-up callback message on success acknowledgements")
	cmd.Flags().Uint64(flagPacketTimeout, types.DefaultPacketTimeoutSeconds, "relative packet timeout in seconds")
	cmd.Flags().String(flagLogLevel, zerolog.InfoLevel.String(), "log level (trace|debug|info|warn|error)")
	cmd.Flags().Bool(flagLogJSON, false, "emit logs as JSON")
}

// loadConfig binds the command flags and the environment into a fresh viper
// instance and decodes the result.
func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("couldn't read config: %w", err)
	}

	return cfg, cfg.Validate()
}
