package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/xsel/internal/clip"
	"go.klb.dev/xsel/internal/logging"
	"go.klb.dev/xsel/internal/mode"
)

// bindViper wires the command's flags into v with the config file and
// XSEL_* environment variables underneath.
//
// Precedence (lowest → highest): defaults → config file → XSEL_* env vars → flags
//
// The config file is --config, then $XSEL_CONFIG, otherwise xsel.toml in
// $HOME/.config/xsel/.
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	v.SetDefault("log-format", string(logging.FormatAuto))
	v.SetDefault("log-level", "")
	v.SetDefault("retry-attempts", clip.DefaultRetry.Attempts)
	v.SetDefault("retry-delay", clip.DefaultRetry.Delay)
	v.SetDefault("probe-timeout", mode.DefaultProbeTimeout)

	v.SetEnvPrefix("XSEL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("xsel")
		v.SetConfigType("toml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "xsel"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides XSEL_CONFIG and auto-discovery)")
}

// setupLogging configures slog from v. --verbose wins over log-level.
func setupLogging(v *viper.Viper, w io.Writer) {
	level := logging.ParseLevel(v.GetString("log-level"))
	if v.GetBool("verbose") {
		level = logging.ParseLevel("debug")
	}
	logging.Setup(w, logging.ParseFormat(v.GetString("log-format")), level)
}
