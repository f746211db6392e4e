// Package cli wires environment configuration, logging and the driver into
// the psa root command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	psa "github.com/precisionsustainableag/psa-go"
	"github.com/precisionsustainableag/psa-go/internal/driver"
	"github.com/precisionsustainableag/psa-go/services/soilmoisture"
)

const (
	EnvAPIKey   = "PSA_API_KEY"
	EnvBaseURL  = "PSA_BASE_URL"
	EnvLogLevel = "PSA_LOG_LEVEL"
)

const defaultLogLevel = "warn"

// Config is read from the environment at startup.
type Config struct {
	APIKey   string
	BaseURL  string
	LogLevel string
}

// ConfigFromEnv reads Config, applying defaults for unset variables.
func ConfigFromEnv() Config {
	cnf := Config{
		APIKey:   os.Getenv(EnvAPIKey),
		BaseURL:  os.Getenv(EnvBaseURL),
		LogLevel: os.Getenv(EnvLogLevel),
	}
	if cnf.BaseURL == "" {
		cnf.BaseURL = psa.DefaultBaseURL
	}
	if cnf.LogLevel == "" {
		cnf.LogLevel = defaultLogLevel
	}
	return cnf
}

// Command returns the psa root command.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "psa",
		Short:         "Fetch soil moisture readings from the PSA API and print them",
		Long:          fmt.Sprintf("Fetch soil moisture readings from the PSA API and print them.\n\nThe API key is read from %s.", EnvAPIKey),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cnf := ConfigFromEnv()

			logger, err := newLogger(cnf.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer logger.Sync()

			return Run(cmd.Context(), cnf, cmd.OutOrStdout(), logger)
		},
	}
	return cmd
}

// Run builds the client from cnf and executes the driver once.
func Run(ctx context.Context, cnf Config, out io.Writer, logger *zap.Logger) error {
	logger = logger.With(zap.String("run_id", uuid.NewString()))
	if cnf.APIKey == "" {
		logger.Warn("no API key configured, sending request without credentials",
			zap.String("env", EnvAPIKey))
	}

	client, err := psa.New(
		psa.WithAPIKey(cnf.APIKey),
		psa.WithBaseURL(cnf.BaseURL),
		psa.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer client.Close()

	d := driver.New(soilmoisture.NewClient(client), out, driver.WithLogger(logger))
	return d.Run(ctx)
}

// newLogger builds a production logger writing to w at the given level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", EnvLogLevel, err)
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core), nil
}
