package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/username/journal-dates/internal/config"
	"github.com/username/journal-dates/internal/journal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

const (
	exitIOError       = 1
	exitUsageError    = 2
	exitInternalError = 3
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		teeOutput  string
		cfg        *config.Config
		logger     *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "journal-dates <month> <start> <end>",
		Short: "Generate date headings for a journal",
		Long: "Print one heading per day from <end> down to <start> of <month> in 2020,\n" +
			"with a recap banner for the preceding week before every Sunday.",
		Example:       "  journal-dates March 3 4",
		Version:       version,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(3)(cmd, args); err != nil {
				return &journal.UsageError{Msg: err.Error()}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if cfg.Logging.File != "" {
				logger = initFileLogger(cfg.Logging.File, cfg.Logging.Level)
			} else {
				logger, err = initLogger(cfg.Logging.Level)
				if err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync() //nolint:errcheck

			req, err := journal.ParseRequest(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			out := cmd.OutOrStdout()
			if !cmd.Flags().Changed("tee-output") {
				teeOutput = cfg.Output.TeeFile
			}
			if teeOutput != "" {
				if err := os.MkdirAll(filepath.Dir(teeOutput), 0o755); err != nil {
					return fmt.Errorf("failed to create tee path: %w", err)
				}
				f, err := os.OpenFile(teeOutput, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open tee-output file: %w", err)
				}
				defer f.Close()
				out = io.MultiWriter(out, f)
				logger.Info("Output is mirrored", zap.String("file", teeOutput))
			}

			return journal.NewGenerator(out, logger).Run(req)
		},
	}

	cmd.Flags().BoolP("version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (optional)")
	cmd.Flags().StringVar(&teeOutput, "tee-output", "", "Mirror output to file (empty to disable)")
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &journal.UsageError{Msg: err.Error()}
	})

	return cmd
}

func exitCode(err error) int {
	var usage *journal.UsageError
	var internal *journal.InternalError
	switch {
	case errors.As(err, &usage):
		return exitUsageError
	case errors.As(err, &internal):
		return exitInternalError
	default:
		return exitIOError
	}
}

func initLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core)
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.WarnLevel
	}
	return zapLevel
}
