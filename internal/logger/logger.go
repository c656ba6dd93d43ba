package logger

import (
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//go:generate options-gen -out-filename=logger_options.gen.go -from-struct=Options
type Options struct {
	level          string `option:"mandatory" validate:"required,oneof=debug info warn error"`
	productionMode bool
	sink           zapcore.WriteSyncer
}

// Init replaces the global zap logger. Logs go to stderr unless a sink is given,
// stdout is kept for the launcher's own console lines.
func Init(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("validate options: %v", err)
	}

	logLevel, err := zap.ParseAtomicLevel(opts.level)
	if err != nil {
		return fmt.Errorf("invalid logger level: %v", err)
	}

	encoder := zapcore.NewConsoleEncoder
	encoderCfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "component",
		TimeKey:        "T",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	if opts.productionMode {
		encoder = zapcore.NewJSONEncoder
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	sink := opts.sink
	if sink == nil {
		sink = zapcore.Lock(os.Stderr)
	}

	l := zap.New(zapcore.NewCore(encoder(encoderCfg), sink, logLevel))
	zap.ReplaceGlobals(l)

	return nil
}

func Sync() {
	if err := zap.L().Sync(); err != nil && !errors.Is(err, syscall.ENOTTY) && !errors.Is(err, syscall.EINVAL) {
		stdlog.Printf("cannot sync logger: %v", err)
	}
}
