// Package log holds the process-wide logger. Sanitization warnings
// are routed here instead of into rendered output.
package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func init() {
	encConfig := zap.NewDevelopmentEncoderConfig()
	encConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encConfig.EncodeCaller = nil
	encConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.StampMicro))
	}

	encoder := zapcore.NewConsoleEncoder(encConfig)

	stdout, closer, err := zap.Open("stdout")
	if err != nil {
		closer()
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	stderr, closer, err := zap.Open("stderr")
	if err != nil {
		closer()
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if val, ok := os.LookupEnv("RINSE_DEBUG"); ok && strings.EqualFold(val, "true") {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(stdout), level)
	logger = zap.New(core, zap.ErrorOutput(stderr))
}

// S returns a *[zap.SugaredLogger].
func S() *zap.SugaredLogger {
	return logger.Sugar()
}

// L returns a *[zap.Logger].
func L() *zap.Logger {
	return logger
}
