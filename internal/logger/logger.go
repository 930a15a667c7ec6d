package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taafi-health-tools/internal/config"
)

// NewLogger returns a logger that writes to stdout, tagged with the service
// name and host. Unknown levels fall back to info and anything other than
// "console" encodes as JSON.
func NewLogger(cfg config.LogConfig, service string) *zap.Logger {
	return newLogger(cfg, service, zapcore.Lock(os.Stdout))
}

func newLogger(cfg config.LogConfig, service string, out zapcore.WriteSyncer) *zap.Logger {
	core := zapcore.NewCore(encoderFor(cfg.Format), out, parseLevel(cfg.Level))

	var fields []zap.Field
	if service != "" {
		fields = append(fields, zap.String("service", service))
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		fields = append(fields, zap.String("hostname", host))
	}

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.ErrorOutput(zapcore.Lock(os.Stderr)),
		zap.Fields(fields...),
	)
}

func encoderFor(format string) zapcore.Encoder {
	if format == "console" {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(enc)
	}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(enc)
}

func parseLevel(level string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
