package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func PaymentIntentID(id string) zap.Field {
	return zap.String("payment_intent_id", id)
}

func DownloadID(id string) zap.Field {
	return zap.String("download_id", id)
}

// NewLogger builds the process-wide JSON logger. Development mode gets
// console encoding so local runs stay readable.
func NewLogger(environment string) *zap.Logger {
	zapConfig := zap.Config{
		Level:       zap.NewAtomicLevelAt(zap.InfoLevel),
		Development: environment != "production",
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if environment != "production" {
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	l, err := zapConfig.Build()
	if err != nil {
		panic(err)
	}
	return l
}
