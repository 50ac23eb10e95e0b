package log

import (
	"io/ioutil"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB = 100
)

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

func createZapLog(logFullName string, maxSize, maxAge, maxBackups int, compress bool, logLevel zapcore.LevelEnabler, callSkip int) *zap.SugaredLogger {
	if maxSize > logFileMaxSizeMB {
		maxSize = logFileMaxSizeMB
	}

	if maxAge < 0 {
		maxAge = 0
	}

	if maxBackups < 0 {
		maxBackups = 0
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFullName,
		MaxSize:    maxSize, // megabytes
		MaxBackups: maxBackups,
		MaxAge:     maxAge, // days
		Compress:   compress,
	})

	cfg := zapcore.EncoderConfig{
		MessageKey:     "M",
		LevelKey:       "L",
		NameKey:        "N",
		TimeKey:        "T",
		CallerKey:      "C",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     timeEncoder,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		sink,
		logLevel,
	)

	// stderr belongs to the operator diagnostics, so write errors on the
	// log file (e.g. /var/log not writable for a non-root caller) go nowhere.
	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(callSkip),
		zap.ErrorOutput(zapcore.AddSync(ioutil.Discard)),
	)
	return logger.Sugar()
}
