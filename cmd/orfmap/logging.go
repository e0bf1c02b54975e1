package main

import (
	"io"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the CLI logger. Logs go to stderr unless a log file is
// given by flag or log.filename, in which case they go to a rotating file.
func newLogger(stderr io.Writer, verbose bool, logFile string) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	if strings.TrimSpace(logFile) == "" {
		logFile = viper.GetString(keyLogFilename)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var sink zapcore.WriteSyncer
	if strings.TrimSpace(logFile) != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    viper.GetInt(keyLogMaxSize),
			MaxBackups: viper.GetInt(keyLogMaxBackups),
			MaxAge:     viper.GetInt(keyLogMaxAge),
			Compress:   viper.GetBool(keyLogCompress),
		})
	} else {
		sink = zapcore.AddSync(stderr)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, level)
	return zap.New(core)
}
