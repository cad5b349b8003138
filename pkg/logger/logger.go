package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger

// Init builds the process-wide logger. Development mode switches to the
// console encoder with colored levels.
func Init(development bool) error {
	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}

	base, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	log = base.Sugar()
	return nil
}

func get() *zap.SugaredLogger {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return log
}

func Debugf(template string, args ...any) { get().Debugf(template, args...) }
func Infof(template string, args ...any)  { get().Infof(template, args...) }
func Warnf(template string, args ...any)  { get().Warnf(template, args...) }
func Errorf(template string, args ...any) { get().Errorf(template, args...) }

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
