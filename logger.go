package lazysingleton

import (
	"github.com/imdario/mergo"
	"github.com/jinzhu/copier"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

type LogFields map[string]interface{}

type LoggerAdapter interface {
	Error(msg string, err error, fields LogFields)
	Info(msg string, fields LogFields)
	Debug(msg string, fields LogFields)
	With(fields LogFields) LoggerAdapter
}

var defaultLogger = atomic.NewPointer(StdLogger(zap.NewNop()))

// Logger is used by every holder without its own logger. It discards
// everything until SetLogger is called.
func Logger() LoggerAdapter {
	return defaultLogger.Load()
}

// SetLogger replaces the package logger. It is safe to call while holders
// and runs are in flight.
func SetLogger(logger *zap.Logger) {
	defaultLogger.Store(StdLogger(logger))
}

type llogger struct {
	log    *zap.SugaredLogger
	fields LogFields
}

func StdLogger(logger *zap.Logger) *llogger {
	return &llogger{
		log: logger.Sugar(),
	}
}

func (log *llogger) fieldsArgs(fields LogFields) []interface{} {
	var (
		args []interface{}
		m    = make(LogFields)
	)

	if len(log.fields) > 0 {
		copier.Copy(&m, log.fields)
	}

	if len(fields) > 0 {
		mergo.Map(&m, fields, mergo.WithOverride)
	}

	for key, field := range m {
		args = append(args, key, field)
	}

	return args
}

func (log *llogger) Error(msg string, err error, fields LogFields) {
	log.log.Errorw(msg, append(log.fieldsArgs(fields), "error", err)...)
}

func (log *llogger) Info(msg string, fields LogFields) {
	log.log.Infow(msg, log.fieldsArgs(fields)...)
}

func (log *llogger) Debug(msg string, fields LogFields) {
	log.log.Debugw(msg, log.fieldsArgs(fields)...)
}

func (log *llogger) With(fields LogFields) LoggerAdapter {
	var m = make(LogFields)

	if len(log.fields) > 0 {
		copier.Copy(&m, log.fields)
	}

	if len(fields) > 0 {
		mergo.Map(&m, fields, mergo.WithOverride)
	}

	return &llogger{
		log:    log.log,
		fields: m,
	}
}
