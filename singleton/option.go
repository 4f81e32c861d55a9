package singleton

import (
	"github.com/hnhuaxi/lazysingleton"
	"go.uber.org/zap"
)

type Option struct {
	Log      lazysingleton.LoggerAdapter
	OnCreate func(n int64)
}

type OptionFunc func(opt *Option)

func OptLogger(logger *zap.Logger) OptionFunc {
	return func(opt *Option) {
		opt.Log = lazysingleton.StdLogger(logger)
	}
}

// OptOnCreate registers fn to run under the construction lock right after a
// successful construction, before the instance is published.
func OptOnCreate(fn func(n int64)) OptionFunc {
	return func(opt *Option) {
		opt.OnCreate = fn
	}
}
