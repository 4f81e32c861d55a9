package harness

import (
	"github.com/creasty/defaults"
	"github.com/hnhuaxi/lazysingleton"
	"github.com/imdario/mergo"
	"github.com/pkg/errors"
)

const (
	StudentMessage  = "Student Message: This is the message!!"
	EmployeeMessage = "Employee Message: This is the message!!"
	FirstMessage    = "This is the first message!!"
	SecondMessage   = "This is the second message!!"
)

type Config struct {
	// Tasks is the number of concurrent callers.
	Tasks int `default:"4"`
	// Labels are handed out round-robin, task i prints Labels[i%len(Labels)].
	Labels []string `default:"[\"Student Message: This is the message!!\",\"Employee Message: This is the message!!\"]"`
	// Sequential runs the single caller demonstration instead.
	Sequential bool
}

// NewConfig fills the defaults and lays override on top of them. A non-nil
// but empty Labels in override is rejected rather than defaulted.
func NewConfig(override Config) (Config, error) {
	var cfg Config
	if override.Labels != nil && len(override.Labels) == 0 {
		return cfg, errors.WithStack(lazysingleton.ErrNoLabels)
	}

	if err := defaults.Set(&cfg); err != nil {
		return cfg, errors.Wrap(err, "harness config defaults")
	}

	if err := mergo.Merge(&cfg, override, mergo.WithOverride); err != nil {
		return cfg, errors.Wrap(err, "harness config merge")
	}

	if cfg.Tasks <= 0 {
		return cfg, errors.WithMessagef(lazysingleton.ErrNoTasks, "tasks %d", cfg.Tasks)
	}

	if len(cfg.Labels) == 0 {
		return cfg, errors.WithStack(lazysingleton.ErrNoLabels)
	}

	return cfg, nil
}
