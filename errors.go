package lazysingleton

import "errors"

var (
	ErrConstruct   = errors.New("construct shared instance failed")
	ErrNilInstance = errors.New("constructor returned nil instance")
	ErrNoTasks     = errors.New("task count must be positive")
	ErrNoLabels    = errors.New("no message labels")
)

// CheckConstruct reports whether err came from a failed construction attempt.
func CheckConstruct(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrConstruct)
}
