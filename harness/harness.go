// Package harness drives a shared instance from several concurrent callers.
package harness

import (
	"sync"

	"github.com/akrennmair/slice"
	"github.com/hnhuaxi/lazysingleton"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/exp/slices"
)

// Target is what a task receives from the getter.
type Target interface {
	comparable
	PrintMessage(message string)
}

type Task struct {
	ID    int
	Label string
}

type Report struct {
	Tasks int
	// Served counts references handed out by the getter.
	Served int
	// Identical is set when every served reference is the same instance.
	Identical bool
}

// Plan lays out the tasks a Run with override would start.
func Plan(override Config) ([]Task, error) {
	cfg, err := NewConfig(override)
	if err != nil {
		return nil, err
	}

	return plan(cfg), nil
}

func plan(cfg Config) []Task {
	ids := make([]int, cfg.Tasks)
	for i := range ids {
		ids[i] = i
	}

	return slice.Map(ids, func(id int) Task {
		return Task{
			ID:    id,
			Label: cfg.Labels[id%len(cfg.Labels)],
		}
	})
}

// Run starts one goroutine per task and waits for all of them. Each task
// fetches the target through get and prints its label on it. Getter errors
// are combined into the returned error; the report is filled either way.
func Run[M Target](override Config, get func() (M, error)) (*Report, error) {
	cfg, err := NewConfig(override)
	if err != nil {
		return nil, err
	}

	if cfg.Sequential {
		return runSequential(get)
	}

	var (
		tasks = plan(cfg)
		refs  = make([]M, len(tasks))
		errs  = make([]error, len(tasks))
		log   = lazysingleton.Logger().With(lazysingleton.LogFields{"tasks": len(tasks)})
		wg    sync.WaitGroup
	)

	for _, task := range tasks {
		wg.Add(1)
		go func(task Task) {
			defer wg.Done()

			m, err := get()
			if err != nil {
				errs[task.ID] = errors.Wrapf(err, "task %d", task.ID)
				return
			}

			m.PrintMessage(task.Label)
			refs[task.ID] = m
			log.Debug("task done", lazysingleton.LogFields{"task": task.ID})
		}(task)
	}

	wg.Wait()

	report := newReport(len(tasks), refs)
	log.Debug("run finished", lazysingleton.LogFields{
		"served":    report.Served,
		"identical": report.Identical,
	})

	return report, multierr.Combine(errs...)
}

func runSequential[M Target](get func() (M, error)) (*Report, error) {
	o1, err := get()
	if err != nil {
		return nil, errors.Wrap(err, "first get")
	}
	o1.PrintMessage(FirstMessage)

	o2, err := get()
	if err != nil {
		return nil, errors.Wrap(err, "second get")
	}
	o2.PrintMessage(SecondMessage)

	return newReport(1, []M{o1, o2}), nil
}

func newReport[M Target](tasks int, refs []M) *Report {
	var zero M

	served := slice.Filter(refs, func(m M) bool {
		return m != zero
	})

	report := &Report{
		Tasks:  tasks,
		Served: len(served),
	}

	if len(served) > 0 {
		report.Identical = slices.IndexFunc(served, func(m M) bool {
			return m != served[0]
		}) < 0
	}

	return report
}
