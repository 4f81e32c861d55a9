// Package shared owns the process-wide Printer.
package shared

import (
	"fmt"
	"io"
	"os"

	"github.com/hnhuaxi/lazysingleton/singleton"
	"go.uber.org/zap/zapcore"
)

const createdFormat = "Instance Created: %d\n"

type Printer struct {
	out zapcore.WriteSyncer
}

// PrintMessage writes message and a newline to the printer's sink in a
// single locked write.
func (p *Printer) PrintMessage(message string) {
	p.out.Write([]byte(message + "\n"))
}

// NewHolder returns a holder whose Printer writes to w. The creation line is
// written to w before the Printer is published. An OptOnCreate in ops is
// replaced.
func NewHolder(w io.Writer, ops ...singleton.OptionFunc) *singleton.Holder[Printer] {
	var out = zapcore.Lock(zapcore.AddSync(w))

	ops = append(ops, singleton.OptOnCreate(func(n int64) {
		fmt.Fprintf(out, createdFormat, n)
	}))

	return singleton.New(func() (*Printer, error) {
		return &Printer{out: out}, nil
	}, ops...)
}

var holder = NewHolder(os.Stdout)

// GetInstance returns the process-wide Printer, creating it on first use.
func GetInstance() *Printer {
	return holder.MustGet()
}

// Get is GetInstance in the shape the harness expects.
func Get() (*Printer, error) {
	return holder.Get()
}

// Creations reports how many times the process-wide Printer was built.
func Creations() int64 {
	return holder.Creations()
}
