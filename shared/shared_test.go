package shared

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInstance(t *testing.T) {
	const n = 16

	var (
		got = make([]*Printer, n)
		wg  sync.WaitGroup
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = GetInstance()
		}(i)
	}
	wg.Wait()

	for _, p := range got {
		assert.Same(t, got[0], p)
	}

	p, err := Get()
	require.NoError(t, err)
	assert.Same(t, got[0], p)
	assert.EqualValues(t, 1, Creations())
}

func TestPrintMessage(t *testing.T) {
	var (
		buf bytes.Buffer
		h   = NewHolder(&buf)
	)

	p := h.MustGet()
	buf.Reset()

	p.PrintMessage("X")
	assert.Equal(t, "X\n", buf.String())

	buf.Reset()
	p.PrintMessage("  Student Message: keep  spacing ")
	assert.Equal(t, "  Student Message: keep  spacing \n", buf.String())
}

func TestNewHolderCreationLine(t *testing.T) {
	var (
		buf bytes.Buffer
		h   = NewHolder(&buf)
	)

	first := h.MustGet()
	for i := 0; i < 10; i++ {
		assert.Same(t, first, h.MustGet())
	}

	assert.Equal(t, "Instance Created: 1\n", buf.String())
	assert.Equal(t, 1, strings.Count(buf.String(), "Instance Created"))
}
