package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	line := NewLine(&buf)

	line.Update("collecting: 1")
	line.Update("collecting: 2")
	assert.Empty(t, buf.String(), "intermediate updates are dropped off-terminal")

	line.Done("collecting: 2")
	assert.Equal(t, "collecting: 2\n", buf.String())
}

func TestCounterFinish(t *testing.T) {
	var buf bytes.Buffer
	c := NewCounter(&buf, "Scanning file types", 3, 10)

	c.Inc()
	c.Inc()
	c.Inc()
	c.Finish()

	assert.Equal(t, "Scanning file types: 3\n", buf.String())
}

func TestCounterFinalMessage(t *testing.T) {
	var buf bytes.Buffer
	c := NewCounter(&buf, "Detecting non UTF-8", 2, 10)
	c.Final = func() string { return "1 suspicious file" }

	c.Inc()
	c.Inc()
	c.Finish()

	assert.Equal(t, "Detecting non UTF-8: 1 suspicious file\n", buf.String())
}

func TestCounterZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	c := NewCounter(&buf, "Scanning", 0, 10)
	c.Finish()

	assert.Equal(t, "Scanning: 0\n", buf.String())
}
