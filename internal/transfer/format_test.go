package transfer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShellQuote(t *testing.T) {
	assert.Equal(t, "''", ShellQuote(""))
	assert.Equal(t, "'/tmp/a.txt'", ShellQuote("/tmp/a.txt"))
	assert.Equal(t, "'has space'", ShellQuote("has space"))
	assert.Equal(t, "'it'\\''s'", ShellQuote("it's"))
}

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "0 B", HumanBytes(0))
	assert.Equal(t, "512 B", HumanBytes(512))
	assert.Equal(t, "1.0 KiB", HumanBytes(1024))
	assert.Equal(t, "1.5 MiB", HumanBytes(3*512*1024))
	assert.Equal(t, "2.0 GiB", HumanBytes(2<<30))
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "0.25 seconds", HumanDuration(250*time.Millisecond))
	assert.Equal(t, "2 minutes 5.00 seconds", HumanDuration(125*time.Second))
	assert.Equal(t, "1 hours 1 minutes 1.00 seconds", HumanDuration(3661*time.Second))
}
