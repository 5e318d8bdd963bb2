package logger

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// capture enables verbose output into a buffer and restores defaults
// when the test ends.
func capture(t *testing.T, verboseOn bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseOn)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"debug", func() { Debug("derive %d of %d", 3, 12) }, "[DEBUG] derive 3 of 12\n"},
		{"info", func() { Info("catalog ready") }, "[INFO] catalog ready\n"},
		{"warn", func() { Warn("source %s failed", "file") }, "[WARN] source file failed\n"},
		{"section", func() { Section("Catalog Load") }, "\n=== Catalog Load ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")
	Since("hidden", time.Now())

	assert.Zero(t, buf.Len())
}

func TestSince(t *testing.T) {
	buf := capture(t, true)

	Since("derive", time.Now().Add(-2*time.Millisecond))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[TIME] derive took "), out)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, true)
	SetOutput(io.Discard)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			SetVerbose(n%2 == 0)
			Debug("message %d", n)
			_ = IsVerbose()
		}(i)
	}
	wg.Wait()
}
