package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewWriter(&buf, "Checking...", 10, true)

	p.Increment()
	p.Print()
	assert.Equal(t, "\rChecking... 1/10 (10%)", buf.String())

	buf.Reset()
	p.Done()
	assert.Equal(t, "\r"+strings.Repeat(" ", 22)+"\r", buf.String())
}

func TestProgress_Suppressed(t *testing.T) {
	tests := []struct {
		name  string
		total int
		tty   bool
	}{
		{"below threshold", minItems - 1, true},
		{"not a terminal", 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewWriter(&buf, "Formatting...", tt.total, tt.tty)
			p.Increment()
			p.Print()
			p.Done()
			assert.Empty(t, buf.String())
		})
	}
}
