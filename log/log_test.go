package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	sl := registerNewSubLogger("TEST")
	Info(sl, "hello")
	Warnf(sl, "warning %v", 1)
	Error(sl, "broken")
	Debug(sl, "hidden")

	out := buf.String()
	assert.Contains(t, out, "TEST | [INFO] | hello")
	assert.Contains(t, out, "TEST | [WARN] | warning 1")
	assert.Contains(t, out, "TEST | [ERROR] | broken")
	assert.NotContains(t, out, "hidden", "debug is off by default")
	assert.Equal(t, 3, strings.Count(out, "\n"))

	buf.Reset()
	sl.SetLevels(false, false, true, false)
	Info(sl, "hello")
	Debug(sl, "visible")
	assert.Contains(t, buf.String(), "TEST | [DEBUG] | visible")
	assert.NotContains(t, buf.String(), "hello")
}

func TestNilSubLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		Info(nil, "nothing to log against")
	})
}
