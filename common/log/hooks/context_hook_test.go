package hooks

import (
	"bytes"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestContextHookTagsCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	logger.Out = &buf
	logger.Formatter = &log.JSONFormatter{}
	logger.AddHook(NewContextHook())

	logger.WithField("key", "ice.Shape").Info("Constructed: *ice.Circle")

	out := buf.String()
	assert.Contains(t, out, `"file:line":"`)
	assert.Contains(t, out, "context_hook_test.go:")
	assert.False(t, strings.Contains(out, "entry.go"), out)
}

func TestShorten(t *testing.T) {
	hook := NewContextHook()
	assert.Equal(t, "ice/resolve.go", hook.shorten("/home/me/src/github.com/twitter/goice/ice/resolve.go"))
	assert.Equal(t, "/elsewhere/main.go", hook.shorten("/elsewhere/main.go"))
}
