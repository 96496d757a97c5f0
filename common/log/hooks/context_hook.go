package hooks

import (
	"fmt"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	logrusPackage = "github.com/sirupsen/logrus"
	hookType      = "github.com/twitter/goice/common/log/hooks.contextHook"
)

// contextHook tags each entry with the file:line of the code that logged it.
type contextHook struct {
	// prefix stripped from file names, so paths print relative to the repo
	trim string
}

func NewContextHook() contextHook {
	return contextHook{trim: "goice/"}
}

func (hook contextHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook contextHook) Fire(entry *log.Entry) error {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, logrusPackage) && !strings.HasPrefix(frame.Function, hookType) {
			entry.Data["file:line"] = fmt.Sprintf("%s:%d", hook.shorten(frame.File), frame.Line)
			return nil
		}
		if !more {
			return nil
		}
	}
}

func (hook contextHook) shorten(file string) string {
	if i := strings.LastIndex(file, hook.trim); i >= 0 {
		return file[i+len(hook.trim):]
	}
	return file
}
