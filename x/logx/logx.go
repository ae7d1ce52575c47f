// Package logx is the logging shim shared by host and MCU builds.
// Host builds format through fmt; MCU builds use the minimal formatter
// in format.go to keep flash and RAM cost low. Set Output from the
// platform bootstrap (UART writer on boards, stdout on hosts).
package logx

import (
	"io"
	"sync"
)

// Output receives every log line. Replaced at bootstrap.
var (
	mu     sync.Mutex
	Output io.Writer = defaultOutput()
)

// Logger tags lines with a subsystem name. Zero value logs untagged.
type Logger struct {
	name string
}

func New(name string) Logger { return Logger{name: name} }

func (l Logger) Infof(format string, a ...any)  { l.emit("Info: ", format, a...) }
func (l Logger) Warnf(format string, a ...any)  { l.emit("Warn: ", format, a...) }
func (l Logger) Errorf(format string, a ...any) { l.emit("Error: ", format, a...) }

func (l Logger) emit(level, format string, a ...any) {
	s := sprintf(format, a...)
	line := make([]byte, 0, len(level)+len(l.name)+len(s)+3)
	line = append(line, level...)
	if l.name != "" {
		line = append(line, l.name...)
		line = append(line, ':', ' ')
	}
	line = append(line, s...)
	line = append(line, '\n')

	mu.Lock()
	_, _ = Output.Write(line)
	mu.Unlock()
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
