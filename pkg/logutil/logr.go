package logutil

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
)

// Logr 给需要 logr.Logger 的组件(扫描器)用，输出仍然走 logutil
// V(0) -> INFO，V(1) 及以上 -> DEBUG，Error -> WARN(不打印堆栈)
func Logr() logr.Logger {
	return logr.New(&sink{})
}

type sink struct {
	name   string
	values []any
	depth  int
}

var _ logr.CallDepthLogSink = (*sink)(nil)

func (s *sink) Init(info logr.RuntimeInfo) {
	s.depth = info.CallDepth
}

func (s *sink) Enabled(level int) bool {
	if level > 0 {
		return enabled(DEBUG)
	}
	return enabled(INFO)
}

func (s *sink) Info(level int, msg string, kv ...any) {
	lvl, tag := INFO, "[INFO] "
	if level > 0 {
		lvl, tag = DEBUG, "[DBG] "
	}
	logMessage(s.depth+2, lvl, "%s", tag+s.format(msg, nil, kv))
}

func (s *sink) Error(err error, msg string, kv ...any) {
	logMessage(s.depth+2, WARN, "%s", "[WARN] "+s.format(msg, err, kv))
}

func (s *sink) WithValues(kv ...any) logr.LogSink {
	n := *s
	n.values = append(append([]any{}, s.values...), kv...)
	return &n
}

func (s *sink) WithName(name string) logr.LogSink {
	n := *s
	if n.name == "" {
		n.name = name
	} else {
		n.name = n.name + "/" + name
	}
	return &n
}

func (s *sink) WithCallDepth(depth int) logr.LogSink {
	n := *s
	n.depth += depth
	return &n
}

func (s *sink) format(msg string, err error, kv []any) string {
	var b strings.Builder
	if s.name != "" {
		b.WriteString(s.name)
		b.WriteString(": ")
	}
	b.WriteString(msg)
	if err != nil {
		fmt.Fprintf(&b, " error=%q", err.Error())
	}
	all := append(append([]any{}, s.values...), kv...)
	for i := 0; i < len(all); i += 2 {
		var v any = "<missing>"
		if i+1 < len(all) {
			v = all[i+1]
		}
		fmt.Fprintf(&b, " %v=%v", all[i], v)
	}
	return b.String()
}
