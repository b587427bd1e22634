package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Log is the process logger; main replaces it once flags are parsed.
var Log logrus.FieldLogger = NewLogger(logrus.WarnLevel, os.Stderr)

func SetLogger(l logrus.FieldLogger) {
	Log = l
}

type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Time.Format(time.DateTime))
	fmt.Fprintf(&b, " [%s]", strings.ToLower(entry.Level.String()))

	if entry.HasCaller() {
		file := filepath.Base(entry.Caller.File)
		funcName := entry.Caller.Function
		funcName = funcName[strings.LastIndex(funcName, ".")+1:]
		fmt.Fprintf(&b, " %s:%d %s", file, entry.Caller.Line, funcName)
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}

	b.WriteString("\n")

	return []byte(b.String()), nil
}

func NewLogger(level logrus.Level, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return l
}

// ParseLevel maps a level name to a logrus level; an empty name means warn.
func ParseLevel(name string) (logrus.Level, error) {
	if strings.TrimSpace(name) == "" {
		return logrus.WarnLevel, nil
	}

	level, err := logrus.ParseLevel(name)
	if err != nil {
		return 0, fmt.Errorf("parse log level: %w", err)
	}

	return level, nil
}
