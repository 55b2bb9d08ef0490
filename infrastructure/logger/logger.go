package logger

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"
)

type logEntry struct {
	log   []byte
	level Level
}

// Logger is a subsystem logger for a logging Backend. Implements the Logger interface.
type Logger struct {
	lvl       Level // atomic
	tag       string
	b         *Backend
	writeChan chan<- logEntry
}

// Trace formats message using the default formats for its operands, prepends
// the prefix as necessary, and writes to log with LevelTrace.
func (l *Logger) Trace(args ...interface{}) {
	l.print(LevelTrace, args...)
}

// Tracef formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.printf(LevelTrace, format, args...)
}

// Debug formats message using the default formats for its operands, prepends
// the prefix as necessary, and writes to log with LevelDebug.
func (l *Logger) Debug(args ...interface{}) {
	l.print(LevelDebug, args...)
}

// Debugf formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.printf(LevelDebug, format, args...)
}

// Info formats message using the default formats for its operands, prepends
// the prefix as necessary, and writes to log with LevelInfo.
func (l *Logger) Info(args ...interface{}) {
	l.print(LevelInfo, args...)
}

// Infof formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.printf(LevelInfo, format, args...)
}

// Warn formats message using the default formats for its operands, prepends
// the prefix as necessary, and writes to log with LevelWarn.
func (l *Logger) Warn(args ...interface{}) {
	l.print(LevelWarn, args...)
}

// Warnf formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.printf(LevelWarn, format, args...)
}

// Error formats message using the default formats for its operands, prepends
// the prefix as necessary, and writes to log with LevelError.
func (l *Logger) Error(args ...interface{}) {
	l.print(LevelError, args...)
}

// Errorf formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.printf(LevelError, format, args...)
}

// Critical formats message using the default formats for its operands, prepends
// the prefix as necessary, and writes to log with LevelCritical.
func (l *Logger) Critical(args ...interface{}) {
	l.print(LevelCritical, args...)
}

// Criticalf formats message according to format specifier, prepends the prefix
// as necessary, and writes to log with LevelCritical.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.printf(LevelCritical, format, args...)
}

// Level returns the current logging level
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.lvl)))
}

// SetLevel changes the logging level to the passed level.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32((*uint32)(&l.lvl), uint32(level))
}

// Backend returns the log backend
func (l *Logger) Backend() *Backend {
	return l.b
}

// printf outputs a log message to the writeChan provided by the backend after
// creating a prefix for the given level and tag according to the formatHeader
// function and formatting the provided arguments according to the given format
// specifier.
func (l *Logger) printf(lvl Level, format string, args ...interface{}) {
	if lvl < l.Level() {
		return
	}
	if !l.b.IsRunning() {
		fmt.Fprintf(os.Stderr, "The logger backend is not running, failed writing log: %s\n",
			fmt.Sprintf(format, args...))
		return
	}

	t := time.Now() // get as early as possible

	bytebuf := make([]byte, 0, normalLogSize)
	buf := bytes.NewBuffer(bytebuf)

	formatHeader(buf, t, lvl.String(), l.tag, l.b.flag)
	fmt.Fprintf(buf, format, args...)
	buf.WriteString("\n")

	l.writeChan <- logEntry{buf.Bytes(), lvl}
}

// print outputs a log message to the writeChan provided by the backend after
// creating a prefix for the given level and tag according to the formatHeader
// function and formatting the provided arguments using the default formats for
// its operands.
func (l *Logger) print(lvl Level, args ...interface{}) {
	if lvl < l.Level() {
		return
	}
	if !l.b.IsRunning() {
		fmt.Fprintf(os.Stderr, "The logger backend is not running, failed writing log: %s\n",
			fmt.Sprint(args...))
		return
	}

	t := time.Now() // get as early as possible

	bytebuf := make([]byte, 0, normalLogSize)
	buf := bytes.NewBuffer(bytebuf)

	formatHeader(buf, t, lvl.String(), l.tag, l.b.flag)
	fmt.Fprint(buf, args...)
	buf.WriteString("\n")

	l.writeChan <- logEntry{buf.Bytes(), lvl}
}

// formatHeader writes a log header into the given buffer, with an optional
// callsite according to the backend flags.
func formatHeader(buf *bytes.Buffer, t time.Time, lvl string, tag string, flag uint32) {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	ms := t.Nanosecond() / 1e6

	fmt.Fprintf(buf, "%d-%02d-%02d %02d:%02d:%02d.%03d [%s] %s: ",
		year, month, day, hour, min, sec, ms, lvl, tag)

	if flag&(LogFlagShortFile|LogFlagLongFile) != 0 {
		file, line := callsite(flag)
		fmt.Fprintf(buf, "%s:%d ", file, line)
	}
}

// callsite returns the file name and line number of the callsite to the
// subsystem logger.
func callsite(flag uint32) (string, int) {
	_, file, line, ok := runtime.Caller(4)
	if !ok {
		return "<unknown>", 0
	}
	if flag&LogFlagShortFile != 0 {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if os.IsPathSeparator(file[i]) {
				short = file[i+1:]
				break
			}
		}
		file = short
	}
	return file, line
}
