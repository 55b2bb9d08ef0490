package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

const normalLogSize = 512

// Rotation settings applied to every log file.
const (
	rotationThresholdKB = 100 * 1000
	rotationMaxRolls    = 8
)

// Callsite flags. Set through the LOGFLAGS environment variable, e.g.
// LOGFLAGS=shortfile appends main.go:123 to every log line. Shortfile wins
// when both are set.
const (
	LogFlagLongFile uint32 = 1 << iota
	LogFlagShortFile
)

// defaultFlags must be a variable rather than an init function: it is read
// during other package-level variable initializations, which run before init.
var defaultFlags = parseLogFlags(os.Getenv("LOGFLAGS"))

func parseLogFlags(env string) (flags uint32) {
	for _, f := range strings.Split(env, ",") {
		switch f {
		case "longfile":
			flags |= LogFlagLongFile
		case "shortfile":
			flags |= LogFlagShortFile
		}
	}
	return flags
}

// leveledWriter is a log sink together with the minimum level it accepts.
type leveledWriter struct {
	io.WriteCloser
	level Level
}

// Backend fans formatted log entries out to a set of writers. All subsystem
// loggers created from a backend funnel through one channel, so writes to
// each sink are never interleaved.
type Backend struct {
	flag      uint32
	isRunning uint32
	writers   []leveledWriter
	writeChan chan logEntry
	closeWait sync.Mutex
}

// NewBackend creates a backend with the flags configured in the environment.
// Writers are attached with AddLogFile or AddLogWriter before Run is called.
func NewBackend() *Backend {
	return &Backend{flag: defaultFlags, writeChan: make(chan logEntry)}
}

// AddLogFile attaches a rotated log file receiving all entries at or above
// logLevel. The file and its directory are created if missing.
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	if b.IsRunning() {
		return errors.New("cannot add a log file to a running backend")
	}
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		err := os.MkdirAll(logDir, 0700)
		if err != nil {
			return errors.Errorf("failed to create log directory: %+v", err)
		}
	}
	r, err := rotator.New(logFile, rotationThresholdKB, false, rotationMaxRolls)
	if err != nil {
		return errors.Errorf("failed to create file rotator: %s", err)
	}
	b.writers = append(b.writers, leveledWriter{WriteCloser: r, level: logLevel})
	return nil
}

// AddLogWriter attaches an arbitrary writer receiving all entries at or
// above logLevel.
func (b *Backend) AddLogWriter(writer io.WriteCloser, logLevel Level) error {
	if b.IsRunning() {
		return errors.New("cannot add a log writer to a running backend")
	}
	b.writers = append(b.writers, leveledWriter{WriteCloser: writer, level: logLevel})
	return nil
}

// Run starts draining the write channel in its own goroutine. May only be
// called once.
func (b *Backend) Run() error {
	if !atomic.CompareAndSwapUint32(&b.isRunning, 0, 1) {
		return errors.New("the logger backend is already running")
	}
	go func() {
		defer func() {
			if err := recover(); err != nil {
				fmt.Fprintf(os.Stderr, "Fatal error in logger.Backend goroutine: %+v\n", err)
				fmt.Fprintf(os.Stderr, "Goroutine stacktrace: %s\n", debug.Stack())
			}
		}()
		b.drain()
	}()
	return nil
}

// drain holds closeWait for as long as entries are being written, so Close
// can block until the channel is fully flushed.
func (b *Backend) drain() {
	defer atomic.StoreUint32(&b.isRunning, 0)
	b.closeWait.Lock()
	defer b.closeWait.Unlock()

	for entry := range b.writeChan {
		for _, writer := range b.writers {
			if entry.level >= writer.level {
				_, _ = writer.Write(entry.log)
			}
		}
	}
}

// IsRunning reports whether Run has been called and the backend has not yet
// finished closing.
func (b *Backend) IsRunning() bool {
	return atomic.LoadUint32(&b.isRunning) != 0
}

// Close flushes any pending entries and closes all attached writers.
func (b *Backend) Close() {
	close(b.writeChan)
	b.closeWait.Lock()
	defer b.closeWait.Unlock()
	for _, writer := range b.writers {
		_ = writer.Close()
	}
}

// Logger returns a logger for the given subsystem tag, at the info level,
// writing to this backend.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{LevelInfo, subsystemTag, b, b.writeChan}
}
