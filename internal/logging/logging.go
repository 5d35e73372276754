package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogFileName is the file Setup appends to inside its directory.
const LogFileName = "lemmeknow.log"

// Logger is the process-wide logger. Until Setup runs it writes warnings and
// above to stderr.
var Logger = zerolog.New(consoleWriter(os.Stderr)).Level(zerolog.WarnLevel).With().Timestamp().Logger()

var logfile *os.File

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
}

// ParseLevel maps a --log-level value onto a zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "err", "error":
		return zerolog.ErrorLevel, nil
	case "fatal":
		return zerolog.FatalLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level: %s", s)
	}
}

// Setup points Logger at stderr and, when dir is not empty, at a JSON log file
// inside dir. A log file that cannot be opened is reported and skipped.
func Setup(level zerolog.Level, stderr io.Writer, dir string) {
	Close()
	writers := []io.Writer{consoleWriter(stderr)}
	var fileErr error
	if dir != "" {
		logfile, fileErr = openLogFile(dir)
		if fileErr == nil {
			writers = append(writers, logfile)
		}
	}
	Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()
	if fileErr != nil {
		Logger.Warn().Err(fileErr).Str("dir", dir).Msg("logging to console only")
	}
}

func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func Close() {
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
}

func Trace() *zerolog.Event { return Logger.Trace() }
func Debug() *zerolog.Event { return Logger.Debug() }
func Info() *zerolog.Event  { return Logger.Info() }
func Warn() *zerolog.Event  { return Logger.Warn() }
func Error() *zerolog.Event { return Logger.Error() }
