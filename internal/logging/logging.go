package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"bidding-coach/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	writerMu sync.RWMutex
	writer   io.Writer = os.Stdout
	logFile  *rotatingWriter
)

// Init configures the global zerolog logger. Lines go to stdout, or stderr
// when cfg.Output is "stderr", and also to a rotating file when cfg.File is
// set.
func Init(cfg config.LogConfig) {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	var out io.Writer = os.Stdout
	if strings.EqualFold(strings.TrimSpace(cfg.Output), "stderr") {
		out = os.Stderr
	}
	base := out
	var fileErr error
	if path := strings.TrimSpace(cfg.File); path != "" {
		w, err := newRotatingWriter(path, cfg.MaxMB)
		if err != nil {
			fileErr = err
		} else {
			setFile(w)
			base = io.MultiWriter(out, w)
		}
	}
	setWriter(base)

	var output = base
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: base}
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", cfg.File).Msg("log file disabled")
	}
}

// Writer is the raw sink used by Init, for handlers that log through slog.
func Writer() io.Writer {
	writerMu.RLock()
	defer writerMu.RUnlock()
	return writer
}

// Close releases the log file, if any.
func Close() error {
	writerMu.Lock()
	defer writerMu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	writer = os.Stdout
	return err
}

func setWriter(w io.Writer) {
	writerMu.Lock()
	writer = w
	writerMu.Unlock()
}

func setFile(w *rotatingWriter) {
	writerMu.Lock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = w
	writerMu.Unlock()
}
