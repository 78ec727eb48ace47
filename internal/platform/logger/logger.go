package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var base zerolog.Logger

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	base = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()
}

// Init menambahkan nama service ke semua log line. Panggil sekali dari main.
func Init(service string) {
	base = base.With().Str("service", service).Logger()
}

func Info(msg string, v ...interface{}) {
	base.Info().Msgf(msg, v...)
}

func Warn(msg string, v ...interface{}) {
	base.Warn().Msgf(msg, v...)
}

func Error(msg string, err error, v ...interface{}) {
	ev := base.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msgf(msg, v...)
}
