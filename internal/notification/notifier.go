package notification

import (
	"github.com/ridloal/storefront-bff/internal/platform/logger"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier adalah sink notifikasi user (dulu snackbar di UI).
type Notifier interface {
	Notify(message string, severity Severity)
}

// NoopNotifier membuang semua notifikasi. Ini yang di-wire sekarang:
// snackbar di storefront sedang dimatikan.
type NoopNotifier struct{}

func (NoopNotifier) Notify(message string, severity Severity) {}

// LogNotifier menulis notifikasi ke log, berguna saat debugging.
type LogNotifier struct{}

func (LogNotifier) Notify(message string, severity Severity) {
	if severity == SeverityError {
		logger.Warn("notify [%s]: %s", severity, message)
		return
	}
	logger.Info("notify [%s]: %s", severity, message)
}
