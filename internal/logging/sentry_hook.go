package logging

import (
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// eventCapturer is the part of *sentry.Hub the hook needs.
type eventCapturer interface {
	CaptureEvent(event *sentry.Event) *sentry.EventID
}

// SentryHook forwards logrus entries of the configured levels to sentry.
type SentryHook struct {
	levels []logrus.Level
	hub    eventCapturer
}

func NewSentryHook(levels []logrus.Level, hub eventCapturer) *SentryHook {
	return &SentryHook{
		levels: levels,
		hub:    hub,
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	if h.hub == nil {
		return errors.New("sentry hook: no hub")
	}

	event := sentry.NewEvent()
	event.Level = sentryLevel(entry.Level)
	event.Message = entry.Message
	event.Timestamp = entry.Time

	for k, v := range entry.Data {
		if err, ok := v.(error); ok && k == logrus.ErrorKey {
			event.Exception = append(event.Exception, sentry.Exception{
				Type:  "error",
				Value: err.Error(),
			})
			continue
		}
		event.Extra[k] = v
	}

	h.hub.CaptureEvent(event)
	return nil
}

func sentryLevel(level logrus.Level) sentry.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.InfoLevel:
		return sentry.LevelInfo
	default:
		return sentry.LevelDebug
	}
}
