package mapper

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// FallbackLogger records translation picks that fell outside the fallback chain.
type FallbackLogger struct {
	log   *logrus.Logger
	count atomic.Int64
}

func NewFallbackLogger(log *logrus.Logger) *FallbackLogger {
	return &FallbackLogger{log: log}
}

func (l *FallbackLogger) TranslationFallback(entity, requested, used string) {
	l.count.Add(1)
	if l.log == nil {
		return
	}
	l.log.WithFields(logrus.Fields{
		"entity":    entity,
		"requested": requested,
		"used":      used,
	}).Debug("translation fallback outside chain")
}

// Count returns the number of fallbacks seen since startup.
func (l *FallbackLogger) Count() int64 {
	return l.count.Load()
}
