package tracking

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/rhartono/fitout-tracker/internal/logger"
)

// log records date parse failures without interrupting the caller.
// Defaults to a nop logger; the entrypoint swaps in the real one.
var log = logger.NewNop()

// SetLogger routes the package's diagnostics to the given logger.
func SetLogger(l logger.ZapLogger) {
	log = l
}

// Lateness is the derived comparison of a target date against an actual
// date for one lifecycle stage. Never persisted.
type Lateness struct {
	IsLate     bool
	LateByDays int
}

// Evaluate compares the actual date with the target date. Either side
// may be in display or canonical form. An absent or malformed date is
// never late; on-time or early yields a zero day count, never a
// negative one.
func Evaluate(target, actual string) Lateness {
	if target == "" || actual == "" {
		return Lateness{}
	}

	t, err := parseDate(target)
	if err != nil {
		log.Debug("unparseable target date, treating as not late",
			zap.String("target", target), zap.Error(err))
		return Lateness{}
	}
	a, err := parseDate(actual)
	if err != nil {
		log.Debug("unparseable actual date, treating as not late",
			zap.String("actual", actual), zap.Error(err))
		return Lateness{}
	}

	t = midnight(t)
	a = midnight(a)

	days := int(math.Ceil(a.Sub(t).Hours() / 24))
	if days > 0 {
		return Lateness{IsLate: true, LateByDays: days}
	}
	return Lateness{}
}

// midnight strips the time-of-day component so two timestamps on the
// same calendar day always compare equal.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
