package services

import (
	"time"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

// Clock is where "today" comes from. Services read it once per operation.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in Location (time.Local when nil).
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

func today(c Clock) time.Time {
	return domain.CivilDate(c.Now())
}
