package heatmap

import (
	"fmt"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

// Bucket is the discrete color class of a day cell.
type Bucket int

const (
	BucketNone Bucket = iota
	BucketUntracked
	BucketClean
	BucketLow
	BucketMild
	BucketModerate
	BucketHigh
	BucketSevere
)

var bucketNames = map[Bucket]string{
	BucketNone:      "none",
	BucketUntracked: "untracked",
	BucketClean:     "clean",
	BucketLow:       "low",
	BucketMild:      "mild",
	BucketModerate:  "moderate",
	BucketHigh:      "high",
	BucketSevere:    "severe",
}

func (b Bucket) String() string {
	if name, ok := bucketNames[b]; ok {
		return name
	}
	return "unknown"
}

func (b Bucket) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Bucket) UnmarshalText(text []byte) error {
	for bucket, name := range bucketNames {
		if name == string(text) {
			*b = bucket
			return nil
		}
	}
	return fmt.Errorf("heatmap: unknown bucket %q", text)
}

// Severity ranks the five weighted buckets 1..5; every other bucket is 0.
func (b Bucket) Severity() int {
	if b >= BucketLow && b <= BucketSevere {
		return int(b - BucketClean)
	}
	return 0
}

// severityCeilings are the inclusive upper bounds, in percent, of the
// weighted buckets. Anything above the last one is BucketSevere.
var severityCeilings = []struct {
	ceiling float64
	bucket  Bucket
}{
	{0.10, BucketLow},
	{0.25, BucketMild},
	{0.50, BucketModerate},
	{0.75, BucketHigh},
}

// Weights returns the weight of the names done on a day and the total weight
// of every defined habit (at least 1).
func Weights(habits []domain.Habit, done []string) (current, total int) {
	for _, name := range done {
		current = domain.AddWeight(current, domain.WeightOf(habits, name))
	}
	return current, domain.TotalWeight(habits)
}

// Intensity is current/total as a fraction. Both sums are taken in float64
// so arbitrarily large weights cannot wrap around.
func Intensity(habits []domain.Habit, done []string) float64 {
	var current, total float64
	for _, name := range done {
		current += float64(domain.WeightOf(habits, name))
	}
	for _, h := range habits {
		total += float64(h.Weight)
	}
	if total < 1 {
		total = 1
	}
	return current / total
}

// Classify buckets a cell. A ratio that sits exactly on a ceiling lands in
// the lower bucket.
func Classify(cell DayCell, habits []domain.Habit) Bucket {
	switch {
	case cell.IsPlaceholder:
		return BucketNone
	case cell.IsFuture || cell.IsBeforeStart:
		return BucketUntracked
	case len(cell.HabitsDone) == 0:
		return BucketClean
	}

	ratio := Intensity(habits, cell.HabitsDone)
	for _, c := range severityCeilings {
		if ratio <= c.ceiling {
			return c.bucket
		}
	}
	return BucketSevere
}
