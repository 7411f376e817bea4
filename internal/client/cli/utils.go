package cli

import (
	"io"
	"os"
	"time"
)

func stdout() io.Writer {
	return os.Stdout
}

// dayRange returns the inclusive local-day window around t as epoch
// nanoseconds: [00:00:00.000, 23:59:59.999]. The end is derived from the
// next calendar day's midnight, not from adding 24 hours, so DST days of
// 23 or 25 hours are still covered in full.
func dayRange(t time.Time) (int64, int64) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location()).Add(-time.Millisecond)
	return start.UnixNano(), end.UnixNano()
}

// monthRange returns the inclusive local calendar month window around t
// as epoch nanoseconds.
func monthRange(t time.Time) (int64, int64) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start.UnixNano(), end.UnixNano()
}
