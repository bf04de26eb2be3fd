package dates

import "time"

// Display layouts used in generated tour metadata: precise dates for
// races, month granularity for everything else.
const (
	RaceLayout = "2006-01-02"
	TourLayout = "January 2006"
)

// SortTimestamp converts a display date string into a sortable unix
// timestamp. Unknown formats sort to zero, i.e. last in a descending
// order.
func SortTimestamp(s string) float64 {
	for _, layout := range []string{RaceLayout, TourLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return float64(t.Unix())
		}
	}

	return 0
}
