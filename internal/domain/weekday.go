package domain

import (
	"fmt"
	"sort"
)

type Weekday string

const (
	Weekday_Monday    Weekday = "MONDAY"
	Weekday_Tuesday   Weekday = "TUESDAY"
	Weekday_Wednesday Weekday = "WEDNESDAY"
	Weekday_Thursday  Weekday = "THURSDAY"
	Weekday_Friday    Weekday = "FRIDAY"
	Weekday_Saturday  Weekday = "SATURDAY"
	Weekday_Sunday    Weekday = "SUNDAY"
)

// canonical display order, monday first
var weekdayOrder = map[Weekday]int{
	Weekday_Monday:    0,
	Weekday_Tuesday:   1,
	Weekday_Wednesday: 2,
	Weekday_Thursday:  3,
	Weekday_Friday:    4,
	Weekday_Saturday:  5,
	Weekday_Sunday:    6,
}

var weekdayLabels = map[Weekday]string{
	Weekday_Monday:    "Monday",
	Weekday_Tuesday:   "Tuesday",
	Weekday_Wednesday: "Wednesday",
	Weekday_Thursday:  "Thursday",
	Weekday_Friday:    "Friday",
	Weekday_Saturday:  "Saturday",
	Weekday_Sunday:    "Sunday",
}

func (w Weekday) Valid() bool {
	_, ok := weekdayOrder[w]
	return ok
}

func (w Weekday) Label() (string, error) {
	label, ok := weekdayLabels[w]
	if !ok {
		return "", fmt.Errorf("unknown weekday %q", w)
	}
	return label, nil
}

// SortWeekdays returns a copy of the input in canonical order
func SortWeekdays(in []Weekday) ([]Weekday, error) {
	out := make([]Weekday, len(in))
	copy(out, in)
	for _, w := range out {
		if !w.Valid() {
			return nil, fmt.Errorf("unknown weekday %q", w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return weekdayOrder[out[i]] < weekdayOrder[out[j]]
	})
	return out, nil
}
