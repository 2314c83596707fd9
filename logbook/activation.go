package logbook

import "time"

// ActivationThreshold is the number of distinct contacts a park activation
// needs within one UTC day.
const ActivationThreshold = 10

// QSOCountOn returns the number of distinct contacts logged on day's UTC
// calendar date. Repeats of the same callsign, band and mode count once.
func QSOCountOn(l Log, day time.Time) int {
	if l == nil {
		return 0
	}
	seen := make(map[uint64][]QSO)
	count := 0
	for _, q := range l.base().qsos {
		if !sameUTCDay(q.p.Timestamp, day) {
			continue
		}
		key := contactKey(q)
		dup := false
		for _, prior := range seen[key] {
			if sameContact(prior, q) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen[key] = append(seen[key], q)
		count++
	}
	return count
}

// QSOCountToday is QSOCountOn for the current UTC day.
func QSOCountToday(l Log) int {
	return QSOCountOn(l, nowUTC())
}

// IsActivated reports whether a park log has reached the threshold today.
// Other variants are never activated.
func IsActivated(l Log) bool {
	return IsActivatedOn(l, nowUTC())
}

func IsActivatedOn(l Log, day time.Time) bool {
	if _, ok := l.(*ParkLog); !ok {
		return false
	}
	return QSOCountOn(l, day) >= ActivationThreshold
}

// NeedsForActivation returns how many more distinct contacts a park log needs
// today. It is 0 once activated and always 0 for other variants.
func NeedsForActivation(l Log) int {
	return NeedsForActivationOn(l, nowUTC())
}

func NeedsForActivationOn(l Log, day time.Time) int {
	if _, ok := l.(*ParkLog); !ok {
		return 0
	}
	n := ActivationThreshold - QSOCountOn(l, day)
	if n < 0 {
		return 0
	}
	return n
}
