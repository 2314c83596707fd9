package logbook

import (
	"time"

	lev "github.com/agnivade/levenshtein"
	"github.com/zeebo/xxh3"

	"hamlog/strutil"
)

// contactKey hashes the duplicate identity of a QSO: upper-cased other-station
// callsign, band and mode. Layout is [band][mode][call...] so two keys only
// collide when all three match (or on a 64-bit hash collision, which callers
// rule out with sameContact).
func contactKey(q QSO) uint64 {
	call := q.p.TheirCall
	buf := make([]byte, 0, 2+len(call))
	buf = append(buf, byte(q.p.Band), byte(q.p.Mode))
	for i := 0; i < len(call); i++ {
		buf = append(buf, upperASCII(call[i]))
	}
	return xxh3.Hash(buf)
}

func upperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func sameContact(a, b QSO) bool {
	return a.p.Band == b.p.Band && a.p.Mode == b.p.Mode && strutil.EqualFold(a.p.TheirCall, b.p.TheirCall)
}

// wholeLogScope reports whether duplicates are searched across the entire log.
// Contest events span two UTC days, so every contact counts; park and general
// logs only look at the current UTC day.
func wholeLogScope(kind Kind) bool {
	switch kind {
	case KindFieldContest, KindWinterContest:
		return true
	case KindGeneral, KindPark:
		return false
	default:
		return true
	}
}

func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// FindDuplicates returns the logged QSOs matching q on callsign (case
// insensitive), band and mode, within the variant's scope relative to now.
// The result is advisory; AddQSO never rejects a duplicate.
func FindDuplicates(l Log, q QSO) []QSO {
	return FindDuplicatesOn(l, q, nowUTC())
}

// FindDuplicatesOn is FindDuplicates with an explicit reference instant for
// the day-scoped variants.
func FindDuplicatesOn(l Log, q QSO, now time.Time) []QSO {
	if l == nil {
		return nil
	}
	h := l.base()
	all := wholeLogScope(l.Kind())
	var out []QSO
	for _, existing := range h.qsos {
		if !all && !sameUTCDay(existing.p.Timestamp, now) {
			continue
		}
		if !sameContact(existing, q) {
			continue
		}
		out = append(out, existing)
	}
	return out
}

// SimilarCalls returns in-scope QSOs on the same band and mode whose callsign
// is within maxDistance edits of q's but not identical. It flags likely
// busted calls ("W1AW" logged earlier, "W1AX" now) before the contact is added.
func SimilarCalls(l Log, q QSO, maxDistance int) []QSO {
	if l == nil || maxDistance <= 0 {
		return nil
	}
	h := l.base()
	all := wholeLogScope(l.Kind())
	now := nowUTC()
	subject := q.p.TheirCall
	var out []QSO
	for _, existing := range h.qsos {
		if existing.p.Band != q.p.Band || existing.p.Mode != q.p.Mode {
			continue
		}
		if !all && !sameUTCDay(existing.p.Timestamp, now) {
			continue
		}
		candidate := existing.p.TheirCall
		if strutil.EqualFold(candidate, subject) {
			continue
		}
		if lev.ComputeDistance(subject, candidate) <= maxDistance {
			out = append(out, existing)
		}
	}
	return out
}
