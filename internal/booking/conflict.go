package booking

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. The comparison is strict so back-to-back
// bookings, where one ends exactly when the other starts, do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindConflict returns the first booking among existing whose interval
// overlaps [start, end), skipping excludeID. Callers pass the active
// bookings of a single resource; terminal bookings must already be filtered
// out. excludeID <= 0 means no exclusion.
func FindConflict(existing []Booking, start, end time.Time, excludeID int64) *Booking {
	for i := range existing {
		b := &existing[i]
		if excludeID > 0 && b.ID == excludeID {
			continue
		}
		if Overlaps(start, end, b.Start, b.End) {
			return b
		}
	}
	return nil
}
