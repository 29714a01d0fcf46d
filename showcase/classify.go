// Package showcase turns loaded shows, venues and artists into the records
// the pages display: past and upcoming shows, venue areas, search results.
// Nothing in here touches the database; callers load everything first.
package showcase

import (
	"time"

	"fyyur/entities"
)

// Classify splits shows into past and upcoming relative to now. A show
// starting exactly at now is past. Relative order is preserved in both
// results.
func Classify(shows []entities.Show, now time.Time) (past, upcoming []entities.Show) {
	past = make([]entities.Show, 0, len(shows))
	upcoming = make([]entities.Show, 0, len(shows))

	for _, show := range shows {
		if show.StartTime.After(now) {
			upcoming = append(upcoming, show)
		} else {
			past = append(past, show)
		}
	}

	return past, upcoming
}

// CountUpcoming returns the number of upcoming shows per venue or artist,
// depending on role.
func CountUpcoming(shows []entities.Show, role Role, now time.Time) map[int64]int {
	_, upcoming := Classify(shows, now)

	counts := make(map[int64]int, len(upcoming))
	for _, show := range upcoming {
		counts[role.ownerID(show)]++
	}
	return counts
}
