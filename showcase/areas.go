package showcase

import (
	"strings"
	"time"

	"fyyur/entities"

	"github.com/samber/lo"
)

// Areas groups venues by state, in the order states first appear. The city
// of an area is the city of its first venue.
func Areas(venues []entities.Venue, shows []entities.Show, now time.Time) []entities.Area {
	upcoming := CountUpcoming(shows, ViewingFromVenue, now)

	var areas []entities.Area
	index := map[string]int{}

	for _, venue := range venues {
		entry := entities.SummaryWithShows{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: upcoming[venue.ID],
		}

		i, ok := index[venue.State]
		if !ok {
			index[venue.State] = len(areas)
			areas = append(areas, entities.Area{
				City:   venue.City,
				State:  venue.State,
				Venues: []entities.SummaryWithShows{entry},
			})
			continue
		}
		areas[i].Venues = append(areas[i].Venues, entry)
	}

	return areas
}

// Search keeps the items whose name contains term, ignoring case. An empty
// term matches everything.
func Search(items []entities.Summary, term string) []entities.Summary {
	needle := strings.ToLower(strings.TrimSpace(term))

	return lo.Filter(items, func(item entities.Summary, _ int) bool {
		return strings.Contains(strings.ToLower(item.Name), needle)
	})
}

// SearchResult searches items and attaches upcoming show counts.
func SearchResult(items []entities.Summary, term string, shows []entities.Show, role Role, now time.Time) entities.SearchResult {
	upcoming := CountUpcoming(shows, role, now)

	data := lo.Map(Search(items, term), func(item entities.Summary, _ int) entities.SummaryWithShows {
		return entities.SummaryWithShows{
			ID:               item.ID,
			Name:             item.Name,
			NumUpcomingShows: upcoming[item.ID],
		}
	})

	return entities.SearchResult{
		Count: len(data),
		Data:  data,
	}
}
