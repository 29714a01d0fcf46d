package db

import (
	"context"
	"database/sql"
	"fmt"

	"fyyur/entities"

	"github.com/jmoiron/sqlx"
)

type ShowRepository struct {
	db *DB
}

func NewShowRepository(db *DB) ShowRepository {
	if db == nil {
		panic("db is nil")
	}
	return ShowRepository{
		db: db,
	}
}

func (r ShowRepository) Create(ctx context.Context, show entities.Show) (entities.ShowCreateResponse, error) {
	var showID int64

	err := updateInTx(ctx, r.db.Conn, sql.LevelReadCommitted, func(ctx context.Context, tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO "show" (start_time, venue_id, artist_id)
			VALUES ($1, $2, $3)
			RETURNING id`,
			show.StartTime.UTC(), show.VenueID, show.ArtistID,
		).Scan(&showID)
		if constraint, ok := foreignKeyViolation(err); ok {
			return missingReference(constraint, show)
		}
		if err != nil {
			return fmt.Errorf("could not save show: %w", err)
		}

		return publishInTx(ctx, tx, entities.ShowScheduled_v1{
			Header:    entities.NewEventHeader(),
			ShowID:    showID,
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: show.StartTime.UTC(),
		})
	})
	if err != nil {
		return entities.ShowCreateResponse{}, persistenceError("create show", err)
	}

	return entities.ShowCreateResponse{ShowID: showID}, nil
}

func missingReference(constraint string, show entities.Show) error {
	verr := &entities.ValidationError{}
	switch constraint {
	case "show_venue_id_fkey":
		verr.Add("venue_id", fmt.Sprintf("venue %d does not exist", show.VenueID))
	case "show_artist_id_fkey":
		verr.Add("artist_id", fmt.Sprintf("artist %d does not exist", show.ArtistID))
	default:
		verr.Add("venue_id", "venue or artist does not exist")
	}
	return verr
}

func (r ShowRepository) All(ctx context.Context) ([]entities.Show, error) {
	return r.selectShows(ctx, `SELECT id, start_time, venue_id, artist_id FROM "show" ORDER BY id`)
}

func (r ShowRepository) ForVenue(ctx context.Context, venueID int64) ([]entities.Show, error) {
	return r.selectShows(ctx, `
		SELECT id, start_time, venue_id, artist_id FROM "show"
		WHERE venue_id = $1
		ORDER BY start_time, id`, venueID)
}

func (r ShowRepository) ForArtist(ctx context.Context, artistID int64) ([]entities.Show, error) {
	return r.selectShows(ctx, `
		SELECT id, start_time, venue_id, artist_id FROM "show"
		WHERE artist_id = $1
		ORDER BY start_time, id`, artistID)
}

func (r ShowRepository) selectShows(ctx context.Context, query string, args ...interface{}) ([]entities.Show, error) {
	shows := []entities.Show{}
	if err := r.db.Conn.SelectContext(ctx, &shows, query, args...); err != nil {
		return nil, fmt.Errorf("could not get shows: %w", err)
	}

	return shows, nil
}
