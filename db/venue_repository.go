package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fyyur/entities"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type VenueRepository struct {
	db *DB
}

func NewVenueRepository(db *DB) VenueRepository {
	if db == nil {
		panic("db is nil")
	}
	return VenueRepository{
		db: db,
	}
}

const venueColumns = `id, name, city, state, address, phone, genres, image_link,
	facebook_link, website, seeking_talent, seeking_description`

func (r VenueRepository) Create(ctx context.Context, venue entities.Venue) (entities.VenueCreateResponse, error) {
	var venueID int64

	err := updateInTx(ctx, r.db.Conn, sql.LevelReadCommitted, func(ctx context.Context, tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO venue (name, city, state, address, phone, genres, image_link,
				facebook_link, website, seeking_talent, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id`,
			venue.Name, venue.City, venue.State, venue.Address, venue.Phone, genres(venue.Genres),
			venue.ImageLink, venue.FacebookLink, venue.Website, venue.SeekingTalent, venue.SeekingDescription,
		).Scan(&venueID)
		if err != nil {
			return fmt.Errorf("could not save venue: %w", err)
		}

		return publishInTx(ctx, tx, entities.VenueCreated_v1{
			Header:  entities.NewEventHeader(),
			VenueID: venueID,
			Name:    venue.Name,
			City:    venue.City,
			State:   venue.State,
		})
	})
	if err != nil {
		return entities.VenueCreateResponse{}, persistenceError("create venue", err)
	}

	return entities.VenueCreateResponse{VenueID: venueID}, nil
}

func (r VenueRepository) Update(ctx context.Context, venue entities.Venue) error {
	err := updateInTx(ctx, r.db.Conn, sql.LevelReadCommitted, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE venue SET
				name = $2, city = $3, state = $4, address = $5, phone = $6, genres = $7,
				image_link = $8, facebook_link = $9, website = $10, seeking_talent = $11,
				seeking_description = $12
			WHERE id = $1`,
			venue.ID, venue.Name, venue.City, venue.State, venue.Address, venue.Phone, genres(venue.Genres),
			venue.ImageLink, venue.FacebookLink, venue.Website, venue.SeekingTalent, venue.SeekingDescription,
		)
		if err != nil {
			return fmt.Errorf("could not update venue: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return &entities.NotFoundError{Entity: "venue", ID: venue.ID}
		}

		return publishInTx(ctx, tx, entities.VenueUpdated_v1{
			Header:  entities.NewEventHeader(),
			VenueID: venue.ID,
			Name:    venue.Name,
		})
	})
	if err != nil {
		return persistenceError("update venue", err)
	}

	return nil
}

// Delete removes a venue. Venues that still have shows are kept and a
// ConflictError is returned.
func (r VenueRepository) Delete(ctx context.Context, venueID int64) error {
	err := updateInTx(ctx, r.db.Conn, sql.LevelRepeatableRead, func(ctx context.Context, tx *sqlx.Tx) error {
		var shows int
		err := tx.GetContext(ctx, &shows, `SELECT count(*) FROM "show" WHERE venue_id = $1`, venueID)
		if err != nil {
			return fmt.Errorf("could not count venue shows: %w", err)
		}
		if shows > 0 {
			return &entities.ConflictError{
				Reason: fmt.Sprintf("venue %d still has %d show(s)", venueID, shows),
			}
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM venue WHERE id = $1`, venueID)
		if _, ok := foreignKeyViolation(err); ok {
			// a show was added concurrently
			return &entities.ConflictError{Reason: fmt.Sprintf("venue %d still has shows", venueID)}
		}
		if err != nil {
			return fmt.Errorf("could not delete venue: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return &entities.NotFoundError{Entity: "venue", ID: venueID}
		}

		return publishInTx(ctx, tx, entities.VenueDeleted_v1{
			Header:  entities.NewEventHeader(),
			VenueID: venueID,
		})
	})
	if err != nil {
		return persistenceError("delete venue", err)
	}

	return nil
}

func (r VenueRepository) ByID(ctx context.Context, venueID int64) (entities.Venue, error) {
	var venue entities.Venue
	err := r.db.Conn.GetContext(ctx, &venue, `SELECT `+venueColumns+` FROM venue WHERE id = $1`, venueID)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Venue{}, &entities.NotFoundError{Entity: "venue", ID: venueID}
	}
	if err != nil {
		return entities.Venue{}, fmt.Errorf("could not get venue: %w", err)
	}

	return venue, nil
}

// ByIDs loads the display data of the given venues in one query. Unknown
// ids are skipped.
func (r VenueRepository) ByIDs(ctx context.Context, venueIDs []int64) ([]entities.Counterpart, error) {
	counterparts := []entities.Counterpart{}
	if len(venueIDs) == 0 {
		return counterparts, nil
	}

	err := r.db.Conn.SelectContext(ctx, &counterparts, `
		SELECT id, name, image_link FROM venue WHERE id = ANY($1) ORDER BY id`,
		pq.Array(venueIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("could not get venues: %w", err)
	}

	return counterparts, nil
}

func (r VenueRepository) All(ctx context.Context) ([]entities.Venue, error) {
	venues := []entities.Venue{}
	err := r.db.Conn.SelectContext(ctx, &venues, `SELECT `+venueColumns+` FROM venue ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("could not get all the venues: %w", err)
	}

	return venues, nil
}

func (r VenueRepository) Summaries(ctx context.Context) ([]entities.Summary, error) {
	summaries := []entities.Summary{}
	err := r.db.Conn.SelectContext(ctx, &summaries, `SELECT id, name FROM venue ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("could not get venue names: %w", err)
	}

	return summaries, nil
}
