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

type ArtistRepository struct {
	db *DB
}

func NewArtistRepository(db *DB) ArtistRepository {
	if db == nil {
		panic("db is nil")
	}
	return ArtistRepository{
		db: db,
	}
}

const artistColumns = `id, name, city, state, phone, genres, image_link,
	facebook_link, website, seeking_venue, seeking_description`

func (r ArtistRepository) Create(ctx context.Context, artist entities.Artist) (entities.ArtistCreateResponse, error) {
	var artistID int64

	err := updateInTx(ctx, r.db.Conn, sql.LevelReadCommitted, func(ctx context.Context, tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO artist (name, city, state, phone, genres, image_link,
				facebook_link, website, seeking_venue, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id`,
			artist.Name, artist.City, artist.State, artist.Phone, genres(artist.Genres), artist.ImageLink,
			artist.FacebookLink, artist.Website, artist.SeekingVenue, artist.SeekingDescription,
		).Scan(&artistID)
		if err != nil {
			return fmt.Errorf("could not save artist: %w", err)
		}

		return publishInTx(ctx, tx, entities.ArtistCreated_v1{
			Header:   entities.NewEventHeader(),
			ArtistID: artistID,
			Name:     artist.Name,
		})
	})
	if err != nil {
		return entities.ArtistCreateResponse{}, persistenceError("create artist", err)
	}

	return entities.ArtistCreateResponse{ArtistID: artistID}, nil
}

func (r ArtistRepository) Update(ctx context.Context, artist entities.Artist) error {
	err := updateInTx(ctx, r.db.Conn, sql.LevelReadCommitted, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE artist SET
				name = $2, city = $3, state = $4, phone = $5, genres = $6, image_link = $7,
				facebook_link = $8, website = $9, seeking_venue = $10, seeking_description = $11
			WHERE id = $1`,
			artist.ID, artist.Name, artist.City, artist.State, artist.Phone, genres(artist.Genres),
			artist.ImageLink, artist.FacebookLink, artist.Website, artist.SeekingVenue, artist.SeekingDescription,
		)
		if err != nil {
			return fmt.Errorf("could not update artist: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return &entities.NotFoundError{Entity: "artist", ID: artist.ID}
		}

		return publishInTx(ctx, tx, entities.ArtistUpdated_v1{
			Header:   entities.NewEventHeader(),
			ArtistID: artist.ID,
			Name:     artist.Name,
		})
	})
	if err != nil {
		return persistenceError("update artist", err)
	}

	return nil
}

func (r ArtistRepository) ByID(ctx context.Context, artistID int64) (entities.Artist, error) {
	var artist entities.Artist
	err := r.db.Conn.GetContext(ctx, &artist, `SELECT `+artistColumns+` FROM artist WHERE id = $1`, artistID)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Artist{}, &entities.NotFoundError{Entity: "artist", ID: artistID}
	}
	if err != nil {
		return entities.Artist{}, fmt.Errorf("could not get artist: %w", err)
	}

	return artist, nil
}

func (r ArtistRepository) ByIDs(ctx context.Context, artistIDs []int64) ([]entities.Counterpart, error) {
	counterparts := []entities.Counterpart{}
	if len(artistIDs) == 0 {
		return counterparts, nil
	}

	err := r.db.Conn.SelectContext(ctx, &counterparts, `
		SELECT id, name, image_link FROM artist WHERE id = ANY($1) ORDER BY id`,
		pq.Array(artistIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("could not get artists: %w", err)
	}

	return counterparts, nil
}

func (r ArtistRepository) All(ctx context.Context) ([]entities.Artist, error) {
	artists := []entities.Artist{}
	err := r.db.Conn.SelectContext(ctx, &artists, `SELECT `+artistColumns+` FROM artist ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("could not get all the artists: %w", err)
	}

	return artists, nil
}

func (r ArtistRepository) Summaries(ctx context.Context) ([]entities.Summary, error) {
	summaries := []entities.Summary{}
	err := r.db.Conn.SelectContext(ctx, &summaries, `SELECT id, name FROM artist ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("could not get artist names: %w", err)
	}

	return summaries, nil
}
