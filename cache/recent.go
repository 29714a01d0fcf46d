// Package cache keeps the "recently listed" feed of venues and artists in
// Redis lists, newest first.
package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultFeedSize = 10

	venuesKey  = "fyyur:recent:venues"
	artistsKey = "fyyur:recent:artists"
)

type RecentListings struct {
	rdb  *redis.Client
	size int64
}

func NewRecentListings(rdb *redis.Client, size int) *RecentListings {
	if rdb == nil {
		panic("redis client is nil")
	}
	if size <= 0 {
		size = DefaultFeedSize
	}

	return &RecentListings{
		rdb:  rdb,
		size: int64(size),
	}
}

func (r *RecentListings) AddVenue(ctx context.Context, venueID int64) error {
	return r.push(ctx, venuesKey, venueID)
}

func (r *RecentListings) AddArtist(ctx context.Context, artistID int64) error {
	return r.push(ctx, artistsKey, artistID)
}

func (r *RecentListings) RemoveVenue(ctx context.Context, venueID int64) error {
	if err := r.rdb.LRem(ctx, venuesKey, 0, venueID).Err(); err != nil {
		return fmt.Errorf("could not remove venue %d from recent feed: %w", venueID, err)
	}
	return nil
}

func (r *RecentListings) Venues(ctx context.Context) ([]int64, error) {
	return r.latest(ctx, venuesKey)
}

func (r *RecentListings) Artists(ctx context.Context) ([]int64, error) {
	return r.latest(ctx, artistsKey)
}

// push moves id to the head of the list, so redelivered events do not
// produce duplicates.
func (r *RecentListings) push(ctx context.Context, key string, id int64) error {
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, key, 0, id)
		pipe.LPush(ctx, key, id)
		pipe.LTrim(ctx, key, 0, r.size-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not push %d to %s: %w", id, key, err)
	}

	return nil
}

func (r *RecentListings) latest(ctx context.Context, key string) ([]int64, error) {
	values, err := r.rdb.LRange(ctx, key, 0, r.size-1).Result()
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", key, err)
	}

	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q in %s: %w", v, key, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
