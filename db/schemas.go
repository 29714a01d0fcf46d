package db

var schema = `
CREATE TABLE IF NOT EXISTS venue (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR NOT NULL,
	city VARCHAR NOT NULL DEFAULT '',
	state VARCHAR NOT NULL DEFAULT '',
	address VARCHAR NOT NULL DEFAULT '',
	phone VARCHAR NOT NULL DEFAULT '',
	genres TEXT[] NOT NULL DEFAULT '{}',
	image_link VARCHAR NOT NULL DEFAULT 'https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=400&q=60',
	facebook_link VARCHAR NOT NULL DEFAULT '',
	website VARCHAR NOT NULL DEFAULT '',
	seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
	seeking_description VARCHAR NOT NULL DEFAULT 'Not currently seeking for talents'
);

CREATE TABLE IF NOT EXISTS artist (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR NOT NULL,
	city VARCHAR NOT NULL DEFAULT '',
	state VARCHAR NOT NULL DEFAULT '',
	phone VARCHAR NOT NULL DEFAULT '',
	genres TEXT[] NOT NULL DEFAULT '{}',
	image_link VARCHAR NOT NULL DEFAULT 'https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=400&q=60',
	facebook_link VARCHAR NOT NULL DEFAULT '',
	website VARCHAR NOT NULL DEFAULT '',
	seeking_venue BOOLEAN NOT NULL DEFAULT TRUE,
	seeking_description VARCHAR NOT NULL DEFAULT 'Looking for shows to perform at any place in USA!'
);

CREATE TABLE IF NOT EXISTS "show" (
	id BIGSERIAL PRIMARY KEY,
	start_time TIMESTAMPTZ NOT NULL,
	venue_id BIGINT NOT NULL,
	artist_id BIGINT NOT NULL,
	CONSTRAINT show_venue_id_fkey FOREIGN KEY (venue_id) REFERENCES venue (id),
	CONSTRAINT show_artist_id_fkey FOREIGN KEY (artist_id) REFERENCES artist (id)
);

CREATE INDEX IF NOT EXISTS show_venue_id_idx ON "show" (venue_id);
CREATE INDEX IF NOT EXISTS show_artist_id_idx ON "show" (artist_id);

CREATE TABLE IF NOT EXISTS events (
	event_id UUID PRIMARY KEY,
	published_at TIMESTAMPTZ NOT NULL,
	event_name VARCHAR(255) NOT NULL,
	event_payload JSONB NOT NULL
);
`
