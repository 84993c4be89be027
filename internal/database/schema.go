package database

import "fmt"

// schema contains the table definitions for the carousel assignment system.
// All statements are idempotent so EnsureSchema is safe to run at every startup.
//
// Foreign keys use the Postgres default NO ACTION: deleting a flight or
// carousel that still has assignments fails at the storage boundary.
const schema = `
CREATE TABLE IF NOT EXISTS airlines (
	airline_code VARCHAR(10) PRIMARY KEY,
	airline_name VARCHAR(100) NOT NULL,
	color_code   VARCHAR(7) NOT NULL DEFAULT '#808080'
);

CREATE TABLE IF NOT EXISTS carousels (
	carousel_id VARCHAR(10) PRIMARY KEY,
	terminal    VARCHAR(10),
	capacity    INTEGER NOT NULL DEFAULT 100,
	is_active   BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS flights (
	flight_id      VARCHAR(20) PRIMARY KEY,
	airline        VARCHAR(10) NOT NULL REFERENCES airlines(airline_code),
	flight_number  VARCHAR(10) NOT NULL,
	scheduled_time TIMESTAMP NOT NULL,
	pax_count      INTEGER NOT NULL DEFAULT 0,
	baggage_count  INTEGER NOT NULL DEFAULT 0,
	aircraft_type  VARCHAR(20),
	created_at     TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS assignments (
	assignment_id   SERIAL PRIMARY KEY,
	flight_id       VARCHAR(20) NOT NULL REFERENCES flights(flight_id),
	carousel_id     VARCHAR(10) NOT NULL REFERENCES carousels(carousel_id),
	start_time      TIMESTAMP NOT NULL,
	end_time        TIMESTAMP NOT NULL,
	assignment_type VARCHAR(10) NOT NULL DEFAULT 'MANUAL',
	created_at      TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_flights_scheduled_time ON flights(scheduled_time);
CREATE INDEX IF NOT EXISTS idx_assignments_start_time ON assignments(start_time);
CREATE INDEX IF NOT EXISTS idx_assignments_flight ON assignments(flight_id);
CREATE INDEX IF NOT EXISTS idx_assignments_carousel ON assignments(carousel_id);
`

// EnsureSchema creates the tables and indexes if they do not exist yet
func EnsureSchema(db DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
