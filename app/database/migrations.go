package database

import (
	"database/sql"
	"fmt"
	"log"
)

// RunMigrations creates the schema if it does not exist yet. Every statement
// is idempotent, so running this at boot against an up-to-date database is a
// no-op.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			full_name TEXT NOT NULL,
			greeting_name TEXT NOT NULL DEFAULT '',
			organization TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL DEFAULT 'english',
			phone_number VARCHAR(20) NOT NULL DEFAULT '',
			phone_type VARCHAR(10) NOT NULL DEFAULT 'cell',
			timezone TEXT NOT NULL DEFAULT '',
			opt_in_email BOOLEAN NOT NULL DEFAULT TRUE,
			opt_in_text BOOLEAN NOT NULL DEFAULT TRUE,
			service_agreement_accepted BOOLEAN NOT NULL DEFAULT FALSE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			confirmed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS lookup_states (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			abbr VARCHAR(2) NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS lookup_counties (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			state_id UUID NOT NULL REFERENCES lookup_states(id),
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (state_id, name)
		)`,

		`CREATE TABLE IF NOT EXISTS lookup_cities (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			state_id UUID NOT NULL REFERENCES lookup_states(id),
			county_id UUID NOT NULL REFERENCES lookup_counties(id),
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (state_id, county_id, name)
		)`,

		`CREATE TABLE IF NOT EXISTS lookup_zipcodes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			city_id UUID NOT NULL REFERENCES lookup_cities(id),
			code VARCHAR(10) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (city_id, code)
		)`,

		`CREATE TABLE IF NOT EXISTS children (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			full_name TEXT NOT NULL,
			date_of_birth DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, full_name)
		)`,

		`CREATE TABLE IF NOT EXISTS businesses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			name TEXT NOT NULL,
			license_type VARCHAR(30) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, name)
		)`,

		`CREATE TABLE IF NOT EXISTS sites (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			business_id UUID NOT NULL REFERENCES businesses(id),
			name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			city_id UUID REFERENCES lookup_cities(id),
			county_id UUID REFERENCES lookup_counties(id),
			state_id UUID REFERENCES lookup_states(id),
			zipcode_id UUID REFERENCES lookup_zipcodes(id),
			qris_rating INTEGER,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (business_id, name)
		)`,

		`CREATE TABLE IF NOT EXISTS child_sites (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			child_id UUID NOT NULL REFERENCES children(id),
			site_id UUID NOT NULL REFERENCES sites(id),
			started_care DATE NOT NULL,
			ended_care DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (child_id, site_id, started_care),
			CHECK (ended_care IS NULL OR started_care <= ended_care)
		)`,

		`CREATE TABLE IF NOT EXISTS agencies (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			state_id UUID NOT NULL REFERENCES lookup_states(id),
			name TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (state_id, name)
		)`,

		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			agency_id UUID NOT NULL REFERENCES agencies(id),
			site_id UUID NOT NULL REFERENCES sites(id),
			paid_on DATE NOT NULL,
			care_started_on DATE NOT NULL,
			care_finished_on DATE NOT NULL,
			amount_cents BIGINT NOT NULL,
			discrepancy_cents BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (agency_id, site_id, paid_on),
			CHECK (care_started_on <= care_finished_on)
		)`,

		`CREATE TABLE IF NOT EXISTS subsidy_rules (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			state_id UUID NOT NULL REFERENCES lookup_states(id),
			county_id UUID NOT NULL REFERENCES lookup_counties(id),
			license_type VARCHAR(30) NOT NULL,
			max_age INTEGER NOT NULL,
			part_day_rate_cents BIGINT NOT NULL,
			full_day_rate_cents BIGINT NOT NULL,
			part_day_max_hours INTEGER NOT NULL,
			full_day_max_hours INTEGER NOT NULL,
			full_plus_part_day_max_hours INTEGER NOT NULL,
			full_plus_full_day_max_hours INTEGER NOT NULL,
			part_day_threshold INTEGER NOT NULL,
			full_day_threshold INTEGER NOT NULL,
			qris_rating VARCHAR(5) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (name, state_id, county_id)
		)`,

		`CREATE TABLE IF NOT EXISTS case_cycles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			copay_cents BIGINT NOT NULL DEFAULT 0,
			copay_frequency VARCHAR(10) NOT NULL,
			effective_on DATE NOT NULL,
			expires_on DATE NOT NULL,
			submitted_on DATE NOT NULL,
			notified_on DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS child_case_cycles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			child_id UUID NOT NULL REFERENCES children(id),
			case_cycle_id UUID NOT NULL REFERENCES case_cycles(id),
			subsidy_rule_id UUID NOT NULL REFERENCES subsidy_rules(id),
			part_days_allowed INTEGER NOT NULL CHECK (part_days_allowed > 0),
			full_days_allowed INTEGER NOT NULL CHECK (full_days_allowed > 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (child_id, case_cycle_id)
		)`,

		`CREATE TABLE IF NOT EXISTS attendances (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			child_site_id UUID NOT NULL REFERENCES child_sites(id),
			child_case_cycle_id UUID NOT NULL REFERENCES child_case_cycles(id),
			starts_on DATE NOT NULL,
			check_in TIMESTAMPTZ NOT NULL,
			check_out TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (child_site_id, child_case_cycle_id, starts_on),
			CHECK (check_in < check_out)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_children_user_id ON children(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sites_business_id ON sites(business_id)`,
		`CREATE INDEX IF NOT EXISTS idx_child_sites_child_id ON child_sites(child_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_site_id ON payments(site_id)`,
		`CREATE INDEX IF NOT EXISTS idx_case_cycles_user_id ON case_cycles(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attendances_starts_on ON attendances(starts_on)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %v", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
