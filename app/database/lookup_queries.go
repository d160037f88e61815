package database

import (
	"database/sql"
	"fmt"

	"pieforproviders/app/models"
)

// The lookup tables hold geographic reference rows. Everything here is
// find-or-create by natural key, so re-running a caller never duplicates a
// row for the same name within its parent scope.

func FindOrCreateState(db *sql.DB, name, abbr string) (*models.State, error) {
	state := &models.State{}
	query := `SELECT id, name, abbr, created_at FROM lookup_states WHERE abbr = $1`

	err := db.QueryRow(query, abbr).Scan(&state.ID, &state.Name, &state.Abbr, &state.CreatedAt)
	if err == sql.ErrNoRows {
		insert := `INSERT INTO lookup_states (name, abbr) VALUES ($1, $2) RETURNING id, created_at`
		state.Name = name
		state.Abbr = abbr
		err = db.QueryRow(insert, name, abbr).Scan(&state.ID, &state.CreatedAt)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find or create state %s: %v", abbr, err)
	}
	return state, nil
}

func FindOrCreateCounty(db *sql.DB, stateID, name string) (*models.County, error) {
	county := &models.County{}
	query := `SELECT id, state_id, name, created_at FROM lookup_counties WHERE state_id = $1 AND name = $2`

	err := db.QueryRow(query, stateID, name).Scan(&county.ID, &county.StateID, &county.Name, &county.CreatedAt)
	if err == sql.ErrNoRows {
		insert := `INSERT INTO lookup_counties (state_id, name) VALUES ($1, $2) RETURNING id, created_at`
		county.StateID = stateID
		county.Name = name
		err = db.QueryRow(insert, stateID, name).Scan(&county.ID, &county.CreatedAt)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find or create county %s: %v", name, err)
	}
	return county, nil
}

func FindOrCreateCity(db *sql.DB, stateID, countyID, name string) (*models.City, error) {
	city := &models.City{}
	query := `SELECT id, state_id, county_id, name, created_at FROM lookup_cities
			  WHERE state_id = $1 AND county_id = $2 AND name = $3`

	err := db.QueryRow(query, stateID, countyID, name).Scan(&city.ID, &city.StateID, &city.CountyID, &city.Name, &city.CreatedAt)
	if err == sql.ErrNoRows {
		insert := `INSERT INTO lookup_cities (state_id, county_id, name) VALUES ($1, $2, $3) RETURNING id, created_at`
		city.StateID = stateID
		city.CountyID = countyID
		city.Name = name
		err = db.QueryRow(insert, stateID, countyID, name).Scan(&city.ID, &city.CreatedAt)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find or create city %s: %v", name, err)
	}
	return city, nil
}

func FindOrCreateZipcode(db *sql.DB, cityID, code string) (*models.Zipcode, error) {
	zip := &models.Zipcode{}
	query := `SELECT id, city_id, code, created_at FROM lookup_zipcodes WHERE city_id = $1 AND code = $2`

	err := db.QueryRow(query, cityID, code).Scan(&zip.ID, &zip.CityID, &zip.Code, &zip.CreatedAt)
	if err == sql.ErrNoRows {
		insert := `INSERT INTO lookup_zipcodes (city_id, code) VALUES ($1, $2) RETURNING id, created_at`
		zip.CityID = cityID
		zip.Code = code
		err = db.QueryRow(insert, cityID, code).Scan(&zip.ID, &zip.CreatedAt)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find or create zipcode %s: %v", code, err)
	}
	return zip, nil
}

// FirstZipcodeForCity returns any existing zipcode for the city, or
// sql.ErrNoRows when the city has none yet.
func FirstZipcodeForCity(db *sql.DB, cityID string) (*models.Zipcode, error) {
	zip := &models.Zipcode{}
	query := `SELECT id, city_id, code, created_at FROM lookup_zipcodes
			  WHERE city_id = $1 ORDER BY code LIMIT 1`

	err := db.QueryRow(query, cityID).Scan(&zip.ID, &zip.CityID, &zip.Code, &zip.CreatedAt)
	if err != nil {
		return nil, err
	}
	return zip, nil
}

func GetStates(db *sql.DB) ([]*models.State, error) {
	rows, err := db.Query(`SELECT id, name, abbr, created_at FROM lookup_states ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var states []*models.State
	for rows.Next() {
		s := &models.State{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Abbr, &s.CreatedAt); err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, rows.Err()
}

func GetCountiesByStateAbbr(db *sql.DB, abbr string) ([]*models.County, error) {
	query := `SELECT c.id, c.state_id, c.name, c.created_at
			  FROM lookup_counties c
			  JOIN lookup_states s ON c.state_id = s.id
			  WHERE s.abbr = $1
			  ORDER BY c.name`

	rows, err := db.Query(query, abbr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counties []*models.County
	for rows.Next() {
		c := &models.County{}
		if err := rows.Scan(&c.ID, &c.StateID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		counties = append(counties, c)
	}
	return counties, rows.Err()
}
