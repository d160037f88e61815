package database

import (
	"database/sql"
	"fmt"

	"pieforproviders/app/models"
)

// FindOrCreateAgency looks an agency up by (state, name).
func FindOrCreateAgency(db *sql.DB, agency *models.Agency) (*models.Agency, error) {
	existing := &models.Agency{}
	query := `SELECT id, state_id, name, is_active, created_at, updated_at
			  FROM agencies WHERE state_id = $1 AND name = $2`

	err := db.QueryRow(query, agency.StateID, agency.Name).Scan(
		&existing.ID, &existing.StateID, &existing.Name, &existing.IsActive,
		&existing.CreatedAt, &existing.UpdatedAt,
	)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up agency %s: %v", agency.Name, err)
	}

	insert := `INSERT INTO agencies (state_id, name, is_active)
			   VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	err = db.QueryRow(insert, agency.StateID, agency.Name, agency.IsActive).Scan(
		&agency.ID, &agency.CreatedAt, &agency.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create agency %s: %v", agency.Name, err)
	}
	return agency, nil
}

func GetAgencies(db *sql.DB) ([]*models.Agency, error) {
	query := `SELECT a.id, a.state_id, a.name, a.is_active, a.created_at, a.updated_at
			  FROM agencies a ORDER BY a.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agencies []*models.Agency
	for rows.Next() {
		a := &models.Agency{}
		if err := rows.Scan(&a.ID, &a.StateID, &a.Name, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		agencies = append(agencies, a)
	}
	return agencies, rows.Err()
}
