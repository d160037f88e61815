package database

import (
	"database/sql"
	"fmt"
	"time"

	"pieforproviders/app/models"
)

// FindOrCreateChildSite looks an enrollment up by (child, site, started_care).
func FindOrCreateChildSite(db *sql.DB, childSite *models.ChildSite) (*models.ChildSite, error) {
	existing := &models.ChildSite{}
	query := `SELECT id, child_id, site_id, started_care, ended_care, created_at, updated_at
			  FROM child_sites WHERE child_id = $1 AND site_id = $2 AND started_care = $3`

	err := db.QueryRow(query, childSite.ChildID, childSite.SiteID, childSite.StartedCare).Scan(
		&existing.ID, &existing.ChildID, &existing.SiteID, &existing.StartedCare,
		&existing.EndedCare, &existing.CreatedAt, &existing.UpdatedAt,
	)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up enrollment: %v", err)
	}

	insert := `INSERT INTO child_sites (child_id, site_id, started_care, ended_care)
			   VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	err = db.QueryRow(insert, childSite.ChildID, childSite.SiteID, childSite.StartedCare, childSite.EndedCare).Scan(
		&childSite.ID, &childSite.CreatedAt, &childSite.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create enrollment: %v", err)
	}
	return childSite, nil
}

func GetChildSitesByChild(db *sql.DB, childID string) ([]*models.ChildSite, error) {
	query := `SELECT id, child_id, site_id, started_care, ended_care, created_at, updated_at
			  FROM child_sites WHERE child_id = $1 ORDER BY started_care`

	rows, err := db.Query(query, childID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.ChildSite
	for rows.Next() {
		cs := &models.ChildSite{}
		if err := rows.Scan(&cs.ID, &cs.ChildID, &cs.SiteID, &cs.StartedCare, &cs.EndedCare, &cs.CreatedAt, &cs.UpdatedAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, cs)
	}
	return enrollments, rows.Err()
}

// EndChildSite closes an enrollment by setting ended_care.
func EndChildSite(db *sql.DB, childSiteID string, endedCare time.Time) error {
	query := `UPDATE child_sites SET ended_care = $1, updated_at = NOW() WHERE id = $2`
	result, err := db.Exec(query, endedCare, childSiteID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
