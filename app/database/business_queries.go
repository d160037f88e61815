package database

import (
	"database/sql"
	"fmt"

	"pieforproviders/app/models"
)

// FindOrCreateBusiness looks a business up by (user, name); the license type
// only applies when the row is being created.
func FindOrCreateBusiness(db *sql.DB, business *models.Business) (*models.Business, error) {
	existing := &models.Business{}
	query := `SELECT id, user_id, name, license_type, is_active, created_at, updated_at
			  FROM businesses WHERE user_id = $1 AND name = $2`

	err := db.QueryRow(query, business.UserID, business.Name).Scan(
		&existing.ID, &existing.UserID, &existing.Name, &existing.LicenseType,
		&existing.IsActive, &existing.CreatedAt, &existing.UpdatedAt,
	)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up business %s: %v", business.Name, err)
	}

	insert := `INSERT INTO businesses (user_id, name, license_type, is_active)
			   VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	err = db.QueryRow(insert, business.UserID, business.Name, business.LicenseType, business.IsActive).Scan(
		&business.ID, &business.CreatedAt, &business.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create business %s: %v", business.Name, err)
	}
	return business, nil
}

func GetBusinessByID(db *sql.DB, businessID string) (*models.Business, error) {
	business := &models.Business{}
	query := `SELECT id, user_id, name, license_type, is_active, created_at, updated_at
			  FROM businesses WHERE id = $1`

	err := db.QueryRow(query, businessID).Scan(
		&business.ID, &business.UserID, &business.Name, &business.LicenseType,
		&business.IsActive, &business.CreatedAt, &business.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return business, nil
}

func GetBusinessesByUser(db *sql.DB, userID string) ([]*models.Business, error) {
	query := `SELECT id, user_id, name, license_type, is_active, created_at, updated_at
			  FROM businesses WHERE user_id = $1 ORDER BY name`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []*models.Business
	for rows.Next() {
		b := &models.Business{}
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.LicenseType, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}
	return businesses, rows.Err()
}

// FindOrCreateSite looks a site up by (business, name); address, lookups,
// rating and the active flag only apply on creation.
func FindOrCreateSite(db *sql.DB, site *models.Site) (*models.Site, error) {
	existing := &models.Site{}
	query := `SELECT id, business_id, name, address, city_id, county_id, state_id, zipcode_id,
			  qris_rating, is_active, created_at, updated_at
			  FROM sites WHERE business_id = $1 AND name = $2`

	err := db.QueryRow(query, site.BusinessID, site.Name).Scan(
		&existing.ID, &existing.BusinessID, &existing.Name, &existing.Address,
		&existing.CityID, &existing.CountyID, &existing.StateID, &existing.ZipcodeID,
		&existing.QrisRating, &existing.IsActive, &existing.CreatedAt, &existing.UpdatedAt,
	)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up site %s: %v", site.Name, err)
	}

	insert := `INSERT INTO sites (business_id, name, address, city_id, county_id, state_id,
			   zipcode_id, qris_rating, is_active)
			   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			   RETURNING id, created_at, updated_at`
	err = db.QueryRow(insert,
		site.BusinessID, site.Name, site.Address, site.CityID, site.CountyID,
		site.StateID, site.ZipcodeID, site.QrisRating, site.IsActive,
	).Scan(&site.ID, &site.CreatedAt, &site.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create site %s: %v", site.Name, err)
	}
	return site, nil
}

func GetSitesByBusiness(db *sql.DB, businessID string) ([]*models.Site, error) {
	query := `SELECT id, business_id, name, address, city_id, county_id, state_id, zipcode_id,
			  qris_rating, is_active, created_at, updated_at
			  FROM sites WHERE business_id = $1 ORDER BY name`

	rows, err := db.Query(query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []*models.Site
	for rows.Next() {
		s := &models.Site{}
		if err := rows.Scan(
			&s.ID, &s.BusinessID, &s.Name, &s.Address, &s.CityID, &s.CountyID,
			&s.StateID, &s.ZipcodeID, &s.QrisRating, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sites = append(sites, s)
	}
	return sites, rows.Err()
}
