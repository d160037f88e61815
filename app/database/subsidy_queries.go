package database

import (
	"database/sql"
	"fmt"

	"pieforproviders/app/models"
)

// FindOrCreateSubsidyRule looks a rate-table row up by (name, state, county).
func FindOrCreateSubsidyRule(db *sql.DB, rule *models.SubsidyRule) (*models.SubsidyRule, error) {
	existing := &models.SubsidyRule{}
	query := `SELECT id, name, state_id, county_id, license_type, max_age,
			  part_day_rate_cents, full_day_rate_cents, part_day_max_hours, full_day_max_hours,
			  full_plus_part_day_max_hours, full_plus_full_day_max_hours,
			  part_day_threshold, full_day_threshold, qris_rating, created_at, updated_at
			  FROM subsidy_rules WHERE name = $1 AND state_id = $2 AND county_id = $3`

	err := db.QueryRow(query, rule.Name, rule.StateID, rule.CountyID).Scan(
		&existing.ID, &existing.Name, &existing.StateID, &existing.CountyID,
		&existing.LicenseType, &existing.MaxAge, &existing.PartDayRateCents,
		&existing.FullDayRateCents, &existing.PartDayMaxHours, &existing.FullDayMaxHours,
		&existing.FullPlusPartDayMaxHours, &existing.FullPlusFullDayMaxHours,
		&existing.PartDayThreshold, &existing.FullDayThreshold, &existing.QrisRating,
		&existing.CreatedAt, &existing.UpdatedAt,
	)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up subsidy rule %s: %v", rule.Name, err)
	}

	insert := `INSERT INTO subsidy_rules (name, state_id, county_id, license_type, max_age,
			   part_day_rate_cents, full_day_rate_cents, part_day_max_hours, full_day_max_hours,
			   full_plus_part_day_max_hours, full_plus_full_day_max_hours,
			   part_day_threshold, full_day_threshold, qris_rating)
			   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			   RETURNING id, created_at, updated_at`
	err = db.QueryRow(insert,
		rule.Name, rule.StateID, rule.CountyID, rule.LicenseType, rule.MaxAge,
		rule.PartDayRateCents, rule.FullDayRateCents, rule.PartDayMaxHours,
		rule.FullDayMaxHours, rule.FullPlusPartDayMaxHours, rule.FullPlusFullDayMaxHours,
		rule.PartDayThreshold, rule.FullDayThreshold, rule.QrisRating,
	).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create subsidy rule %s: %v", rule.Name, err)
	}
	return rule, nil
}

func GetSubsidyRules(db *sql.DB) ([]*models.SubsidyRule, error) {
	query := `SELECT id, name, state_id, county_id, license_type, max_age,
			  part_day_rate_cents, full_day_rate_cents, part_day_max_hours, full_day_max_hours,
			  full_plus_part_day_max_hours, full_plus_full_day_max_hours,
			  part_day_threshold, full_day_threshold, qris_rating, created_at, updated_at
			  FROM subsidy_rules ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []*models.SubsidyRule
	for rows.Next() {
		r := &models.SubsidyRule{}
		if err := rows.Scan(
			&r.ID, &r.Name, &r.StateID, &r.CountyID, &r.LicenseType, &r.MaxAge,
			&r.PartDayRateCents, &r.FullDayRateCents, &r.PartDayMaxHours,
			&r.FullDayMaxHours, &r.FullPlusPartDayMaxHours, &r.FullPlusFullDayMaxHours,
			&r.PartDayThreshold, &r.FullDayThreshold, &r.QrisRating,
			&r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}
