package database

import (
	"database/sql"
	"fmt"
	"time"

	"pieforproviders/app/models"
)

// FindOrCreateCaseCycle looks a case cycle up by its full descriptive tuple
// (user, effective_on, expires_on, submitted_on, status, copay_frequency).
// The copay amount only applies when the row is being created.
func FindOrCreateCaseCycle(db *sql.DB, cycle *models.CaseCycle) (*models.CaseCycle, error) {
	existing := &models.CaseCycle{}
	query := `SELECT id, user_id, status, copay_cents, copay_frequency, effective_on,
			  expires_on, submitted_on, notified_on, created_at, updated_at
			  FROM case_cycles
			  WHERE user_id = $1 AND effective_on = $2 AND expires_on = $3
			    AND submitted_on = $4 AND status = $5 AND copay_frequency = $6`

	err := db.QueryRow(query,
		cycle.UserID, cycle.EffectiveOn, cycle.ExpiresOn, cycle.SubmittedOn,
		cycle.Status, cycle.CopayFrequency,
	).Scan(
		&existing.ID, &existing.UserID, &existing.Status, &existing.CopayCents,
		&existing.CopayFrequency, &existing.EffectiveOn, &existing.ExpiresOn,
		&existing.SubmittedOn, &existing.NotifiedOn, &existing.CreatedAt, &existing.UpdatedAt,
	)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up case cycle: %v", err)
	}

	insert := `INSERT INTO case_cycles (user_id, status, copay_cents, copay_frequency,
			   effective_on, expires_on, submitted_on, notified_on)
			   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			   RETURNING id, created_at, updated_at`
	err = db.QueryRow(insert,
		cycle.UserID, cycle.Status, cycle.CopayCents, cycle.CopayFrequency,
		cycle.EffectiveOn, cycle.ExpiresOn, cycle.SubmittedOn, cycle.NotifiedOn,
	).Scan(&cycle.ID, &cycle.CreatedAt, &cycle.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create case cycle: %v", err)
	}
	return cycle, nil
}

func GetCaseCyclesByUser(db *sql.DB, userID string) ([]*models.CaseCycle, error) {
	query := `SELECT id, user_id, status, copay_cents, copay_frequency, effective_on,
			  expires_on, submitted_on, notified_on, created_at, updated_at
			  FROM case_cycles WHERE user_id = $1 ORDER BY effective_on DESC`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cycles []*models.CaseCycle
	for rows.Next() {
		cc := &models.CaseCycle{}
		if err := rows.Scan(
			&cc.ID, &cc.UserID, &cc.Status, &cc.CopayCents, &cc.CopayFrequency,
			&cc.EffectiveOn, &cc.ExpiresOn, &cc.SubmittedOn, &cc.NotifiedOn,
			&cc.CreatedAt, &cc.UpdatedAt,
		); err != nil {
			return nil, err
		}
		cycles = append(cycles, cc)
	}
	return cycles, rows.Err()
}

// ExpireCaseCycles marks every cycle whose authorization lapsed before asOf.
// Returns how many rows changed.
func ExpireCaseCycles(db *sql.DB, asOf time.Time) (int64, error) {
	query := `UPDATE case_cycles SET status = 'expired', updated_at = NOW()
			  WHERE expires_on < $1 AND status NOT IN ('expired', 'denied')`

	result, err := db.Exec(query, asOf)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// FindOrCreateChildCaseCycle looks an allowance up by (child, case cycle).
func FindOrCreateChildCaseCycle(db *sql.DB, ccc *models.ChildCaseCycle) (*models.ChildCaseCycle, error) {
	existing, err := GetChildCaseCycle(db, ccc.ChildID, ccc.CaseCycleID)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up child case cycle: %v", err)
	}

	insert := `INSERT INTO child_case_cycles (child_id, case_cycle_id, subsidy_rule_id,
			   part_days_allowed, full_days_allowed)
			   VALUES ($1, $2, $3, $4, $5)
			   RETURNING id, created_at, updated_at`
	err = db.QueryRow(insert,
		ccc.ChildID, ccc.CaseCycleID, ccc.SubsidyRuleID,
		ccc.PartDaysAllowed, ccc.FullDaysAllowed,
	).Scan(&ccc.ID, &ccc.CreatedAt, &ccc.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create child case cycle: %v", err)
	}
	return ccc, nil
}

// GetChildCaseCycle returns the allowance binding a child to a case cycle.
func GetChildCaseCycle(db *sql.DB, childID, caseCycleID string) (*models.ChildCaseCycle, error) {
	ccc := &models.ChildCaseCycle{}
	query := `SELECT id, child_id, case_cycle_id, subsidy_rule_id, part_days_allowed,
			  full_days_allowed, created_at, updated_at
			  FROM child_case_cycles WHERE child_id = $1 AND case_cycle_id = $2`

	err := db.QueryRow(query, childID, caseCycleID).Scan(
		&ccc.ID, &ccc.ChildID, &ccc.CaseCycleID, &ccc.SubsidyRuleID,
		&ccc.PartDaysAllowed, &ccc.FullDaysAllowed, &ccc.CreatedAt, &ccc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ccc, nil
}

func GetChildCaseCyclesByCaseCycle(db *sql.DB, caseCycleID string) ([]*models.ChildCaseCycle, error) {
	query := `SELECT id, child_id, case_cycle_id, subsidy_rule_id, part_days_allowed,
			  full_days_allowed, created_at, updated_at
			  FROM child_case_cycles WHERE case_cycle_id = $1`

	rows, err := db.Query(query, caseCycleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allowances []*models.ChildCaseCycle
	for rows.Next() {
		ccc := &models.ChildCaseCycle{}
		if err := rows.Scan(
			&ccc.ID, &ccc.ChildID, &ccc.CaseCycleID, &ccc.SubsidyRuleID,
			&ccc.PartDaysAllowed, &ccc.FullDaysAllowed, &ccc.CreatedAt, &ccc.UpdatedAt,
		); err != nil {
			return nil, err
		}
		allowances = append(allowances, ccc)
	}
	return allowances, rows.Err()
}
