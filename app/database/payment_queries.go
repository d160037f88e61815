package database

import (
	"database/sql"
	"fmt"

	"pieforproviders/app/models"
)

// FindOrCreatePayment looks a payment up by (agency, site, paid_on). Care
// period and amounts only apply when the row is being created.
func FindOrCreatePayment(db *sql.DB, payment *models.Payment) (*models.Payment, error) {
	existing := &models.Payment{}
	query := `SELECT id, agency_id, site_id, paid_on, care_started_on, care_finished_on,
			  amount_cents, discrepancy_cents, created_at, updated_at
			  FROM payments WHERE agency_id = $1 AND site_id = $2 AND paid_on = $3`

	err := db.QueryRow(query, payment.AgencyID, payment.SiteID, payment.PaidOn).Scan(
		&existing.ID, &existing.AgencyID, &existing.SiteID, &existing.PaidOn,
		&existing.CareStartedOn, &existing.CareFinishedOn, &existing.AmountCents,
		&existing.DiscrepancyCents, &existing.CreatedAt, &existing.UpdatedAt,
	)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up payment: %v", err)
	}

	if payment.CareStartedOn.After(payment.CareFinishedOn) {
		return nil, fmt.Errorf("payment care period is inverted: %s after %s",
			payment.CareStartedOn.Format("2006-01-02"), payment.CareFinishedOn.Format("2006-01-02"))
	}

	insert := `INSERT INTO payments (agency_id, site_id, paid_on, care_started_on,
			   care_finished_on, amount_cents, discrepancy_cents)
			   VALUES ($1, $2, $3, $4, $5, $6, $7)
			   RETURNING id, created_at, updated_at`
	err = db.QueryRow(insert,
		payment.AgencyID, payment.SiteID, payment.PaidOn, payment.CareStartedOn,
		payment.CareFinishedOn, payment.AmountCents, payment.DiscrepancyCents,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %v", err)
	}
	return payment, nil
}

func GetPaymentsBySite(db *sql.DB, siteID string) ([]*models.Payment, error) {
	query := `SELECT id, agency_id, site_id, paid_on, care_started_on, care_finished_on,
			  amount_cents, discrepancy_cents, created_at, updated_at
			  FROM payments WHERE site_id = $1 ORDER BY paid_on DESC`

	return scanPayments(db.Query(query, siteID))
}

func GetPayments(db *sql.DB, limit, offset int) ([]*models.Payment, error) {
	query := `SELECT id, agency_id, site_id, paid_on, care_started_on, care_finished_on,
			  amount_cents, discrepancy_cents, created_at, updated_at
			  FROM payments ORDER BY paid_on DESC
			  LIMIT $1 OFFSET $2`

	return scanPayments(db.Query(query, limit, offset))
}

func scanPayments(rows *sql.Rows, err error) ([]*models.Payment, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		if err := rows.Scan(
			&p.ID, &p.AgencyID, &p.SiteID, &p.PaidOn, &p.CareStartedOn,
			&p.CareFinishedOn, &p.AmountCents, &p.DiscrepancyCents,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
