package database

import (
	"database/sql"

	"pieforproviders/app/models"
)

// GetDashboardStats returns the aggregate counts shown on the dashboard.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow("SELECT COUNT(*) FROM users WHERE is_active = true").Scan(&stats.TotalUsers)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow("SELECT COUNT(*) FROM children").Scan(&stats.TotalChildren)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow("SELECT COUNT(*) FROM businesses WHERE is_active = true").Scan(&stats.TotalBusinesses)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow("SELECT COUNT(*) FROM sites WHERE is_active = true").Scan(&stats.TotalSites)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow("SELECT COUNT(*) FROM agencies WHERE is_active = true").Scan(&stats.TotalAgencies)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow("SELECT COUNT(*) FROM attendances").Scan(&stats.TotalAttendances)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow("SELECT COALESCE(SUM(amount_cents), 0) FROM payments").Scan(&stats.TotalPaidCents)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM case_cycles
					   WHERE status NOT IN ('expired', 'denied')`).Scan(&stats.OpenCaseCycles)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
