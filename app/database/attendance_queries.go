package database

import (
	"database/sql"
	"fmt"
	"time"

	"pieforproviders/app/models"
)

// FindOrCreateAttendance looks an attendance record up by
// (enrollment, allowance, starts_on). Re-running a generator over the same
// date range therefore never duplicates a day.
func FindOrCreateAttendance(db *sql.DB, attendance *models.Attendance) (*models.Attendance, error) {
	existing := &models.Attendance{}
	query := `SELECT id, child_site_id, child_case_cycle_id, starts_on, check_in, check_out,
			  created_at, updated_at
			  FROM attendances
			  WHERE child_site_id = $1 AND child_case_cycle_id = $2 AND starts_on = $3`

	err := db.QueryRow(query, attendance.ChildSiteID, attendance.ChildCaseCycleID, attendance.StartsOn).Scan(
		&existing.ID, &existing.ChildSiteID, &existing.ChildCaseCycleID, &existing.StartsOn,
		&existing.CheckIn, &existing.CheckOut, &existing.CreatedAt, &existing.UpdatedAt,
	)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up attendance: %v", err)
	}

	if !attendance.CheckIn.Before(attendance.CheckOut) {
		return nil, fmt.Errorf("attendance check_in %s is not before check_out %s",
			attendance.CheckIn.Format(time.RFC3339), attendance.CheckOut.Format(time.RFC3339))
	}

	insert := `INSERT INTO attendances (child_site_id, child_case_cycle_id, starts_on, check_in, check_out)
			   VALUES ($1, $2, $3, $4, $5)
			   RETURNING id, created_at, updated_at`
	err = db.QueryRow(insert,
		attendance.ChildSiteID, attendance.ChildCaseCycleID, attendance.StartsOn,
		attendance.CheckIn, attendance.CheckOut,
	).Scan(&attendance.ID, &attendance.CreatedAt, &attendance.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create attendance: %v", err)
	}
	return attendance, nil
}

// GetAttendanceByChild returns a child's attendance across all enrollments,
// most recent day first.
func GetAttendanceByChild(db *sql.DB, childID string, limit, offset int) ([]*models.Attendance, error) {
	query := `SELECT a.id, a.child_site_id, a.child_case_cycle_id, a.starts_on, a.check_in,
			  a.check_out, a.created_at, a.updated_at
			  FROM attendances a
			  JOIN child_sites cs ON a.child_site_id = cs.id
			  WHERE cs.child_id = $1
			  ORDER BY a.starts_on DESC
			  LIMIT $2 OFFSET $3`

	return scanAttendances(db.Query(query, childID, limit, offset))
}

// GetAttendanceByChildAndDate returns a child's attendance for one calendar
// day.
func GetAttendanceByChildAndDate(db *sql.DB, childID string, date time.Time) ([]*models.Attendance, error) {
	query := `SELECT a.id, a.child_site_id, a.child_case_cycle_id, a.starts_on, a.check_in,
			  a.check_out, a.created_at, a.updated_at
			  FROM attendances a
			  JOIN child_sites cs ON a.child_site_id = cs.id
			  WHERE cs.child_id = $1 AND a.starts_on = $2`

	return scanAttendances(db.Query(query, childID, date))
}

func scanAttendances(rows *sql.Rows, err error) ([]*models.Attendance, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attendances []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{}
		if err := rows.Scan(
			&a.ID, &a.ChildSiteID, &a.ChildCaseCycleID, &a.StartsOn,
			&a.CheckIn, &a.CheckOut, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		attendances = append(attendances, a)
	}
	return attendances, rows.Err()
}
