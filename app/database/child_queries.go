package database

import (
	"database/sql"
	"fmt"
	"time"

	"pieforproviders/app/models"
)

// FindOrCreateChild looks a child up by (user, full name). On a miss it
// inserts the supplied record, including its date of birth.
func FindOrCreateChild(db *sql.DB, child *models.Child) (*models.Child, error) {
	existing := &models.Child{}
	query := `SELECT id, user_id, full_name, date_of_birth, created_at, updated_at
			  FROM children WHERE user_id = $1 AND full_name = $2`

	err := db.QueryRow(query, child.UserID, child.FullName).Scan(
		&existing.ID, &existing.UserID, &existing.FullName, &existing.DateOfBirth,
		&existing.CreatedAt, &existing.UpdatedAt,
	)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up child %s: %v", child.FullName, err)
	}

	insert := `INSERT INTO children (user_id, full_name, date_of_birth)
			   VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	err = db.QueryRow(insert, child.UserID, child.FullName, child.DateOfBirth).Scan(
		&child.ID, &child.CreatedAt, &child.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create child %s: %v", child.FullName, err)
	}
	return child, nil
}

func GetChildByID(db *sql.DB, childID string) (*models.Child, error) {
	child := &models.Child{}
	query := `SELECT id, user_id, full_name, date_of_birth, created_at, updated_at
			  FROM children WHERE id = $1`

	err := db.QueryRow(query, childID).Scan(
		&child.ID, &child.UserID, &child.FullName, &child.DateOfBirth,
		&child.CreatedAt, &child.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return child, nil
}

func GetChildrenByUser(db *sql.DB, userID string, limit, offset int) ([]*models.Child, error) {
	query := `SELECT id, user_id, full_name, date_of_birth, created_at, updated_at
			  FROM children WHERE user_id = $1
			  ORDER BY full_name
			  LIMIT $2 OFFSET $3`

	rows, err := db.Query(query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var children []*models.Child
	for rows.Next() {
		c := &models.Child{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.FullName, &c.DateOfBirth, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return children, rows.Err()
}

func UpdateChild(db *sql.DB, childID, fullName string, dateOfBirth time.Time) error {
	query := `UPDATE children SET full_name = $1, date_of_birth = $2, updated_at = NOW() WHERE id = $3`
	result, err := db.Exec(query, fullName, dateOfBirth, childID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteChild(db *sql.DB, childID string) error {
	result, err := db.Exec(`DELETE FROM children WHERE id = $1`, childID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
