package database

import (
	"database/sql"
	"fmt"
	"time"

	"pieforproviders/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, full_name, greeting_name, organization, language,
			  phone_number, phone_type, timezone, opt_in_email, opt_in_text,
			  service_agreement_accepted, is_active, confirmed_at, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FullName, &user.GreetingName,
		&user.Organization, &user.Language, &user.PhoneNumber, &user.PhoneType,
		&user.Timezone, &user.OptInEmail, &user.OptInText,
		&user.ServiceAgreementAccepted, &user.IsActive, &user.ConfirmedAt,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, full_name, greeting_name, organization, language,
			  phone_number, phone_type, timezone, opt_in_email, opt_in_text,
			  service_agreement_accepted, is_active, confirmed_at, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FullName, &user.GreetingName,
		&user.Organization, &user.Language, &user.PhoneNumber, &user.PhoneType,
		&user.Timezone, &user.OptInEmail, &user.OptInText,
		&user.ServiceAgreementAccepted, &user.IsActive, &user.ConfirmedAt,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetAllUsers returns active users for the dashboard listing, newest first.
func GetAllUsers(db *sql.DB, limit, offset int) ([]*models.User, error) {
	query := `SELECT id, email, full_name, greeting_name, organization, language,
			  phone_number, phone_type, is_active, created_at, updated_at
			  FROM users WHERE is_active = true
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`

	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(
			&u.ID, &u.Email, &u.FullName, &u.GreetingName, &u.Organization,
			&u.Language, &u.PhoneNumber, &u.PhoneType, &u.IsActive,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateUser inserts a new user. The password must already be hashed.
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (email, password, full_name, greeting_name, organization,
			  language, phone_number, phone_type, timezone, opt_in_email, opt_in_text,
			  service_agreement_accepted, is_active, confirmed_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		user.Email, user.Password, user.FullName, user.GreetingName,
		user.Organization, user.Language, user.PhoneNumber, user.PhoneType,
		user.Timezone, user.OptInEmail, user.OptInText,
		user.ServiceAgreementAccepted, user.IsActive, user.ConfirmedAt,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %v", err)
	}
	return nil
}

// FindOrCreateUser looks a user up by email and creates it when missing.
// The returned user keeps the stored password hash, not the supplied one.
func FindOrCreateUser(db *sql.DB, user *models.User) (*models.User, error) {
	existing, err := GetUserByEmail(db, user.Email)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}
	if err := CreateUser(db, user); err != nil {
		return nil, err
	}
	return user, nil
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// ConfirmUser stamps confirmed_at for a freshly seeded or registered account.
func ConfirmUser(db *sql.DB, userID string) error {
	query := `UPDATE users SET confirmed_at = NOW(), updated_at = NOW()
			  WHERE id = $1 AND confirmed_at IS NULL`
	_, err := db.Exec(query, userID)
	return err
}

func CreateSession(db *sql.DB, sessionID interface{}, userID string, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, sessionID, userID, expiresAt, time.Now())
	return err
}

func GetSessionByID(db *sql.DB, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = $1 AND expires_at > NOW()`

	err := db.QueryRow(query, sessionID).Scan(
		&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func DeleteSession(db *sql.DB, sessionID string) error {
	_, err := db.Exec(`DELETE FROM sessions WHERE id = $1`, sessionID)
	return err
}

// CountRows returns the number of rows in a table. Only called with
// compile-time table names; the table name is interpolated, never user input.
func CountRows(db *sql.DB, table string) (int, error) {
	var count int
	err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	return count, err
}
