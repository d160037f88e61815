package database

import (
	"database/sql"
	"testing"
	"time"

	"pieforproviders/app/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestFindOrCreateChildReturnsExistingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	dob := time.Date(2019, 5, 4, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "full_name", "date_of_birth", "created_at", "updated_at"}).
		AddRow("child-1", "user-1", "Maria Baca", dob, now, now)
	mock.ExpectQuery("SELECT id, user_id, full_name").
		WithArgs("user-1", "Maria Baca").
		WillReturnRows(rows)

	child, err := FindOrCreateChild(db, &models.Child{
		UserID:      "user-1",
		FullName:    "Maria Baca",
		DateOfBirth: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("FindOrCreateChild: %v", err)
	}
	if child.ID != "child-1" {
		t.Errorf("expected existing row child-1, got %s", child.ID)
	}
	if !child.DateOfBirth.Equal(dob) {
		t.Errorf("expected stored birthday %s back, got %s", dob, child.DateOfBirth)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestFindOrCreateChildInsertsWhenMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, user_id, full_name").
		WithArgs("user-1", "Marcus Smith").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO children").
		WithArgs("user-1", "Marcus Smith", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("child-2", now, now))

	child, err := FindOrCreateChild(db, &models.Child{
		UserID:      "user-1",
		FullName:    "Marcus Smith",
		DateOfBirth: time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("FindOrCreateChild: %v", err)
	}
	if child.ID != "child-2" {
		t.Errorf("expected inserted row child-2, got %s", child.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
