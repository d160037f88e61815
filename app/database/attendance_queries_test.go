package database

import (
	"database/sql"
	"testing"
	"time"

	"pieforproviders/app/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestFindOrCreateAttendanceReturnsExistingWithoutInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	startsOn := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	checkIn := startsOn.Add(8 * time.Hour)
	checkOut := startsOn.Add(16 * time.Hour)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "child_site_id", "child_case_cycle_id", "starts_on",
		"check_in", "check_out", "created_at", "updated_at",
	}).AddRow("att-1", "cs-1", "ccc-1", startsOn, checkIn, checkOut, now, now)
	mock.ExpectQuery("SELECT id, child_site_id").
		WithArgs("cs-1", "ccc-1", startsOn).
		WillReturnRows(rows)

	attendance, err := FindOrCreateAttendance(db, &models.Attendance{
		ChildSiteID:      "cs-1",
		ChildCaseCycleID: "ccc-1",
		StartsOn:         startsOn,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
	})
	if err != nil {
		t.Fatalf("FindOrCreateAttendance: %v", err)
	}
	if attendance.ID != "att-1" {
		t.Errorf("expected existing row att-1, got %s", attendance.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestFindOrCreateAttendanceRejectsInvertedShift(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	startsOn := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	checkIn := startsOn.Add(8 * time.Hour)

	mock.ExpectQuery("SELECT id, child_site_id").
		WithArgs("cs-1", "ccc-1", startsOn).
		WillReturnError(sql.ErrNoRows)

	_, err = FindOrCreateAttendance(db, &models.Attendance{
		ChildSiteID:      "cs-1",
		ChildCaseCycleID: "ccc-1",
		StartsOn:         startsOn,
		CheckIn:          checkIn,
		CheckOut:         checkIn,
	})
	if err == nil {
		t.Fatal("expected error for check_in equal to check_out")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestFindOrCreateAttendanceInsertsWhenMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	startsOn := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	checkIn := startsOn.Add(9 * time.Hour)
	checkOut := startsOn.Add(14 * time.Hour)
	now := time.Now()

	mock.ExpectQuery("SELECT id, child_site_id").
		WithArgs("cs-1", "ccc-1", startsOn).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO attendances").
		WithArgs("cs-1", "ccc-1", startsOn, checkIn, checkOut).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("att-2", now, now))

	attendance, err := FindOrCreateAttendance(db, &models.Attendance{
		ChildSiteID:      "cs-1",
		ChildCaseCycleID: "ccc-1",
		StartsOn:         startsOn,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
	})
	if err != nil {
		t.Fatalf("FindOrCreateAttendance: %v", err)
	}
	if attendance.ID != "att-2" {
		t.Errorf("expected inserted row att-2, got %s", attendance.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
