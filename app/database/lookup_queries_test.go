package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestFindOrCreateStateReturnsExistingByAbbr(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "abbr", "created_at"}).
		AddRow("state-1", "Wisconsin", "WI", time.Now())
	mock.ExpectQuery("SELECT id, name, abbr").
		WithArgs("WI").
		WillReturnRows(rows)

	state, err := FindOrCreateState(db, "Wisconsin", "WI")
	if err != nil {
		t.Fatalf("FindOrCreateState: %v", err)
	}
	if state.ID != "state-1" {
		t.Errorf("expected existing row state-1, got %s", state.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestFindOrCreateStateInsertsWhenMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, abbr").
		WithArgs("MT").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO lookup_states").
		WithArgs("Montana", "MT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow("state-2", time.Now()))

	state, err := FindOrCreateState(db, "Montana", "MT")
	if err != nil {
		t.Fatalf("FindOrCreateState: %v", err)
	}
	if state.ID != "state-2" {
		t.Errorf("expected inserted row state-2, got %s", state.ID)
	}
	if state.Name != "Montana" || state.Abbr != "MT" {
		t.Errorf("inserted state carries wrong attributes: %+v", state)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestFirstZipcodeForCityPropagatesNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, city_id, code").
		WithArgs("city-1").
		WillReturnError(sql.ErrNoRows)

	_, err = FirstZipcodeForCity(db, "city-1")
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
