package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/iliyamo/river-cruise-booking/internal/model"
)

func TestBookingInsertAssignsIDAndCreatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2024, 5, 30, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("Jane Doe", "jane@example.com", "0820000000", sqlmock.AnyArg(), 3, int64(1000)).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT created_at FROM bookings").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	repo := NewBookingRepo(db)
	b := model.Booking{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "0820000000",
		CruiseDate: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Seats:      3,
		TotalCost:  1000,
	}
	if err := repo.Insert(context.Background(), &b); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if b.ID != 7 {
		t.Fatalf("id = %d, want 7", b.ID)
	}
	if !b.CreatedAt.Equal(created) {
		t.Fatalf("created_at = %v, want %v", b.CreatedAt, created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingInsertPropagatesError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(context.DeadlineExceeded)

	repo := NewBookingRepo(db)
	b := model.Booking{Name: "Jane Doe", Email: "jane@example.com", Phone: "0820000000", Seats: 3, TotalCost: 1000}
	if err := repo.Insert(context.Background(), &b); err == nil {
		t.Fatal("expected insert error")
	}
	if b.ID != 0 {
		t.Fatalf("id = %d on failed insert", b.ID)
	}
}

func TestListRecentScansRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cruise := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	created := cruise.Add(-48 * time.Hour)
	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "cruise_date", "seats", "total_cost", "created_at"}).
		AddRow(2, "John Roe", "john@example.com", "0830000000", cruise, 6, int64(1200), created).
		AddRow(1, "Jane Doe", "jane@example.com", "0820000000", cruise, 3, int64(1000), created)
	mock.ExpectQuery("SELECT (.+) FROM bookings ORDER BY id DESC").
		WithArgs(50).
		WillReturnRows(rows)

	repo := NewBookingRepo(db)
	got, err := repo.ListRecent(context.Background(), 50)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d bookings, want 2", len(got))
	}
	if got[0].ID != 2 || got[0].TotalCost != 1200 {
		t.Fatalf("first booking = %+v", got[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
