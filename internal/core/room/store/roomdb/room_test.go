package roomdb

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gowvp/bbbrooms/internal/core/room"
	"github.com/ixugo/goddd/pkg/web"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func generateMockDB() (*gorm.DB, sqlmock.Sqlmock, error) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{})
	return db, mock, err
}

func TestRoomGet(t *testing.T) {
	db, mock, err := generateMockDB()
	if err != nil {
		t.Fatal(err)
	}
	roomDB := NewRoom(db)

	rows := sqlmock.NewRows([]string{"id", "name", "meeting_id"}).AddRow("r1", "Daily", "m1")
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE id=\$1 (.+) LIMIT \$2`).WithArgs("r1", 1).WillReturnRows(rows)

	var out room.Room
	if err := roomDB.Get(context.Background(), &out, "r1"); err != nil {
		t.Fatal(err)
	}
	if out.MeetingID != "m1" {
		t.Fatalf("MeetingID = %s, want m1", out.MeetingID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal("ExpectationsWereMet err:", err)
	}
}

func TestRoomGetNotFound(t *testing.T) {
	db, mock, err := generateMockDB()
	if err != nil {
		t.Fatal(err)
	}
	roomDB := NewRoom(db)

	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE id=\$1 (.+) LIMIT \$2`).WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	var out room.Room
	if err := roomDB.Get(context.Background(), &out, "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal("ExpectationsWereMet err:", err)
	}
}

func TestRoomFind(t *testing.T) {
	db, mock, err := generateMockDB()
	if err != nil {
		t.Fatal(err)
	}
	roomDB := NewRoom(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "rooms" WHERE name LIKE \$1`).WithArgs("%Daily%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE name LIKE \$1 ORDER BY created_at DESC LIMIT (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "meeting_id"}).
			AddRow("r1", "Daily A", "m1").
			AddRow("r2", "Daily B", "m2"))

	var out []*room.Room
	total, err := roomDB.Find(context.Background(), &out, &web.PagerFilter{Page: 1, Size: 10}, "Daily")
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(out) != 2 {
		t.Fatalf("total = %d, len = %d, want 2, 2", total, len(out))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal("ExpectationsWereMet err:", err)
	}
}

func TestRoomDel(t *testing.T) {
	db, mock, err := generateMockDB()
	if err != nil {
		t.Fatal(err)
	}
	roomDB := NewRoom(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE id=\$1 (.+) LIMIT \$2`).WithArgs("r1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "meeting_id"}).AddRow("r1", "Daily", "m1"))
	mock.ExpectExec(`DELETE FROM "rooms" WHERE id=\$1`).WithArgs("r1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var out room.Room
	if err := roomDB.Del(context.Background(), &out, "r1"); err != nil {
		t.Fatal(err)
	}
	if out.Name != "Daily" {
		t.Fatalf("Name = %s, want Daily", out.Name)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal("ExpectationsWereMet err:", err)
	}
}

func TestRoomDelNotFound(t *testing.T) {
	db, mock, err := generateMockDB()
	if err != nil {
		t.Fatal(err)
	}
	roomDB := NewRoom(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE id=\$1 (.+) LIMIT \$2`).WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	var out room.Room
	if err := roomDB.Del(context.Background(), &out, "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal("ExpectationsWereMet err:", err)
	}
}
