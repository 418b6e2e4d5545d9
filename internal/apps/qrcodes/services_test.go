package qrcodes

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/parkityourself/piys-backend/internal/apps/spaces"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestQRCodeService(t *testing.T) (*QRCodeService, *spaces.SpaceService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	for _, ddl := range []string{
		`CREATE TABLE parking_spaces (
			id text PRIMARY KEY,
			user_id text,
			title text,
			address text,
			hourly_rate real,
			daily_rate real,
			available numeric,
			created_at datetime
		)`,
		`CREATE TABLE qr_codes (
			id text PRIMARY KEY,
			user_id text,
			space_id text,
			unique_code text UNIQUE,
			qr_data text,
			qr_image text,
			created_at datetime
		)`,
	} {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	spaceService := spaces.NewSpaceService(db)
	return NewQRCodeService(db, spaceService), spaceService, db
}

func TestIssueAndResolve(t *testing.T) {
	svc, spaceService, _ := newTestQRCodeService(t)
	owner := uuid.New()

	space, err := spaceService.Create(owner, spaces.CreateSpaceRequest{
		Title: "Driveway", Address: "1 Main St", HourlyRate: 2.5,
	})
	if err != nil {
		t.Fatalf("create space: %v", err)
	}

	record, err := svc.Issue(owner, space.ID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(record.UniqueCode) != codeLength {
		t.Fatalf("unexpected code: %s", record.UniqueCode)
	}

	code, spaceID, ownerID, err := ParsePayload(record.QRData)
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}
	if code != record.UniqueCode || spaceID != space.ID || ownerID != owner {
		t.Fatalf("payload binding mismatch: %s", record.QRData)
	}

	gotSpace, gotRecord, err := svc.Resolve(record.UniqueCode)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if gotSpace.ID != space.ID || gotSpace.Title != "Driveway" {
		t.Fatalf("resolved wrong space: %+v", gotSpace)
	}
	if gotRecord.UniqueCode != record.UniqueCode {
		t.Fatalf("resolved wrong code: %s", gotRecord.UniqueCode)
	}
}

func TestResolveUnknownCode(t *testing.T) {
	svc, _, _ := newTestQRCodeService(t)

	if _, _, err := svc.Resolve("NOPE1234"); !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("expected ErrCodeNotFound, got %v", err)
	}
}

func TestResolveMissingSpace(t *testing.T) {
	svc, _, _ := newTestQRCodeService(t)
	owner := uuid.New()

	// Binding to a space id with no backing row: issuance does not verify
	// the space, so scans must report the missing space.
	record, err := svc.Issue(owner, uuid.New())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, _, err := svc.Resolve(record.UniqueCode); !errors.Is(err, ErrSpaceNotFound) {
		t.Fatalf("expected ErrSpaceNotFound, got %v", err)
	}
}

func TestResolveStoreFailure(t *testing.T) {
	svc, _, db := newTestQRCodeService(t)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	_, _, err = svc.Resolve("AB12CD34")
	if err == nil {
		t.Fatalf("expected error from closed store")
	}
	if errors.Is(err, ErrCodeNotFound) || errors.Is(err, ErrSpaceNotFound) {
		t.Fatalf("store failure must not read as not-found: %v", err)
	}
}
