package vehicles

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestVehicleService(t *testing.T) *VehicleService {
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

	ddl := `CREATE TABLE vehicles (
		id text PRIMARY KEY,
		user_id text,
		license_plate text,
		make text,
		model text,
		color text,
		created_at datetime
	)`
	if err := db.Exec(ddl).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}

	return NewVehicleService(db)
}

func TestDeleteByIDAndOwnerScopedToOwner(t *testing.T) {
	svc := newTestVehicleService(t)
	owner := uuid.New()
	stranger := uuid.New()

	vehicle, err := svc.Create(owner, CreateVehicleRequest{
		LicensePlate: "ABC-123", Make: "Toyota", Model: "Corolla", Color: "blue",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// A non-owner deleting an existing id must look like not-found.
	if err := svc.DeleteByIDAndOwner(vehicle.ID, stranger); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound for non-owner, got %v", err)
	}

	list, err := svc.ListByOwner(owner)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 1 || list[0].ID != vehicle.ID {
		t.Fatalf("expected vehicle to survive non-owner delete, got %d records", len(list))
	}

	if err := svc.DeleteByIDAndOwner(vehicle.ID, owner); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	list, err = svc.ListByOwner(owner)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no vehicles after owner delete, got %d", len(list))
	}
}

func TestDeleteByIDAndOwnerMissingID(t *testing.T) {
	svc := newTestVehicleService(t)

	if err := svc.DeleteByIDAndOwner(uuid.New(), uuid.New()); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}
