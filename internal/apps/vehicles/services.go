package vehicles

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lists are capped; the API exposes no pagination beyond this.
const listLimit = 100

var ErrVehicleNotFound = errors.New("vehicle not found")

type VehicleService struct {
	db *gorm.DB
}

func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

func (s *VehicleService) Create(ownerID uuid.UUID, req CreateVehicleRequest) (*Vehicle, error) {
	vehicle := Vehicle{
		ID:           uuid.New(),
		UserID:       ownerID,
		LicensePlate: req.LicensePlate,
		Make:         req.Make,
		Model:        req.Model,
		Color:        req.Color,
	}

	if err := s.db.Create(&vehicle).Error; err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return &vehicle, nil
}

func (s *VehicleService) ListByOwner(ownerID uuid.UUID) ([]Vehicle, error) {
	var list []Vehicle
	if err := s.db.Where("user_id = ?", ownerID).Limit(listLimit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return list, nil
}

// DeleteByIDAndOwner deletes only when both id and owner match, so a stranger
// deleting a known id is indistinguishable from a missing record.
func (s *VehicleService) DeleteByIDAndOwner(id, ownerID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&Vehicle{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVehicleNotFound
	}
	return nil
}
