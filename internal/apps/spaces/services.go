package spaces

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const listLimit = 100

var ErrSpaceNotFound = errors.New("parking space not found")

type SpaceService struct {
	db *gorm.DB
}

func NewSpaceService(db *gorm.DB) *SpaceService {
	return &SpaceService{db: db}
}

func (s *SpaceService) Create(ownerID uuid.UUID, req CreateSpaceRequest) (*ParkingSpace, error) {
	space := ParkingSpace{
		ID:         uuid.New(),
		UserID:     ownerID,
		Title:      req.Title,
		Address:    req.Address,
		HourlyRate: req.HourlyRate,
		DailyRate:  req.DailyRate,
		Available:  true,
	}

	if err := s.db.Create(&space).Error; err != nil {
		return nil, fmt.Errorf("failed to create parking space: %w", err)
	}
	return &space, nil
}

func (s *SpaceService) ListAvailable() ([]ParkingSpace, error) {
	var list []ParkingSpace
	if err := s.db.Where("available = ?", true).Limit(listLimit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list parking spaces: %w", err)
	}
	return list, nil
}

func (s *SpaceService) ListByOwner(ownerID uuid.UUID) ([]ParkingSpace, error) {
	var list []ParkingSpace
	if err := s.db.Where("user_id = ?", ownerID).Limit(listLimit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list parking spaces: %w", err)
	}
	return list, nil
}

func (s *SpaceService) FindByID(id uuid.UUID) (*ParkingSpace, error) {
	var space ParkingSpace
	if err := s.db.Where("id = ?", id).First(&space).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, fmt.Errorf("failed to load parking space: %w", err)
	}
	return &space, nil
}
