package reservation

import (
	"context"
	"restaurant-backend/entities"

	"gorm.io/gorm"
)

type (
	ReservationRepository interface {
		CreateReservation(ctx context.Context, reservation *entities.Reservation) error
		GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error)
	}

	reservationRepository struct {
		db *gorm.DB
	}
)

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) CreateReservation(ctx context.Context, reservation *entities.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error) {
	var reservation entities.Reservation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}
