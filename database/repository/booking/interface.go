package bookingRepo

import (
	"context"

	"travelease/config"
	"travelease/database"
	"travelease/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines the interface for booking data access.
// Bookings are append-then-update records; nothing ever deletes them.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status string, fields map[string]interface{}) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
