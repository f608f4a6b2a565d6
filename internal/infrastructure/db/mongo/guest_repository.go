package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
)

const guestsCollection = "guests"

// GuestRepository implements ports.GuestRepository using MongoDB.
type GuestRepository struct {
	coll *mongo.Collection
}

func NewGuestRepository(db *mongo.Database) *GuestRepository {
	return &GuestRepository{coll: db.Collection(guestsCollection)}
}

type mongoGuest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FullName    string             `bson:"full_name"`
	Phone       string             `bson:"phone"`
	Email       string             `bson:"email"`
	Passport    string             `bson:"passport"`
	Preferences string             `bson:"preferences,omitempty"`
}

func (m mongoGuest) toDomain() *domain.Guest {
	return &domain.Guest{
		ID:          m.ID.Hex(),
		FullName:    m.FullName,
		Phone:       m.Phone,
		Email:       m.Email,
		Passport:    m.Passport,
		Preferences: m.Preferences,
	}
}

func (r *GuestRepository) Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoGuest{
		FullName:    guest.FullName,
		Phone:       guest.Phone,
		Email:       guest.Email,
		Passport:    guest.Passport,
		Preferences: guest.Preferences,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrGuestExists
		}
		return nil, fmt.Errorf("insert guest: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *GuestRepository) FindByPassport(ctx context.Context, passport string) (*domain.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoGuest
	if err := r.coll.FindOne(ctx, bson.M{"passport": passport}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("find guest: %w", err)
	}
	return m.toDomain(), nil
}

// EnsureIndexes creates unique indexes on the identity fields.
func (r *GuestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "passport", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
