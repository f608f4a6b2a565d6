package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
)

const bookingsCollection = "bookings"

// BookingRepository implements ports.BookingRepository using MongoDB.
type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

type mongoBooking struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	GuestID  string             `bson:"guest_id"`
	RoomID   string             `bson:"room_id"`
	CheckIn  time.Time          `bson:"check_in"`
	CheckOut time.Time          `bson:"check_out"`
	BookedAt time.Time          `bson:"booked_at"`
	Status   string             `bson:"status"`
}

func (m mongoBooking) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:       m.ID.Hex(),
		GuestID:  m.GuestID,
		RoomID:   m.RoomID,
		CheckIn:  m.CheckIn.UTC(),
		CheckOut: m.CheckOut.UTC(),
		BookedAt: m.BookedAt.UTC(),
		Status:   domain.BookingStatus(m.Status),
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBooking{
		GuestID:  booking.GuestID,
		RoomID:   booking.RoomID,
		CheckIn:  booking.CheckIn.UTC(),
		CheckOut: booking.CheckOut.UTC(),
		BookedAt: time.Now().UTC(),
		Status:   string(booking.Status),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}
	var m mongoBooking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return m.toDomain(), nil
}

func activeStatuses() bson.M {
	return bson.M{"$in": bson.A{string(domain.BookingReserved), string(domain.BookingCheckedIn)}}
}

func (r *BookingRepository) ListActiveByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.list(ctx, bson.M{"room_id": roomID, "status": activeStatuses()})
}

// ListActiveOn returns active bookings whose half-open stay interval covers
// date: check_in <= date < check_out.
func (r *BookingRepository) ListActiveOn(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.list(ctx, bson.M{
		"status":    activeStatuses(),
		"check_in":  bson.M{"$lte": date.UTC()},
		"check_out": bson.M{"$gt": date.UTC()},
	})
}

func (r *BookingRepository) list(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Booking
	for cursor.Next(ctx) {
		var m mongoBooking
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		out = append(out, m.toDomain())
	}
	return out, cursor.Err()
}

// UpdateStatus performs a compare-and-swap on the booking status.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookingNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "status": string(from)},
		bson.M{"$set": bson.M{"status": string(to)}},
	)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if res.MatchedCount == 0 {
		n, countErr := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
		if countErr == nil && n == 0 {
			return domain.ErrBookingNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

// EnsureIndexes creates the conflict-scan and report-scan indexes.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "room_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "check_in", Value: 1}, {Key: "check_out", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
