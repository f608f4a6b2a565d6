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

const roomsCollection = "rooms"

// RoomRepository implements ports.RoomRepository using MongoDB.
type RoomRepository struct {
	coll *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{coll: db.Collection(roomsCollection)}
}

type mongoRoom struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Number        string             `bson:"number"`
	Floor         int                `bson:"floor"`
	Category      string             `bson:"category"`
	PricePerNight float64            `bson:"price_per_night"`
	Status        string             `bson:"status"`
}

func (m mongoRoom) toDomain() *domain.Room {
	return &domain.Room{
		ID:            m.ID.Hex(),
		Number:        m.Number,
		Floor:         m.Floor,
		Category:      m.Category,
		PricePerNight: m.PricePerNight,
		Status:        domain.RoomStatus(m.Status),
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoRoom{
		Number:        room.Number,
		Floor:         room.Floor,
		Category:      room.Category,
		PricePerNight: room.PricePerNight,
		Status:        string(room.Status),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoomExists
		}
		return nil, fmt.Errorf("insert room: %w", err)
	}
	return r.FindByNumber(ctx, room.Number)
}

func (r *RoomRepository) FindByNumber(ctx context.Context, number string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoRoom
	if err := r.coll.FindOne(ctx, bson.M{"number": number}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return m.toDomain(), nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoomNotFound
	}
	var m mongoRoom
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return m.toDomain(), nil
}

func (r *RoomRepository) List(ctx context.Context, status domain.RoomStatus) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "number", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Room
	for cursor.Next(ctx) {
		var m mongoRoom
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode room: %w", err)
		}
		out = append(out, m.toDomain())
	}
	return out, cursor.Err()
}

func (r *RoomRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count rooms: %w", err)
	}
	return n, nil
}

// UpdateStatus performs a compare-and-swap: the update only applies while the
// room is still in the expected state, so concurrent writers cannot clobber
// each other's transitions.
func (r *RoomRepository) UpdateStatus(ctx context.Context, id string, from, to domain.RoomStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRoomNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "status": string(from)},
		bson.M{"$set": bson.M{"status": string(to)}},
	)
	if err != nil {
		return fmt.Errorf("update room status: %w", err)
	}
	if res.MatchedCount == 0 {
		n, countErr := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
		if countErr == nil && n == 0 {
			return domain.ErrRoomNotFound
		}
		return domain.ErrRoomStateChanged
	}
	return nil
}

// EnsureIndexes creates the unique room number index.
func (r *RoomRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
