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

const cleaningCollection = "cleaning_tasks"

// CleaningRepository implements ports.CleaningRepository using MongoDB.
type CleaningRepository struct {
	coll *mongo.Collection
}

func NewCleaningRepository(db *mongo.Database) *CleaningRepository {
	return &CleaningRepository{coll: db.Collection(cleaningCollection)}
}

type mongoCleaningTask struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	RoomID        string             `bson:"room_id"`
	StaffID       string             `bson:"staff_id"`
	ScheduledDate time.Time          `bson:"scheduled_date"`
	Status        string             `bson:"status"`
}

func (m mongoCleaningTask) toDomain() *domain.CleaningTask {
	return &domain.CleaningTask{
		ID:            m.ID.Hex(),
		RoomID:        m.RoomID,
		StaffID:       m.StaffID,
		ScheduledDate: m.ScheduledDate.UTC(),
		Status:        domain.CleaningStatus(m.Status),
	}
}

func (r *CleaningRepository) Create(ctx context.Context, task *domain.CleaningTask) (*domain.CleaningTask, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCleaningTask{
		RoomID:        task.RoomID,
		StaffID:       task.StaffID,
		ScheduledDate: task.ScheduledDate.UTC(),
		Status:        string(task.Status),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cleaning task: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CleaningRepository) FindByID(ctx context.Context, id string) (*domain.CleaningTask, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCleaningTaskNotFound
	}
	var m mongoCleaningTask
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCleaningTaskNotFound
		}
		return nil, fmt.Errorf("find cleaning task: %w", err)
	}
	return m.toDomain(), nil
}

func (r *CleaningRepository) HasAssigned(ctx context.Context, roomID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{
		"room_id": roomID,
		"status":  string(domain.CleaningAssigned),
	})
	if err != nil {
		return false, fmt.Errorf("count assigned tasks: %w", err)
	}
	return n > 0, nil
}

func (r *CleaningRepository) FindAssignedByRoom(ctx context.Context, roomID string) (*domain.CleaningTask, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoCleaningTask
	err := r.coll.FindOne(ctx, bson.M{
		"room_id": roomID,
		"status":  string(domain.CleaningAssigned),
	}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCleaningTaskNotFound
		}
		return nil, fmt.Errorf("find assigned task: %w", err)
	}
	return m.toDomain(), nil
}

// UpdateStatus performs a compare-and-swap on the task status.
func (r *CleaningRepository) UpdateStatus(ctx context.Context, id string, from, to domain.CleaningStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCleaningTaskNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "status": string(from)},
		bson.M{"$set": bson.M{"status": string(to)}},
	)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	if res.MatchedCount == 0 {
		n, countErr := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
		if countErr == nil && n == 0 {
			return domain.ErrCleaningTaskNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

// EnsureIndexes creates the room/status index used by assignment checks.
func (r *CleaningRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "room_id", Value: 1}, {Key: "status", Value: 1}},
	})
	return err
}
