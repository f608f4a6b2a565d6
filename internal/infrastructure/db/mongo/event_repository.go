package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

const eventsCollection = "stay_events"

// EventRepository persists processed stay events as an audit trail.
type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) ports.EventRepository {
	return &EventRepository{coll: db.Collection(eventsCollection)}
}

func (r *EventRepository) Insert(ctx context.Context, event *domain.StayEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"room_number":  event.RoomNumber,
		"type":         event.Type,
		"timestamp":    event.Timestamp.UTC(),
		"source":       event.Source,
		"processed_at": time.Now().UTC(),
	}
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
