package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
)

const paymentsCollection = "payments"

// PaymentRepository implements ports.PaymentRepository using MongoDB.
type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(paymentsCollection)}
}

type mongoPayment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	BookingID     string             `bson:"booking_id"`
	Date          time.Time          `bson:"date"`
	Amount        float64            `bson:"amount"`
	ReceiptNumber string             `bson:"receipt_number,omitempty"`
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPayment{
		BookingID:     payment.BookingID,
		Date:          payment.Date.UTC(),
		Amount:        payment.Amount,
		ReceiptNumber: payment.ReceiptNumber,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	return &domain.Payment{
		ID:            res.InsertedID.(primitive.ObjectID).Hex(),
		BookingID:     doc.BookingID,
		Date:          doc.Date,
		Amount:        doc.Amount,
		ReceiptNumber: doc.ReceiptNumber,
	}, nil
}

// SumOn aggregates the total amount paid on the given date.
func (r *PaymentRepository) SumOn(ctx context.Context, date time.Time) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"date": date.UTC()}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum payments: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("decode payment sum: %w", err)
		}
	}
	return result.Total, cursor.Err()
}

// EnsureIndexes creates the date index used by the daily report.
func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
