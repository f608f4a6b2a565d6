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

const accountsCollection = "staff_accounts"

// AccountRepository implements ports.AccountRepository using MongoDB.
type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(accountsCollection)}
}

type mongoAccount struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	FullName       string             `bson:"full_name"`
	Login          string             `bson:"login"`
	Role           string             `bson:"role"`
	PasswordHash   string             `bson:"password_hash"`
	LastLogin      *time.Time         `bson:"last_login,omitempty"`
	FailedAttempts int                `bson:"failed_attempts"`
	Blocked        bool               `bson:"blocked"`
	CreatedAt      int64              `bson:"created_at"`
	UpdatedAt      int64              `bson:"updated_at"`
}

func (a mongoAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:             a.ID.Hex(),
		FullName:       a.FullName,
		Login:          a.Login,
		Role:           a.Role,
		PasswordHash:   a.PasswordHash,
		LastLogin:      a.LastLogin,
		FailedAttempts: a.FailedAttempts,
		Blocked:        a.Blocked,
		CreatedAt:      unixToTime(a.CreatedAt),
		UpdatedAt:      unixToTime(a.UpdatedAt),
	}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoAccount{
		FullName:     account.FullName,
		Login:        account.Login,
		Role:         account.Role,
		PasswordHash: account.PasswordHash,
		CreatedAt:    now.Unix(),
		UpdatedAt:    now.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	return r.FindByLogin(ctx, account.Login)
}

func (r *AccountRepository) FindByLogin(ctx context.Context, login string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAccount
	if err := r.coll.FindOne(ctx, bson.M{"login": login}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return ma.toDomain(), nil
}

// RecordLoginFailure commits one failed attempt as a single pipeline update:
// the counter is incremented on the server and, when it reaches maxAttempts,
// the same write flips blocked and resets the counter. Concurrent attempts
// each land their own increment instead of overwriting a stale read.
func (r *AccountRepository) RecordLoginFailure(ctx context.Context, login string, maxAttempts int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	reached := bson.M{"$gte": bson.A{bson.M{"$add": bson.A{"$failed_attempts", 1}}, maxAttempts}}
	update := bson.A{bson.M{"$set": bson.M{
		"failed_attempts": bson.M{"$cond": bson.A{reached, 0, bson.M{"$add": bson.A{"$failed_attempts", 1}}}},
		"blocked":         reached,
		"updated_at":      time.Now().UTC().Unix(),
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ma mongoAccount
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"login": login, "blocked": false}, update, opts).Decode(&ma)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, r.classifyMiss(ctx, login)
		}
		return false, fmt.Errorf("record login failure: %w", err)
	}
	return ma.Blocked, nil
}

// RecordLoginSuccess resets the counter and stamps last_login. The filter
// matches only unblocked accounts, so a lockout committed by a concurrent
// attempt survives the success write.
func (r *AccountRepository) RecordLoginSuccess(ctx context.Context, login string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"login": login, "blocked": false}, bson.M{"$set": bson.M{
		"failed_attempts": 0,
		"last_login":      at.UTC(),
		"updated_at":      time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("record login success: %w", err)
	}
	if res.MatchedCount == 0 {
		return r.classifyMiss(ctx, login)
	}
	return nil
}

// Block sets the blocked flag; the failure counter is left as-is.
func (r *AccountRepository) Block(ctx context.Context, login string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"login": login}, bson.M{"$set": bson.M{
		"blocked":    true,
		"updated_at": time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("block account: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// classifyMiss distinguishes a missing account from one whose blocked flag
// excluded it from the update filter.
func (r *AccountRepository) classifyMiss(ctx context.Context, login string) error {
	n, err := r.coll.CountDocuments(ctx, bson.M{"login": login})
	if err != nil {
		return fmt.Errorf("classify login-state miss: %w", err)
	}
	if n == 0 {
		return domain.ErrAccountNotFound
	}
	return domain.ErrAccountBlocked
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, login string, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"login": login}, bson.M{"$set": bson.M{
		"password_hash": passwordHash,
		"updated_at":    time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) Unblock(ctx context.Context, login string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"login": login}, bson.M{"$set": bson.M{
		"blocked":         false,
		"failed_attempts": 0,
		"updated_at":      time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("unblock account: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// EnsureIndexes creates the unique login index.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "login", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
