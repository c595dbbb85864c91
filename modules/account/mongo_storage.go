package account

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	mongodb "github.com/pharmagarde/pharmagarde/pkg/mongo"
)

const usersCollection = "users"

type userDocument struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	Role         string    `bson:"role"`
	PasswordHash []byte    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (d userDocument) user() (*User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:           id,
		Email:        d.Email,
		Role:         Role(d.Role),
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}, nil
}

// MongoStorage stores users in the "users" collection.
type MongoStorage struct {
	coll *mongo.Collection
}

// NewMongoStorage ensures the unique email index exists.
func NewMongoStorage(ctx context.Context, db *mongo.Database) (*MongoStorage, error) {
	coll := db.Collection(usersCollection)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, mongodb.TranslateError(err)
	}
	return &MongoStorage{coll: coll}, nil
}

func (s *MongoStorage) CreateUser(ctx context.Context, user *User) error {
	_, err := s.coll.InsertOne(ctx, userDocument{
		ID:           user.ID.String(),
		Email:        user.Email,
		Role:         string(user.Role),
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailAlreadyExists
	}
	return mongodb.TranslateError(err)
}

func (s *MongoStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (s *MongoStorage) findOne(ctx context.Context, filter bson.D) (*User, error) {
	var doc userDocument
	err := s.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, mongodb.TranslateError(err)
	}
	return doc.user()
}
