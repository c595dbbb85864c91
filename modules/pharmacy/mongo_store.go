package pharmacy

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	mongodb "github.com/pharmagarde/pharmagarde/pkg/mongo"
)

const pharmaciesCollection = "pharmacies"

type document struct {
	ID             string    `bson:"_id"`
	OwnerID        string    `bson:"owner_id"`
	Name           string    `bson:"name"`
	PharmacistName string    `bson:"pharmacist_name"`
	Address        string    `bson:"address"`
	City           string    `bson:"city"`
	Phone          string    `bson:"phone"`
	Status         string    `bson:"status"`
	Verified       bool      `bson:"verified"`
	CreatedAt      time.Time `bson:"created_at"`
}

func toDocument(p *Pharmacy) document {
	return document{
		ID:             p.ID.String(),
		OwnerID:        p.OwnerID.String(),
		Name:           p.Name,
		PharmacistName: p.PharmacistName,
		Address:        p.Address,
		City:           p.City,
		Phone:          p.Phone,
		Status:         string(p.Status),
		Verified:       p.Verified,
		CreatedAt:      p.CreatedAt,
	}
}

func (d document) pharmacy() (Pharmacy, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return Pharmacy{}, err
	}
	owner, err := uuid.Parse(d.OwnerID)
	if err != nil {
		return Pharmacy{}, err
	}
	return Pharmacy{
		ID:             id,
		OwnerID:        owner,
		Name:           d.Name,
		PharmacistName: d.PharmacistName,
		Address:        d.Address,
		City:           d.City,
		Phone:          d.Phone,
		Status:         Status(d.Status),
		Verified:       d.Verified,
		CreatedAt:      d.CreatedAt.UTC(),
	}, nil
}

// MongoStore stores listings in the "pharmacies" collection.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore ensures the indexes backing the public search and the admin
// listing exist.
func NewMongoStore(ctx context.Context, db *mongo.Database) (*MongoStore, error) {
	coll := db.Collection(pharmaciesCollection)
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "verified", Value: 1}, {Key: "city", Value: 1}, {Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return nil, mongodb.TranslateError(err)
	}
	return &MongoStore{coll: coll}, nil
}

func (s *MongoStore) Create(ctx context.Context, p *Pharmacy) error {
	_, err := s.coll.InsertOne(ctx, toDocument(p))
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return mongodb.TranslateError(err)
}

func (s *MongoStore) Get(ctx context.Context, id uuid.UUID) (*Pharmacy, error) {
	var doc document
	if err := s.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		return nil, mongodb.TranslateError(err)
	}
	p, err := doc.pharmacy()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *MongoStore) Update(ctx context.Context, id uuid.UUID, info Info) error {
	return s.set(ctx, id, bson.D{
		{Key: "name", Value: info.Name},
		{Key: "pharmacist_name", Value: info.PharmacistName},
		{Key: "address", Value: info.Address},
		{Key: "city", Value: info.City},
		{Key: "phone", Value: info.Phone},
	})
}

func (s *MongoStore) SetStatus(ctx context.Context, id uuid.UUID, from, to Status) error {
	return s.swap(ctx, id, "status", string(from), string(to))
}

func (s *MongoStore) SetVerified(ctx context.Context, id uuid.UUID, from, to bool) error {
	return s.swap(ctx, id, "verified", from, to)
}

func (s *MongoStore) set(ctx context.Context, id uuid.UUID, fields bson.D) error {
	res, err := s.coll.UpdateOne(ctx, byID(id), bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return mongodb.TranslateError(err)
	}
	if res.MatchedCount == 0 {
		return errNotFound(id)
	}
	return nil
}

// swap sets field to to only if it still holds from.
func (s *MongoStore) swap(ctx context.Context, id uuid.UUID, field string, from, to any) error {
	filter := append(byID(id), bson.E{Key: field, Value: from})
	res, err := s.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: to}}}})
	if err != nil {
		return mongodb.TranslateError(err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	n, err := s.coll.CountDocuments(ctx, byID(id))
	if err != nil {
		return mongodb.TranslateError(err)
	}
	if n == 0 {
		return errNotFound(id)
	}
	return errChanged(id)
}

func (s *MongoStore) ListOnDuty(ctx context.Context, city string) ([]Pharmacy, error) {
	filter := bson.D{
		{Key: "status", Value: string(StatusOnDuty)},
		{Key: "verified", Value: true},
	}
	if city != "" {
		filter = append(filter, bson.E{Key: "city", Value: city})
	}
	return s.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}))
}

func (s *MongoStore) ListAll(ctx context.Context) ([]Pharmacy, error) {
	return s.find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}))
}

func (s *MongoStore) find(ctx context.Context, filter bson.D, opts *options.FindOptionsBuilder) ([]Pharmacy, error) {
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, mongodb.TranslateError(err)
	}

	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongodb.TranslateError(err)
	}

	out := make([]Pharmacy, 0, len(docs))
	for _, d := range docs {
		p, err := d.pharmacy()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func byID(id uuid.UUID) bson.D {
	return bson.D{{Key: "_id", Value: id.String()}}
}
