package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/controlempleados/employee-records/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

const (
	accountCollection       = "accounts"
	roleCollection          = "roles"
	employeeCollection      = "employees"
	genderCollection        = "genders"
	maritalStatusCollection = "marital_statuses"
	counterCollection       = "counters"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// Bootstrap creates the unique indexes and seeds the reference catalogs.
// The unique indexes are the authoritative guard against duplicate
// usernames and employee natural keys; the service-layer existence checks
// are only fast paths.
func Bootstrap(ctx context.Context, db *mongo.Database) error {
	if err := ensureIndexes(ctx, db); err != nil {
		return err
	}
	return seedReferenceData(ctx, db)
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection(accountCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("create account indexes: %w", err)
	}

	_, err = db.Collection(employeeCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "national_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("create employee indexes: %w", err)
	}
	return nil
}

// seedReferenceData upserts the role and lookup catalogs so a fresh
// database starts with the rows registration and employee validation
// reference.
func seedReferenceData(ctx context.Context, db *mongo.Database) error {
	roles := []any{
		domain.Role{ID: 1, Name: domain.RoleAdmin},
		domain.Role{ID: 2, Name: domain.RoleUser},
	}
	if err := upsertAll(ctx, db.Collection(roleCollection), roles); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}

	genders := []any{
		domain.Gender{ID: 1, Name: "Male"},
		domain.Gender{ID: 2, Name: "Female"},
	}
	if err := upsertAll(ctx, db.Collection(genderCollection), genders); err != nil {
		return fmt.Errorf("seed genders: %w", err)
	}

	statuses := []any{
		domain.MaritalStatus{ID: 1, Name: "Single"},
		domain.MaritalStatus{ID: 2, Name: "Married"},
		domain.MaritalStatus{ID: 3, Name: "Divorced"},
		domain.MaritalStatus{ID: 4, Name: "Widowed"},
	}
	if err := upsertAll(ctx, db.Collection(maritalStatusCollection), statuses); err != nil {
		return fmt.Errorf("seed marital statuses: %w", err)
	}
	return nil
}

func upsertAll(ctx context.Context, coll *mongo.Collection, docs []any) error {
	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return err
		}
		var m bson.M
		if err := bson.Unmarshal(raw, &m); err != nil {
			return err
		}
		_, err = coll.UpdateOne(ctx,
			bson.M{"_id": m["_id"]},
			bson.M{"$set": m},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// nextID allocates the next integer id for the named sequence from the
// counters collection. The $inc runs atomically on the server, so
// concurrent allocations never collide.
func nextID(ctx context.Context, db *mongo.Database, sequence string) (int64, error) {
	var doc struct {
		Value int64 `bson:"value"`
	}
	err := db.Collection(counterCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": sequence},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", sequence, err)
	}
	return doc.Value, nil
}
