package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/controlempleados/employee-records/internal/core/domain"
)

// MongoEmployeeRepository persists employee records and the Gender /
// MaritalStatus lookup catalogs.
type MongoEmployeeRepository struct {
	db        *mongo.Database
	employees *mongo.Collection
	genders   *mongo.Collection
	statuses  *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{
		db:        db,
		employees: db.Collection(employeeCollection),
		genders:   db.Collection(genderCollection),
		statuses:  db.Collection(maritalStatusCollection),
	}
}

// Create inserts a new employee. Duplicate national id or email trips the
// unique indexes and is reported as domain.ErrDuplicateEmployee.
func (r *MongoEmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	id, err := nextID(ctx, r.db, employeeCollection)
	if err != nil {
		return nil, err
	}

	doc := *e
	doc.ID = id
	if _, err := r.employees.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmployee
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	return &doc, nil
}

func (r *MongoEmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var e domain.Employee
	if err := r.employees.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return &e, nil
}

func (r *MongoEmployeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	cursor, err := r.employees.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Employee
	for cursor.Next(ctx) {
		var e domain.Employee
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		out = append(out, &e)
	}
	return out, cursor.Err()
}

// Update replaces the stored record. CreatedAt is preserved from the
// existing document.
func (r *MongoEmployeeRepository) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	existing, err := r.FindByID(ctx, e.ID)
	if err != nil {
		return nil, err
	}

	doc := *e
	doc.CreatedAt = existing.CreatedAt
	res, err := r.employees.ReplaceOne(ctx, bson.M{"_id": e.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmployee
		}
		return nil, fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	return &doc, nil
}

func (r *MongoEmployeeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.employees.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *MongoEmployeeRepository) FindGender(ctx context.Context, id int64) (*domain.Gender, error) {
	var g domain.Gender
	if err := r.genders.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGenderNotFound
		}
		return nil, fmt.Errorf("find gender: %w", err)
	}
	return &g, nil
}

func (r *MongoEmployeeRepository) ListGenders(ctx context.Context) ([]*domain.Gender, error) {
	cursor, err := r.genders.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list genders: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Gender
	for cursor.Next(ctx) {
		var g domain.Gender
		if err := cursor.Decode(&g); err != nil {
			return nil, fmt.Errorf("decode gender: %w", err)
		}
		out = append(out, &g)
	}
	return out, cursor.Err()
}

func (r *MongoEmployeeRepository) FindMaritalStatus(ctx context.Context, id int64) (*domain.MaritalStatus, error) {
	var s domain.MaritalStatus
	if err := r.statuses.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMaritalStatusNotFound
		}
		return nil, fmt.Errorf("find marital status: %w", err)
	}
	return &s, nil
}

func (r *MongoEmployeeRepository) ListMaritalStatuses(ctx context.Context) ([]*domain.MaritalStatus, error) {
	cursor, err := r.statuses.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list marital statuses: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.MaritalStatus
	for cursor.Next(ctx) {
		var s domain.MaritalStatus
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode marital status: %w", err)
		}
		out = append(out, &s)
	}
	return out, cursor.Err()
}
