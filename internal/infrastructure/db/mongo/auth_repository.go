package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/controlempleados/employee-records/internal/core/domain"
)

// MongoAuthRepository persists accounts and the role catalog.
type MongoAuthRepository struct {
	db       *mongo.Database
	accounts *mongo.Collection
	roles    *mongo.Collection
}

func NewAuthRepository(db *mongo.Database) *MongoAuthRepository {
	return &MongoAuthRepository{
		db:       db,
		accounts: db.Collection(accountCollection),
		roles:    db.Collection(roleCollection),
	}
}

type mongoAccount struct {
	ID           int64  `bson:"_id"`
	Username     string `bson:"username"`
	PasswordHash string `bson:"password_hash"`
	RoleID       int64  `bson:"role_id"`
	Active       bool   `bson:"active"`
	CreatedAt    int64  `bson:"created_at"`
	UpdatedAt    int64  `bson:"updated_at"`
}

// Create inserts a new account. The unique username index turns a racing
// duplicate insert into a duplicate-key error mapped to
// domain.ErrAccountExists.
func (r *MongoAuthRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	id, err := nextID(ctx, r.db, accountCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoAccount{
		ID:           id,
		Username:     account.Username,
		PasswordHash: account.PasswordHash,
		RoleID:       account.RoleID,
		Active:       account.Active,
		CreatedAt:    account.CreatedAt.Unix(),
		UpdatedAt:    account.UpdatedAt.Unix(),
	}

	if _, err := r.accounts.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	created.ID = id
	return &created, nil
}

func (r *MongoAuthRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.accounts.FindOne(ctx, bson.M{"username": username}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return r.toAccount(ctx, ma)
}

func (r *MongoAuthRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.accounts.FindOne(ctx, bson.M{"_id": id}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return r.toAccount(ctx, ma)
}

// SetActive flips the activation flag as a single atomic document update.
func (r *MongoAuthRepository) SetActive(ctx context.Context, id int64, active bool) error {
	res, err := r.accounts.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"active": active, "updated_at": time.Now().UTC().Unix()}},
	)
	if err != nil {
		return fmt.Errorf("set active: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// List returns all accounts with role names resolved from the catalog.
func (r *MongoAuthRepository) List(ctx context.Context) ([]*domain.Account, error) {
	cursor, err := r.accounts.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer cursor.Close(ctx)

	roleNames, err := r.roleNames(ctx)
	if err != nil {
		return nil, err
	}

	var out []*domain.Account
	for cursor.Next(ctx) {
		var ma mongoAccount
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		account := fromMongoAccount(ma)
		account.RoleName = roleNames[ma.RoleID]
		out = append(out, account)
	}
	return out, cursor.Err()
}

func (r *MongoAuthRepository) FindRole(ctx context.Context, id int64) (*domain.Role, error) {
	var role domain.Role
	if err := r.roles.FindOne(ctx, bson.M{"_id": id}).Decode(&role); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &role, nil
}

func (r *MongoAuthRepository) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	cursor, err := r.roles.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Role
	for cursor.Next(ctx) {
		var role domain.Role
		if err := cursor.Decode(&role); err != nil {
			return nil, fmt.Errorf("decode role: %w", err)
		}
		out = append(out, &role)
	}
	return out, cursor.Err()
}

func (r *MongoAuthRepository) toAccount(ctx context.Context, ma mongoAccount) (*domain.Account, error) {
	account := fromMongoAccount(ma)
	role, err := r.FindRole(ctx, ma.RoleID)
	if err != nil {
		return nil, err
	}
	account.RoleName = role.Name
	return account, nil
}

func (r *MongoAuthRepository) roleNames(ctx context.Context) (map[int64]domain.RoleName, error) {
	roles, err := r.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]domain.RoleName, len(roles))
	for _, role := range roles {
		names[role.ID] = role.Name
	}
	return names, nil
}

func fromMongoAccount(ma mongoAccount) *domain.Account {
	return &domain.Account{
		ID:           ma.ID,
		Username:     ma.Username,
		PasswordHash: ma.PasswordHash,
		RoleID:       ma.RoleID,
		Active:       ma.Active,
		CreatedAt:    unixToTime(ma.CreatedAt),
		UpdatedAt:    unixToTime(ma.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
