package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/productapi/productapi-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository handles user persistence operations.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new UserRepository over db's users collection.
func NewUserRepository(db *mongo.Database) *UserRepository {
	if db == nil {
		return &UserRepository{}
	}
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// Create inserts a new user. The email is normalized before it is stored.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	user.Email = NormalizeEmail(user.Email)

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: NormalizeEmail(email)}}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ExistsByEmail reports whether a user with the given email is registered.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "email", Value: NormalizeEmail(email)}})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// NormalizeEmail is the canonical form under which emails are stored and looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
