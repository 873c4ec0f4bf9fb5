package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/productapi/productapi-go/internal/model"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository handles product persistence operations.
type ProductRepository struct {
	coll *mongo.Collection
}

// NewProductRepository creates a new ProductRepository over db's products collection.
func NewProductRepository(db *mongo.Database) *ProductRepository {
	if db == nil {
		return &ProductRepository{}
	}
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

// List returns every product in insertion order.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	products := []model.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID retrieves a product by its identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	product := &model.Product{}
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// Create inserts a product and sets the identifier generated for it.
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	product.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		product.ID = primitive.NilObjectID
		return err
	}
	return nil
}

// Update applies a partial update. Fields left nil in upd are not touched.
func (r *ProductRepository) Update(ctx context.Context, id primitive.ObjectID, upd model.ProductUpdate) error {
	filter := bson.D{{Key: "_id", Value: id}}

	if upd.Empty() {
		n, err := r.coll.CountDocuments(ctx, filter)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrProductNotFound
		}
		return nil
	}

	result, err := r.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: setFields(upd)}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete removes a product. Deleting an unknown id is not an error.
func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	return err
}

// setFields builds the $set document for a partial update.
func setFields(upd model.ProductUpdate) bson.D {
	set := bson.D{}
	if upd.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *upd.Title})
	}
	if upd.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *upd.Price})
	}
	return set
}
