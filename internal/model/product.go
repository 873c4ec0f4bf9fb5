package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a catalogue item as stored in the products collection.
type Product struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title string             `bson:"title" json:"title"`
	Price float64            `bson:"price" json:"price"`
}

// CreateProductRequest represents a product creation request.
// Price is a pointer so that a missing price is distinguishable from zero.
type CreateProductRequest struct {
	Title string   `json:"title" validate:"required,min=1,max=255"`
	Price *float64 `json:"price" validate:"required,gte=0"`
}

// UpdateProductRequest represents a partial update; nil fields are left unchanged.
type UpdateProductRequest struct {
	Title *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Price *float64 `json:"price" validate:"omitempty,gte=0"`
}

// ProductUpdate is the set of fields to change on a stored product.
type ProductUpdate struct {
	Title *string
	Price *float64
}

// Empty reports whether the update changes nothing.
func (u ProductUpdate) Empty() bool {
	return u.Title == nil && u.Price == nil
}

// CreateProductResponse is returned after a product is created.
type CreateProductResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}
