package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/productapi/productapi-go/internal/model"
	"github.com/productapi/productapi-go/internal/repository"
	"github.com/productapi/productapi-go/internal/validation"
)

var ErrProductNotFound = errors.New("product not found")

// ProductStore is the resource store used by ProductService.
type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, id primitive.ObjectID, upd model.ProductUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProductService handles product business logic.
type ProductService struct {
	repo ProductStore
}

// NewProductService creates a new ProductService.
func NewProductService(repo ProductStore) *ProductService {
	return &ProductService{repo: repo}
}

// List returns all products.
func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

// Get returns the product with the given id.
func (s *ProductService) Get(ctx context.Context, id string) (model.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.Product{}, err
	}

	product, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return model.Product{}, mapNotFound(err)
	}
	return *product, nil
}

// Create validates req and stores a new product.
func (s *ProductService) Create(ctx context.Context, req model.CreateProductRequest) (model.Product, error) {
	if err := validation.Struct(req); err != nil {
		return model.Product{}, err
	}

	product := model.Product{
		Title: req.Title,
		Price: *req.Price,
	}
	if err := s.repo.Create(ctx, &product); err != nil {
		return model.Product{}, err
	}
	return product, nil
}

// Update applies the fields present in req to the product with the given id.
func (s *ProductService) Update(ctx context.Context, id string, req model.UpdateProductRequest) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	upd := model.ProductUpdate{Title: req.Title, Price: req.Price}
	return mapNotFound(s.repo.Update(ctx, oid, upd))
}

// Delete removes the product with the given id. Unknown ids succeed.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, oid)
}

func parseID(id string) (primitive.ObjectID, error) {
	if err := validation.ProductID(id); err != nil {
		return primitive.NilObjectID, err
	}
	return primitive.ObjectIDFromHex(id)
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return ErrProductNotFound
	}
	return err
}
