package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/productapi/productapi-go/internal/model"
	"github.com/productapi/productapi-go/internal/validation"
)

func price(f float64) *float64 { return &f }
func title(s string) *string   { return &s }

func TestProductCreateAndGet(t *testing.T) {
	store := newFakeProductStore()
	svc := NewProductService(store)

	created, err := svc.Create(context.Background(), model.CreateProductRequest{Title: "Widget", Price: price(9.99)})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	got, err := svc.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestProductCreate_NegativePrice(t *testing.T) {
	store := newFakeProductStore()
	svc := NewProductService(store)

	_, err := svc.Create(context.Background(), model.CreateProductRequest{Title: "Widget", Price: price(-5)})

	assert.True(t, validation.IsValidationError(err))
	assert.Zero(t, store.calls)
	assert.Empty(t, store.products)
}

func TestProductGet_InvalidIDSkipsStore(t *testing.T) {
	store := newFakeProductStore()
	svc := NewProductService(store)

	_, err := svc.Get(context.Background(), "abc")

	assert.EqualError(t, err, "id must be a 24-character hex string")
	assert.Zero(t, store.calls)
}

func TestProductGet_NotFound(t *testing.T) {
	svc := NewProductService(newFakeProductStore())

	_, err := svc.Get(context.Background(), "507f1f77bcf86cd799439011")

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductList(t *testing.T) {
	svc := NewProductService(newFakeProductStore())

	empty, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = svc.Create(context.Background(), model.CreateProductRequest{Title: "A", Price: price(1)})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), model.CreateProductRequest{Title: "B", Price: price(2)})
	require.NoError(t, err)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Title)
	assert.Equal(t, "B", all[1].Title)
}

func TestProductUpdate_Partial(t *testing.T) {
	svc := NewProductService(newFakeProductStore())
	created, err := svc.Create(context.Background(), model.CreateProductRequest{Title: "Widget", Price: price(9.99)})
	require.NoError(t, err)

	require.NoError(t, svc.Update(context.Background(), created.ID.Hex(), model.UpdateProductRequest{Price: price(12)}))

	got, err := svc.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Title)
	assert.Equal(t, 12.0, got.Price)

	require.NoError(t, svc.Update(context.Background(), created.ID.Hex(), model.UpdateProductRequest{Title: title("Gadget")}))

	got, err = svc.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Gadget", got.Title)
	assert.Equal(t, 12.0, got.Price)
}

func TestProductUpdate_Rejections(t *testing.T) {
	store := newFakeProductStore()
	svc := NewProductService(store)

	err := svc.Update(context.Background(), "abc", model.UpdateProductRequest{Title: title("x")})
	assert.True(t, validation.IsValidationError(err))

	err = svc.Update(context.Background(), "507f1f77bcf86cd799439011", model.UpdateProductRequest{Price: price(-1)})
	assert.EqualError(t, err, "price must be greater than or equal to 0")
	assert.Zero(t, store.calls)

	err = svc.Update(context.Background(), "507f1f77bcf86cd799439011", model.UpdateProductRequest{Price: price(1)})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductDelete_Idempotent(t *testing.T) {
	svc := NewProductService(newFakeProductStore())
	created, err := svc.Create(context.Background(), model.CreateProductRequest{Title: "Widget", Price: price(1)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID.Hex()))
	require.NoError(t, svc.Delete(context.Background(), created.ID.Hex()))
	require.NoError(t, svc.Delete(context.Background(), primitive.NewObjectID().Hex()))

	_, err = svc.Get(context.Background(), created.ID.Hex())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductStoreErrorPropagates(t *testing.T) {
	store := newFakeProductStore()
	store.err = errors.New("server selection timeout")
	svc := NewProductService(store)

	_, err := svc.List(context.Background())
	assert.EqualError(t, err, "server selection timeout")
}
