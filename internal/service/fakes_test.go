package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/productapi/productapi-go/internal/model"
	"github.com/productapi/productapi-go/internal/repository"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]model.User

	// skipExistsCheck makes ExistsByEmail always report false, so the
	// duplicate is only caught by Create.
	skipExistsCheck bool
	err             error
	creates         int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.creates++
	email := repository.NormalizeEmail(user.Email)
	if _, ok := f.users[email]; ok {
		return repository.ErrDuplicateEmail
	}
	user.Email = email
	f.users[email] = *user
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[repository.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if f.skipExistsCheck {
		return false, nil
	}
	_, ok := f.users[repository.NormalizeEmail(email)]
	return ok, nil
}

type fakeProductStore struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]model.Product
	order    []primitive.ObjectID
	calls    int
	err      error
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[primitive.ObjectID]model.Product)}
}

func (f *fakeProductStore) List(context.Context) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := []model.Product{}
	for _, id := range f.order {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func (f *fakeProductStore) Create(_ context.Context, product *model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	product.ID = primitive.NewObjectID()
	f.products[product.ID] = *product
	f.order = append(f.order, product.ID)
	return nil
}

func (f *fakeProductStore) Update(_ context.Context, id primitive.ObjectID, upd model.ProductUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	p, ok := f.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	f.products[id] = p
	return nil
}

func (f *fakeProductStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	delete(f.products, id)
	return nil
}
