package handler

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/productapi/productapi-go/internal/model"
	"github.com/productapi/productapi-go/internal/repository"
)

var errStoreDown = errors.New("dial tcp 10.0.0.5:27017: connection refused")

type memUsers struct {
	mu     sync.Mutex
	users  map[string]model.User
	writes int
}

func (m *memUsers) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	u.Email = repository.NormalizeEmail(u.Email)
	if _, ok := m.users[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	m.users[u.Email] = *u
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[repository.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (m *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.users[repository.NormalizeEmail(email)]
	return ok, nil
}

type memProducts struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]model.Product
	calls    int
	down     bool
}

func (m *memProducts) List(context.Context) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.down {
		return nil, errStoreDown
	}
	out := []model.Product{}
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProducts) GetByID(_ context.Context, id primitive.ObjectID) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func (m *memProducts) Create(_ context.Context, p *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	p.ID = primitive.NewObjectID()
	m.products[p.ID] = *p
	return nil
}

func (m *memProducts) Update(_ context.Context, id primitive.ObjectID, upd model.ProductUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	p, ok := m.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	m.products[id] = p
	return nil
}

func (m *memProducts) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	delete(m.products, id)
	return nil
}
