package repository

import (
	"context"
	"sync"

	"github.com/kahvecikaan/zebra-store/internal/domain"
)

// ProductRepository is the catalog store. Products are never updated or
// deleted once stored.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (domain.Product, error)
	Add(ctx context.Context, input domain.ProductInput) (domain.Product, error)
	LoadMore(ctx context.Context, count int) ([]domain.Product, error)
}

type memoryProductRepository struct {
	products []domain.Product
	nextID   int
	mutex    sync.RWMutex
}

// NewMemoryProductRepository returns a catalog holding the given products.
// Ids allocated afterwards start above the highest seeded id, or at 1 for an
// empty catalog.
func NewMemoryProductRepository(seed []domain.Product) ProductRepository {
	r := &memoryProductRepository{
		products: make([]domain.Product, len(seed)),
		nextID:   1,
	}
	copy(r.products, seed)
	for _, p := range seed {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *memoryProductRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryProductRepository) GetByID(ctx context.Context, id int) (domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, product := range r.products {
		if product.ID == id {
			return product, nil
		}
	}

	return domain.Product{}, domain.ErrProductNotFound
}

// Add stores a new product at the front of the catalog
func (r *memoryProductRepository) Add(ctx context.Context, input domain.ProductInput) (domain.Product, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	product := input.Build(r.allocateID())
	r.products = append([]domain.Product{product}, r.products...)
	return product, nil
}

// LoadMore appends count generated products to the end of the catalog
func (r *memoryProductRepository) LoadMore(ctx context.Context, count int) ([]domain.Product, error) {
	if count <= 0 {
		return nil, domain.ErrInvalidCount
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	generated := GenerateProducts(r.nextID, count)
	r.nextID += count
	r.products = append(r.products, generated...)

	out := make([]domain.Product, len(generated))
	copy(out, generated)
	return out, nil
}

func (r *memoryProductRepository) allocateID() int {
	id := r.nextID
	r.nextID++
	return id
}
