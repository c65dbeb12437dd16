package service

import (
	"context"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/zebra-store/internal/domain"
	"github.com/kahvecikaan/zebra-store/internal/events"
	"github.com/kahvecikaan/zebra-store/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T, limit int) (CatalogService, *events.EventBus[any]) {
	t.Helper()
	bus := events.NewEventBus[any]()
	cs := NewCatalogService(
		repository.NewMemoryProductRepository(repository.SeedProducts()),
		domain.NewValidation(),
		bus,
		hclog.NewNullLogger(),
		limit,
	)
	return cs, bus
}

func TestGetProductsAppliesQuery(t *testing.T) {
	cs, _ := newCatalog(t, 0)

	products, err := cs.GetProducts(context.Background(), domain.QueryState{Search: "hoodie", Category: domain.CategoryAll})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Oversized Hoodie", products[0].Name)

	products, err = cs.GetProducts(context.Background(), domain.QueryState{Category: domain.CategoryWomen, Sort: domain.SortPriceLow})
	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, domain.CategoryWomen, p.Category)
	}
}

func TestAddProduct(t *testing.T) {
	cs, bus := newCatalog(t, 0)
	sub := bus.Subscribe()
	ctx := context.Background()

	product, err := cs.AddProduct(ctx, domain.ProductInput{
		Name:        "  Wool Scarf ",
		Category:    domain.CategoryAccessories,
		Price:       899,
		Description: "Warm and soft.",
	})
	require.NoError(t, err)
	assert.Equal(t, 21, product.ID)
	assert.Equal(t, "Wool Scarf", product.Name)
	assert.Equal(t, events.ProductAdded{ProductID: 21, Name: "Wool Scarf"}, <-sub)

	all, err := cs.GetProducts(ctx, domain.DefaultQueryState())
	require.NoError(t, err)
	assert.Equal(t, 21, all[0].ID)
}

func TestAddProductRejectsInvalidInput(t *testing.T) {
	cs, bus := newCatalog(t, 0)
	sub := bus.Subscribe()
	ctx := context.Background()

	_, err := cs.AddProduct(ctx, domain.ProductInput{Name: "", Price: 899, Description: " "})
	require.Error(t, err)

	ve, ok := domain.AsValidationErrors(err)
	require.True(t, ok)
	require.Len(t, ve, 2)
	assert.Equal(t, "name", ve[0].Field)
	assert.Equal(t, "description", ve[1].Field)

	all, err := cs.GetProducts(ctx, domain.DefaultQueryState())
	require.NoError(t, err)
	assert.Len(t, all, 20)
	assert.Len(t, sub, 0)
}

func TestLoadMore(t *testing.T) {
	cs, bus := newCatalog(t, 50)
	sub := bus.Subscribe()
	ctx := context.Background()

	products, err := cs.LoadMore(ctx, 12)
	require.NoError(t, err)
	require.Len(t, products, 12)
	assert.Equal(t, 21, products[0].ID)
	assert.Equal(t, 32, products[11].ID)
	assert.Equal(t, events.ProductsLoaded{FirstID: 21, LastID: 32, Count: 12}, <-sub)
}

func TestLoadMoreRejectsBadCounts(t *testing.T) {
	cs, _ := newCatalog(t, 50)

	for _, count := range []int{0, -1, 51} {
		_, err := cs.LoadMore(context.Background(), count)
		assert.ErrorIs(t, err, domain.ErrInvalidCount, "count %d", count)
	}
}

func TestCategories(t *testing.T) {
	cs, _ := newCatalog(t, 0)
	assert.Equal(t, []domain.Category{"All", "Men", "Women", "Kids", "Accessories"}, cs.Categories())
}

func TestGetProductByID(t *testing.T) {
	cs, _ := newCatalog(t, 0)

	p, err := cs.GetProductByID(context.Background(), 13)
	require.NoError(t, err)
	assert.Equal(t, "Leather Belt", p.Name)

	_, err = cs.GetProductByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
