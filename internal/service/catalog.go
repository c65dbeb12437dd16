package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/zebra-store/internal/domain"
	"github.com/kahvecikaan/zebra-store/internal/events"
	"github.com/kahvecikaan/zebra-store/internal/query"
	"github.com/kahvecikaan/zebra-store/internal/repository"
)

type CatalogService interface {
	GetProducts(ctx context.Context, q domain.QueryState) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int) (domain.Product, error)
	AddProduct(ctx context.Context, input domain.ProductInput) (domain.Product, error)
	LoadMore(ctx context.Context, count int) ([]domain.Product, error)
	Categories() []domain.Category
}

type catalogService struct {
	repo          repository.ProductRepository
	validation    *domain.Validation
	eventBus      *events.EventBus[any]
	logger        hclog.Logger
	loadMoreLimit int
}

// NewCatalogService wires the catalog store to validation and events.
// loadMoreLimit caps a single LoadMore call; zero disables the cap.
func NewCatalogService(
	repo repository.ProductRepository,
	validation *domain.Validation,
	eventBus *events.EventBus[any],
	logger hclog.Logger,
	loadMoreLimit int) CatalogService {
	return &catalogService{
		repo:          repo,
		validation:    validation,
		eventBus:      eventBus,
		logger:        logger,
		loadMoreLimit: loadMoreLimit,
	}
}

func (s *catalogService) GetProducts(ctx context.Context, q domain.QueryState) ([]domain.Product, error) {
	s.logger.Debug("Getting products", "search", q.Search, "category", q.Category, "sort", q.Sort)

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Unable to get products", "error", err)
		return nil, err
	}

	return query.DeriveView(products, q), nil
}

func (s *catalogService) GetProductByID(ctx context.Context, id int) (domain.Product, error) {
	s.logger.Debug("Getting product by ID", "id", id)

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Unable to get the product by ID", "id", id, "error", err)
		return domain.Product{}, err
	}

	return product, nil
}

func (s *catalogService) AddProduct(ctx context.Context, input domain.ProductInput) (domain.Product, error) {
	input.Trim()
	s.logger.Debug("Adding new product", "name", input.Name)

	if errs := s.validation.Validate(&input); len(errs) > 0 {
		s.logger.Error("Rejected product", "name", input.Name, "errors", errs.Errors())
		return domain.Product{}, errs
	}

	product, err := s.repo.Add(ctx, input)
	if err != nil {
		s.logger.Error("Unable to add product", "name", input.Name, "error", err)
		return domain.Product{}, err
	}

	s.eventBus.Publish(events.ProductAdded{ProductID: product.ID, Name: product.Name})
	return product, nil
}

func (s *catalogService) LoadMore(ctx context.Context, count int) ([]domain.Product, error) {
	s.logger.Debug("Loading more products", "count", count)

	if count <= 0 || (s.loadMoreLimit > 0 && count > s.loadMoreLimit) {
		err := fmt.Errorf("%w: %d", domain.ErrInvalidCount, count)
		s.logger.Error("Rejected load more", "count", count, "limit", s.loadMoreLimit)
		return nil, err
	}

	products, err := s.repo.LoadMore(ctx, count)
	if err != nil {
		s.logger.Error("Unable to load more products", "count", count, "error", err)
		return nil, err
	}

	s.eventBus.Publish(events.ProductsLoaded{
		FirstID: products[0].ID,
		LastID:  products[len(products)-1].ID,
		Count:   len(products),
	})
	return products, nil
}

func (s *catalogService) Categories() []domain.Category {
	return append([]domain.Category{domain.CategoryAll}, domain.Categories()...)
}
