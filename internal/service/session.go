package service

import (
	"context"
	"errors"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/zebra-store/internal/domain"
	"github.com/kahvecikaan/zebra-store/internal/events"
	"github.com/kahvecikaan/zebra-store/internal/query"
	"github.com/kahvecikaan/zebra-store/internal/repository"
)

// QueryUpdate changes the fields that are set and leaves the rest alone
type QueryUpdate struct {
	Search   *string `json:"search,omitempty"`
	Category *string `json:"category,omitempty"`
	Sort     *string `json:"sort,omitempty"`
}

// SessionService holds the per-visitor operations: query parameters, the
// derived view and the cart.
type SessionService interface {
	CreateSession(ctx context.Context) (*domain.Session, error)
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	UpdateQuery(ctx context.Context, id string, update QueryUpdate) (*domain.Session, error)
	SetSearch(ctx context.Context, id, text string) (*domain.Session, error)
	SetCategory(ctx context.Context, id, category string) (*domain.Session, error)
	SetSort(ctx context.Context, id, key string) (*domain.Session, error)
	CurrentView(ctx context.Context, id string) ([]domain.Product, error)
	AddToCart(ctx context.Context, id string, productID int) (domain.CartView, error)
	RemoveFromCart(ctx context.Context, id string, productID int) (domain.CartView, error)
	SetQuantity(ctx context.Context, id string, productID, quantity int) (domain.CartView, error)
	BuyNow(ctx context.Context, id string, productID int) (domain.CartView, error)
	CartView(ctx context.Context, id string) (domain.CartView, error)
}

type sessionService struct {
	sessions repository.SessionRepository
	products repository.ProductRepository
	eventBus *events.EventBus[any]
	logger   hclog.Logger
}

func NewSessionService(
	sessions repository.SessionRepository,
	products repository.ProductRepository,
	eventBus *events.EventBus[any],
	logger hclog.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		products: products,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *sessionService) CreateSession(ctx context.Context) (*domain.Session, error) {
	session, err := s.sessions.Create(ctx)
	if err != nil {
		s.logger.Error("Unable to create session", "error", err)
		return nil, err
	}

	s.logger.Debug("Created session", "session", session.ID)
	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		s.logger.Error("Unable to get session", "session", id, "error", err)
		return nil, err
	}
	return session, nil
}

func (s *sessionService) UpdateQuery(ctx context.Context, id string, update QueryUpdate) (*domain.Session, error) {
	s.logger.Debug("Updating query", "session", id)

	var sortKey domain.SortKey
	if update.Sort != nil {
		key, err := domain.ParseSortKey(*update.Sort)
		if err != nil {
			s.logger.Error("Rejected sort key", "session", id, "sort", *update.Sort)
			return nil, err
		}
		sortKey = key
	}

	session, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		if update.Search != nil {
			session.Query.Search = *update.Search
		}
		if update.Category != nil {
			session.Query.Category = domain.ParseCategory(*update.Category)
		}
		if update.Sort != nil {
			session.Query.Sort = sortKey
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Unable to update query", "session", id, "error", err)
		return nil, err
	}
	return session, nil
}

func (s *sessionService) SetSearch(ctx context.Context, id, text string) (*domain.Session, error) {
	return s.UpdateQuery(ctx, id, QueryUpdate{Search: &text})
}

func (s *sessionService) SetCategory(ctx context.Context, id, category string) (*domain.Session, error) {
	return s.UpdateQuery(ctx, id, QueryUpdate{Category: &category})
}

func (s *sessionService) SetSort(ctx context.Context, id, key string) (*domain.Session, error) {
	return s.UpdateQuery(ctx, id, QueryUpdate{Sort: &key})
}

func (s *sessionService) CurrentView(ctx context.Context, id string) ([]domain.Product, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := s.products.GetAll(ctx)
	if err != nil {
		s.logger.Error("Unable to get products", "error", err)
		return nil, err
	}

	return query.DeriveView(products, session.Query), nil
}

func (s *sessionService) AddToCart(ctx context.Context, id string, productID int) (domain.CartView, error) {
	s.logger.Debug("Adding to cart", "session", id, "product", productID)

	return s.mutateCart(ctx, id, productID, func(cart *domain.Cart) {
		cart.Add(productID)
	})
}

func (s *sessionService) RemoveFromCart(ctx context.Context, id string, productID int) (domain.CartView, error) {
	s.logger.Debug("Removing from cart", "session", id, "product", productID)

	return s.mutateCart(ctx, id, productID, func(cart *domain.Cart) {
		cart.Remove(productID)
	})
}

func (s *sessionService) SetQuantity(ctx context.Context, id string, productID, quantity int) (domain.CartView, error) {
	s.logger.Debug("Setting cart quantity", "session", id, "product", productID, "quantity", quantity)

	if err := domain.CheckQuantity(quantity); err != nil {
		s.logger.Error("Invalid cart quantity", "session", id, "product", productID, "quantity", quantity)
		return domain.CartView{}, err
	}

	return s.mutateCart(ctx, id, productID, func(cart *domain.Cart) {
		cart.SetQuantity(productID, quantity)
	})
}

// BuyNow adds the product and hands back the cart so the caller can open it
func (s *sessionService) BuyNow(ctx context.Context, id string, productID int) (domain.CartView, error) {
	s.logger.Debug("Buy now", "session", id, "product", productID)
	return s.AddToCart(ctx, id, productID)
}

func (s *sessionService) CartView(ctx context.Context, id string) (domain.CartView, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return domain.CartView{}, err
	}
	return s.priceCart(ctx, session.Cart)
}

// mutateCart rejects products missing from the catalog before touching the
// cart, then returns the priced result.
func (s *sessionService) mutateCart(ctx context.Context, id string, productID int, fn func(*domain.Cart)) (domain.CartView, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			s.logger.Error("Cart references unknown product", "session", id, "product", productID)
		} else {
			s.logger.Error("Unable to look up product", "product", productID, "error", err)
		}
		return domain.CartView{}, err
	}

	session, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		fn(session.Cart)
		return nil
	})
	if err != nil {
		s.logger.Error("Unable to update cart", "session", id, "error", err)
		return domain.CartView{}, err
	}

	view, err := s.priceCart(ctx, session.Cart)
	if err != nil {
		return domain.CartView{}, err
	}

	s.eventBus.Publish(events.CartUpdated{
		SessionID: id,
		ItemCount: view.ItemCount,
		Subtotal:  view.Subtotal,
	})
	return view, nil
}

func (s *sessionService) priceCart(ctx context.Context, cart *domain.Cart) (domain.CartView, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		s.logger.Error("Unable to get products", "error", err)
		return domain.CartView{}, err
	}
	return domain.PriceCart(cart.Lines(), products), nil
}
