package service

import (
	"context"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/zebra-store/internal/domain"
	"github.com/kahvecikaan/zebra-store/internal/events"
	"github.com/kahvecikaan/zebra-store/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	svc     SessionService
	bus     *events.EventBus[any]
	session string
}

func newSessionFixture(t *testing.T) sessionFixture {
	t.Helper()
	bus := events.NewEventBus[any]()
	svc := NewSessionService(
		repository.NewMemorySessionRepository(time.Hour),
		repository.NewMemoryProductRepository(repository.SeedProducts()),
		bus,
		hclog.NewNullLogger(),
	)
	s, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	return sessionFixture{svc: svc, bus: bus, session: s.ID}
}

func TestAddToCartTwiceMergesLine(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddToCart(ctx, f.session, 1)
	require.NoError(t, err)
	view, err := f.svc.AddToCart(ctx, f.session, 1)
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, 1278, view.Subtotal)
	assert.Equal(t, 2, view.ItemCount)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddToCart(ctx, f.session, 999)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	view, err := f.svc.CartView(ctx, f.session)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestCartOperationsUnknownSession(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddToCart(ctx, "missing", 1)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = f.svc.CartView(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = f.svc.CurrentView(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSetQuantityClampsToOne(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddToCart(ctx, f.session, 5)
	require.NoError(t, err)

	view, err := f.svc.SetQuantity(ctx, f.session, 5, 0)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 1, view.Lines[0].Quantity)

	view, err = f.svc.SetQuantity(ctx, f.session, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Lines[0].Quantity)
	assert.Equal(t, 1169*3, view.Subtotal)
}

func TestSetQuantityRejectsOversizeQuantity(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddToCart(ctx, f.session, 1)
	require.NoError(t, err)

	_, err = f.svc.SetQuantity(ctx, f.session, 1, 1<<62)
	_, ok := domain.AsValidationErrors(err)
	assert.True(t, ok, "expected validation error, got %v", err)

	view, err := f.svc.CartView(ctx, f.session)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Lines[0].Quantity)
	assert.Equal(t, 639, view.Subtotal)
}

func TestSetQuantityWithoutLineIsNoop(t *testing.T) {
	f := newSessionFixture(t)

	view, err := f.svc.SetQuantity(context.Background(), f.session, 5, 4)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)

	_, err = f.svc.SetQuantity(context.Background(), f.session, 999, 4)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRemoveFromCart(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddToCart(ctx, f.session, 1)
	require.NoError(t, err)
	_, err = f.svc.AddToCart(ctx, f.session, 2)
	require.NoError(t, err)

	view, err := f.svc.RemoveFromCart(ctx, f.session, 1)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Product.ID)

	// removing an absent line is a no-op
	view, err = f.svc.RemoveFromCart(ctx, f.session, 1)
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)
}

func TestBuyNowReturnsCart(t *testing.T) {
	f := newSessionFixture(t)
	sub := f.bus.Subscribe()

	view, err := f.svc.BuyNow(context.Background(), f.session, 16)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 569, view.Subtotal)
	assert.Equal(t, events.CartUpdated{SessionID: f.session, ItemCount: 1, Subtotal: 569}, <-sub)
}

func TestQueryStateDrivesCurrentView(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	_, err := f.svc.SetSearch(ctx, f.session, "hoodie")
	require.NoError(t, err)
	view, err := f.svc.CurrentView(ctx, f.session)
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, "Oversized Hoodie", view[0].Name)

	_, err = f.svc.SetSearch(ctx, f.session, "")
	require.NoError(t, err)
	_, err = f.svc.SetCategory(ctx, f.session, "kids")
	require.NoError(t, err)
	s, err := f.svc.SetSort(ctx, f.session, "priceHigh")
	require.NoError(t, err)
	assert.Equal(t, domain.QueryState{Category: domain.CategoryKids, Sort: domain.SortPriceHigh}, s.Query)

	view, err = f.svc.CurrentView(ctx, f.session)
	require.NoError(t, err)
	require.Len(t, view, 3)
	assert.Equal(t, "Kids Raincoat", view[0].Name)
}

func TestUpdateQueryRejectsUnknownSortAtomically(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	search := "tee"
	sort := "newest"
	_, err := f.svc.UpdateQuery(ctx, f.session, QueryUpdate{Search: &search, Sort: &sort})
	assert.ErrorIs(t, err, domain.ErrInvalidSortKey)

	s, err := f.svc.GetSession(ctx, f.session)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultQueryState(), s.Query)
}

func TestSessionsAreIsolated(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	other, err := f.svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = f.svc.AddToCart(ctx, f.session, 1)
	require.NoError(t, err)

	view, err := f.svc.CartView(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}
