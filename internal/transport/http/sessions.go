package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/zebra-store/internal/domain"
	"github.com/kahvecikaan/zebra-store/internal/service"
)

type SessionHandler struct {
	sessions service.SessionService
	logger   hclog.Logger
}

func NewSessionHandler(ss service.SessionService, log hclog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: ss,
		logger:   log,
	}
}

// SessionResponse is the public view of a session
//
// swagger:model
type SessionResponse struct {
	ID        string            `json:"id"`
	Query     domain.QueryState `json:"query"`
	CartLines int               `json:"cart_lines"`
	CreatedAt time.Time         `json:"created_at"`
}

// QuantityRequest is the body of a quantity change
//
// swagger:model
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

func toSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:        s.ID,
		Query:     s.Query,
		CartLines: s.Cart.Len(),
		CreatedAt: s.CreatedAt,
	}
}

// CreateSession handles POST /sessions
//
// swagger:route POST /sessions sessions createSession
//
// Starts a browsing session with an empty cart.
//
// Responses:
//
//	201: sessionResponse
//	500: errorResponse
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.CreateSession(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "Error creating session")
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

// GetSession handles GET /sessions/{sid}
//
// swagger:route GET /sessions/{sid} sessions getSession
//
// Returns the query state of a session.
//
// Responses:
//
//	200: sessionResponse
//	404: errorResponse
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.GetSession(r.Context(), mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, h.logger, err, "Error getting session")
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// UpdateQuery handles PUT /sessions/{sid}/query
//
// swagger:route PUT /sessions/{sid}/query sessions updateQuery
//
// Changes the search text, category or sort key of a session. Omitted fields keep their value.
//
// Responses:
//
//	200: sessionResponse
//	400: errorResponse
//	404: errorResponse
//	422: validationErrorResponse
func (h *SessionHandler) UpdateQuery(w http.ResponseWriter, r *http.Request) {
	var update service.QueryUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Error("Error decoding query update", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid query data"})
		return
	}

	session, err := h.sessions.UpdateQuery(r.Context(), mux.Vars(r)["sid"], update)
	if err != nil {
		writeError(w, h.logger, err, "Error updating query")
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// CurrentView handles GET /sessions/{sid}/products
//
// swagger:route GET /sessions/{sid}/products sessions currentView
//
// Returns the catalog as seen through the session's query state.
//
// Responses:
//
//	200: productsResponse
//	404: errorResponse
func (h *SessionHandler) CurrentView(w http.ResponseWriter, r *http.Request) {
	products, err := h.sessions.CurrentView(r.Context(), mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, h.logger, err, "Error getting products")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// CartView handles GET /sessions/{sid}/cart
//
// swagger:route GET /sessions/{sid}/cart cart cartView
//
// Returns the priced cart of a session.
//
// Responses:
//
//	200: cartResponse
//	404: errorResponse
func (h *SessionHandler) CartView(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.CartView(r.Context(), mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, h.logger, err, "Error getting cart")
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// AddToCart handles POST /sessions/{sid}/cart/items/{id}
//
// swagger:route POST /sessions/{sid}/cart/items/{id} cart addToCart
//
// Adds one unit of a product to the cart.
//
// Responses:
//
//	200: cartResponse
//	400: errorResponse
//	404: errorResponse
func (h *SessionHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	view, err := h.sessions.AddToCart(r.Context(), mux.Vars(r)["sid"], id)
	if err != nil {
		writeError(w, h.logger, err, "Error adding to cart")
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// SetQuantity handles PUT /sessions/{sid}/cart/items/{id}
//
// swagger:route PUT /sessions/{sid}/cart/items/{id} cart setQuantity
//
// Sets the quantity of a cart line. Quantities below one are raised to one.
//
// Responses:
//
//	200: cartResponse
//	400: errorResponse
//	404: errorResponse
func (h *SessionHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var req QuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Error decoding quantity", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid quantity"})
		return
	}

	view, err := h.sessions.SetQuantity(r.Context(), mux.Vars(r)["sid"], id, req.Quantity)
	if err != nil {
		writeError(w, h.logger, err, "Error setting quantity")
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// RemoveFromCart handles DELETE /sessions/{sid}/cart/items/{id}
//
// swagger:route DELETE /sessions/{sid}/cart/items/{id} cart removeFromCart
//
// Removes a product from the cart.
//
// Responses:
//
//	200: cartResponse
//	400: errorResponse
//	404: errorResponse
func (h *SessionHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	view, err := h.sessions.RemoveFromCart(r.Context(), mux.Vars(r)["sid"], id)
	if err != nil {
		writeError(w, h.logger, err, "Error removing from cart")
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// BuyNow handles POST /sessions/{sid}/buy/{id}
//
// swagger:route POST /sessions/{sid}/buy/{id} cart buyNow
//
// Adds a product to the cart and returns the cart for display.
//
// Responses:
//
//	200: cartResponse
//	400: errorResponse
//	404: errorResponse
func (h *SessionHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	view, err := h.sessions.BuyNow(r.Context(), mux.Vars(r)["sid"], id)
	if err != nil {
		writeError(w, h.logger, err, "Error buying product")
		return
	}

	writeJSON(w, http.StatusOK, view)
}
