package http

import (
	_ "embed"
	"net/http"

	"github.com/go-openapi/runtime/middleware"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	websocketTransport "github.com/kahvecikaan/zebra-store/internal/transport/websocket"
)

//go:embed swagger.yaml
var swaggerSpec []byte

// NewRouter builds the API handler. A nil corsConfig selects
// DefaultCORSConfig.
func NewRouter(
	ph *ProductHandler,
	sh *SessionHandler,
	logger hclog.Logger,
	wsh *websocketTransport.Handler,
	corsConfig *CORSConfig,
) http.Handler {
	router := mux.NewRouter()

	mw := NewMiddleware(logger, corsConfig)

	// Apply global middleware
	router.Use(mw.LoggingMiddleware)
	router.Use(mw.ContentTypeMiddleware)

	// Catalog
	router.HandleFunc("/products", ph.GetProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/{id:[0-9]+}", ph.GetProductByID).Methods(http.MethodGet)
	router.Handle("/products", mw.ProductBodyMiddleware(http.HandlerFunc(ph.AddProduct))).Methods(http.MethodPost)
	router.HandleFunc("/products/more", ph.LoadMore).Methods(http.MethodPost)
	router.HandleFunc("/categories", ph.ListCategories).Methods(http.MethodGet)

	// Sessions and carts
	sessions := router.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", sh.CreateSession).Methods(http.MethodPost)
	sessions.HandleFunc("/{sid}", sh.GetSession).Methods(http.MethodGet)
	sessions.HandleFunc("/{sid}/query", sh.UpdateQuery).Methods(http.MethodPut)
	sessions.HandleFunc("/{sid}/products", sh.CurrentView).Methods(http.MethodGet)
	sessions.HandleFunc("/{sid}/cart", sh.CartView).Methods(http.MethodGet)
	sessions.HandleFunc("/{sid}/cart/items/{id:[0-9]+}", sh.AddToCart).Methods(http.MethodPost)
	sessions.HandleFunc("/{sid}/cart/items/{id:[0-9]+}", sh.SetQuantity).Methods(http.MethodPut)
	sessions.HandleFunc("/{sid}/cart/items/{id:[0-9]+}", sh.RemoveFromCart).Methods(http.MethodDelete)
	sessions.HandleFunc("/{sid}/buy/{id:[0-9]+}", sh.BuyNow).Methods(http.MethodPost)

	if wsh != nil {
		router.HandleFunc("/ws", wsh.HandleWebSocket).Methods(http.MethodGet)
	}

	// Swagger UI and specification routes
	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(swaggerSpec)
	}).Methods(http.MethodGet)

	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	swaggerHandler := middleware.Redoc(swaggerOpts, nil)
	router.Handle("/docs", swaggerHandler).Methods(http.MethodGet)

	return mw.Recovery(mw.CORS(mw.Compress(router)))
}
