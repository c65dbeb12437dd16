package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/zebra-store/internal/domain"
	"github.com/kahvecikaan/zebra-store/internal/service"
)

type ProductHandler struct {
	catalog      service.CatalogService
	logger       hclog.Logger
	loadMoreSize int
}

// NewProductHandler creates the catalog handlers. loadMoreSize is the batch
// size used when a load more request does not name a count.
func NewProductHandler(cs service.CatalogService, log hclog.Logger, loadMoreSize int) *ProductHandler {
	return &ProductHandler{
		catalog:      cs,
		logger:       log,
		loadMoreSize: loadMoreSize,
	}
}

// GetProducts handles GET /products
//
// swagger:route GET /products products listProducts
//
// Returns the catalog filtered by category and search text, in the requested order.
//
// Responses:
//
//	200: productsResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q, err := domain.NewQueryState(params.Get("search"), params.Get("category"), params.Get("sort"))
	if err != nil {
		writeError(w, h.logger, err, "Error getting products")
		return
	}

	products, err := h.catalog.GetProducts(r.Context(), q)
	if err != nil {
		writeError(w, h.logger, err, "Error getting products")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetProductByID handles GET /products/{id}
//
// swagger:route GET /products/{id} products getProductByID
//
// Returns a product by ID.
//
// Responses:
//
//	200: productResponse
//	400: errorResponse
//	404: errorResponse
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	product, err := h.catalog.GetProductByID(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err, "Error getting product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// AddProduct handles POST /products
//
// swagger:route POST /products products addProduct
//
// Adds a new product to the front of the catalog.
//
// Responses:
//
//	201: productResponse
//	400: errorResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *ProductHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	input, ok := r.Context().Value(ContextKeyProduct).(*domain.ProductInput)
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid product data"})
		return
	}

	product, err := h.catalog.AddProduct(r.Context(), *input)
	if err != nil {
		writeError(w, h.logger, err, "Error adding product")
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// LoadMore handles POST /products/more
//
// swagger:route POST /products/more products loadMore
//
// Appends a batch of generated products to the catalog.
//
// Responses:
//
//	201: productsResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *ProductHandler) LoadMore(w http.ResponseWriter, r *http.Request) {
	count := h.loadMoreSize
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid count"})
			return
		}
		count = n
	}

	products, err := h.catalog.LoadMore(r.Context(), count)
	if err != nil {
		writeError(w, h.logger, err, "Error loading products")
		return
	}

	writeJSON(w, http.StatusCreated, products)
}

// ListCategories handles GET /categories
//
// swagger:route GET /categories products listCategories
//
// Returns the category filters, starting with All.
//
// Responses:
//
//	200: categoriesResponse
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Categories())
}

// pathInt reads a numeric path variable, answering 400 when it is malformed
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid product ID"})
		return 0, false
	}
	return v, true
}
