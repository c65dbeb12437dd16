// Package classification of Zebra Store API
//
// # Documentation for Zebra Store API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import "github.com/kahvecikaan/zebra-store/internal/domain"

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Generic error message returned as a string
// swagger:response errorResponse
type errorResponseWrapper struct {
	// Description of the error
	// in: body
	Body ErrorResponse
}

// Validation errors defined as an array of strings
// swagger:response validationErrorResponse
type validationErrorResponseWrapper struct {
	// Collection of the errors
	// in: body
	Body ValidationError
}

// A list of products
// swagger:response productsResponse
type productsResponseWrapper struct {
	// Products in display order
	// in: body
	Body []domain.Product
}

// Data structure representing a single product
// swagger:response productResponse
type productResponseWrapper struct {
	// A single product
	// in: body
	Body domain.Product
}

// The category filters
// swagger:response categoriesResponse
type categoriesResponseWrapper struct {
	// in: body
	Body []domain.Category
}

// A browsing session
// swagger:response sessionResponse
type sessionResponseWrapper struct {
	// in: body
	Body SessionResponse
}

// The priced cart
// swagger:response cartResponse
type cartResponseWrapper struct {
	// in: body
	Body domain.CartView
}

// swagger:parameters getProductByID addToCart setQuantity removeFromCart buyNow
type productIDParamsWrapper struct {
	// The ID of the product
	// in: path
	// required: true
	ID int `json:"id"`
}

// swagger:parameters getSession updateQuery currentView cartView addToCart setQuantity removeFromCart buyNow
type sessionIDParamsWrapper struct {
	// The ID of the session
	// in: path
	// required: true
	SID string `json:"sid"`
}

// swagger:parameters addProduct
type productBodyParamsWrapper struct {
	// Product fields; id is assigned by the store.
	// in: body
	// required: true
	Body domain.ProductInput
}

// swagger:parameters listProducts
type listProductsParamsWrapper struct {
	// Case-insensitive text matched against name and description
	// in: query
	Search string `json:"search"`
	// Category filter, All when omitted
	// in: query
	Category string `json:"category"`
	// One of featured, rating, discount, priceLow, priceHigh
	// in: query
	Sort string `json:"sort"`
}

// swagger:parameters loadMore
type loadMoreParamsWrapper struct {
	// Number of products to generate
	// in: query
	Count int `json:"count"`
}

// ErrorResponse defines the structure for API error responses
//
// swagger:model
type ErrorResponse struct {
	// The error message
	//
	// required: true
	Message string `json:"message"`
}

// ValidationError defines the structure for API validation error responses
//
// swagger:model
type ValidationError struct {
	// The validation errors
	//
	// required: true
	Messages []string `json:"messages"`
}
