package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ValueMap struct {
	Code *string `json:"code,omitempty"`
	Name string  `json:"name"`
}

// Address mirrors kernel.Address. Parts other than the city may be omitted.
type Address struct {
	Street     *ValueMap `json:"street,omitempty"`
	Quarter    *ValueMap `json:"quarter,omitempty"`
	City       ValueMap  `json:"city"`
	Region     *ValueMap `json:"region,omitempty"`
	Country    *ValueMap `json:"country,omitempty"`
	PostalCode *int      `json:"postalCode,omitempty"`
}

type Category struct {
	Name   string `json:"name"`
	IsFmcg bool   `json:"isFmcg"`
}

type Line struct {
	SKU           string     `json:"sku"`
	ShippingClass string     `json:"shippingClass"`
	Quantity      int        `json:"quantity"`
	TotalPrice    float64    `json:"totalPrice"`
	Categories    []Category `json:"categories,omitempty"`
}

type QuoteRequest struct {
	DeliveryMode string   `json:"deliveryMode"`
	Address      *Address `json:"address,omitempty"`
	Lines        []Line   `json:"lines"`
}

// NewOrder is the body of POST /api/v1/orders. A missing ID is generated.
type NewOrder struct {
	ID           *openapi_types.UUID `json:"id,omitempty"`
	DeliveryMode string              `json:"deliveryMode"`
	Address      *Address            `json:"address,omitempty"`
	Lines        []Line              `json:"lines"`
}

type CreatedOrder struct {
	ID openapi_types.UUID `json:"id"`
}

type DeliveryFees struct {
	Amount     float64 `json:"amount"`
	Negotiable bool    `json:"negotiable"`
}

type AwaitingOrder struct {
	ID           openapi_types.UUID `json:"id"`
	City         string             `json:"city"`
	DeliveryMode string             `json:"deliveryMode"`
	CreatedAt    time.Time          `json:"createdAt"`
}
