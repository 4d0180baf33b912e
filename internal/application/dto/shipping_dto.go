package dto

import "github.com/shopspring/decimal"

// ShippingZoneResponse zona de envío.
type ShippingZoneResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Enabled bool   `json:"enabled"`
}

// ShippingRateResponse tarifa de una zona.
type ShippingRateResponse struct {
	ID                    string           `json:"id"`
	ZoneID                string           `json:"zone_id"`
	Rate                  decimal.Decimal  `json:"rate"`
	MinOrderAmount        *decimal.Decimal `json:"min_order_amount"`
	FreeShippingThreshold *decimal.Decimal `json:"free_shipping_threshold"`
}

// ShippingQuoteResponse costo de envío para una ciudad y subtotal.
type ShippingQuoteResponse struct {
	City         string                `json:"city"`
	Zone         *ShippingZoneResponse `json:"zone,omitempty"`
	Rate         decimal.Decimal       `json:"rate"`
	Cost         decimal.Decimal       `json:"cost"`
	FreeShipping bool                  `json:"free_shipping"`
	Currency     string                `json:"currency"`
	DefaultRate  bool                  `json:"default_rate"`
}
