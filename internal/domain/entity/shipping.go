package entity

import "github.com/shopspring/decimal"

// ShippingZone zona de envío (ej. Metro Manila, Luzon, Rest of Philippines).
type ShippingZone struct {
	ID      string
	Name    string
	Type    string
	Enabled bool
}

// ShippingRate tarifa de una zona.
type ShippingRate struct {
	ID                    string
	ZoneID                string
	Rate                  decimal.Decimal
	MinOrderAmount        *decimal.Decimal
	FreeShippingThreshold *decimal.Decimal
}
