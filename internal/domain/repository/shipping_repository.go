package repository

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// ShippingRepository puerto de lectura de zonas y tarifas de envío.
type ShippingRepository interface {
	// ZoneIDForCity busca la zona en ph_cities y luego en metro_manila_cities. "" si no existe.
	ZoneIDForCity(ctx context.Context, city string) (string, error)
	GetZone(ctx context.Context, id string) (*entity.ShippingZone, error)
	ListZones(ctx context.Context) ([]entity.ShippingZone, error)
	ListRatesByZone(ctx context.Context, zoneID string) ([]entity.ShippingRate, error)
}
