package checkout

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain/checkout"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

// ShippingService tarifas de envío por ciudad.
type ShippingService struct {
	repo        repository.ShippingRepository
	defaultRate decimal.Decimal
	currency    string
	log         *logger.Logger
}

// NewShippingService construye el caso de uso. defaultRate se cobra cuando la ciudad no tiene zona.
func NewShippingService(repo repository.ShippingRepository, defaultRate decimal.Decimal, currency string, log *logger.Logger) *ShippingService {
	if log == nil {
		log = logger.Nop()
	}
	if currency == "" {
		currency = "PHP"
	}
	return &ShippingService{repo: repo, defaultRate: defaultRate, currency: currency, log: log}
}

// Currency moneda de las tarifas y los pedidos.
func (s *ShippingService) Currency() string {
	return s.currency
}

// GetShippingRate tarifa base para la ciudad; la tarifa por defecto si la ciudad no tiene zona.
func (s *ShippingService) GetShippingRate(ctx context.Context, city string) (decimal.Decimal, error) {
	_, rate, err := s.lookup(ctx, city)
	if err != nil {
		return decimal.Zero, err
	}
	if rate == nil {
		return s.defaultRate, nil
	}
	return rate.Rate, nil
}

// Quote costo de envío para la ciudad y el subtotal del pedido.
func (s *ShippingService) Quote(ctx context.Context, city string, subtotal decimal.Decimal) (*dto.ShippingQuoteResponse, error) {
	zone, rate, err := s.lookup(ctx, city)
	if err != nil {
		return nil, err
	}
	cost := checkout.ShippingCost(rate, s.defaultRate, subtotal)
	out := &dto.ShippingQuoteResponse{
		City:        strings.TrimSpace(city),
		Zone:        dto.FromShippingZone(zone),
		Rate:        s.defaultRate,
		Cost:        cost,
		Currency:    s.currency,
		DefaultRate: rate == nil,
	}
	if rate != nil {
		out.Rate = rate.Rate
		out.FreeShipping = cost.IsZero() && rate.Rate.IsPositive()
	}
	return out, nil
}

// DetectZone zona de envío de la ciudad; nil si no se reconoce.
func (s *ShippingService) DetectZone(ctx context.Context, city string) (*dto.ShippingZoneResponse, error) {
	zone, _, err := s.lookup(ctx, city)
	if err != nil {
		return nil, err
	}
	return dto.FromShippingZone(zone), nil
}

// ListZones zonas habilitadas ordenadas por nombre.
func (s *ShippingService) ListZones(ctx context.Context) ([]dto.ShippingZoneResponse, error) {
	zones, err := s.repo.ListZones(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShippingZoneResponse, 0, len(zones))
	for i := range zones {
		out = append(out, *dto.FromShippingZone(&zones[i]))
	}
	return out, nil
}

// ListRatesByZone tarifas configuradas para una zona.
func (s *ShippingService) ListRatesByZone(ctx context.Context, zoneID string) ([]dto.ShippingRateResponse, error) {
	rates, err := s.repo.ListRatesByZone(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShippingRateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, dto.ShippingRateResponse{
			ID:                    r.ID,
			ZoneID:                r.ZoneID,
			Rate:                  r.Rate,
			MinOrderAmount:        r.MinOrderAmount,
			FreeShippingThreshold: r.FreeShippingThreshold,
		})
	}
	return out, nil
}

// lookup resuelve ciudad -> zona -> primera tarifa. Zona desconocida o deshabilitada devuelve nil, nil.
func (s *ShippingService) lookup(ctx context.Context, city string) (*entity.ShippingZone, *entity.ShippingRate, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, nil, nil
	}
	zoneID, err := s.repo.ZoneIDForCity(ctx, city)
	if err != nil {
		return nil, nil, err
	}
	if zoneID == "" {
		s.log.Debug().Str("city", city).Msg("ciudad sin zona de envío, se usa la tarifa por defecto")
		return nil, nil, nil
	}
	zone, err := s.repo.GetZone(ctx, zoneID)
	if err != nil {
		return nil, nil, err
	}
	if zone == nil || !zone.Enabled {
		s.log.Warn().Str("city", city).Str("zone_id", zoneID).Msg("zona de envío inexistente o deshabilitada")
		return nil, nil, nil
	}
	rates, err := s.repo.ListRatesByZone(ctx, zoneID)
	if err != nil {
		return nil, nil, err
	}
	if len(rates) == 0 {
		s.log.Warn().Str("zone_id", zoneID).Msg("zona sin tarifas, se usa la tarifa por defecto")
		return zone, nil, nil
	}
	return zone, &rates[0], nil
}
