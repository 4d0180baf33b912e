package dto

import (
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/pricing"
)

// ImageURLFunc convierte una ruta de imagen guardada en una URL pública.
type ImageURLFunc func(path string) string

// FromCategory mapea una categoría.
func FromCategory(c entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Image:        c.Image,
		ParentID:     c.ParentID,
		ProductCount: c.ProductCount,
	}
}

// FromCategories mapea una lista de categorías (nunca nil, para serializar []).
func FromCategories(list []entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromCategory(c))
	}
	return out
}

// FromProduct mapea un producto resolviendo las imágenes con imageURL (nil = sin cambios).
func FromProduct(p *entity.Product, imageURL ImageURLFunc) *ProductResponse {
	if p == nil {
		return nil
	}
	if imageURL == nil {
		imageURL = func(s string) string { return s }
	}
	out := &ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		SKU:              p.SKU,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            p.Price,
		RegularPrice:     p.RegularPrice,
		SalePrice:        p.SalePrice,
		DiscountPercent:  pricing.DiscountPercent(p.RegularPrice, p.SalePrice),
		VariantMinPrice:  p.VariantMinPrice,
		VariantMaxPrice:  p.VariantMaxPrice,
		StockQuantity:    p.StockQuantity,
		StockStatus:      p.StockStatus,
		ImageURL:         resolveImage(p.ImageURL, imageURL),
		IsFeatured:       p.IsFeatured,
		Type:             p.Type,
		Weight:           p.Weight,
		Length:           p.Length,
		Width:            p.Width,
		Height:           p.Height,
		SizeChart:        p.SizeChart,
		CreatedAt:        p.CreatedAt,
	}
	for _, g := range p.GalleryURLs {
		out.GalleryURLs = append(out.GalleryURLs, resolveImage(g, imageURL))
	}
	if len(p.Categories) > 0 {
		out.Categories = FromCategories(p.Categories)
	}
	for i := range p.Variants {
		out.Variants = append(out.Variants, *FromVariant(&p.Variants[i], imageURL))
	}
	return out
}

// FromVariant mapea una variante.
func FromVariant(v *entity.Variant, imageURL ImageURLFunc) *VariantResponse {
	if v == nil {
		return nil
	}
	if imageURL == nil {
		imageURL = func(s string) string { return s }
	}
	out := &VariantResponse{
		ID:             v.ID,
		SKU:            v.SKU,
		Price:          v.Price,
		RegularPrice:   v.RegularPrice,
		SalePrice:      v.SalePrice,
		CompareAtPrice: v.CompareAtPrice,
		StockQuantity:  v.StockQuantity,
		StockStatus:    v.StockStatus,
		Attributes:     v.Attributes,
	}
	for _, img := range v.Images {
		out.Images = append(out.Images, resolveImage(img, imageURL))
	}
	return out
}

// FromOrder mapea un pedido con sus líneas y notas.
func FromOrder(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	out := &OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		OrderDate:     o.OrderDate,
		Status:        o.Status,
		CustomerEmail: o.CustomerEmail,
		CustomerNote:  o.CustomerNote,
		Shipping:      fromOrderAddress(o.Shipping),
		Billing:       fromOrderAddress(o.Billing),
		Subtotal:      o.Subtotal,
		ShippingTotal: o.ShippingTotal,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		Currency:      o.Currency,
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			VariantID:   it.VariantID,
			ProductName: it.ProductName,
			SKU:         it.SKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
			Total:       it.Total,
			Attributes:  it.Attributes,
		})
	}
	for _, n := range o.Notes {
		out.Notes = append(out.Notes, OrderNoteResponse{
			ID: n.ID, Content: n.Content, Type: n.Type, AddedBy: n.AddedBy, CreatedAt: n.CreatedAt,
		})
	}
	return out
}

// ToOrderAddress convierte la dirección recibida en el checkout.
func ToOrderAddress(a OrderAddressDTO) entity.OrderAddress {
	return entity.OrderAddress{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Phone:     a.Phone,
		Email:     a.Email,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		State:     a.State,
		Postcode:  a.Postcode,
		Country:   a.Country,
	}
}

func fromOrderAddress(a entity.OrderAddress) OrderAddressDTO {
	return OrderAddressDTO{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Phone:     a.Phone,
		Email:     a.Email,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		State:     a.State,
		Postcode:  a.Postcode,
		Country:   a.Country,
	}
}

// FromCustomer mapea el perfil del cliente.
func FromCustomer(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:        c.ID,
		Email:     c.Email,
		FullName:  c.FullName,
		Phone:     c.Phone,
		AvatarURL: c.AvatarURL,
		CreatedAt: c.CreatedAt,
	}
}

// FromAddress mapea una dirección guardada.
func FromAddress(a *entity.Address) *AddressResponse {
	if a == nil {
		return nil
	}
	return &AddressResponse{
		ID:            a.ID,
		Label:         a.Label,
		FullName:      a.FullName,
		Phone:         a.Phone,
		StreetAddress: a.StreetAddress,
		Barangay:      a.Barangay,
		City:          a.City,
		Province:      a.Province,
		Region:        a.Region,
		PostalCode:    a.PostalCode,
		IsDefault:     a.IsDefault,
		ZoneID:        a.ZoneID,
		CreatedAt:     a.CreatedAt,
	}
}

// FromShippingZone mapea una zona de envío.
func FromShippingZone(z *entity.ShippingZone) *ShippingZoneResponse {
	if z == nil {
		return nil
	}
	return &ShippingZoneResponse{ID: z.ID, Name: z.Name, Type: z.Type, Enabled: z.Enabled}
}

func resolveImage(path string, imageURL ImageURLFunc) string {
	if path == "" {
		return ""
	}
	return imageURL(path)
}
