package catalog

// VerifyCase URL de marketing conocida usada para comprobar el catálogo real.
type VerifyCase struct {
	Category    string
	Subcategory string
}

// KnownCases enlaces que aparecen en los menús de la tienda.
var KnownCases = []VerifyCase{
	{Category: "men", Subcategory: "denims"},
	{Category: "men", Subcategory: "apparel"},
	{Category: "men", Subcategory: "underwear"},
	{Category: "ladies", Subcategory: "denims"},
	{Category: "ladies", Subcategory: "apparel"},
	{Category: "kids", Subcategory: "underwear"},
	{Category: "men", Subcategory: "de-hilo"},
}
