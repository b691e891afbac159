package constants

// Route paths for the three dashboard views and their actions.
const (
	CatalogRoute       = "/"
	CheckoutRoute      = "/checkout"
	ProductNewRoute    = "/products/new"
	ProductCreateRoute = "/products"
	AnalyticsRoute     = "/analytics"
)
