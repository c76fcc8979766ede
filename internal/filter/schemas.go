package filter

// Default bounds shared by producers and consumers of the "is this filter active" check.
const (
	MaxCataloguePrice = 10000
	MaxOrderAmount    = 100000
)

// CatalogueSchema drives the storefront product catalogue.
var CatalogueSchema = MustSchema("catalogue", "products",
	FieldSpec{Name: "searchQuery", Kind: KindText, Default: Text(""), Authority: AuthorityBoth},
	FieldSpec{Name: "category", Kind: KindSelect, Default: Text(""), Authority: AuthorityServer},
	FieldSpec{
		Name: "priceRange", Kind: KindRange, Authority: AuthorityServer,
		Default: RangeOf(0, MaxCataloguePrice), Bounds: Range{Min: 0, Max: MaxCataloguePrice},
		MinKey: "minPrice", MaxKey: "maxPrice", Attribute: "price",
	},
	FieldSpec{Name: "inStockOnly", Kind: KindCheckbox, Default: Bool(false), Authority: AuthorityServer, QueryKey: "inStock", Attribute: "inStock"},
)

// AdminProductSchema drives the admin product management table. The admin API
// only filters by category; search, price and stock are refined over the loaded page.
var AdminProductSchema = MustSchema("admin-products", "products",
	FieldSpec{Name: "searchQuery", Kind: KindText, Default: Text(""), Authority: AuthorityClient},
	FieldSpec{Name: "category", Kind: KindSelect, Default: Text(""), Authority: AuthorityBoth, Attribute: "categoryId"},
	FieldSpec{
		Name: "priceRange", Kind: KindRange, Authority: AuthorityClient,
		Default: RangeOf(0, MaxCataloguePrice), Bounds: Range{Min: 0, Max: MaxCataloguePrice},
		MinKey: "minPrice", MaxKey: "maxPrice", Attribute: "price",
	},
	FieldSpec{Name: "inStockOnly", Kind: KindCheckbox, Default: Bool(false), Authority: AuthorityClient, QueryKey: "inStock", Attribute: "inStock"},
)

// AdminOrderSchema drives the admin order table and the customer order history.
var AdminOrderSchema = MustSchema("orders", "orders",
	FieldSpec{Name: "searchQuery", Kind: KindText, Default: Text(""), Authority: AuthorityBoth},
	FieldSpec{Name: "orderStatus", Kind: KindSelect, Default: Text(""), Authority: AuthorityServer, QueryKey: "status"},
	FieldSpec{Name: "paymentStatus", Kind: KindSelect, Default: Text(""), Authority: AuthorityServer},
	FieldSpec{Name: "paymentMethod", Kind: KindSelect, Default: Text(""), Authority: AuthorityServer},
	FieldSpec{
		Name: "amountRange", Kind: KindRange, Authority: AuthorityServer,
		Default: RangeOf(0, MaxOrderAmount), Bounds: Range{Min: 0, Max: MaxOrderAmount},
		MinKey: "minAmount", MaxKey: "maxAmount", Attribute: "totalAmount",
	},
	FieldSpec{Name: "hasInvoice", Kind: KindCheckbox, Default: Bool(false), Authority: AuthorityServer},
	FieldSpec{Name: "startDate", Kind: KindDate, Default: NoDate(), Authority: AuthorityServer, Role: DateStart, Pair: "endDate", Attribute: "createdAt"},
	FieldSpec{Name: "endDate", Kind: KindDate, Default: NoDate(), Authority: AuthorityServer, Role: DateEnd, Pair: "startDate", Attribute: "createdAt"},
)

// AdminUserSchema drives the admin user and role management table.
var AdminUserSchema = MustSchema("users", "users",
	FieldSpec{Name: "searchQuery", Kind: KindText, Default: Text(""), Authority: AuthorityBoth},
	FieldSpec{Name: "role", Kind: KindSelect, Default: Text(""), Authority: AuthorityServer},
)
