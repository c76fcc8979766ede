package catalogue

import (
	"net/url"

	"storefront-catalogue/internal/filter"
	"storefront-catalogue/internal/notify"
)

// Kind names a filterable list view.
type Kind string

const (
	KindProducts      Kind = "products"
	KindAdminProducts Kind = "admin-products"
	KindOrders        Kind = "orders"
	KindUsers         Kind = "users"
)

// Entity is the item type a list is made of.
type Entity string

const (
	EntityProduct Entity = "product"
	EntityOrder   Entity = "order"
	EntityUser    Entity = "user"
)

// Source binds a list kind to its filter schema and upstream resource.
type Source struct {
	Kind     Kind
	Schema   *filter.Schema
	Resource string
	Entity   Entity
}

var sources = map[Kind]Source{
	KindProducts:      {Kind: KindProducts, Schema: filter.CatalogueSchema, Resource: "products", Entity: EntityProduct},
	KindAdminProducts: {Kind: KindAdminProducts, Schema: filter.AdminProductSchema, Resource: "products", Entity: EntityProduct},
	KindOrders:        {Kind: KindOrders, Schema: filter.AdminOrderSchema, Resource: "orders", Entity: EntityOrder},
	KindUsers:         {Kind: KindUsers, Schema: filter.AdminUserSchema, Resource: "users", Entity: EntityUser},
}

// Lookup returns the Source for kind, or ErrUnknownKind.
func Lookup(kind Kind) (Source, error) {
	src, ok := sources[kind]
	if !ok {
		return Source{}, ErrUnknownKind
	}
	return src, nil
}

// Kinds lists every supported list kind.
func Kinds() []Kind {
	return []Kind{KindProducts, KindAdminProducts, KindOrders, KindUsers}
}

// Item is any list entry that can be refined on the client side.
type Item interface {
	filter.Searchable
	filter.Attributer
}

// --- UseCase Inputs ---

type BrowseInput struct {
	Kind    Kind
	Page    int
	Limit   int
	Filters url.Values
}

type OpenSessionInput struct {
	Kind    Kind
	Limit   int
	Filters url.Values
}

// FieldEdit is one raw edit of a filter field. Range fields take two values.
type FieldEdit struct {
	Field  string
	Values []string
}

type EditFilterInput struct {
	SessionID string
	Edits     []FieldEdit
}

type SetPageInput struct {
	SessionID string
	Page      int
}

// --- UseCase Outputs ---

// ListResult is a refined page together with the criteria that produced it.
type ListResult struct {
	Kind         Kind
	Criteria     filter.Criteria
	ActiveFields []string
	Query        filter.Query
	Items        []Item
	Pagination   filter.Pagination
	Summary      filter.Summary
}

type BrowseOutput struct {
	Result ListResult
}

// SessionView is a point-in-time snapshot of a filter session.
type SessionView struct {
	ID            string
	Version       uint64
	Page          int
	Limit         int
	Result        ListResult
	PendingFields []string
	Loading       bool
	LastError     string
	Notices       []notify.Notice
}
