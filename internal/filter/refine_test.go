package filter_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"storefront-catalogue/internal/filter"
)

var page1 = []item{
	{Name: "Carrots", Description: "Fresh orange veg", Category: "Vegetables", CategoryID: "veg", Price: 2, InStock: true},
	{Name: "Whole Milk", Description: "1L bottle", Category: "Dairy", CategoryID: "dairy", Price: 1.5, InStock: true},
	{Name: "Veggie Burger", Description: "Plant based", Category: "Frozen", CategoryID: "frozen", Price: 6, InStock: false},
	{Name: "Sourdough", Description: "Baked daily", Category: "Bakery", CategoryID: "bakery", Price: 4, InStock: true},
	{Name: "Broccoli", Description: "Green", Category: "Vegetables", CategoryID: "veg", Price: 1.2, InStock: false},
}

func TestRefine_TextSearch(t *testing.T) {
	c := filter.CatalogueSchema.Defaults()
	c["searchQuery"] = filter.Text("VEG")

	got := filter.Refine(page1, filter.CatalogueSchema, c)
	if names(got) != "Carrots,Veggie Burger,Broccoli" {
		t.Errorf("unexpected result %q", names(got))
	}
}

func TestRefine_IdempotentAndStable(t *testing.T) {
	c := filter.CatalogueSchema.Defaults()
	c["searchQuery"] = filter.Text("veg")

	once := filter.Refine(page1, filter.CatalogueSchema, c)
	again := filter.Refine(page1, filter.CatalogueSchema, c)
	twice := filter.Refine(once, filter.CatalogueSchema, c)

	if diff := cmp.Diff(once, again); diff != "" {
		t.Errorf("repeated refinement differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("refinement is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestRefine_IsOrderedSubsequence(t *testing.T) {
	queries := []string{"", "a", "veg", "dairy", "zzz", " bread "}
	for _, q := range queries {
		c := filter.CatalogueSchema.Defaults()
		c["searchQuery"] = filter.Text(q)
		got := filter.Refine(page1, filter.CatalogueSchema, c)

		j := 0
		for _, it := range got {
			for j < len(page1) && page1[j] != it {
				j++
			}
			if j == len(page1) {
				t.Fatalf("query %q: %q is not an ordered subsequence", q, names(got))
			}
			j++
		}
	}
}

func TestRefine_DoesNotMutateInput(t *testing.T) {
	input := append([]item(nil), page1...)
	c := filter.CatalogueSchema.Defaults()
	c["searchQuery"] = filter.Text("milk")

	filter.Refine(input, filter.CatalogueSchema, c)

	if diff := cmp.Diff(page1, input); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestRefine_ServerOnlyFieldsAreIgnored(t *testing.T) {
	c := filter.CatalogueSchema.Defaults()
	c["category"] = filter.Text("dairy")
	c["inStockOnly"] = filter.Bool(true)

	got := filter.Refine(page1, filter.CatalogueSchema, c)
	if len(got) != len(page1) {
		t.Errorf("server-only fields must not refine locally, got %q", names(got))
	}
}

func TestRefine_ClientAttributes(t *testing.T) {
	c := filter.AdminProductSchema.Defaults()
	c["category"] = filter.Text("VEG")
	c["priceRange"] = filter.RangeOf(1, 1.5)

	got := filter.Refine(page1, filter.AdminProductSchema, c)
	if names(got) != "Broccoli" {
		t.Errorf("unexpected result %q", names(got))
	}

	c = filter.AdminProductSchema.Defaults()
	c["inStockOnly"] = filter.Bool(true)
	got = filter.Refine(page1, filter.AdminProductSchema, c)
	if names(got) != "Carrots,Whole Milk,Sourdough" {
		t.Errorf("unexpected in-stock result %q", names(got))
	}
}

type plain struct{ name string }

func (p plain) SearchFields() []string { return []string{p.name} }

func TestRefine_MissingAttributeDoesNotMatch(t *testing.T) {
	c := filter.AdminProductSchema.Defaults()
	c["inStockOnly"] = filter.Bool(true)

	got := filter.Refine([]plain{{name: "x"}}, filter.AdminProductSchema, c)
	if len(got) != 0 {
		t.Errorf("expected no match without attributes, got %v", got)
	}
}

func TestRefine_EmptyInput(t *testing.T) {
	c := filter.CatalogueSchema.Defaults()
	got := filter.Refine([]item(nil), filter.CatalogueSchema, c)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestRefine_DateWindowIsInclusive(t *testing.T) {
	schema := filter.MustSchema("Deliveries", "deliveries",
		filter.FieldSpec{Name: "startDate", Kind: filter.KindDate, Default: filter.NoDate(), Authority: filter.AuthorityClient,
			Role: filter.DateStart, Pair: "endDate", Attribute: "createdAt"},
		filter.FieldSpec{Name: "endDate", Kind: filter.KindDate, Default: filter.NoDate(), Authority: filter.AuthorityClient,
			Role: filter.DateEnd, Pair: "startDate", Attribute: "createdAt"},
	)
	items := []item{
		{Name: "before", CreatedAt: day("2024-03-09").Add(23*time.Hour + 59*time.Minute)},
		{Name: "first", CreatedAt: day("2024-03-10")},
		{Name: "last second", CreatedAt: day("2024-03-12").Add(23*time.Hour + 59*time.Minute + 59*time.Second + 500*time.Millisecond)},
		{Name: "after", CreatedAt: day("2024-03-13")},
	}

	c := schema.Defaults()
	c["startDate"] = filter.Date(day("2024-03-10"))
	c["endDate"] = filter.Date(day("2024-03-12"))

	if got := names(filter.Refine(items, schema, c)); got != "first,last second" {
		t.Errorf("unexpected result %q", got)
	}
}
