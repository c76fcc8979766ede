package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"storefront-catalogue/internal/filter"
	"storefront-catalogue/internal/model"
)

func TestProductRefinement(t *testing.T) {
	var products []model.Product
	raw := `[
		{"_id":"p1","name":"Whole Milk","description":"1L bottle","category":{"_id":"c-dairy","name":"Dairy"},"price":2.5,"stock":10},
		{"_id":"p2","name":"Carrots","description":"Fresh veg","category":{"_id":"c-veg","name":"Vegetables"},"price":1.2,"stock":0},
		{"_id":"p3","name":"Oat Drink","description":"Milk alternative","category":{"_id":"c-dairy","name":"Dairy"},"price":3.1,"stock":4}
	]`
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	tests := []struct {
		name string
		c    filter.Criteria
		want []string
	}{
		{"Search matches description", filter.Criteria{"searchQuery": filter.Text("MILK")}, []string{"p1", "p3"}},
		{"Search matches category name", filter.Criteria{"searchQuery": filter.Text("veg")}, []string{"p2"}},
		{"Category id", filter.Criteria{"category": filter.Text("c-dairy")}, []string{"p1", "p3"}},
		{"Price range", filter.Criteria{"priceRange": filter.RangeOf(2, 3)}, []string{"p1"}},
		{"In stock", filter.Criteria{"inStockOnly": filter.Bool(true)}, []string{"p1", "p3"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := filter.Refine(products, filter.AdminProductSchema, tc.c)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %d items", tc.want, len(got))
			}
			for i, p := range got {
				if p.ID != tc.want[i] {
					t.Errorf("item %d: expected %s, got %s", i, tc.want[i], p.ID)
				}
			}
		})
	}
}

func TestOrderAttributes(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	o := model.Order{
		OrderNumber: "ORD-1001",
		Customer:    model.Customer{Name: "Ana", Email: "ana@example.com"},
		TotalAmount: 42,
		InvoiceURL:  "https://invoices/1001.pdf",
		CreatedAt:   created,
	}

	if v, ok := o.Attribute("totalAmount"); !ok || v.(float64) != 42 {
		t.Errorf("unexpected totalAmount %v", v)
	}
	if v, ok := o.Attribute("hasInvoice"); !ok || v != true {
		t.Errorf("expected hasInvoice true, got %v", v)
	}
	if v, ok := o.Attribute("createdAt"); !ok || !v.(time.Time).Equal(created) {
		t.Errorf("unexpected createdAt %v", v)
	}
	if _, ok := o.Attribute("unknown"); ok {
		t.Errorf("expected unknown attribute to be absent")
	}
	if _, ok := (model.Order{}).Attribute("createdAt"); ok {
		t.Errorf("expected zero createdAt to be absent")
	}
}
