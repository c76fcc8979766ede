package model

import "time"

// Customer is the buyer summary embedded in an order.
type Customer struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is a placed storefront order as listed by the admin API.
type Order struct {
	ID            string    `json:"_id"`
	OrderNumber   string    `json:"orderNumber"`
	Customer      Customer  `json:"user"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentMethod string    `json:"paymentMethod"`
	TotalAmount   float64   `json:"totalAmount"`
	InvoiceURL    string    `json:"invoiceUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (o Order) HasInvoice() bool { return o.InvoiceURL != "" }

func (o Order) SearchFields() []string {
	return []string{o.OrderNumber, o.Customer.Name, o.Customer.Email}
}

func (o Order) Attribute(name string) (any, bool) {
	switch name {
	case "orderStatus", "status":
		return o.Status, true
	case "paymentStatus":
		return o.PaymentStatus, true
	case "paymentMethod":
		return o.PaymentMethod, true
	case "totalAmount":
		return o.TotalAmount, true
	case "hasInvoice":
		return o.HasInvoice(), true
	case "createdAt":
		return o.CreatedAt, !o.CreatedAt.IsZero()
	}
	return nil, false
}
