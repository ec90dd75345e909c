package types

import "time"

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

// Invoice lifecycle states.
const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// PaymentStatus tracks how much of an invoice has been settled.
type PaymentStatus string

// Payment states.
const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// InvoiceItem is one line of an invoice. TotalPrice and TaxAmount are
// derived server-side from quantity, unit price and tax rate.
type InvoiceItem struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	TaxRate     float64 `json:"tax_rate"`
	TaxAmount   float64 `json:"tax_amount"`
}

// Invoice is the full invoice record, including the customer columns the
// backend joins in for display.
type Invoice struct {
	ID                 InvoiceID     `json:"id,omitempty"`
	UserID             UserID        `json:"user_id,omitempty"`
	CustomerID         CustomerID    `json:"customer_id"`
	InvoiceNumber      string        `json:"invoice_number,omitempty"`
	IssueDate          string        `json:"issue_date,omitempty"`
	DueDate            string        `json:"due_date"`
	Status             InvoiceStatus `json:"status,omitempty"`
	PaymentStatus      PaymentStatus `json:"payment_status,omitempty"`
	Items              []InvoiceItem `json:"items"`
	Notes              string        `json:"notes,omitempty"`
	TermsAndConditions string        `json:"terms_and_conditions,omitempty"`
	Subtotal           float64       `json:"subtotal"`
	TaxAmount          float64       `json:"tax_amount"`
	TotalAmount        float64       `json:"total_amount"`
	DiscountAmount     float64       `json:"discount_amount"`
	DiscountPercent    float64       `json:"discount_percentage"`
	CreatedAt          time.Time     `json:"created_at,omitzero"`
	UpdatedAt          time.Time     `json:"updated_at,omitzero"`
	SentAt             *time.Time    `json:"sent_at,omitempty"`
	PaidAt             *time.Time    `json:"paid_at,omitempty"`
	CustomerName       string        `json:"customer_name,omitempty"`
	CustomerEmail      string        `json:"customer_email,omitempty"`
	CustomerPhone      string        `json:"customer_phone,omitempty"`
}

// InvoiceFilter narrows invoice list requests.
type InvoiceFilter struct {
	Page     int
	PageSize int
	Status   InvoiceStatus
	Search   string
}

// InvoiceSummary is the aggregate block of /invoices/stats/summary.
type InvoiceSummary struct {
	TotalInvoices int     `json:"total_invoices"`
	TotalAmount   float64 `json:"total_amount"`
	PaidAmount    float64 `json:"paid_amount"`
	PendingAmount float64 `json:"pending_amount"`
	OverdueAmount float64 `json:"overdue_amount"`
	DraftCount    int     `json:"draft_count"`
	SentCount     int     `json:"sent_count"`
	PaidCount     int     `json:"paid_count"`
	OverdueCount  int     `json:"overdue_count"`
}

// BulkInvoiceAction applies one action to a set of invoices.
type BulkInvoiceAction struct {
	InvoiceIDs []InvoiceID `json:"invoice_ids"`
	Action     string      `json:"action"`
}

// BulkActionResult reports how many invoices a bulk action touched.
type BulkActionResult struct {
	Action   string `json:"action"`
	Affected int    `json:"affected"`
}
