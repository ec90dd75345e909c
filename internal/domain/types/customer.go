package types

import "time"

// CustomerStatus is the standing of a CRM customer.
type CustomerStatus string

// Customer standings.
const (
	CustomerActive    CustomerStatus = "active"
	CustomerInactive  CustomerStatus = "inactive"
	CustomerPotential CustomerStatus = "potential"
	CustomerBlocked   CustomerStatus = "blocked"
)

// CustomerType classifies the size of a customer.
type CustomerType string

// Customer classifications.
const (
	CustomerIndividual CustomerType = "individual"
	CustomerBusiness   CustomerType = "business"
	CustomerEnterprise CustomerType = "enterprise"
)

// InteractionType names the channel of a CRM interaction.
type InteractionType string

// Interaction channels.
const (
	InteractionEmail    InteractionType = "email"
	InteractionPhone    InteractionType = "phone"
	InteractionMeeting  InteractionType = "meeting"
	InteractionWhatsApp InteractionType = "whatsapp"
	InteractionOther    InteractionType = "other"
)

// Customer is a CRM customer record, including the revenue columns the
// backend derives from the customer's invoices.
type Customer struct {
	ID              CustomerID     `json:"id,omitempty"`
	UserID          UserID         `json:"user_id,omitempty"`
	Name            string         `json:"name"`
	Email           string         `json:"email,omitempty"`
	Phone           string         `json:"phone,omitempty"`
	Company         string         `json:"company,omitempty"`
	Address         string         `json:"address,omitempty"`
	City            string         `json:"city,omitempty"`
	State           string         `json:"state,omitempty"`
	Country         string         `json:"country,omitempty"`
	PostalCode      string         `json:"postal_code,omitempty"`
	Type            CustomerType   `json:"customer_type,omitempty"`
	Status          CustomerStatus `json:"status,omitempty"`
	Tags            []string       `json:"tags,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	GSTIN           string         `json:"gstin,omitempty"`
	PAN             string         `json:"pan,omitempty"`
	CreditLimit     float64        `json:"credit_limit,omitempty"`
	PaymentTerms    int            `json:"payment_terms,omitempty"`
	CreatedAt       time.Time      `json:"created_at,omitzero"`
	UpdatedAt       time.Time      `json:"updated_at,omitzero"`
	LastInteraction *time.Time     `json:"last_interaction,omitempty"`
	TotalInvoices   int            `json:"total_invoices,omitempty"`
	TotalRevenue    float64        `json:"total_revenue,omitempty"`
	Outstanding     float64        `json:"outstanding_amount,omitempty"`
}

// TopCustomer is one row of the customer summary's revenue ranking.
type TopCustomer struct {
	ID      CustomerID `json:"id"`
	Name    string     `json:"name"`
	Revenue float64    `json:"revenue"`
}

// CustomerSummary aggregates the customer book: headcount by status and
// paid revenue attributed across customers.
type CustomerSummary struct {
	TotalCustomers            int           `json:"total_customers"`
	ActiveCustomers           int           `json:"active_customers"`
	InactiveCustomers         int           `json:"inactive_customers"`
	PotentialCustomers        int           `json:"potential_customers"`
	TotalRevenue              float64       `json:"total_revenue"`
	AverageRevenuePerCustomer float64       `json:"average_revenue_per_customer"`
	TopCustomers              []TopCustomer `json:"top_customers"`
}

// CustomerFilter narrows customer list requests.
type CustomerFilter struct {
	Page     int
	PageSize int
	Status   CustomerStatus
	Type     CustomerType
	Search   string
}

// Interaction is one logged touchpoint with a customer.
type Interaction struct {
	ID              InteractionID   `json:"id,omitempty"`
	UserID          UserID          `json:"user_id,omitempty"`
	CustomerID      CustomerID      `json:"customer_id"`
	Type            InteractionType `json:"type"`
	Subject         string          `json:"subject"`
	Description     string          `json:"description,omitempty"`
	InteractionDate time.Time       `json:"interaction_date,omitzero"`
	FollowUpDate    *time.Time      `json:"follow_up_date,omitempty"`
	Completed       bool            `json:"completed"`
	Tags            []string        `json:"tags,omitempty"`
	CustomerName    string          `json:"customer_name,omitempty"`
}

// InteractionFilter narrows interaction list requests.
type InteractionFilter struct {
	Page       int
	PageSize   int
	CustomerID CustomerID
	Type       InteractionType
}
