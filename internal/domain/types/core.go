package types

// UserID identifies a registered account.
type UserID string

// String returns the string form of the user id.
func (id UserID) String() string { return string(id) }

// CustomerID identifies a CRM customer record.
type CustomerID string

// String returns the string form of the customer id.
func (id CustomerID) String() string { return string(id) }

// InvoiceID identifies an invoice.
type InvoiceID string

// String returns the string form of the invoice id.
func (id InvoiceID) String() string { return string(id) }

// InteractionID identifies a CRM interaction.
type InteractionID string

// String returns the string form of the interaction id.
func (id InteractionID) String() string { return string(id) }

// ReportID identifies a generated report.
type ReportID string

// String returns the string form of the report id.
func (id ReportID) String() string { return string(id) }

// NotificationID identifies an in-process notification.
type NotificationID string

// String returns the string form of the notification id.
func (id NotificationID) String() string { return string(id) }

// Period names a reporting window understood by the backend.
type Period string

// Reporting periods accepted by stats, dashboard and KPI endpoints.
const (
	PeriodToday   Period = "today"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)
