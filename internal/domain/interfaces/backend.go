package interfaces

import (
	"context"

	domaintypes "ledgerdesk/internal/domain/types"
)

// AuthAPI covers the /auth endpoint group.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domaintypes.AuthPayload, error)
	Register(ctx context.Context, reg domaintypes.Registration) (domaintypes.AuthPayload, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (domaintypes.User, error)
	UpdateProfile(ctx context.Context, update domaintypes.ProfileUpdate) (domaintypes.User, error)
	ChangePassword(ctx context.Context, change domaintypes.PasswordChange) error
	RefreshToken(ctx context.Context, refreshToken string) (domaintypes.TokenPair, error)
}

// InvoiceAPI covers the /invoices endpoint group.
type InvoiceAPI interface {
	ListInvoices(
		ctx context.Context,
		filter domaintypes.InvoiceFilter,
	) (domaintypes.Page[domaintypes.Invoice], error)
	GetInvoice(ctx context.Context, id domaintypes.InvoiceID) (domaintypes.Invoice, error)
	CreateInvoice(ctx context.Context, inv domaintypes.Invoice) (domaintypes.Invoice, error)
	UpdateInvoice(
		ctx context.Context,
		id domaintypes.InvoiceID,
		inv domaintypes.Invoice,
	) (domaintypes.Invoice, error)
	DeleteInvoice(ctx context.Context, id domaintypes.InvoiceID) error
	InvoiceSummary(ctx context.Context, period domaintypes.Period) (domaintypes.InvoiceSummary, error)
	InvoiceAnalytics(ctx context.Context, period domaintypes.Period) (map[string]any, error)
	OverdueInvoices(ctx context.Context) ([]domaintypes.Invoice, error)
	BulkInvoiceAction(
		ctx context.Context,
		action domaintypes.BulkInvoiceAction,
	) (domaintypes.BulkActionResult, error)
	SendInvoiceReminder(ctx context.Context, id domaintypes.InvoiceID, reminderType string) error
}

// CRMAPI covers the /crm endpoint group.
type CRMAPI interface {
	ListCustomers(
		ctx context.Context,
		filter domaintypes.CustomerFilter,
	) (domaintypes.Page[domaintypes.Customer], error)
	GetCustomer(ctx context.Context, id domaintypes.CustomerID) (domaintypes.Customer, error)
	CreateCustomer(ctx context.Context, c domaintypes.Customer) (domaintypes.Customer, error)
	UpdateCustomer(
		ctx context.Context,
		id domaintypes.CustomerID,
		c domaintypes.Customer,
	) (domaintypes.Customer, error)
	DeleteCustomer(ctx context.Context, id domaintypes.CustomerID) error
	CustomerSummary(ctx context.Context) (domaintypes.CustomerSummary, error)
	ListInteractions(
		ctx context.Context,
		filter domaintypes.InteractionFilter,
	) (domaintypes.Page[domaintypes.Interaction], error)
	CreateInteraction(
		ctx context.Context,
		in domaintypes.Interaction,
	) (domaintypes.Interaction, error)
	UpdateInteraction(
		ctx context.Context,
		id domaintypes.InteractionID,
		in domaintypes.Interaction,
	) (domaintypes.Interaction, error)
	PendingFollowUps(ctx context.Context) ([]domaintypes.Customer, error)
}

// AssistantAPI covers the /ai endpoint group.
type AssistantAPI interface {
	AskAssistant(ctx context.Context, q domaintypes.AIQuery) (domaintypes.AIAnswer, error)
	AssistantInsights(ctx context.Context) ([]domaintypes.AIInsight, error)
	AssistantRecommendations(ctx context.Context) ([]domaintypes.AIRecommendation, error)
	AssistantContext(ctx context.Context) (map[string]any, error)
	SubmitAssistantFeedback(ctx context.Context, fb domaintypes.AIFeedback) error
	AssistantHistory(ctx context.Context, limit int) ([]domaintypes.AIAnswer, error)
	AssistantAnalytics(ctx context.Context) (map[string]any, error)
	SmartInsights(ctx context.Context, query string) (map[string]any, error)
}

// ReportsAPI covers the /reports endpoint group.
type ReportsAPI interface {
	GenerateReport(ctx context.Context, req domaintypes.ReportRequest) (domaintypes.Report, error)
	ListReports(ctx context.Context, page, pageSize int) (domaintypes.Page[domaintypes.Report], error)
	GetReport(ctx context.Context, id domaintypes.ReportID) (domaintypes.Report, error)
	DeleteReport(ctx context.Context, id domaintypes.ReportID) error
	ReportsDashboard(ctx context.Context, period domaintypes.Period) (domaintypes.Dashboard, error)
	AnalyticsOverview(ctx context.Context, period domaintypes.Period) (map[string]any, error)
	KPIMetrics(ctx context.Context, period domaintypes.Period) ([]domaintypes.KPIMetric, error)
}

// BackendClient is the single outbound gateway to the SaaS backend. The
// method groups are thin wrappers over HTTP verbs and paths; they carry no
// logic beyond request decoration and envelope unwrapping.
type BackendClient interface {
	AuthAPI
	InvoiceAPI
	CRMAPI
	AssistantAPI
	ReportsAPI
}
