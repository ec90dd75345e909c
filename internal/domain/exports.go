package domain

import (
	interfaces "ledgerdesk/internal/domain/interfaces"
	types "ledgerdesk/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	UserID            = types.UserID
	CustomerID        = types.CustomerID
	InvoiceID         = types.InvoiceID
	InteractionID     = types.InteractionID
	ReportID          = types.ReportID
	NotificationID    = types.NotificationID
	Period            = types.Period
	User              = types.User
	Registration      = types.Registration
	ProfileUpdate     = types.ProfileUpdate
	PasswordChange    = types.PasswordChange
	TokenPair         = types.TokenPair
	Credential        = types.Credential
	AuthPayload       = types.AuthPayload
	UserPayload       = types.UserPayload
	TokenPayload      = types.TokenPayload
	Invoice           = types.Invoice
	InvoiceItem       = types.InvoiceItem
	InvoiceStatus     = types.InvoiceStatus
	PaymentStatus     = types.PaymentStatus
	InvoiceFilter     = types.InvoiceFilter
	InvoiceSummary    = types.InvoiceSummary
	BulkInvoiceAction = types.BulkInvoiceAction
	BulkActionResult  = types.BulkActionResult
	Customer          = types.Customer
	CustomerStatus    = types.CustomerStatus
	CustomerType      = types.CustomerType
	CustomerFilter    = types.CustomerFilter
	CustomerSummary   = types.CustomerSummary
	TopCustomer       = types.TopCustomer
	Interaction       = types.Interaction
	InteractionType   = types.InteractionType
	InteractionFilter = types.InteractionFilter
	AIQuery           = types.AIQuery
	AIAnswer          = types.AIAnswer
	AIInsight         = types.AIInsight
	AIRecommendation  = types.AIRecommendation
	AIFeedback        = types.AIFeedback
	ReportType        = types.ReportType
	ReportRequest     = types.ReportRequest
	Report            = types.Report
	Dashboard         = types.Dashboard
	KPIMetric         = types.KPIMetric
	DateRange         = types.DateRange
	Pagination        = types.Pagination
	Notification      = types.Notification
	NotificationType  = types.NotificationType
	SessionState      = types.SessionState
	Result            = types.Result
)

// Enumerated values re-exported alongside their types.
const (
	SessionUnauthenticated = types.SessionUnauthenticated
	SessionChecking        = types.SessionChecking
	SessionAuthenticated   = types.SessionAuthenticated
	SessionFailed          = types.SessionFailed

	NotifySuccess = types.NotifySuccess
	NotifyError   = types.NotifyError
	NotifyWarning = types.NotifyWarning
	NotifyInfo    = types.NotifyInfo

	PeriodToday   = types.PeriodToday
	PeriodWeek    = types.PeriodWeek
	PeriodMonth   = types.PeriodMonth
	PeriodQuarter = types.PeriodQuarter
	PeriodYear    = types.PeriodYear

	InvoiceDraft     = types.InvoiceDraft
	InvoiceSent      = types.InvoiceSent
	InvoicePaid      = types.InvoicePaid
	InvoiceOverdue   = types.InvoiceOverdue
	InvoiceCancelled = types.InvoiceCancelled

	PaymentPending = types.PaymentPending
	PaymentPartial = types.PaymentPartial
	PaymentPaid    = types.PaymentPaid
	PaymentFailed  = types.PaymentFailed

	CustomerActive    = types.CustomerActive
	CustomerInactive  = types.CustomerInactive
	CustomerPotential = types.CustomerPotential
	CustomerBlocked   = types.CustomerBlocked

	CustomerIndividual = types.CustomerIndividual
	CustomerBusiness   = types.CustomerBusiness
	CustomerEnterprise = types.CustomerEnterprise

	InteractionEmail    = types.InteractionEmail
	InteractionPhone    = types.InteractionPhone
	InteractionMeeting  = types.InteractionMeeting
	InteractionWhatsApp = types.InteractionWhatsApp
	InteractionOther    = types.InteractionOther

	ReportFinancial        = types.ReportFinancial
	ReportSales            = types.ReportSales
	ReportCustomer         = types.ReportCustomer
	ReportInvoice          = types.ReportInvoice
	ReportBusinessOverview = types.ReportBusinessOverview
)

// Result constructors re-exported for services.
var (
	Ok   = types.Ok
	Fail = types.Fail
)

// Generic aliases for the response wrappers.
type (
	Envelope[T any]      = types.Envelope[T]
	PagedEnvelope[T any] = types.PagedEnvelope[T]
	Page[T any]          = types.Page[T]
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CredentialStore = interfaces.CredentialStore
	BackendClient   = interfaces.BackendClient
	AuthAPI         = interfaces.AuthAPI
	InvoiceAPI      = interfaces.InvoiceAPI
	CRMAPI          = interfaces.CRMAPI
	AssistantAPI    = interfaces.AssistantAPI
	ReportsAPI      = interfaces.ReportsAPI
	SessionService  = interfaces.SessionService
	UIState         = interfaces.UIState
)
