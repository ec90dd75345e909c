package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"ledgerdesk/internal/domain"
)

type invoicePayload struct {
	Invoice domain.Invoice `json:"invoice"`
}

// ListInvoices fetches one page of invoices, optionally narrowed by status
// and a free-text search.
func (c *Client) ListInvoices(
	ctx context.Context,
	filter domain.InvoiceFilter,
) (domain.Page[domain.Invoice], error) {
	const op = "ListInvoices"
	query := url.Values{}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(filter.PageSize))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	return getPage[domain.Invoice](ctx, c, op, "/invoices", query)
}

// GetInvoice fetches one invoice by id.
func (c *Client) GetInvoice(ctx context.Context, id domain.InvoiceID) (domain.Invoice, error) {
	const op = "GetInvoice"
	payload, err := getJSON[invoicePayload](ctx, c, op, "/invoices/"+url.PathEscape(id.String()), nil)
	if err != nil {
		return domain.Invoice{}, err
	}
	return payload.Invoice, nil
}

// CreateInvoice registers a new invoice; derived amounts come back filled in.
func (c *Client) CreateInvoice(
	ctx context.Context,
	inv domain.Invoice,
) (domain.Invoice, error) {
	const op = "CreateInvoice"
	payload, err := sendJSON[invoicePayload](ctx, c, op, http.MethodPost, "/invoices", nil, inv)
	if err != nil {
		return domain.Invoice{}, err
	}
	return payload.Invoice, nil
}

// UpdateInvoice applies a partial update to an invoice.
func (c *Client) UpdateInvoice(
	ctx context.Context,
	id domain.InvoiceID,
	inv domain.Invoice,
) (domain.Invoice, error) {
	const op = "UpdateInvoice"
	payload, err := sendJSON[invoicePayload](
		ctx, c, op, http.MethodPut, "/invoices/"+url.PathEscape(id.String()), nil, inv,
	)
	if err != nil {
		return domain.Invoice{}, err
	}
	return payload.Invoice, nil
}

// DeleteInvoice removes an invoice.
func (c *Client) DeleteInvoice(ctx context.Context, id domain.InvoiceID) error {
	const op = "DeleteInvoice"
	resp, err := c.do(
		ctx, op, http.MethodDelete, "/invoices/"+url.PathEscape(id.String()), nil, nil,
	)
	if err != nil {
		return err
	}
	return decodeDiscard(op, resp)
}

// InvoiceSummary fetches aggregate invoice statistics, optionally limited to
// a reporting period.
func (c *Client) InvoiceSummary(
	ctx context.Context,
	period domain.Period,
) (domain.InvoiceSummary, error) {
	const op = "InvoiceSummary"
	query := url.Values{}
	if period != "" {
		query.Set("period", string(period))
	}
	payload, err := getJSON[struct {
		Summary domain.InvoiceSummary `json:"summary"`
	}](ctx, c, op, "/invoices/stats/summary", query)
	if err != nil {
		return domain.InvoiceSummary{}, err
	}
	return payload.Summary, nil
}

// InvoiceAnalytics fetches the advanced analytics block for a period.
func (c *Client) InvoiceAnalytics(
	ctx context.Context,
	period domain.Period,
) (map[string]any, error) {
	const op = "InvoiceAnalytics"
	query := url.Values{}
	if period != "" {
		query.Set("period", string(period))
	}
	payload, err := getJSON[struct {
		Analytics map[string]any `json:"analytics"`
	}](ctx, c, op, "/invoices/stats/analytics", query)
	if err != nil {
		return nil, err
	}
	return payload.Analytics, nil
}

// OverdueInvoices fetches every invoice past its due date and unpaid.
func (c *Client) OverdueInvoices(ctx context.Context) ([]domain.Invoice, error) {
	const op = "OverdueInvoices"
	payload, err := getJSON[struct {
		Invoices []domain.Invoice `json:"invoices"`
	}](ctx, c, op, "/invoices/overdue", nil)
	if err != nil {
		return nil, err
	}
	return payload.Invoices, nil
}

// BulkInvoiceAction applies one action to several invoices at once.
func (c *Client) BulkInvoiceAction(
	ctx context.Context,
	action domain.BulkInvoiceAction,
) (domain.BulkActionResult, error) {
	const op = "BulkInvoiceAction"
	payload, err := sendJSON[struct {
		Affected int `json:"affected_count"`
	}](ctx, c, op, http.MethodPost, "/invoices/bulk-actions", nil, action)
	if err != nil {
		return domain.BulkActionResult{}, err
	}
	return domain.BulkActionResult{Action: action.Action, Affected: payload.Affected}, nil
}

// SendInvoiceReminder asks the backend to send a payment reminder.
func (c *Client) SendInvoiceReminder(
	ctx context.Context,
	id domain.InvoiceID,
	reminderType string,
) error {
	const op = "SendInvoiceReminder"
	query := url.Values{}
	if reminderType != "" {
		query.Set("reminder_type", reminderType)
	}
	resp, err := c.do(
		ctx, op, http.MethodPost,
		"/invoices/"+url.PathEscape(id.String())+"/send-reminder", query, nil,
	)
	if err != nil {
		return err
	}
	return decodeDiscard(op, resp)
}
