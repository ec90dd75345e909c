package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"ledgerdesk/internal/domain"
)

type customerPayload struct {
	Customer domain.Customer `json:"customer"`
}

type interactionPayload struct {
	Interaction domain.Interaction `json:"interaction"`
}

// ListCustomers fetches one page of CRM customers.
func (c *Client) ListCustomers(
	ctx context.Context,
	filter domain.CustomerFilter,
) (domain.Page[domain.Customer], error) {
	const op = "ListCustomers"
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
	if filter.Type != "" {
		query.Set("customer_type", string(filter.Type))
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	return getPage[domain.Customer](ctx, c, op, "/crm/customers", query)
}

// GetCustomer fetches one customer by id.
func (c *Client) GetCustomer(
	ctx context.Context,
	id domain.CustomerID,
) (domain.Customer, error) {
	const op = "GetCustomer"
	payload, err := getJSON[customerPayload](
		ctx, c, op, "/crm/customers/"+url.PathEscape(id.String()), nil,
	)
	if err != nil {
		return domain.Customer{}, err
	}
	return payload.Customer, nil
}

// CreateCustomer registers a new customer record.
func (c *Client) CreateCustomer(
	ctx context.Context,
	cust domain.Customer,
) (domain.Customer, error) {
	const op = "CreateCustomer"
	payload, err := sendJSON[customerPayload](
		ctx, c, op, http.MethodPost, "/crm/customers", nil, cust,
	)
	if err != nil {
		return domain.Customer{}, err
	}
	return payload.Customer, nil
}

// UpdateCustomer applies a partial update to a customer record.
func (c *Client) UpdateCustomer(
	ctx context.Context,
	id domain.CustomerID,
	cust domain.Customer,
) (domain.Customer, error) {
	const op = "UpdateCustomer"
	payload, err := sendJSON[customerPayload](
		ctx, c, op, http.MethodPut, "/crm/customers/"+url.PathEscape(id.String()), nil, cust,
	)
	if err != nil {
		return domain.Customer{}, err
	}
	return payload.Customer, nil
}

// DeleteCustomer removes a customer record.
func (c *Client) DeleteCustomer(ctx context.Context, id domain.CustomerID) error {
	const op = "DeleteCustomer"
	resp, err := c.do(
		ctx, op, http.MethodDelete, "/crm/customers/"+url.PathEscape(id.String()), nil, nil,
	)
	if err != nil {
		return err
	}
	return decodeDiscard(op, resp)
}

// CustomerSummary fetches aggregate statistics over the customer book.
func (c *Client) CustomerSummary(ctx context.Context) (domain.CustomerSummary, error) {
	const op = "CustomerSummary"
	payload, err := getJSON[struct {
		Summary domain.CustomerSummary `json:"summary"`
	}](ctx, c, op, "/crm/customers/stats/summary", nil)
	if err != nil {
		return domain.CustomerSummary{}, err
	}
	return payload.Summary, nil
}

// ListInteractions fetches one page of customer interactions.
func (c *Client) ListInteractions(
	ctx context.Context,
	filter domain.InteractionFilter,
) (domain.Page[domain.Interaction], error) {
	const op = "ListInteractions"
	query := url.Values{}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(filter.PageSize))
	}
	if filter.CustomerID != "" {
		query.Set("customer_id", filter.CustomerID.String())
	}
	if filter.Type != "" {
		query.Set("type", string(filter.Type))
	}
	return getPage[domain.Interaction](ctx, c, op, "/crm/interactions", query)
}

// CreateInteraction logs a new customer touchpoint.
func (c *Client) CreateInteraction(
	ctx context.Context,
	in domain.Interaction,
) (domain.Interaction, error) {
	const op = "CreateInteraction"
	payload, err := sendJSON[interactionPayload](
		ctx, c, op, http.MethodPost, "/crm/interactions", nil, in,
	)
	if err != nil {
		return domain.Interaction{}, err
	}
	return payload.Interaction, nil
}

// UpdateInteraction amends a logged touchpoint, e.g. marking it completed.
func (c *Client) UpdateInteraction(
	ctx context.Context,
	id domain.InteractionID,
	in domain.Interaction,
) (domain.Interaction, error) {
	const op = "UpdateInteraction"
	payload, err := sendJSON[interactionPayload](
		ctx, c, op, http.MethodPut, "/crm/interactions/"+url.PathEscape(id.String()), nil, in,
	)
	if err != nil {
		return domain.Interaction{}, err
	}
	return payload.Interaction, nil
}

// PendingFollowUps fetches the customers with an open follow-up.
func (c *Client) PendingFollowUps(ctx context.Context) ([]domain.Customer, error) {
	const op = "PendingFollowUps"
	payload, err := getJSON[struct {
		Customers []domain.Customer `json:"customers"`
	}](ctx, c, op, "/crm/follow-ups", nil)
	if err != nil {
		return nil, err
	}
	return payload.Customers, nil
}
