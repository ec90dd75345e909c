package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"ledgerdesk/internal/domain"
)

type reportPayload struct {
	Report domain.Report `json:"report"`
}

func periodQuery(period domain.Period) url.Values {
	query := url.Values{}
	if period != "" {
		query.Set("period", string(period))
	}
	return query
}

// GenerateReport asks the backend to build a report synchronously.
func (c *Client) GenerateReport(
	ctx context.Context,
	req domain.ReportRequest,
) (domain.Report, error) {
	const op = "GenerateReport"
	payload, err := sendJSON[reportPayload](ctx, c, op, http.MethodPost, "/reports/generate", nil, req)
	if err != nil {
		return domain.Report{}, err
	}
	return payload.Report, nil
}

// ListReports fetches one page of previously generated reports.
func (c *Client) ListReports(
	ctx context.Context,
	page, pageSize int,
) (domain.Page[domain.Report], error) {
	const op = "ListReports"
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}
	return getPage[domain.Report](ctx, c, op, "/reports", query)
}

// GetReport fetches a single report by ID.
func (c *Client) GetReport(ctx context.Context, id domain.ReportID) (domain.Report, error) {
	const op = "GetReport"
	payload, err := getJSON[reportPayload](ctx, c, op, "/reports/"+url.PathEscape(id.String()), nil)
	if err != nil {
		return domain.Report{}, err
	}
	return payload.Report, nil
}

// DeleteReport removes a generated report.
func (c *Client) DeleteReport(ctx context.Context, id domain.ReportID) error {
	const op = "DeleteReport"
	resp, err := c.do(ctx, op, http.MethodDelete, "/reports/"+url.PathEscape(id.String()), nil, nil)
	if err != nil {
		return err
	}
	return decodeDiscard(op, resp)
}

// ReportsDashboard fetches the composite dashboard for a period.
func (c *Client) ReportsDashboard(
	ctx context.Context,
	period domain.Period,
) (domain.Dashboard, error) {
	const op = "ReportsDashboard"
	payload, err := getJSON[struct {
		Dashboard domain.Dashboard `json:"dashboard"`
	}](ctx, c, op, "/reports/dashboard", periodQuery(period))
	if err != nil {
		return domain.Dashboard{}, err
	}
	return payload.Dashboard, nil
}

// AnalyticsOverview fetches top-level analytics figures for a period.
func (c *Client) AnalyticsOverview(
	ctx context.Context,
	period domain.Period,
) (map[string]any, error) {
	const op = "AnalyticsOverview"
	payload, err := getJSON[struct {
		Analytics map[string]any `json:"analytics"`
	}](ctx, c, op, "/reports/analytics/overview", periodQuery(period))
	if err != nil {
		return nil, err
	}
	return payload.Analytics, nil
}

// KPIMetrics fetches the KPI cards for a period.
func (c *Client) KPIMetrics(
	ctx context.Context,
	period domain.Period,
) ([]domain.KPIMetric, error) {
	const op = "KPIMetrics"
	payload, err := getJSON[struct {
		Metrics []domain.KPIMetric `json:"kpi_metrics"`
	}](ctx, c, op, "/reports/metrics/kpi", periodQuery(period))
	if err != nil {
		return nil, err
	}
	return payload.Metrics, nil
}
