package types

import "time"

// ReportType names the kind of report to generate.
type ReportType string

// Report kinds.
const (
	ReportFinancial        ReportType = "financial"
	ReportSales            ReportType = "sales"
	ReportCustomer         ReportType = "customer"
	ReportInvoice          ReportType = "invoice"
	ReportBusinessOverview ReportType = "business_overview"
)

// ReportRequest is the body of /reports/generate.
type ReportRequest struct {
	ReportType ReportType     `json:"report_type"`
	Period     Period         `json:"period"`
	StartDate  string         `json:"start_date,omitempty"`
	EndDate    string         `json:"end_date,omitempty"`
	Filters    map[string]any `json:"filters,omitempty"`
	Format     string         `json:"format,omitempty"`
}

// Report is a generated report. The metric payload varies by report type and
// is passed through untyped for display.
type Report struct {
	ID          ReportID       `json:"id,omitempty"`
	UserID      UserID         `json:"user_id,omitempty"`
	ReportType  ReportType     `json:"report_type"`
	Period      Period         `json:"period"`
	StartDate   string         `json:"start_date,omitempty"`
	EndDate     string         `json:"end_date,omitempty"`
	GeneratedAt time.Time      `json:"generated_at,omitzero"`
	Data        map[string]any `json:"data,omitempty"`
	Insights    []string       `json:"insights,omitempty"`
	Summary     map[string]any `json:"summary,omitempty"`
}

// DateRange bounds one reporting window.
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Dashboard is the payload of /reports/dashboard: a business overview plus
// KPI and chart blocks for one reporting period.
type Dashboard struct {
	Overview   map[string]any   `json:"overview"`
	KPIMetrics []KPIMetric      `json:"kpi_metrics"`
	Charts     []map[string]any `json:"charts,omitempty"`
	Period     Period           `json:"period"`
	DateRange  DateRange        `json:"date_range"`
}

// KPIMetric is one headline indicator of /reports/metrics/kpi.
type KPIMetric struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Change      float64 `json:"change"`
	ChangeType  string  `json:"change_type,omitempty"`
	Description string  `json:"description,omitempty"`
	Target      float64 `json:"target,omitempty"`
	IsGood      bool    `json:"is_good"`
}
