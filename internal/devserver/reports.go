package devserver

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"ledgerdesk/internal/domain"
)

// overview builds the business overview block shared by dashboards and
// generated reports.
func (s *Server) overview(userID domain.UserID, period domain.Period) map[string]any {
	sum := s.invoiceSummary(userID, period)
	customers := s.store.Customers(userID)
	active := 0
	for _, cust := range customers {
		if cust.Status == domain.CustomerActive {
			active++
		}
	}
	return map[string]any{
		"total_revenue":    sum.PaidAmount,
		"pending_amount":   sum.PendingAmount,
		"overdue_amount":   sum.OverdueAmount,
		"total_invoices":   sum.TotalInvoices,
		"total_customers":  len(customers),
		"active_customers": active,
	}
}

func (s *Server) kpiMetrics(userID domain.UserID, period domain.Period) []domain.KPIMetric {
	sum := s.invoiceSummary(userID, period)
	collectionRate := 0.0
	if sum.TotalAmount > 0 {
		collectionRate = sum.PaidAmount / sum.TotalAmount * 100
	}
	return []domain.KPIMetric{
		{
			Name:        "Revenue",
			Value:       sum.PaidAmount,
			Unit:        "currency",
			Description: "Collected revenue for the period",
			IsGood:      sum.PaidAmount > 0,
		},
		{
			Name:        "Collection rate",
			Value:       collectionRate,
			Unit:        "percent",
			Target:      90,
			Description: "Share of billed amount already collected",
			IsGood:      collectionRate >= 90,
		},
		{
			Name:        "Outstanding",
			Value:       sum.PendingAmount + sum.OverdueAmount,
			Unit:        "currency",
			Description: "Billed but uncollected amount",
			IsGood:      sum.OverdueAmount == 0,
		},
		{
			Name:        "Invoices issued",
			Value:       float64(sum.TotalInvoices),
			Unit:        "count",
			Description: "Invoices issued in the period",
			IsGood:      sum.TotalInvoices > 0,
		},
	}
}

func (s *Server) handleGenerateReport(c echo.Context) error {
	user := currentUser(c)
	var req domain.ReportRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	switch req.ReportType {
	case domain.ReportFinancial, domain.ReportSales, domain.ReportCustomer,
		domain.ReportInvoice, domain.ReportBusinessOverview:
	default:
		return fail(c, http.StatusBadRequest, "Unknown report type")
	}
	if req.Period == "" {
		req.Period = domain.PeriodMonth
	}

	window := periodRange(req.Period, time.Now().UTC())
	if req.StartDate != "" {
		window.StartDate = req.StartDate
	}
	if req.EndDate != "" {
		window.EndDate = req.EndDate
	}

	sum := s.invoiceSummary(user.ID, req.Period)
	insights := make([]string, 0, 2)
	if sum.OverdueCount > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d invoices worth %.2f are overdue.", sum.OverdueCount, sum.OverdueAmount,
		))
	}
	if sum.TotalInvoices == 0 {
		insights = append(insights, "No invoices were issued in this period.")
	}

	rep := s.store.InsertReport(domain.Report{
		UserID:     user.ID,
		ReportType: req.ReportType,
		Period:     req.Period,
		StartDate:  window.StartDate,
		EndDate:    window.EndDate,
		Data:       s.overview(user.ID, req.Period),
		Insights:   insights,
		Summary: map[string]any{
			"period": fmt.Sprintf("%s to %s", window.StartDate, window.EndDate),
			"type":   req.ReportType,
		},
	})
	return ok(c, http.StatusCreated, "Report generated", echo.Map{"report": rep})
}

func (s *Server) handleListReports(c echo.Context) error {
	user := currentUser(c)
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	all := s.store.Reports(user.ID)
	start, end, p := paginate(page, pageSize, len(all))
	return paged(c, http.StatusOK, all[start:end], p)
}

func (s *Server) handleGetReport(c echo.Context) error {
	user := currentUser(c)
	rep, found := s.store.Report(user.ID, domain.ReportID(c.Param("id")))
	if !found {
		return fail(c, http.StatusNotFound, "Report not found")
	}
	return ok(c, http.StatusOK, "", echo.Map{"report": rep})
}

func (s *Server) handleDeleteReport(c echo.Context) error {
	user := currentUser(c)
	if !s.store.DeleteReport(user.ID, domain.ReportID(c.Param("id"))) {
		return fail(c, http.StatusNotFound, "Report not found")
	}
	return ok(c, http.StatusOK, "Report deleted", nil)
}

func (s *Server) handleDashboard(c echo.Context) error {
	user := currentUser(c)
	period := domain.Period(c.QueryParam("period"))
	if period == "" {
		period = domain.PeriodMonth
	}
	window := periodRange(period, time.Now().UTC())

	dashboard := domain.Dashboard{
		Overview:   s.overview(user.ID, period),
		KPIMetrics: s.kpiMetrics(user.ID, period),
		Period:     period,
		DateRange:  window,
	}
	return ok(c, http.StatusOK, "", echo.Map{"dashboard": dashboard})
}

func (s *Server) handleAnalyticsOverview(c echo.Context) error {
	user := currentUser(c)
	period := domain.Period(c.QueryParam("period"))
	if period == "" {
		period = domain.PeriodMonth
	}
	analytics := s.overview(user.ID, period)
	analytics["period"] = period
	analytics["date_range"] = periodRange(period, time.Now().UTC())
	return ok(c, http.StatusOK, "", echo.Map{"analytics": analytics})
}

func (s *Server) handleKPIMetrics(c echo.Context) error {
	user := currentUser(c)
	period := domain.Period(c.QueryParam("period"))
	if period == "" {
		period = domain.PeriodMonth
	}
	return ok(c, http.StatusOK, "", echo.Map{"kpi_metrics": s.kpiMetrics(user.ID, period)})
}
