package devserver

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"ledgerdesk/internal/domain"
)

// computeInvoiceTotals derives line and invoice totals from quantity, unit
// price and tax rate, then applies the invoice-level discount.
func computeInvoiceTotals(inv *domain.Invoice) {
	var subtotal, tax float64
	for i := range inv.Items {
		item := &inv.Items[i]
		item.TotalPrice = item.Quantity * item.UnitPrice
		item.TaxAmount = item.TotalPrice * item.TaxRate / 100
		subtotal += item.TotalPrice
		tax += item.TaxAmount
	}
	inv.Subtotal = subtotal
	inv.TaxAmount = tax
	if inv.DiscountPercent > 0 {
		inv.DiscountAmount = (subtotal + tax) * inv.DiscountPercent / 100
	}
	inv.TotalAmount = subtotal + tax - inv.DiscountAmount
}

// joinCustomer copies the display columns of the invoice's customer.
func (s *Server) joinCustomer(inv *domain.Invoice) {
	if cust, found := s.store.Customer(inv.UserID, inv.CustomerID); found {
		inv.CustomerName = cust.Name
		inv.CustomerEmail = cust.Email
		inv.CustomerPhone = cust.Phone
	}
}

func (s *Server) handleListInvoices(c echo.Context) error {
	user := currentUser(c)
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	status := domain.InvoiceStatus(c.QueryParam("status"))
	search := strings.ToLower(c.QueryParam("search"))

	all := s.store.Invoices(user.ID)
	filtered := make([]domain.Invoice, 0, len(all))
	for _, inv := range all {
		if status != "" && inv.Status != status {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(inv.InvoiceNumber + " " + inv.CustomerName + " " + inv.Notes)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		filtered = append(filtered, inv)
	}
	start, end, p := paginate(page, pageSize, len(filtered))
	return paged(c, http.StatusOK, filtered[start:end], p)
}

func (s *Server) handleGetInvoice(c echo.Context) error {
	user := currentUser(c)
	inv, found := s.store.Invoice(user.ID, domain.InvoiceID(c.Param("id")))
	if !found {
		return fail(c, http.StatusNotFound, "Invoice not found")
	}
	return ok(c, http.StatusOK, "", echo.Map{"invoice": inv})
}

func (s *Server) handleCreateInvoice(c echo.Context) error {
	user := currentUser(c)
	var inv domain.Invoice
	if err := c.Bind(&inv); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if inv.CustomerID == "" {
		return fail(c, http.StatusBadRequest, "customer_id is required")
	}
	if _, found := s.store.Customer(user.ID, inv.CustomerID); !found {
		return fail(c, http.StatusBadRequest, "Customer not found")
	}
	if len(inv.Items) == 0 {
		return fail(c, http.StatusBadRequest, "At least one item is required")
	}

	inv.UserID = user.ID
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = fmt.Sprintf("INV-%d", time.Now().Unix())
	}
	if inv.IssueDate == "" {
		inv.IssueDate = time.Now().UTC().Format(dateLayout)
	}
	if inv.Status == "" {
		inv.Status = domain.InvoiceDraft
	}
	if inv.PaymentStatus == "" {
		inv.PaymentStatus = domain.PaymentPending
	}
	computeInvoiceTotals(&inv)
	s.joinCustomer(&inv)
	inv = s.store.InsertInvoice(inv)
	return ok(c, http.StatusCreated, "Invoice created", echo.Map{"invoice": inv})
}

func (s *Server) handleUpdateInvoice(c echo.Context) error {
	user := currentUser(c)
	existing, found := s.store.Invoice(user.ID, domain.InvoiceID(c.Param("id")))
	if !found {
		return fail(c, http.StatusNotFound, "Invoice not found")
	}
	var in domain.Invoice
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	if in.CustomerID != "" {
		existing.CustomerID = in.CustomerID
	}
	if in.DueDate != "" {
		existing.DueDate = in.DueDate
	}
	if in.Notes != "" {
		existing.Notes = in.Notes
	}
	if in.TermsAndConditions != "" {
		existing.TermsAndConditions = in.TermsAndConditions
	}
	if in.DiscountPercent != 0 {
		existing.DiscountPercent = in.DiscountPercent
	}
	if len(in.Items) > 0 {
		existing.Items = in.Items
	}
	if in.Status != "" && in.Status != existing.Status {
		existing.Status = in.Status
		now := time.Now().UTC()
		switch in.Status {
		case domain.InvoiceSent:
			existing.SentAt = &now
		case domain.InvoicePaid:
			existing.PaidAt = &now
			existing.PaymentStatus = domain.PaymentPaid
		}
	}
	computeInvoiceTotals(&existing)
	s.joinCustomer(&existing)
	s.store.PutInvoice(existing)
	existing, _ = s.store.Invoice(user.ID, existing.ID)
	return ok(c, http.StatusOK, "Invoice updated", echo.Map{"invoice": existing})
}

func (s *Server) handleDeleteInvoice(c echo.Context) error {
	user := currentUser(c)
	if !s.store.DeleteInvoice(user.ID, domain.InvoiceID(c.Param("id"))) {
		return fail(c, http.StatusNotFound, "Invoice not found")
	}
	return ok(c, http.StatusOK, "Invoice deleted", nil)
}

// inPeriod reports whether an issue date string falls inside the window.
func inPeriod(issueDate string, window domain.DateRange) bool {
	if issueDate == "" {
		return true
	}
	return issueDate >= window.StartDate && issueDate <= window.EndDate
}

func (s *Server) invoiceSummary(userID domain.UserID, period domain.Period) domain.InvoiceSummary {
	window := periodRange(period, time.Now().UTC())
	var sum domain.InvoiceSummary
	for _, inv := range s.store.Invoices(userID) {
		if !inPeriod(inv.IssueDate, window) {
			continue
		}
		sum.TotalInvoices++
		sum.TotalAmount += inv.TotalAmount
		switch inv.Status {
		case domain.InvoiceDraft:
			sum.DraftCount++
		case domain.InvoiceSent:
			sum.SentCount++
			sum.PendingAmount += inv.TotalAmount
		case domain.InvoicePaid:
			sum.PaidCount++
			sum.PaidAmount += inv.TotalAmount
		case domain.InvoiceOverdue:
			sum.OverdueCount++
			sum.OverdueAmount += inv.TotalAmount
		}
	}
	return sum
}

func (s *Server) handleInvoiceSummary(c echo.Context) error {
	user := currentUser(c)
	sum := s.invoiceSummary(user.ID, domain.Period(c.QueryParam("period")))
	return ok(c, http.StatusOK, "", echo.Map{"summary": sum})
}

func (s *Server) handleInvoiceAnalytics(c echo.Context) error {
	user := currentUser(c)
	period := domain.Period(c.QueryParam("period"))
	window := periodRange(period, time.Now().UTC())
	sum := s.invoiceSummary(user.ID, period)

	byStatus := map[string]int{}
	monthly := map[string]float64{}
	for _, inv := range s.store.Invoices(user.ID) {
		if !inPeriod(inv.IssueDate, window) {
			continue
		}
		byStatus[string(inv.Status)]++
		if len(inv.IssueDate) >= 7 {
			monthly[inv.IssueDate[:7]] += inv.TotalAmount
		}
	}
	analytics := echo.Map{
		"period":           period,
		"date_range":       window,
		"summary":          sum,
		"status_breakdown": byStatus,
		"monthly_revenue":  monthly,
	}
	return ok(c, http.StatusOK, "", echo.Map{"analytics": analytics})
}

func (s *Server) handleOverdueInvoices(c echo.Context) error {
	user := currentUser(c)
	today := time.Now().UTC().Format(dateLayout)
	overdue := make([]domain.Invoice, 0)
	for _, inv := range s.store.Invoices(user.ID) {
		pastDue := inv.DueDate != "" && inv.DueDate < today && inv.Status == domain.InvoiceSent
		if inv.Status == domain.InvoiceOverdue || pastDue {
			overdue = append(overdue, inv)
		}
	}
	return ok(c, http.StatusOK, "", echo.Map{"invoices": overdue})
}

func (s *Server) handleBulkInvoiceAction(c echo.Context) error {
	user := currentUser(c)
	var action domain.BulkInvoiceAction
	if err := c.Bind(&action); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	var target domain.InvoiceStatus
	switch action.Action {
	case "mark_sent":
		target = domain.InvoiceSent
	case "mark_paid":
		target = domain.InvoicePaid
	case "cancel":
		target = domain.InvoiceCancelled
	case "delete":
	default:
		return fail(c, http.StatusBadRequest, "Unknown bulk action")
	}

	affected := 0
	now := time.Now().UTC()
	for _, id := range action.InvoiceIDs {
		inv, found := s.store.Invoice(user.ID, id)
		if !found {
			continue
		}
		if action.Action == "delete" {
			if s.store.DeleteInvoice(user.ID, id) {
				affected++
			}
			continue
		}
		inv.Status = target
		switch target {
		case domain.InvoiceSent:
			inv.SentAt = &now
		case domain.InvoicePaid:
			inv.PaidAt = &now
			inv.PaymentStatus = domain.PaymentPaid
		}
		s.store.PutInvoice(inv)
		affected++
	}
	return ok(c, http.StatusOK, "Bulk action applied", echo.Map{
		"action":         action.Action,
		"affected_count": affected,
	})
}

func (s *Server) handleSendReminder(c echo.Context) error {
	user := currentUser(c)
	inv, found := s.store.Invoice(user.ID, domain.InvoiceID(c.Param("id")))
	if !found {
		return fail(c, http.StatusNotFound, "Invoice not found")
	}
	reminderType := c.QueryParam("reminder_type")
	if reminderType == "" {
		reminderType = "gentle"
	}
	// No outbound mail here; acknowledge so clients can exercise the flow.
	return ok(c, http.StatusOK, "Reminder sent", echo.Map{
		"invoice_id":    inv.ID,
		"reminder_type": reminderType,
	})
}
