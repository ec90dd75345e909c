package devserver_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ledgerdesk/internal/backend"
	"ledgerdesk/internal/devserver"
	"ledgerdesk/internal/domain"
	"ledgerdesk/internal/services/session"
	"ledgerdesk/internal/store"
)

type harness struct {
	client  *backend.Client
	session *session.Service
	creds   *store.CredentialFileStore
	expired *int
}

// newHarness starts an in-memory backend and wires the real client stack
// against it.
func newHarness(t *testing.T) *harness {
	t.Helper()
	srv := httptest.NewServer(devserver.New(devserver.Options{LogLevel: "off"}))
	t.Cleanup(srv.Close)

	creds := store.NewCredentialFileStore(t.TempDir())
	expired := 0
	client, err := backend.New(srv.URL, creds, backend.Options{
		OnUnauthorized: func() { expired++ },
	})
	if err != nil {
		t.Fatalf("backend.New: %v", err)
	}
	return &harness{
		client:  client,
		session: session.New(client, creds),
		creds:   creds,
		expired: &expired,
	}
}

func (h *harness) register(t *testing.T, email string) {
	t.Helper()
	res := h.session.Register(context.Background(), domain.Registration{
		Email:           email,
		FullName:        "Test Owner",
		CompanyName:     "Test Co",
		Password:        "Password123",
		ConfirmPassword: "Password123",
	})
	if !res.OK {
		t.Fatalf("Register: %s", res.Message)
	}
}

func (h *harness) createCustomer(t *testing.T, name string) domain.Customer {
	t.Helper()
	cust, err := h.client.CreateCustomer(context.Background(), domain.Customer{
		Name:  name,
		Email: strings.ToLower(name) + "@example.com",
	})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}
	return cust
}

func (h *harness) createInvoice(t *testing.T, cust domain.Customer) domain.Invoice {
	t.Helper()
	inv, err := h.client.CreateInvoice(context.Background(), domain.Invoice{
		CustomerID: cust.ID,
		DueDate:    "2030-01-01",
		Items: []domain.InvoiceItem{
			{Name: "Consulting", Quantity: 2, UnitPrice: 100, TaxRate: 10},
		},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	return inv
}

func TestRegisterLoginFlow(t *testing.T) {
	h := newHarness(t)
	h.register(t, "owner@example.com")

	if !h.session.IsAuthenticated() {
		t.Fatal("not authenticated after register")
	}
	cred, ok, err := h.creds.LoadCredential()
	if err != nil || !ok || cred.AccessToken == "" || cred.RefreshToken == "" {
		t.Fatalf("credential after register = %+v, %v, %v", cred, ok, err)
	}

	h.session.Logout(context.Background())
	if h.session.IsAuthenticated() {
		t.Fatal("authenticated after logout")
	}
	if _, ok, _ := h.creds.LoadCredential(); ok {
		t.Fatal("credential survived logout")
	}

	if res := h.session.Login(context.Background(), "owner@example.com", "wrong"); res.OK {
		t.Fatal("login succeeded with wrong password")
	} else if res.Message != "Incorrect email or password" {
		t.Errorf("Message = %q", res.Message)
	}

	if res := h.session.Login(context.Background(), "owner@example.com", "Password123"); !res.OK {
		t.Fatalf("Login: %s", res.Message)
	}
	user, _ := h.session.CurrentUser()
	if user.Email != "owner@example.com" {
		t.Errorf("Email = %q", user.Email)
	}
}

func TestBootstrapAgainstServer(t *testing.T) {
	h := newHarness(t)
	h.register(t, "owner@example.com")

	// A fresh session over the same credential store validates the token.
	restarted := session.New(h.client, h.creds)
	if got := restarted.Bootstrap(context.Background()); got != domain.SessionAuthenticated {
		t.Fatalf("Bootstrap = %v, want Authenticated", got)
	}

	// A corrupted token fails validation and logs out.
	if err := h.creds.SaveCredential(domain.Credential{AccessToken: "garbage"}); err != nil {
		t.Fatalf("SaveCredential: %v", err)
	}
	broken := session.New(h.client, h.creds)
	if got := broken.Bootstrap(context.Background()); got != domain.SessionUnauthenticated {
		t.Fatalf("Bootstrap = %v, want Unauthenticated", got)
	}
	if _, ok, _ := h.creds.LoadCredential(); ok {
		t.Error("credential survived failed validation")
	}
	if *h.expired == 0 {
		t.Error("unauthorized hook never fired")
	}
}

func TestInvoiceLifecycle(t *testing.T) {
	h := newHarness(t)
	h.register(t, "owner@example.com")
	ctx := context.Background()
	cust := h.createCustomer(t, "Acme")
	inv := h.createInvoice(t, cust)

	if !strings.HasPrefix(inv.InvoiceNumber, "INV-") {
		t.Errorf("InvoiceNumber = %q", inv.InvoiceNumber)
	}
	// 2 * 100 + 10% tax
	if inv.Subtotal != 200 || inv.TaxAmount != 20 || inv.TotalAmount != 220 {
		t.Errorf("totals = %v/%v/%v", inv.Subtotal, inv.TaxAmount, inv.TotalAmount)
	}
	if inv.Status != domain.InvoiceDraft {
		t.Errorf("Status = %q, want draft", inv.Status)
	}
	if inv.CustomerName != "Acme" {
		t.Errorf("CustomerName = %q", inv.CustomerName)
	}

	updated, err := h.client.UpdateInvoice(ctx, inv.ID, domain.Invoice{Status: domain.InvoiceSent})
	if err != nil {
		t.Fatalf("UpdateInvoice: %v", err)
	}
	if updated.Status != domain.InvoiceSent || updated.SentAt == nil {
		t.Errorf("after send: status=%q sentAt=%v", updated.Status, updated.SentAt)
	}

	page, err := h.client.ListInvoices(ctx, domain.InvoiceFilter{Status: domain.InvoiceSent})
	if err != nil {
		t.Fatalf("ListInvoices: %v", err)
	}
	if len(page.Items) != 1 || page.Pagination.TotalItems != 1 {
		t.Fatalf("filtered page = %+v", page)
	}

	result, err := h.client.BulkInvoiceAction(ctx, domain.BulkInvoiceAction{
		InvoiceIDs: []domain.InvoiceID{inv.ID},
		Action:     "mark_paid",
	})
	if err != nil {
		t.Fatalf("BulkInvoiceAction: %v", err)
	}
	if result.Affected != 1 {
		t.Errorf("Affected = %d, want 1", result.Affected)
	}

	sum, err := h.client.InvoiceSummary(ctx, domain.PeriodMonth)
	if err != nil {
		t.Fatalf("InvoiceSummary: %v", err)
	}
	if sum.PaidCount != 1 || sum.PaidAmount != 220 {
		t.Errorf("summary = %+v", sum)
	}

	if err := h.client.DeleteInvoice(ctx, inv.ID); err != nil {
		t.Fatalf("DeleteInvoice: %v", err)
	}
	if _, err := h.client.GetInvoice(ctx, inv.ID); err == nil {
		t.Error("GetInvoice succeeded after delete")
	}
}

func TestCRMFollowUps(t *testing.T) {
	h := newHarness(t)
	h.register(t, "owner@example.com")
	ctx := context.Background()
	cust := h.createCustomer(t, "Acme")

	past := domain.Interaction{
		CustomerID:   cust.ID,
		Type:         domain.InteractionPhone,
		Subject:      "Renewal call",
		FollowUpDate: timePtr(t, "2020-01-02T00:00:00Z"),
	}
	if _, err := h.client.CreateInteraction(ctx, past); err != nil {
		t.Fatalf("CreateInteraction: %v", err)
	}

	due, err := h.client.PendingFollowUps(ctx)
	if err != nil {
		t.Fatalf("PendingFollowUps: %v", err)
	}
	if len(due) != 1 || due[0].ID != cust.ID {
		t.Fatalf("follow-ups = %+v", due)
	}
}

func TestCustomerSummary(t *testing.T) {
	h := newHarness(t)
	h.register(t, "owner@example.com")
	ctx := context.Background()

	alpha := h.createCustomer(t, "Alpha")
	h.createCustomer(t, "Beta")
	inv := h.createInvoice(t, alpha)
	if _, err := h.client.BulkInvoiceAction(ctx, domain.BulkInvoiceAction{
		InvoiceIDs: []domain.InvoiceID{inv.ID},
		Action:     "mark_paid",
	}); err != nil {
		t.Fatalf("BulkInvoiceAction: %v", err)
	}

	summary, err := h.client.CustomerSummary(ctx)
	if err != nil {
		t.Fatalf("CustomerSummary: %v", err)
	}
	if summary.TotalCustomers != 2 || summary.ActiveCustomers != 2 {
		t.Fatalf("counts = %+v", summary)
	}
	if summary.TotalRevenue != 220 {
		t.Errorf("total revenue = %.2f, want 220.00", summary.TotalRevenue)
	}
	if summary.AverageRevenuePerCustomer != 110 {
		t.Errorf("average revenue = %.2f, want 110.00", summary.AverageRevenuePerCustomer)
	}
	if len(summary.TopCustomers) != 1 ||
		summary.TopCustomers[0].ID != alpha.ID ||
		summary.TopCustomers[0].Revenue != 220 {
		t.Fatalf("top customers = %+v", summary.TopCustomers)
	}
}

func TestAssistantRoundTrip(t *testing.T) {
	h := newHarness(t)
	h.register(t, "owner@example.com")
	ctx := context.Background()

	ans, err := h.client.AskAssistant(ctx, domain.AIQuery{Query: "How is my revenue?"})
	if err != nil {
		t.Fatalf("AskAssistant: %v", err)
	}
	if ans.ID == "" || ans.Response == "" {
		t.Fatalf("answer = %+v", ans)
	}

	if err := h.client.SubmitAssistantFeedback(ctx, domain.AIFeedback{
		QueryID: ans.ID,
		Helpful: true,
	}); err != nil {
		t.Fatalf("SubmitAssistantFeedback: %v", err)
	}

	history, err := h.client.AssistantHistory(ctx, 10)
	if err != nil {
		t.Fatalf("AssistantHistory: %v", err)
	}
	if len(history) != 1 || history[0].ID != ans.ID {
		t.Fatalf("history = %+v", history)
	}
}

func TestReportsAndDashboard(t *testing.T) {
	h := newHarness(t)
	h.register(t, "owner@example.com")
	ctx := context.Background()
	cust := h.createCustomer(t, "Acme")
	h.createInvoice(t, cust)

	rep, err := h.client.GenerateReport(ctx, domain.ReportRequest{
		ReportType: domain.ReportBusinessOverview,
		Period:     domain.PeriodMonth,
	})
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if rep.ID == "" || rep.StartDate == "" {
		t.Fatalf("report = %+v", rep)
	}

	page, err := h.client.ListReports(ctx, 1, 10)
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("reports = %+v", page.Items)
	}

	dash, err := h.client.ReportsDashboard(ctx, domain.PeriodMonth)
	if err != nil {
		t.Fatalf("ReportsDashboard: %v", err)
	}
	if len(dash.KPIMetrics) == 0 || dash.Period != domain.PeriodMonth {
		t.Fatalf("dashboard = %+v", dash)
	}

	metrics, err := h.client.KPIMetrics(ctx, domain.PeriodMonth)
	if err != nil {
		t.Fatalf("KPIMetrics: %v", err)
	}
	if len(metrics) == 0 {
		t.Fatal("no KPI metrics")
	}

	if err := h.client.DeleteReport(ctx, rep.ID); err != nil {
		t.Fatalf("DeleteReport: %v", err)
	}
}

func TestRefreshAndChangePassword(t *testing.T) {
	h := newHarness(t)
	h.register(t, "owner@example.com")
	ctx := context.Background()

	if res := h.session.Refresh(ctx); !res.OK {
		t.Fatalf("Refresh: %s", res.Message)
	}
	after, _, _ := h.creds.LoadCredential()
	if after.AccessToken == "" || after.RefreshToken == "" {
		t.Fatalf("credential after refresh = %+v", after)
	}

	if res := h.session.ChangePassword(ctx, domain.PasswordChange{
		CurrentPassword:    "Password123",
		NewPassword:        "Password456",
		ConfirmNewPassword: "Password456",
	}); !res.OK {
		t.Fatalf("ChangePassword: %s", res.Message)
	}

	h.session.Logout(ctx)
	if res := h.session.Login(ctx, "owner@example.com", "Password123"); res.OK {
		t.Fatal("old password still accepted")
	}
	if res := h.session.Login(ctx, "owner@example.com", "Password456"); !res.OK {
		t.Fatalf("Login with new password: %s", res.Message)
	}
}

func timePtr(t *testing.T, value string) *time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return &ts
}
