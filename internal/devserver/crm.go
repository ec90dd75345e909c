package devserver

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"ledgerdesk/internal/domain"
)

// withRevenue fills the derived revenue columns from the customer's
// invoices.
func (s *Server) withRevenue(cust domain.Customer) domain.Customer {
	for _, inv := range s.store.Invoices(cust.UserID) {
		if inv.CustomerID != cust.ID {
			continue
		}
		cust.TotalInvoices++
		cust.TotalRevenue += inv.TotalAmount
		if inv.Status == domain.InvoiceSent || inv.Status == domain.InvoiceOverdue {
			cust.Outstanding += inv.TotalAmount
		}
	}
	return cust
}

func (s *Server) handleListCustomers(c echo.Context) error {
	user := currentUser(c)
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	status := domain.CustomerStatus(c.QueryParam("status"))
	ctype := domain.CustomerType(c.QueryParam("customer_type"))
	search := strings.ToLower(c.QueryParam("search"))

	all := s.store.Customers(user.ID)
	filtered := make([]domain.Customer, 0, len(all))
	for _, cust := range all {
		if status != "" && cust.Status != status {
			continue
		}
		if ctype != "" && cust.Type != ctype {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(cust.Name + " " + cust.Email + " " + cust.Company)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		filtered = append(filtered, s.withRevenue(cust))
	}
	start, end, p := paginate(page, pageSize, len(filtered))
	return paged(c, http.StatusOK, filtered[start:end], p)
}

func (s *Server) handleGetCustomer(c echo.Context) error {
	user := currentUser(c)
	cust, found := s.store.Customer(user.ID, domain.CustomerID(c.Param("id")))
	if !found {
		return fail(c, http.StatusNotFound, "Customer not found")
	}
	return ok(c, http.StatusOK, "", echo.Map{"customer": s.withRevenue(cust)})
}

func (s *Server) handleCreateCustomer(c echo.Context) error {
	user := currentUser(c)
	var cust domain.Customer
	if err := c.Bind(&cust); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if cust.Name == "" {
		return fail(c, http.StatusBadRequest, "Name is required")
	}
	cust.UserID = user.ID
	if cust.Status == "" {
		cust.Status = domain.CustomerActive
	}
	if cust.Type == "" {
		cust.Type = domain.CustomerIndividual
	}
	cust = s.store.InsertCustomer(cust)
	return ok(c, http.StatusCreated, "Customer created", echo.Map{"customer": cust})
}

func (s *Server) handleUpdateCustomer(c echo.Context) error {
	user := currentUser(c)
	existing, found := s.store.Customer(user.ID, domain.CustomerID(c.Param("id")))
	if !found {
		return fail(c, http.StatusNotFound, "Customer not found")
	}
	var in domain.Customer
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	if in.Name != "" {
		existing.Name = in.Name
	}
	if in.Email != "" {
		existing.Email = in.Email
	}
	if in.Phone != "" {
		existing.Phone = in.Phone
	}
	if in.Company != "" {
		existing.Company = in.Company
	}
	if in.Address != "" {
		existing.Address = in.Address
	}
	if in.City != "" {
		existing.City = in.City
	}
	if in.State != "" {
		existing.State = in.State
	}
	if in.Country != "" {
		existing.Country = in.Country
	}
	if in.PostalCode != "" {
		existing.PostalCode = in.PostalCode
	}
	if in.Status != "" {
		existing.Status = in.Status
	}
	if in.Type != "" {
		existing.Type = in.Type
	}
	if in.Notes != "" {
		existing.Notes = in.Notes
	}
	if in.GSTIN != "" {
		existing.GSTIN = in.GSTIN
	}
	if in.PAN != "" {
		existing.PAN = in.PAN
	}
	if in.CreditLimit != 0 {
		existing.CreditLimit = in.CreditLimit
	}
	if in.PaymentTerms != 0 {
		existing.PaymentTerms = in.PaymentTerms
	}
	if in.Tags != nil {
		existing.Tags = in.Tags
	}
	s.store.PutCustomer(existing)
	existing, _ = s.store.Customer(user.ID, existing.ID)
	return ok(c, http.StatusOK, "Customer updated", echo.Map{"customer": s.withRevenue(existing)})
}

func (s *Server) handleDeleteCustomer(c echo.Context) error {
	user := currentUser(c)
	if !s.store.DeleteCustomer(user.ID, domain.CustomerID(c.Param("id"))) {
		return fail(c, http.StatusNotFound, "Customer not found")
	}
	return ok(c, http.StatusOK, "Customer deleted", nil)
}

// handleCustomerSummary aggregates the customer book: headcount per status
// plus paid revenue, attributed to the five highest-revenue customers.
func (s *Server) handleCustomerSummary(c echo.Context) error {
	user := currentUser(c)
	customers := s.store.Customers(user.ID)

	summary := domain.CustomerSummary{
		TotalCustomers: len(customers),
		TopCustomers:   []domain.TopCustomer{},
	}
	names := make(map[domain.CustomerID]string, len(customers))
	for _, cust := range customers {
		names[cust.ID] = cust.Name
		switch cust.Status {
		case domain.CustomerActive:
			summary.ActiveCustomers++
		case domain.CustomerInactive:
			summary.InactiveCustomers++
		case domain.CustomerPotential:
			summary.PotentialCustomers++
		}
	}

	revenue := map[domain.CustomerID]float64{}
	for _, inv := range s.store.Invoices(user.ID) {
		if inv.PaymentStatus != domain.PaymentPaid {
			continue
		}
		summary.TotalRevenue += inv.TotalAmount
		if inv.CustomerID != "" {
			revenue[inv.CustomerID] += inv.TotalAmount
		}
	}
	if len(customers) > 0 {
		summary.AverageRevenuePerCustomer = summary.TotalRevenue / float64(len(customers))
	}

	for id, amount := range revenue {
		name, found := names[id]
		if !found {
			continue
		}
		summary.TopCustomers = append(summary.TopCustomers, domain.TopCustomer{
			ID: id, Name: name, Revenue: amount,
		})
	}
	sort.Slice(summary.TopCustomers, func(i, j int) bool {
		return summary.TopCustomers[i].Revenue > summary.TopCustomers[j].Revenue
	})
	if len(summary.TopCustomers) > 5 {
		summary.TopCustomers = summary.TopCustomers[:5]
	}

	return ok(c, http.StatusOK, "", echo.Map{"summary": summary})
}

func (s *Server) handleListInteractions(c echo.Context) error {
	user := currentUser(c)
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	customerID := domain.CustomerID(c.QueryParam("customer_id"))
	itype := domain.InteractionType(c.QueryParam("type"))

	all := s.store.Interactions(user.ID)
	filtered := make([]domain.Interaction, 0, len(all))
	for _, in := range all {
		if customerID != "" && in.CustomerID != customerID {
			continue
		}
		if itype != "" && in.Type != itype {
			continue
		}
		if cust, found := s.store.Customer(user.ID, in.CustomerID); found {
			in.CustomerName = cust.Name
		}
		filtered = append(filtered, in)
	}
	start, end, p := paginate(page, pageSize, len(filtered))
	return paged(c, http.StatusOK, filtered[start:end], p)
}

func (s *Server) handleCreateInteraction(c echo.Context) error {
	user := currentUser(c)
	var in domain.Interaction
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if in.CustomerID == "" {
		return fail(c, http.StatusBadRequest, "customer_id is required")
	}
	cust, found := s.store.Customer(user.ID, in.CustomerID)
	if !found {
		return fail(c, http.StatusBadRequest, "Customer not found")
	}
	if in.Subject == "" {
		return fail(c, http.StatusBadRequest, "Subject is required")
	}
	in.UserID = user.ID
	if in.Type == "" {
		in.Type = domain.InteractionOther
	}
	in = s.store.InsertInteraction(in)
	in.CustomerName = cust.Name
	return ok(c, http.StatusCreated, "Interaction logged", echo.Map{"interaction": in})
}

func (s *Server) handleUpdateInteraction(c echo.Context) error {
	user := currentUser(c)
	existing, found := s.store.Interaction(user.ID, domain.InteractionID(c.Param("id")))
	if !found {
		return fail(c, http.StatusNotFound, "Interaction not found")
	}
	var in domain.Interaction
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if in.Subject != "" {
		existing.Subject = in.Subject
	}
	if in.Description != "" {
		existing.Description = in.Description
	}
	if in.Type != "" {
		existing.Type = in.Type
	}
	if in.FollowUpDate != nil {
		existing.FollowUpDate = in.FollowUpDate
	}
	if in.Tags != nil {
		existing.Tags = in.Tags
	}
	existing.Completed = in.Completed
	s.store.PutInteraction(existing)
	return ok(c, http.StatusOK, "Interaction updated", echo.Map{"interaction": existing})
}

// handleFollowUps lists customers with an interaction follow-up due today
// or earlier and not yet completed.
func (s *Server) handleFollowUps(c echo.Context) error {
	user := currentUser(c)
	now := time.Now().UTC()

	due := map[domain.CustomerID]bool{}
	for _, in := range s.store.Interactions(user.ID) {
		if in.Completed || in.FollowUpDate == nil {
			continue
		}
		if !in.FollowUpDate.After(now) {
			due[in.CustomerID] = true
		}
	}
	customers := make([]domain.Customer, 0, len(due))
	for _, cust := range s.store.Customers(user.ID) {
		if due[cust.ID] {
			customers = append(customers, s.withRevenue(cust))
		}
	}
	return ok(c, http.StatusOK, "", echo.Map{"customers": customers})
}
