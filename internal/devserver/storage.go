package devserver

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ledgerdesk/internal/domain"
)

// userRecord is a user plus the secrets that never leave the server.
type userRecord struct {
	User         domain.User
	PasswordHash []byte
}

// Storage holds every record in memory. All access goes through the
// mutex; values are copied in and out so handlers never share pointers
// with the maps.
type Storage struct {
	mu           sync.RWMutex
	users        map[domain.UserID]*userRecord
	byEmail      map[string]domain.UserID
	invoices     map[domain.InvoiceID]domain.Invoice
	customers    map[domain.CustomerID]domain.Customer
	interactions map[domain.InteractionID]domain.Interaction
	reports      map[domain.ReportID]domain.Report
	answers      map[string]domain.AIAnswer
	feedback     []domain.AIFeedback
}

func NewStorage() *Storage {
	return &Storage{
		users:        make(map[domain.UserID]*userRecord),
		byEmail:      make(map[string]domain.UserID),
		invoices:     make(map[domain.InvoiceID]domain.Invoice),
		customers:    make(map[domain.CustomerID]domain.Customer),
		interactions: make(map[domain.InteractionID]domain.Interaction),
		reports:      make(map[domain.ReportID]domain.Report),
		answers:      make(map[string]domain.AIAnswer),
	}
}

func newID() string { return uuid.NewString() }

// --- users ---

func (s *Storage) CreateUser(user domain.User, passwordHash []byte) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email := strings.ToLower(user.Email)
	if _, exists := s.byEmail[email]; exists {
		return domain.User{}, false
	}
	user.ID = domain.UserID(newID())
	user.Email = email
	user.IsActive = true
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = &userRecord{User: user, PasswordHash: passwordHash}
	s.byEmail[email] = user.ID
	return user, true
}

func (s *Storage) UserByEmail(email string) (domain.User, []byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return domain.User{}, nil, false
	}
	rec := s.users[id]
	return rec.User, rec.PasswordHash, true
}

func (s *Storage) UserByID(id domain.UserID) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[id]
	if !ok {
		return domain.User{}, false
	}
	return rec.User, true
}

func (s *Storage) TouchLogin(id domain.UserID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.users[id]; ok {
		now := time.Now().UTC()
		rec.User.LastLogin = &now
	}
}

func (s *Storage) UpdateUser(id domain.UserID, update domain.ProfileUpdate) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		return domain.User{}, false
	}
	if update.FullName != "" {
		rec.User.FullName = update.FullName
	}
	if update.CompanyName != "" {
		rec.User.CompanyName = update.CompanyName
	}
	if update.Phone != "" {
		rec.User.Phone = update.Phone
	}
	rec.User.UpdatedAt = time.Now().UTC()
	return rec.User, true
}

func (s *Storage) PasswordHash(id domain.UserID) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return rec.PasswordHash, true
}

func (s *Storage) SetPasswordHash(id domain.UserID, hash []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		return false
	}
	rec.PasswordHash = hash
	rec.User.UpdatedAt = time.Now().UTC()
	return true
}

// --- invoices ---

func (s *Storage) InsertInvoice(inv domain.Invoice) domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv.ID = domain.InvoiceID(newID())
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	s.invoices[inv.ID] = inv
	return inv
}

func (s *Storage) Invoice(userID domain.UserID, id domain.InvoiceID) (domain.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.invoices[id]
	if !ok || inv.UserID != userID {
		return domain.Invoice{}, false
	}
	return inv, true
}

func (s *Storage) PutInvoice(inv domain.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv.UpdatedAt = time.Now().UTC()
	s.invoices[inv.ID] = inv
}

func (s *Storage) DeleteInvoice(userID domain.UserID, id domain.InvoiceID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.invoices[id]
	if !ok || inv.UserID != userID {
		return false
	}
	delete(s.invoices, id)
	return true
}

// Invoices returns the user's invoices, newest first.
func (s *Storage) Invoices(userID domain.UserID) []domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Invoice, 0)
	for _, inv := range s.invoices {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// --- customers ---

func (s *Storage) InsertCustomer(cust domain.Customer) domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	cust.ID = domain.CustomerID(newID())
	now := time.Now().UTC()
	cust.CreatedAt = now
	cust.UpdatedAt = now
	s.customers[cust.ID] = cust
	return cust
}

func (s *Storage) Customer(userID domain.UserID, id domain.CustomerID) (domain.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cust, ok := s.customers[id]
	if !ok || cust.UserID != userID {
		return domain.Customer{}, false
	}
	return cust, true
}

func (s *Storage) PutCustomer(cust domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cust.UpdatedAt = time.Now().UTC()
	s.customers[cust.ID] = cust
}

func (s *Storage) DeleteCustomer(userID domain.UserID, id domain.CustomerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cust, ok := s.customers[id]
	if !ok || cust.UserID != userID {
		return false
	}
	delete(s.customers, id)
	return true
}

func (s *Storage) Customers(userID domain.UserID) []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Customer, 0)
	for _, cust := range s.customers {
		if cust.UserID == userID {
			out = append(out, cust)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// --- interactions ---

func (s *Storage) InsertInteraction(in domain.Interaction) domain.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = domain.InteractionID(newID())
	if in.InteractionDate.IsZero() {
		in.InteractionDate = time.Now().UTC()
	}
	s.interactions[in.ID] = in
	if cust, ok := s.customers[in.CustomerID]; ok && cust.UserID == in.UserID {
		t := in.InteractionDate
		cust.LastInteraction = &t
		s.customers[cust.ID] = cust
	}
	return in
}

func (s *Storage) Interaction(
	userID domain.UserID,
	id domain.InteractionID,
) (domain.Interaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	in, ok := s.interactions[id]
	if !ok || in.UserID != userID {
		return domain.Interaction{}, false
	}
	return in, true
}

func (s *Storage) PutInteraction(in domain.Interaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactions[in.ID] = in
}

func (s *Storage) Interactions(userID domain.UserID) []domain.Interaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Interaction, 0)
	for _, in := range s.interactions {
		if in.UserID == userID {
			out = append(out, in)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].InteractionDate.After(out[j].InteractionDate)
	})
	return out
}

// --- reports ---

func (s *Storage) InsertReport(rep domain.Report) domain.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	rep.ID = domain.ReportID(newID())
	rep.GeneratedAt = time.Now().UTC()
	s.reports[rep.ID] = rep
	return rep
}

func (s *Storage) Report(userID domain.UserID, id domain.ReportID) (domain.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rep, ok := s.reports[id]
	if !ok || rep.UserID != userID {
		return domain.Report{}, false
	}
	return rep, true
}

func (s *Storage) DeleteReport(userID domain.UserID, id domain.ReportID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rep, ok := s.reports[id]
	if !ok || rep.UserID != userID {
		return false
	}
	delete(s.reports, id)
	return true
}

func (s *Storage) Reports(userID domain.UserID) []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Report, 0)
	for _, rep := range s.reports {
		if rep.UserID == userID {
			out = append(out, rep)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GeneratedAt.After(out[j].GeneratedAt)
	})
	return out
}

// --- assistant ---

func (s *Storage) InsertAnswer(ans domain.AIAnswer) domain.AIAnswer {
	s.mu.Lock()
	defer s.mu.Unlock()
	ans.ID = newID()
	ans.CreatedAt = time.Now().UTC()
	s.answers[ans.ID] = ans
	return ans
}

func (s *Storage) Answer(userID domain.UserID, id string) (domain.AIAnswer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ans, ok := s.answers[id]
	if !ok || ans.UserID != userID {
		return domain.AIAnswer{}, false
	}
	return ans, true
}

func (s *Storage) InsertFeedback(fb domain.AIFeedback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = append(s.feedback, fb)
}

// Answers returns the user's past queries, newest first.
func (s *Storage) Answers(userID domain.UserID) []domain.AIAnswer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AIAnswer, 0)
	for _, ans := range s.answers {
		if ans.UserID == userID {
			out = append(out, ans)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
