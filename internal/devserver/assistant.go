package devserver

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"ledgerdesk/internal/domain"
)

// answerQuery produces a canned response over the user's real aggregates.
// Good enough for clients to exercise the panel end to end.
func (s *Server) answerQuery(userID domain.UserID, query string) (string, float64) {
	sum := s.invoiceSummary(userID, domain.PeriodYear)
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "overdue"):
		return fmt.Sprintf(
			"You have %d overdue invoices totalling %.2f.",
			sum.OverdueCount, sum.OverdueAmount,
		), 0.9
	case strings.Contains(q, "revenue") || strings.Contains(q, "sales"):
		return fmt.Sprintf(
			"Collected revenue over the last year is %.2f across %d invoices.",
			sum.PaidAmount, sum.PaidCount,
		), 0.85
	case strings.Contains(q, "customer"):
		return fmt.Sprintf(
			"You have %d customers on record.", len(s.store.Customers(userID)),
		), 0.8
	default:
		return fmt.Sprintf(
			"Over the last year you issued %d invoices for a total of %.2f.",
			sum.TotalInvoices, sum.TotalAmount,
		), 0.5
	}
}

func (s *Server) handleAIQuery(c echo.Context) error {
	user := currentUser(c)
	var q domain.AIQuery
	if err := c.Bind(&q); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(q.Query) == "" {
		return fail(c, http.StatusBadRequest, "Query is required")
	}
	response, confidence := s.answerQuery(user.ID, q.Query)
	ans := s.store.InsertAnswer(domain.AIAnswer{
		UserID:     user.ID,
		Query:      q.Query,
		Response:   response,
		QueryType:  q.QueryType,
		Context:    q.Context,
		Confidence: confidence,
	})
	return ok(c, http.StatusOK, "", echo.Map{"response": ans})
}

func (s *Server) handleAIInsights(c echo.Context) error {
	user := currentUser(c)
	sum := s.invoiceSummary(user.ID, domain.PeriodYear)

	insights := make([]domain.AIInsight, 0, 2)
	if sum.OverdueCount > 0 {
		insights = append(insights, domain.AIInsight{
			ID:             newID(),
			Type:           "cash_flow",
			Title:          "Overdue invoices need attention",
			Description:    fmt.Sprintf("%d invoices worth %.2f are overdue.", sum.OverdueCount, sum.OverdueAmount),
			Priority:       "high",
			ActionRequired: true,
		})
	}
	if sum.DraftCount > 0 {
		insights = append(insights, domain.AIInsight{
			ID:          newID(),
			Type:        "billing",
			Title:       "Unsent drafts",
			Description: fmt.Sprintf("%d draft invoices have not been sent yet.", sum.DraftCount),
			Priority:    "medium",
		})
	}
	return ok(c, http.StatusOK, "", echo.Map{"insights": insights})
}

func (s *Server) handleAIRecommendations(c echo.Context) error {
	user := currentUser(c)
	sum := s.invoiceSummary(user.ID, domain.PeriodYear)

	recs := make([]domain.AIRecommendation, 0, 2)
	if sum.OverdueAmount > 0 {
		recs = append(recs, domain.AIRecommendation{
			ID:          newID(),
			Type:        "collections",
			Title:       "Send payment reminders",
			Description: "Chase overdue invoices with a reminder schedule.",
			ImpactScore: 0.8,
			Difficulty:  "easy",
			Outcome:     "Faster collections and improved cash flow",
			ActionItems: []string{"Review overdue list", "Send reminders", "Flag repeat offenders"},
		})
	}
	recs = append(recs, domain.AIRecommendation{
		ID:          newID(),
		Type:        "retention",
		Title:       "Log customer follow-ups",
		Description: "Schedule follow-up dates on recent interactions to keep deals warm.",
		ImpactScore: 0.6,
		Difficulty:  "easy",
	})
	return ok(c, http.StatusOK, "", echo.Map{"recommendations": recs})
}

func (s *Server) handleAIContext(c echo.Context) error {
	user := currentUser(c)
	sum := s.invoiceSummary(user.ID, domain.PeriodYear)
	context := echo.Map{
		"business_name":  user.CompanyName,
		"total_invoices": sum.TotalInvoices,
		"total_revenue":  sum.TotalAmount,
		"customers":      len(s.store.Customers(user.ID)),
		"queries_asked":  len(s.store.Answers(user.ID)),
	}
	return ok(c, http.StatusOK, "", echo.Map{"context": context})
}

func (s *Server) handleAIFeedback(c echo.Context) error {
	user := currentUser(c)
	var fb domain.AIFeedback
	if err := c.Bind(&fb); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if _, found := s.store.Answer(user.ID, fb.QueryID); !found {
		return fail(c, http.StatusNotFound, "Query not found")
	}
	s.store.InsertFeedback(fb)
	return ok(c, http.StatusOK, "Feedback recorded", nil)
}

func (s *Server) handleAIHistory(c echo.Context) error {
	user := currentUser(c)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	history := s.store.Answers(user.ID)
	if len(history) > limit {
		history = history[:limit]
	}
	return ok(c, http.StatusOK, "", echo.Map{"history": history})
}

func (s *Server) handleAIAnalytics(c echo.Context) error {
	user := currentUser(c)
	answers := s.store.Answers(user.ID)
	byType := map[string]int{}
	var confidence float64
	for _, ans := range answers {
		typ := ans.QueryType
		if typ == "" {
			typ = "general"
		}
		byType[typ]++
		confidence += ans.Confidence
	}
	if len(answers) > 0 {
		confidence /= float64(len(answers))
	}
	analytics := echo.Map{
		"total_queries":      len(answers),
		"queries_by_type":    byType,
		"average_confidence": confidence,
	}
	return ok(c, http.StatusOK, "", echo.Map{"analytics": analytics})
}

func (s *Server) handleSmartInsights(c echo.Context) error {
	user := currentUser(c)
	query := c.QueryParam("query")
	if strings.TrimSpace(query) == "" {
		return fail(c, http.StatusBadRequest, "query parameter is required")
	}
	response, _ := s.answerQuery(user.ID, query)
	return ok(c, http.StatusOK, "", echo.Map{
		"insight":    response,
		"query_type": classifyQuery(query),
		"context":    echo.Map{"generated_for": user.ID},
	})
}

func classifyQuery(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "invoice") || strings.Contains(q, "overdue"):
		return "invoices"
	case strings.Contains(q, "revenue") || strings.Contains(q, "sales"):
		return "revenue"
	case strings.Contains(q, "customer"):
		return "customers"
	default:
		return "general"
	}
}
