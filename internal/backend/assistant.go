package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"ledgerdesk/internal/domain"
)

// AskAssistant submits a natural-language query to the AI panel.
func (c *Client) AskAssistant(ctx context.Context, q domain.AIQuery) (domain.AIAnswer, error) {
	const op = "AskAssistant"
	payload, err := sendJSON[struct {
		Response domain.AIAnswer `json:"response"`
	}](ctx, c, op, http.MethodPost, "/ai/query", nil, q)
	if err != nil {
		return domain.AIAnswer{}, err
	}
	return payload.Response, nil
}

// AssistantInsights fetches the generated business insights.
func (c *Client) AssistantInsights(ctx context.Context) ([]domain.AIInsight, error) {
	const op = "AssistantInsights"
	payload, err := getJSON[struct {
		Insights []domain.AIInsight `json:"insights"`
	}](ctx, c, op, "/ai/insights", nil)
	if err != nil {
		return nil, err
	}
	return payload.Insights, nil
}

// AssistantRecommendations fetches the generated action recommendations.
func (c *Client) AssistantRecommendations(
	ctx context.Context,
) ([]domain.AIRecommendation, error) {
	const op = "AssistantRecommendations"
	payload, err := getJSON[struct {
		Recommendations []domain.AIRecommendation `json:"recommendations"`
	}](ctx, c, op, "/ai/recommendations", nil)
	if err != nil {
		return nil, err
	}
	return payload.Recommendations, nil
}

// AssistantContext fetches the business context block the assistant works from.
func (c *Client) AssistantContext(ctx context.Context) (map[string]any, error) {
	const op = "AssistantContext"
	payload, err := getJSON[struct {
		Context map[string]any `json:"context"`
	}](ctx, c, op, "/ai/context", nil)
	if err != nil {
		return nil, err
	}
	return payload.Context, nil
}

// SubmitAssistantFeedback rates a previous assistant answer.
func (c *Client) SubmitAssistantFeedback(ctx context.Context, fb domain.AIFeedback) error {
	const op = "SubmitAssistantFeedback"
	resp, err := c.do(ctx, op, http.MethodPost, "/ai/feedback", nil, fb)
	if err != nil {
		return err
	}
	return decodeDiscard(op, resp)
}

// AssistantHistory fetches up to limit past queries, newest first.
func (c *Client) AssistantHistory(ctx context.Context, limit int) ([]domain.AIAnswer, error) {
	const op = "AssistantHistory"
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	payload, err := getJSON[struct {
		History []domain.AIAnswer `json:"history"`
	}](ctx, c, op, "/ai/history", query)
	if err != nil {
		return nil, err
	}
	return payload.History, nil
}

// AssistantAnalytics fetches usage analytics for the AI panel.
func (c *Client) AssistantAnalytics(ctx context.Context) (map[string]any, error) {
	const op = "AssistantAnalytics"
	payload, err := getJSON[struct {
		Analytics map[string]any `json:"analytics"`
	}](ctx, c, op, "/ai/analytics", nil)
	if err != nil {
		return nil, err
	}
	return payload.Analytics, nil
}

// SmartInsights asks for a focused insight on one query string.
func (c *Client) SmartInsights(ctx context.Context, query string) (map[string]any, error) {
	const op = "SmartInsights"
	q := url.Values{}
	q.Set("query", query)
	return sendJSON[map[string]any](ctx, c, op, http.MethodPost, "/ai/smart-insights", q, nil)
}
