package types

// Envelope is the response wrapper used by every backend endpoint.
//
// Success carries the verdict, Message a human-readable summary, and Data the
// endpoint-specific payload. Detail and ErrorCode only appear on failures.
type Envelope[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Detail    string `json:"detail,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
	Data      T      `json:"data,omitempty"`
}

// Pagination describes the window of a paginated list response.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// PagedEnvelope is the wrapper used by list endpoints; pagination sits next
// to the data array, not inside it.
type PagedEnvelope[T any] struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message,omitempty"`
	Detail     string     `json:"detail,omitempty"`
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Page bundles the items of one list response with its pagination window.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}
