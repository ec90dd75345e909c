package devserver

import (
	"github.com/labstack/echo/v4"

	domaintypes "ledgerdesk/internal/domain/types"
)

type envelope struct {
	Success    bool                    `json:"success"`
	Message    string                  `json:"message,omitempty"`
	Detail     string                  `json:"detail,omitempty"`
	Data       any                     `json:"data,omitempty"`
	Pagination *domaintypes.Pagination `json:"pagination,omitempty"`
}

func ok(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{Success: false, Message: message})
}

func paged(c echo.Context, status int, data any, p domaintypes.Pagination) error {
	return c.JSON(status, envelope{Success: true, Data: data, Pagination: &p})
}

// paginate clamps page/pageSize and returns the slice bounds plus the
// pagination block for total items.
func paginate(page, pageSize, total int) (start, end int, p domaintypes.Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	totalPages := (total + pageSize - 1) / pageSize
	start = (page - 1) * pageSize
	if start > total {
		start = total
	}
	end = start + pageSize
	if end > total {
		end = total
	}
	p = domaintypes.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
	return start, end, p
}
