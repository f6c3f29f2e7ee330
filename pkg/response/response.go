package response

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "vendorpanel/pkg/errors"
)

// Envelope is the backend's wire format: every endpoint wraps its payload in
// { success, message, data }.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Pagination mirrors the backend's paginated collection metadata. Different
// endpoints populate different subsets of these fields.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize,omitempty"`
	TotalPages  int  `json:"totalPages,omitempty"`
	TotalItems  int  `json:"totalItems,omitempty"`
	TotalData   int  `json:"totalData,omitempty"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage,omitempty"`
}

// Total resolves the item-count alias: some endpoints report totalItems,
// others totalData.
func (p Pagination) Total() int {
	if p.TotalItems > 0 {
		return p.TotalItems
	}
	return p.TotalData
}

type PaginatedData struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
	})
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Data:    data,
	})
}

func Paginated(c echo.Context, items interface{}, total, page, pageSize int) error {
	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data: PaginatedData{
			Items: items,
			Pagination: Pagination{
				CurrentPage: page,
				PageSize:    pageSize,
				TotalPages:  totalPages,
				TotalItems:  total,
				HasNextPage: page < totalPages,
				HasPrevPage: page > 1,
			},
		},
	})
}

func Error(c echo.Context, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, Envelope{
			Success: false,
			Message: appErr.Message,
		})
	}

	return c.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Message: "An unexpected error occurred",
	})
}
