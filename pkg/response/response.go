package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/noyo-commerce/storefront-service/pkg/errs"
)

type SuccessResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    interface{}     `json:"data,omitempty"`
	Meta    *PaginationMeta `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

type PaginationMeta struct {
	Count        int   `json:"count"`
	Total        int64 `json:"total"`
	TotalPages   int64 `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Success = true
	resp.Message = message
	resp.Data = data

	return c.JSON(http.StatusOK, resp)
}

func WriteCreatedResponse(c echo.Context, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Success = true
	resp.Message = message
	resp.Data = data

	return c.JSON(http.StatusCreated, resp)
}

func WritePaginatedResponse(c echo.Context, message string, data interface{}, meta PaginationMeta) error {
	resp := SuccessResponse{}
	resp.Success = true
	resp.Message = message
	resp.Data = data
	resp.Meta = &meta

	return c.JSON(http.StatusOK, resp)
}

func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Message = err.Error()
	resp.Errors = errors

	return c.JSON(statusCode, resp)
}
