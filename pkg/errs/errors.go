package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrNotLoggedIn        = errors.New("Unauthorized access")
	ErrNoPermission       = errors.New("Forbidden access")
	ErrNotFound           = errors.New("Resource not found")
	ErrProductNotFound    = errors.New("Product not found")
	ErrOrderNotFound      = errors.New("Order not found")
	ErrUserNotFound       = errors.New("User not found")
	ErrCartItemNotFound   = errors.New("Item is not in the cart")
	ErrQueryCompile       = errors.New("Malformed filter parameter")
	ErrInvalidOrderStatus = errors.New("Invalid order status")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrNotLoggedIn:        ErrStatusNotLoggedIn,
	ErrNoPermission:       ErrStatusNoPermission,
	ErrNotFound:           ErrStatusNotFound,
	ErrProductNotFound:    ErrStatusNotFound,
	ErrOrderNotFound:      ErrStatusNotFound,
	ErrUserNotFound:       ErrStatusNotFound,
	ErrCartItemNotFound:   ErrStatusNotFound,
	ErrQueryCompile:       ErrStatusClient,
	ErrInvalidOrderStatus: ErrStatusClient,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
