package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/noyo-commerce/storefront-service/pkg/errs"
	"github.com/noyo-commerce/storefront-service/pkg/response"
	"github.com/noyo-commerce/storefront-service/pkg/utils"
)

// RequireRole gates a route on the role claim carried by the JWT. It
// assumes the JWT middleware already ran on the route.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			_, _, userRole := utils.ExtractTokenUser(c)
			if userRole != role {
				return response.WriteErrorResponse(c, errs.ErrNoPermission, nil)
			}
			return next(c)
		}
	}
}
