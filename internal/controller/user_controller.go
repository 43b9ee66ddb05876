package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/noyo-commerce/storefront-service/internal/dto"
	"github.com/noyo-commerce/storefront-service/internal/service"
	"github.com/noyo-commerce/storefront-service/pkg/response"
	"github.com/noyo-commerce/storefront-service/pkg/utils"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService, isLoggedIn echo.MiddlewareFunc) {
	c := UserController{
		service: service,
	}
	e.GET("/users/me", c.GetCurrentUser, isLoggedIn)
	e.GET("/users/cart", c.GetCart, isLoggedIn)
	e.POST("/users/cart", c.AddToCart, isLoggedIn)
	e.DELETE("/users/cart/:productId", c.RemoveFromCart, isLoggedIn)
	e.PUT("/users/cart/:productId/decrease", c.DecreaseCartItem, isLoggedIn)
	e.GET("/users/wishlist", c.GetWishlist, isLoggedIn)
	e.POST("/users/wishlist", c.AddToWishlist, isLoggedIn)
	e.DELETE("/users/wishlist/:productId", c.RemoveFromWishlist, isLoggedIn)
}

func (c *UserController) GetCurrentUser(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	user, err := c.service.GetCurrentUser(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", user)
}

func (c *UserController) GetCart(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	items, err := c.service.GetCart(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", items)
}

func (c *UserController) AddToCart(e echo.Context) error {
	payload := dto.CartRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddToCart").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)

	cart, err := c.service.AddToCart(e.Request().Context(), userID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product added to cart successfully.", cart)
}

func (c *UserController) RemoveFromCart(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	cart, err := c.service.RemoveFromCart(e.Request().Context(), userID, e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", cart)
}

func (c *UserController) DecreaseCartItem(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	cart, err := c.service.DecreaseCartItem(e.Request().Context(), userID, e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", cart)
}

func (c *UserController) GetWishlist(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	products, err := c.service.GetWishlist(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", products)
}

func (c *UserController) AddToWishlist(e echo.Context) error {
	payload := dto.WishlistRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddToWishlist").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)

	if err := c.service.AddToWishlist(e.Request().Context(), userID, payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Item added to wishlist", nil)
}

func (c *UserController) RemoveFromWishlist(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	if err := c.service.RemoveFromWishlist(e.Request().Context(), userID, e.Param("productId")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Item removed from wishlist", nil)
}
