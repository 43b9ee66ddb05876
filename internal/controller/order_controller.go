package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/noyo-commerce/storefront-service/internal/dto"
	"github.com/noyo-commerce/storefront-service/internal/service"
	"github.com/noyo-commerce/storefront-service/pkg/response"
	"github.com/noyo-commerce/storefront-service/pkg/utils"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(e *echo.Group, service service.OrderService, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	c := OrderController{
		service: service,
	}
	e.POST("/orders", c.AddOrder, isLoggedIn)
	e.GET("/orders", c.GetOrders, isLoggedIn, isAdmin)
	e.GET("/orders/myorders", c.GetMyOrders, isLoggedIn)
	e.GET("/orders/:id", c.GetOrderByID, isLoggedIn)
	e.PUT("/orders/:id", c.UpdateOrderStatus, isLoggedIn, isAdmin)
}

func (c *OrderController) AddOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)

	order, err := c.service.AddOrder(e.Request().Context(), userID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Order created successfully.", order)
}

func (c *OrderController) GetMyOrders(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	orders, err := c.service.GetMyOrders(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", orders)
}

func (c *OrderController) GetOrderByID(e echo.Context) error {
	order, err := c.service.GetOrderByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", order)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	orders, meta, err := c.service.GetOrders(e.Request().Context(), e.QueryParams())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WritePaginatedResponse(e, "successfully retrieved orders record", orders, meta)
}

func (c *OrderController) UpdateOrderStatus(e echo.Context) error {
	payload := dto.OrderStatusRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
	}

	order, err := c.service.UpdateOrderStatus(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Order status updated successfully", order)
}
