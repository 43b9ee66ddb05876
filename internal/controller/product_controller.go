package controller

import (
	"mime/multipart"

	"github.com/labstack/echo/v4"
	"github.com/noyo-commerce/storefront-service/internal/dto"
	"github.com/noyo-commerce/storefront-service/internal/service"
	"github.com/noyo-commerce/storefront-service/pkg/response"
	"github.com/noyo-commerce/storefront-service/pkg/utils"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}
	e.GET("/products/active", c.GetActiveProducts)
	e.GET("/products", c.GetProducts, isLoggedIn, isAdmin)
	e.GET("/products/:id", c.GetProductByID)
	e.POST("/products", c.AddProduct, isLoggedIn, isAdmin)
	e.PUT("/products/:id", c.UpdateProduct, isLoggedIn, isAdmin)
	e.DELETE("/products/:id", c.DeleteProduct, isLoggedIn, isAdmin)
}

func (c *ProductController) GetActiveProducts(e echo.Context) error {
	products, err := c.service.GetActiveProducts(e.Request().Context(), e.QueryParams())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved products record", products)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	products, meta, err := c.service.GetProducts(e.Request().Context(), e.QueryParams())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WritePaginatedResponse(e, "successfully retrieved products record", products, meta)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	product, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved product record", product)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)

	product, err := c.service.AddProduct(e.Request().Context(), payload, formFiles(e, "images"), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Product created successfully.", product)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	payload.ID = e.Param("id")

	var retained []string
	if form, formErr := e.MultipartForm(); formErr == nil && form != nil {
		retained = form.Value["retainedImages"]
	}

	product, err := c.service.UpdateProduct(e.Request().Context(), payload, formFiles(e, "images"), retained)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product updated successfully", product)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	err := c.service.DeleteProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product and associated images deleted successfully", nil)
}

func formFiles(e echo.Context, field string) []*multipart.FileHeader {
	form, err := e.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}
