package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/cafeteria-pos/internal/application/service"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/response"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing the catalog
func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", items)
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	item, err := h.productService.CreateProduct(c.Request.Context(), toProductInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created successfully", item)
}

// Update handles product updates
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := GetIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	item, err := h.productService.UpdateProduct(c.Request.Context(), id, toProductInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated successfully", item)
}

// Delete handles product deletion
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := GetIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// RegisterItems lists the items shown on the register
func (h *ProductHandler) RegisterItems(c *gin.Context) {
	var filter request.RegisterItemsRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, err := h.productService.RegisterItems(c.Request.Context(), SplitList(filter.Groups), filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Items retrieved successfully", items)
}

// Groups lists the register groups
func (h *ProductHandler) Groups(c *gin.Context) {
	groups, err := h.productService.Groups(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Groups retrieved successfully", groups)
}

func toProductInput(req *request.ProductRequest) *service.ProductInput {
	return &service.ProductInput{
		Name:  req.Name,
		Price: req.Price,
		Group: req.Group,
		Image: req.Image,
	}
}
