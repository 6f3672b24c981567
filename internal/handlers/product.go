package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/ngenohkevin/zid-admin/internal/services"
	"github.com/ngenohkevin/zid-admin/internal/zid"
)

// ProductHandler relays product requests to the commerce API
type ProductHandler struct {
	products       zid.ProductAPI
	productService services.ProductServiceInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(products zid.ProductAPI, productService services.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{
		products:       products,
		productService: productService,
	}
}

// ListProducts lists products
// @Summary List products
// @Tags products
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Items per page"
// @Param category_id query string false "Category filter"
// @Param search query string false "Free-text search"
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	params := parseProductListParams(c)

	products, err := h.products.GetProducts(c.Request.Context(), params)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, listPayload(products, params.Page, params.PageSize), "")
}

// CreateProduct creates a product
// @Summary Create a product
// @Description name, price and category_id are required
// @Tags products
// @Accept json
// @Produce json
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	body, err := bindBody(c)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	if msg := ValidateRequired(RequiredFields(body, "name", "price", "category_id")...); msg != "" {
		respondValidationError(c, msg)
		return
	}

	product, err := h.products.CreateProduct(c.Request.Context(), body)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, product, "Product created successfully")
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, product, "")
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	body, err := bindBody(c)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, product, "Product updated successfully")
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if _, err := h.products.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, nil, "Product deleted successfully")
}

// BulkDeleteProducts deletes several products, reporting how many succeeded
// @Summary Delete several products
// @Tags products
// @Accept json
// @Produce json
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/products/bulk-delete [post]
func (h *ProductHandler) BulkDeleteProducts(c *gin.Context) {
	var req models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			respondValidationError(c, "Product IDs are required")
			return
		}
		respondAPIError(c, err)
		return
	}
	if len(req.ProductIDs) == 0 {
		respondValidationError(c, "Product IDs are required")
		return
	}

	result := h.productService.BulkDelete(c.Request.Context(), req.ProductIDs)
	respondSuccess(c, result, result.Message())
}

// DuplicateProduct creates a copy of an existing product
func (h *ProductHandler) DuplicateProduct(c *gin.Context) {
	product, err := h.productService.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, product, "Product duplicated successfully")
}

func (h *ProductHandler) GetProductStock(c *gin.Context) {
	stock, err := h.products.GetProductStock(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, stock, "")
}

func (h *ProductHandler) UpdateProductStock(c *gin.Context) {
	body, err := bindBody(c)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	stock, err := h.products.UpdateProductStock(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, stock, "Stock updated successfully")
}
