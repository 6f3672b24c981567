package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/zid"
)

// CatalogHandler serves categories and stock locations
type CatalogHandler struct {
	catalog zid.CatalogAPI
}

func NewCatalogHandler(catalog zid.CatalogAPI) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.GetCategories(c.Request.Context())
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, listPayload(categories, nil, nil), "")
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.catalog.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, category, "")
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	body, err := bindBody(c)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	if msg := ValidateRequired(RequiredFields(body, "name")...); msg != "" {
		respondValidationError(c, msg)
		return
	}

	category, err := h.catalog.CreateCategory(c.Request.Context(), body)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, category, "Category created successfully")
}

func (h *CatalogHandler) ListLocations(c *gin.Context) {
	locations, err := h.catalog.GetLocations(c.Request.Context())
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, listPayload(locations, nil, nil), "")
}
