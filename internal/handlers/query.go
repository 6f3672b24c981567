package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/models"
)

// queryInt returns the positive integer value of key, or nil when the key is
// absent or not a positive integer
func queryInt(c *gin.Context, key string) *int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return nil
	}
	return &v
}

// queryString returns the value of key, or nil when it is absent or blank
func queryString(c *gin.Context, key string) *string {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	return &raw
}

func parseOrderListParams(c *gin.Context) models.OrderListParams {
	return models.OrderListParams{
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
		Status:   queryString(c, "status"),
		DateFrom: queryString(c, "date_from"),
		DateTo:   queryString(c, "date_to"),
	}
}

func parseProductListParams(c *gin.Context) models.ProductListParams {
	return models.ProductListParams{
		Page:       queryInt(c, "page"),
		PageSize:   queryInt(c, "page_size"),
		CategoryID: queryString(c, "category_id"),
		Search:     queryString(c, "search"),
	}
}

func parseCustomerListParams(c *gin.Context) models.CustomerListParams {
	return models.CustomerListParams{
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
		Search:   queryString(c, "search"),
	}
}

// bindBody decodes a JSON object body. The body is relayed to the remote API
// as-is, so no struct binding or schema validation happens here.
func bindBody(c *gin.Context) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return body, nil
}

// remoteListing is the subset of a remote list response needed to build a page
type remoteListing struct {
	Data       []json.RawMessage `json:"data"`
	Items      []json.RawMessage `json:"items"`
	Pagination *remotePagination `json:"pagination"`
	Meta       *remotePagination `json:"meta"`
}

type remotePagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	TotalCount  int `json:"total_count"`
}

// normalizeListing converts a remote list payload into a paginated response.
// Items keep the remote order. The second return is false when the payload
// has no recognizable list, in which case callers relay it untouched.
func normalizeListing(raw json.RawMessage, page, pageSize *int) (models.PaginatedResponse[json.RawMessage], bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return models.PaginatedResponse[json.RawMessage]{}, false
	}

	var items []json.RawMessage
	var meta *remotePagination

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(raw, &items); err != nil {
			return models.PaginatedResponse[json.RawMessage]{}, false
		}
	case '{':
		var listing remoteListing
		if err := json.Unmarshal(raw, &listing); err != nil {
			return models.PaginatedResponse[json.RawMessage]{}, false
		}
		switch {
		case listing.Data != nil:
			items = listing.Data
		case listing.Items != nil:
			items = listing.Items
		default:
			return models.PaginatedResponse[json.RawMessage]{}, false
		}
		meta = listing.Pagination
		if meta == nil {
			meta = listing.Meta
		}
	default:
		return models.PaginatedResponse[json.RawMessage]{}, false
	}

	p := models.Pagination{CurrentPage: 1, PerPage: len(items), Total: len(items)}
	if page != nil {
		p.CurrentPage = *page
	}
	if pageSize != nil {
		p.PerPage = *pageSize
	}
	if meta == nil {
		// Without remote totals the page itself is the only evidence: report
		// the lowest totals consistent with it. An empty page past the first
		// means the listing ended on the previous page.
		perPage := p.PerPage
		if perPage <= 0 {
			perPage = models.DefaultPageSize
		}
		switch {
		case len(items) == 0 && p.CurrentPage > 1:
			p.Total = (p.CurrentPage - 1) * perPage
			p.TotalPages = p.CurrentPage - 1
		default:
			p.Total = (p.CurrentPage-1)*perPage + len(items)
			if p.Total > 0 {
				p.TotalPages = p.CurrentPage
			}
		}
	} else {
		if meta.CurrentPage > 0 {
			p.CurrentPage = meta.CurrentPage
		}
		if meta.PerPage > 0 {
			p.PerPage = meta.PerPage
		}
		p.TotalPages = meta.TotalPages
		p.Total = meta.Total
		if p.Total == 0 {
			p.Total = meta.TotalCount
		}
	}

	return models.NewPaginatedResponse(items, p), true
}

// listPayload returns the normalized page when the payload is a list, or the
// raw payload otherwise
func listPayload(raw json.RawMessage, page, pageSize *int) interface{} {
	if listing, ok := normalizeListing(raw, page, pageSize); ok {
		return listing
	}
	return raw
}
