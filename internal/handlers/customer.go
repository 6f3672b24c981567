package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/zid"
)

// CustomerHandler relays customer requests to the commerce API
type CustomerHandler struct {
	customers zid.CustomerAPI
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customers zid.CustomerAPI) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
	}
}

// ListCustomers lists customers
// @Summary List customers
// @Tags customers
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Items per page"
// @Param search query string false "Free-text search"
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	params := parseCustomerListParams(c)

	customers, err := h.customers.GetCustomers(c.Request.Context(), params)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, listPayload(customers, params.Page, params.PageSize), "")
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	body, err := bindBody(c)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	if msg := ValidateRequired(RequiredFields(body, "name", "email")...); msg != "" {
		respondValidationError(c, msg)
		return
	}

	customer, err := h.customers.CreateCustomer(c.Request.Context(), body)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, customer, "Customer created successfully")
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.customers.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, customer, "")
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	body, err := bindBody(c)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	customer, err := h.customers.UpdateCustomer(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, customer, "Customer updated successfully")
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if _, err := h.customers.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, nil, "Customer deleted successfully")
}

// GetCustomerStats returns aggregate customer statistics
func (h *CustomerHandler) GetCustomerStats(c *gin.Context) {
	stats, err := h.customers.GetCustomerStats(c.Request.Context())
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, stats, "")
}

// SendEmail sends an email to one customer through the store
// @Summary Email a customer
// @Description customer_id, email, subject and message are required
// @Tags customers
// @Accept json
// @Produce json
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/customers/send-email [post]
func (h *CustomerHandler) SendEmail(c *gin.Context) {
	body, err := bindBody(c)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	if msg := ValidateRequired(RequiredFields(body, "customer_id", "email", "subject", "message")...); msg != "" {
		respondValidationError(c, msg)
		return
	}

	result, err := h.customers.SendCustomerEmail(c.Request.Context(), body)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, result, "Email sent successfully")
}

// ImportCustomers forwards an uploaded CSV/Excel file to the store
// @Summary Import customers
// @Tags customers
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Customer file"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/customers/import [post]
func (h *CustomerHandler) ImportCustomers(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondValidationError(c, "No file provided")
		return
	}
	if err := validateImportFile(header); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	file, err := header.Open()
	if err != nil {
		respondAPIError(c, err)
		return
	}
	defer file.Close()

	result, err := h.customers.ImportCustomers(c.Request.Context(), header.Filename, file)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, result, "Customers imported successfully")
}
