package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// RegisterCustomer godoc
// @Summary Register a new customer
// @Description Register a customer record (Admin only)
// @Tags Customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{email=string,full_name=string,messaging_id=string} true "Customer data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/customers [post]
func (h *CustomerHandler) RegisterCustomerDoc() {}

// ListCustomers godoc
// @Summary List customers
// @Description Get a list of customers with pagination and optional tier filter
// @Tags Customers
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Param tier query string false "Loyalty tier filter"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/customers [get]
func (h *CustomerHandler) ListCustomersDoc() {}

// GetCustomer godoc
// @Summary Get customer by ID
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/customers/{id} [get]
func (h *CustomerHandler) GetCustomerDoc() {}

// UpdateCustomer godoc
// @Summary Update a customer
// @Tags Customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body object{email=string,full_name=string,messaging_id=string} true "Customer data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/customers/{id} [put]
func (h *CustomerHandler) UpdateCustomerDoc() {}

// DeleteCustomer godoc
// @Summary Delete a customer
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} object{success=bool,message=string}
// @Router /api/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomerDoc() {}

// ToggleActive godoc
// @Summary Activate or deactivate a customer
// @Tags Customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body object{is_active=bool} true "New active state"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Router /api/customers/{id}/active [patch]
func (h *CustomerHandler) ToggleActiveDoc() {}

// GetStats godoc
// @Summary Get customer statistics
// @Tags Customers
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/customers/stats [get]
func (h *CustomerHandler) GetStatsDoc() {}
