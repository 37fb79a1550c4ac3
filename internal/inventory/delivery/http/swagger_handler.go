package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateBook godoc
// @Summary Create a new book
// @Description Add a book to the catalog (Admin only)
// @Tags Books
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{title=string,author=string,quantity=int,min_threshold=int,max_threshold=int,unit_price=number,allow_pre_order=bool,enable_waitlist=bool,average_sales_per_day=number} true "Book data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/books [post]
func (h *InventoryHandler) CreateBookDoc() {}

// ListBooks godoc
// @Summary List books
// @Description Get a list of books with pagination and optional status filter
// @Tags Books
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Param status query string false "Stock status filter"
// @Success 200 {object} object{success=bool,data=object{books=array,total=int,limit=int,offset=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/books [get]
func (h *InventoryHandler) ListBooksDoc() {}

// GetBook godoc
// @Summary Get book by ID
// @Description Get a specific book by its ID
// @Tags Books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/books/{id} [get]
func (h *InventoryHandler) GetBookDoc() {}

// UpdateBook godoc
// @Summary Update a book
// @Description Update catalog metadata and thresholds (Admin only)
// @Tags Books
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param request body object{title=string,author=string,unit_price=number,min_threshold=int,max_threshold=int,allow_pre_order=bool,enable_waitlist=bool,average_sales_per_day=number} true "Book data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/books/{id} [put]
func (h *InventoryHandler) UpdateBookDoc() {}

// DeleteBook godoc
// @Summary Delete a book
// @Description Remove a book from the catalog (Admin only)
// @Tags Books
// @Security BearerAuth
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/books/{id} [delete]
func (h *InventoryHandler) DeleteBookDoc() {}

// AdjustStock godoc
// @Summary Adjust book stock
// @Description Set a book's quantity and record the change (Admin only)
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param request body object{quantity=int,reason=string} true "Stock data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/books/{id}/stock [patch]
func (h *InventoryHandler) AdjustStockDoc() {}

// BulkAdjust godoc
// @Summary Bulk stock adjustment
// @Description Apply multiple stock operations; failures are reported per item (Admin only)
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{operations=array,reason=string} true "Batch operations"
// @Success 200 {object} object{success=bool,message=string,data=object{results=array,succeeded=int,failed=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/books/bulk [post]
func (h *InventoryHandler) BulkAdjustDoc() {}

// ChangeStatus godoc
// @Summary Change book status
// @Description Apply an administrative status override (Admin only)
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param request body object{status=string} true "New status"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/books/{id}/status [patch]
func (h *InventoryHandler) ChangeStatusDoc() {}

// ListChanges godoc
// @Summary List stock changes
// @Description Get the stock change history for a book
// @Tags Inventory
// @Produce json
// @Param id path string true "Book ID"
// @Param limit query int false "Limit"
// @Success 200 {object} object{success=bool,data=object{book_id=string,changes=array}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/books/{id}/changes [get]
func (h *InventoryHandler) ListChangesDoc() {}

// GetSummary godoc
// @Summary Inventory summary
// @Description Get aggregate counts, units and stock value across the catalog
// @Tags Inventory
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/inventory/summary [get]
func (h *InventoryHandler) GetSummaryDoc() {}

// GetAlerts godoc
// @Summary Stock alerts
// @Description Get prioritized alerts for low and out-of-stock books
// @Tags Inventory
// @Produce json
// @Success 200 {object} object{success=bool,data=object{alerts=array,count=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/inventory/alerts [get]
func (h *InventoryHandler) GetAlertsDoc() {}

// GetForecast godoc
// @Summary Reorder forecast
// @Description Get reorder suggestions based on sales velocity
// @Tags Inventory
// @Produce json
// @Success 200 {object} object{success=bool,data=object{suggestions=array,count=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/inventory/forecast [get]
func (h *InventoryHandler) GetForecastDoc() {}

// GenerateReport godoc
// @Summary Inventory report
// @Description Generate a filtered and sorted inventory report
// @Tags Inventory
// @Produce json
// @Param include_out_of_stock query bool false "Include books with zero quantity"
// @Param include_discontinued query bool false "Include discontinued books"
// @Param sort_by query string false "Sort field (stock, value, title, price, updated)"
// @Param sort_order query string false "Sort order (asc, desc)"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/inventory/report [get]
func (h *InventoryHandler) GenerateReportDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *InventoryHandler) HealthCheckDoc() {}
