package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
	"github.com/bookhaven/bookstore-admin/internal/inventory/usecase/command"
	"github.com/bookhaven/bookstore-admin/internal/inventory/usecase/query"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

// InventoryHandler handles HTTP requests for the book inventory using CQRS pattern
type InventoryHandler struct {
	// Command handlers
	createHandler       *command.CreateBookHandler
	updateHandler       *command.UpdateBookHandler
	deleteHandler       *command.DeleteBookHandler
	adjustStockHandler  *command.AdjustStockHandler
	bulkAdjustHandler   *command.BulkAdjustHandler
	changeStatusHandler *command.ChangeStatusHandler

	// Query handlers
	getBookHandler     *query.GetBookHandler
	listHandler        *query.ListBooksHandler
	summaryHandler     *query.GetSummaryHandler
	alertsHandler      *query.GetAlertsHandler
	forecastHandler    *query.GetForecastHandler
	reportHandler      *query.GenerateReportHandler
	listChangesHandler *query.ListChangesHandler

	repo           domain.BookRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalBooks     prometheus.Gauge
	lowStockBooks  prometheus.Gauge
}

// NewInventoryHandler creates a new inventory handler with CQRS pattern (manual DI for backwards compatibility)
func NewInventoryHandler(repo domain.BookRepository, publisher command.EventPublisher) *InventoryHandler {
	// Initialize command handlers
	createHandler := command.NewCreateBookHandler(repo)
	updateHandler := command.NewUpdateBookHandler(repo)
	deleteHandler := command.NewDeleteBookHandler(repo)
	adjustStockHandler := command.NewAdjustStockHandler(repo, publisher)
	bulkAdjustHandler := command.NewBulkAdjustHandler(repo, publisher)
	changeStatusHandler := command.NewChangeStatusHandler(repo)

	// Initialize query handlers
	getBookHandler := query.NewGetBookHandler(repo)
	listHandler := query.NewListBooksHandler(repo)
	summaryHandler := query.NewGetSummaryHandler(repo)
	alertsHandler := query.NewGetAlertsHandler(repo)
	forecastHandler := query.NewGetForecastHandler(repo)
	reportHandler := query.NewGenerateReportHandler(repo)
	listChangesHandler := query.NewListChangesHandler(repo)

	return newInventoryHandler(
		createHandler, updateHandler, deleteHandler,
		adjustStockHandler, bulkAdjustHandler, changeStatusHandler,
		getBookHandler, listHandler, summaryHandler,
		alertsHandler, forecastHandler, reportHandler, listChangesHandler,
		repo,
	)
}

// NewInventoryHandlerWithDI creates a new inventory handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewInventoryHandlerWithDI(
	createHandler *command.CreateBookHandler,
	updateHandler *command.UpdateBookHandler,
	deleteHandler *command.DeleteBookHandler,
	adjustStockHandler *command.AdjustStockHandler,
	bulkAdjustHandler *command.BulkAdjustHandler,
	changeStatusHandler *command.ChangeStatusHandler,
	getBookHandler *query.GetBookHandler,
	listHandler *query.ListBooksHandler,
	summaryHandler *query.GetSummaryHandler,
	alertsHandler *query.GetAlertsHandler,
	forecastHandler *query.GetForecastHandler,
	reportHandler *query.GenerateReportHandler,
	listChangesHandler *query.ListChangesHandler,
	repo domain.BookRepository,
) *InventoryHandler {
	return newInventoryHandler(
		createHandler, updateHandler, deleteHandler,
		adjustStockHandler, bulkAdjustHandler, changeStatusHandler,
		getBookHandler, listHandler, summaryHandler,
		alertsHandler, forecastHandler, reportHandler, listChangesHandler,
		repo,
	)
}

// newInventoryHandler is the internal constructor used by both manual and Wire DI
func newInventoryHandler(
	createHandler *command.CreateBookHandler,
	updateHandler *command.UpdateBookHandler,
	deleteHandler *command.DeleteBookHandler,
	adjustStockHandler *command.AdjustStockHandler,
	bulkAdjustHandler *command.BulkAdjustHandler,
	changeStatusHandler *command.ChangeStatusHandler,
	getBookHandler *query.GetBookHandler,
	listHandler *query.ListBooksHandler,
	summaryHandler *query.GetSummaryHandler,
	alertsHandler *query.GetAlertsHandler,
	forecastHandler *query.GetForecastHandler,
	reportHandler *query.GenerateReportHandler,
	listChangesHandler *query.ListChangesHandler,
	repo domain.BookRepository,
) *InventoryHandler {
	// Initialize Prometheus metrics
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_service_requests_total",
			Help: "Total number of requests to inventory service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_service_request_duration_seconds",
			Help:    "Duration of inventory service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "inventory_service_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalBooks := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_service_total_books",
			Help: "Total number of books in the catalog",
		},
	)

	lowStockBooks := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_service_low_stock_books",
			Help: "Number of books currently below their minimum threshold",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalBooks)
	prometheus.MustRegister(lowStockBooks)

	return &InventoryHandler{
		createHandler:       createHandler,
		updateHandler:       updateHandler,
		deleteHandler:       deleteHandler,
		adjustStockHandler:  adjustStockHandler,
		bulkAdjustHandler:   bulkAdjustHandler,
		changeStatusHandler: changeStatusHandler,
		getBookHandler:      getBookHandler,
		listHandler:         listHandler,
		summaryHandler:      summaryHandler,
		alertsHandler:       alertsHandler,
		forecastHandler:     forecastHandler,
		reportHandler:       reportHandler,
		listChangesHandler:  listChangesHandler,
		repo:                repo,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		requestSummary:      requestSummary,
		totalBooks:          totalBooks,
		lowStockBooks:       lowStockBooks,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *InventoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	// Read routes (any authenticated dashboard user)
	router.HandleFunc("/api/books", h.metricsMiddleware("/api/books", h.ListBooks)).Methods("GET")
	router.HandleFunc("/api/inventory/summary", h.metricsMiddleware("/api/inventory/summary", h.GetSummary)).Methods("GET")
	router.HandleFunc("/api/inventory/alerts", h.metricsMiddleware("/api/inventory/alerts", h.GetAlerts)).Methods("GET")
	router.HandleFunc("/api/inventory/forecast", h.metricsMiddleware("/api/inventory/forecast", h.GetForecast)).Methods("GET")
	router.HandleFunc("/api/inventory/report", h.metricsMiddleware("/api/inventory/report", h.GenerateReport)).Methods("GET")
	router.HandleFunc("/api/books/{id}", h.metricsMiddleware("/api/books/{id}", h.GetBook)).Methods("GET")
	router.HandleFunc("/api/books/{id}/changes", h.metricsMiddleware("/api/books/{id}/changes", h.ListChanges)).Methods("GET")

	// Admin routes (admin role required)
	router.HandleFunc("/api/books", h.metricsMiddleware("/api/books", AdminMiddleware(h.CreateBook))).Methods("POST")
	router.HandleFunc("/api/books/bulk", h.metricsMiddleware("/api/books/bulk", AdminMiddleware(h.BulkAdjust))).Methods("POST")
	router.HandleFunc("/api/books/{id}", h.metricsMiddleware("/api/books/{id}", AdminMiddleware(h.UpdateBook))).Methods("PUT")
	router.HandleFunc("/api/books/{id}", h.metricsMiddleware("/api/books/{id}", AdminMiddleware(h.DeleteBook))).Methods("DELETE")
	router.HandleFunc("/api/books/{id}/stock", h.metricsMiddleware("/api/books/{id}/stock", AdminMiddleware(h.AdjustStock))).Methods("PATCH")
	router.HandleFunc("/api/books/{id}/status", h.metricsMiddleware("/api/books/{id}/status", AdminMiddleware(h.ChangeStatus))).Methods("PATCH")
}

// CreateBook handles POST /api/books
func (h *InventoryHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title              string          `json:"title"`
		Author             string          `json:"author"`
		Quantity           int             `json:"quantity"`
		MinThreshold       int             `json:"min_threshold"`
		MaxThreshold       int             `json:"max_threshold"`
		UnitPrice          decimal.Decimal `json:"unit_price"`
		AllowPreOrder      bool            `json:"allow_pre_order"`
		EnableWaitlist     bool            `json:"enable_waitlist"`
		AverageSalesPerDay decimal.Decimal `json:"average_sales_per_day"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateBookCommand{
		Title:              req.Title,
		Author:             req.Author,
		Quantity:           req.Quantity,
		MinThreshold:       req.MinThreshold,
		MaxThreshold:       req.MaxThreshold,
		UnitPrice:          req.UnitPrice,
		AllowPreOrder:      req.AllowPreOrder,
		EnableWaitlist:     req.EnableWaitlist,
		AverageSalesPerDay: req.AverageSalesPerDay,
	}

	book, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create book")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateStockMetrics()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Book created successfully",
		Data:    book,
	})
}

// ListBooks handles GET /api/books
func (h *InventoryHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	status := r.URL.Query().Get("status")

	q := query.ListBooksQuery{
		Status: domain.StockStatus(status),
		Limit:  limit,
		Offset: offset,
	}

	books, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list books")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list books",
		})
		return
	}

	count, _ := h.repo.Count()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"books":  books,
			"total":  count,
			"limit":  q.Limit,
			"offset": offset,
		},
	})
}

// GetBook handles GET /api/books/{id}
func (h *InventoryHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	q := query.GetBookQuery{BookID: vars["id"]}
	book, err := h.getBookHandler.Handle(q)
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Book not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    book,
	})
}

// UpdateBook handles PUT /api/books/{id}
func (h *InventoryHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Title              *string          `json:"title"`
		Author             *string          `json:"author"`
		UnitPrice          *decimal.Decimal `json:"unit_price"`
		MinThreshold       *int             `json:"min_threshold"`
		MaxThreshold       *int             `json:"max_threshold"`
		AllowPreOrder      *bool            `json:"allow_pre_order"`
		EnableWaitlist     *bool            `json:"enable_waitlist"`
		AverageSalesPerDay *decimal.Decimal `json:"average_sales_per_day"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateBookCommand{
		BookID:             vars["id"],
		Title:              req.Title,
		Author:             req.Author,
		UnitPrice:          req.UnitPrice,
		MinThreshold:       req.MinThreshold,
		MaxThreshold:       req.MaxThreshold,
		AllowPreOrder:      req.AllowPreOrder,
		EnableWaitlist:     req.EnableWaitlist,
		AverageSalesPerDay: req.AverageSalesPerDay,
	}

	book, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update book")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Book updated successfully",
		Data:    book,
	})
}

// DeleteBook handles DELETE /api/books/{id}
func (h *InventoryHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cmd := command.DeleteBookCommand{BookID: vars["id"]}
	if err := h.deleteHandler.Handle(cmd); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete book")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateStockMetrics()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Book deleted successfully",
	})
}

// AdjustStock handles PATCH /api/books/{id}/stock
func (h *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Quantity int    `json:"quantity"`
		Reason   string `json:"reason"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.AdjustStockCommand{
		BookID:      vars["id"],
		NewQuantity: req.Quantity,
		Reason:      req.Reason,
		Actor:       actorFromRequest(r),
	}

	book, err := h.adjustStockHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to adjust stock")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateStockMetrics()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock adjusted successfully",
		Data:    book,
	})
}

// BulkAdjust handles POST /api/books/bulk
func (h *InventoryHandler) BulkAdjust(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Operations []domain.BatchOp `json:"operations"`
		Reason     string           `json:"reason"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.BulkAdjustCommand{
		Operations: req.Operations,
		Reason:     req.Reason,
		Actor:      actorFromRequest(r),
	}

	result, err := h.bulkAdjustHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to apply bulk adjustment")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateStockMetrics()

	// Partial failure is still a 200: the envelope carries per-item errors
	respondJSON(w, http.StatusOK, Response{
		Success: result.Failed == 0,
		Message: "Bulk adjustment processed",
		Data:    result,
	})
}

// ChangeStatus handles PATCH /api/books/{id}/status
func (h *InventoryHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Status string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.ChangeStatusCommand{
		BookID: vars["id"],
		Status: domain.StockStatus(req.Status),
		Actor:  actorFromRequest(r),
	}

	book, err := h.changeStatusHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to change status")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Status changed successfully",
		Data:    book,
	})
}

// ListChanges handles GET /api/books/{id}/changes
func (h *InventoryHandler) ListChanges(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	q := query.ListChangesQuery{
		BookID: vars["id"],
		Limit:  limit,
	}

	changes, err := h.listChangesHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list stock changes")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list stock changes",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"book_id": q.BookID,
			"changes": changes,
		},
	})
}

// GetSummary handles GET /api/inventory/summary
func (h *InventoryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summaryHandler.Handle(query.GetSummaryQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get inventory summary")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get inventory summary",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    summary,
	})
}

// GetAlerts handles GET /api/inventory/alerts
func (h *InventoryHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alertsHandler.Handle(query.GetAlertsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get stock alerts")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get stock alerts",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"alerts": alerts,
			"count":  len(alerts),
		},
	})
}

// GetForecast handles GET /api/inventory/forecast
func (h *InventoryHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.forecastHandler.Handle(query.GetForecastQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get reorder forecast")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get reorder forecast",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"suggestions": suggestions,
			"count":       len(suggestions),
		},
	})
}

// GenerateReport handles GET /api/inventory/report
func (h *InventoryHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	opts := domain.ReportOptions{
		IncludeOutOfStock:   r.URL.Query().Get("include_out_of_stock") == "true",
		IncludeDiscontinued: r.URL.Query().Get("include_discontinued") == "true",
		SortBy:              domain.SortField(r.URL.Query().Get("sort_by")),
		SortOrder:           domain.SortOrder(r.URL.Query().Get("sort_order")),
	}

	report, err := h.reportHandler.Handle(query.GenerateReportQuery{Options: opts})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to generate report")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    report,
	})
}

func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Inventory service is healthy",
		})
	}).Methods("GET")
}

// updateStockMetrics refreshes the catalog gauges
func (h *InventoryHandler) updateStockMetrics() {
	count, err := h.repo.Count()
	if err == nil {
		h.totalBooks.Set(float64(count))
	}

	low, err := h.repo.FindByStatus(domain.StatusLowStock, 1000, 0)
	if err == nil {
		h.lowStockBooks.Set(float64(len(low)))
	}
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	if errors.Is(err, domain.ErrBookNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
