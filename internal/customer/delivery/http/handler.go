package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bookhaven/bookstore-admin/internal/customer/domain"
	"github.com/bookhaven/bookstore-admin/internal/customer/usecase/command"
	"github.com/bookhaven/bookstore-admin/internal/customer/usecase/query"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

// CustomerHandler handles HTTP requests for customers using CQRS pattern
type CustomerHandler struct {
	// Command handlers
	registerHandler     *command.RegisterCustomerHandler
	updateHandler       *command.UpdateCustomerHandler
	deleteHandler       *command.DeleteCustomerHandler
	toggleActiveHandler *command.ToggleActiveHandler

	// Query handlers
	getCustomerHandler *query.GetCustomerHandler
	listHandler        *query.ListCustomersHandler
	statsHandler       *query.GetStatsHandler

	repo           domain.CustomerRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalCustomers prometheus.Gauge
}

// NewCustomerHandler creates a new customer handler with CQRS pattern (manual DI for backwards compatibility)
func NewCustomerHandler(repo domain.CustomerRepository) *CustomerHandler {
	registerHandler := command.NewRegisterCustomerHandler(repo)
	updateHandler := command.NewUpdateCustomerHandler(repo)
	deleteHandler := command.NewDeleteCustomerHandler(repo)
	toggleActiveHandler := command.NewToggleActiveHandler(repo)

	getCustomerHandler := query.NewGetCustomerHandler(repo)
	listHandler := query.NewListCustomersHandler(repo)
	statsHandler := query.NewGetStatsHandler(repo)

	return newCustomerHandler(
		registerHandler, updateHandler, deleteHandler, toggleActiveHandler,
		getCustomerHandler, listHandler, statsHandler,
		repo,
	)
}

// NewCustomerHandlerWithDI creates a new customer handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewCustomerHandlerWithDI(
	registerHandler *command.RegisterCustomerHandler,
	updateHandler *command.UpdateCustomerHandler,
	deleteHandler *command.DeleteCustomerHandler,
	toggleActiveHandler *command.ToggleActiveHandler,
	getCustomerHandler *query.GetCustomerHandler,
	listHandler *query.ListCustomersHandler,
	statsHandler *query.GetStatsHandler,
	repo domain.CustomerRepository,
) *CustomerHandler {
	return newCustomerHandler(
		registerHandler, updateHandler, deleteHandler, toggleActiveHandler,
		getCustomerHandler, listHandler, statsHandler,
		repo,
	)
}

// newCustomerHandler is the internal constructor used by both manual and Wire DI
func newCustomerHandler(
	registerHandler *command.RegisterCustomerHandler,
	updateHandler *command.UpdateCustomerHandler,
	deleteHandler *command.DeleteCustomerHandler,
	toggleActiveHandler *command.ToggleActiveHandler,
	getCustomerHandler *query.GetCustomerHandler,
	listHandler *query.ListCustomersHandler,
	statsHandler *query.GetStatsHandler,
	repo domain.CustomerRepository,
) *CustomerHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "customer_service_requests_total",
			Help: "Total number of requests to customer service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "customer_service_request_duration_seconds",
			Help:    "Duration of customer service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalCustomers := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "customer_service_total_customers",
			Help: "Total number of customers in the system",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalCustomers)

	return &CustomerHandler{
		registerHandler:     registerHandler,
		updateHandler:       updateHandler,
		deleteHandler:       deleteHandler,
		toggleActiveHandler: toggleActiveHandler,
		getCustomerHandler:  getCustomerHandler,
		listHandler:         listHandler,
		statsHandler:        statsHandler,
		repo:                repo,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		totalCustomers:      totalCustomers,
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
func (h *CustomerHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CustomerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/customers", h.metricsMiddleware("/api/customers", h.ListCustomers)).Methods("GET")
	router.HandleFunc("/api/customers/stats", h.metricsMiddleware("/api/customers/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/customers/{id}", h.metricsMiddleware("/api/customers/{id}", h.GetCustomer)).Methods("GET")

	// Admin routes (admin role required)
	router.HandleFunc("/api/customers", h.metricsMiddleware("/api/customers", AdminMiddleware(h.RegisterCustomer))).Methods("POST")
	router.HandleFunc("/api/customers/{id}", h.metricsMiddleware("/api/customers/{id}", AdminMiddleware(h.UpdateCustomer))).Methods("PUT")
	router.HandleFunc("/api/customers/{id}", h.metricsMiddleware("/api/customers/{id}", AdminMiddleware(h.DeleteCustomer))).Methods("DELETE")
	router.HandleFunc("/api/customers/{id}/active", h.metricsMiddleware("/api/customers/{id}/active", AdminMiddleware(h.ToggleActive))).Methods("PATCH")
}

// RegisterCustomer handles POST /api/customers
func (h *CustomerHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		FullName    string `json:"full_name"`
		MessagingID string `json:"messaging_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.RegisterCustomerCommand{
		Email:       req.Email,
		FullName:    req.FullName,
		MessagingID: req.MessagingID,
	}

	customer, err := h.registerHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to register customer")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateCustomersMetric()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Customer registered successfully",
		Data:    customer,
	})
}

// ListCustomers handles GET /api/customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	tier := r.URL.Query().Get("tier")

	q := query.ListCustomersQuery{
		Tier:   tier,
		Limit:  limit,
		Offset: offset,
	}

	customers, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list customers")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list customers",
		})
		return
	}

	count, _ := h.repo.Count()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"customers": customers,
			"total":     count,
			"limit":     q.Limit,
			"offset":    offset,
		},
	})
}

// GetCustomer handles GET /api/customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid customer ID",
		})
		return
	}

	q := query.GetCustomerQuery{ID: uint(id)}
	customer, err := h.getCustomerHandler.Handle(q)
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Customer not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    customer,
	})
}

// UpdateCustomer handles PUT /api/customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid customer ID",
		})
		return
	}

	var req struct {
		Email       string `json:"email"`
		FullName    string `json:"full_name"`
		MessagingID string `json:"messaging_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateCustomerCommand{
		ID:          uint(id),
		Email:       req.Email,
		FullName:    req.FullName,
		MessagingID: req.MessagingID,
	}

	customer, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update customer")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Customer updated successfully",
		Data:    customer,
	})
}

// DeleteCustomer handles DELETE /api/customers/{id}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid customer ID",
		})
		return
	}

	cmd := command.DeleteCustomerCommand{ID: uint(id)}
	if err := h.deleteHandler.Handle(cmd); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete customer")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateCustomersMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Customer deleted successfully",
	})
}

// ToggleActive handles PATCH /api/customers/{id}/active
func (h *CustomerHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid customer ID",
		})
		return
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.ToggleActiveCommand{
		CustomerID: uint(id),
		IsActive:   req.IsActive,
	}

	customer, err := h.toggleActiveHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to toggle customer active status")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Customer status updated successfully",
		Data:    customer,
	})
}

// GetStats handles GET /api/customers/stats
func (h *CustomerHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(query.GetStatsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get customer stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get statistics",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

func (h *CustomerHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
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
			Message: "Customer service is healthy",
		})
	}).Methods("GET")
}

// updateCustomersMetric updates the total customers gauge
func (h *CustomerHandler) updateCustomersMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.totalCustomers.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
