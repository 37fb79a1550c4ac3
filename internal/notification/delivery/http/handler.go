package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookhaven/bookstore-admin/internal/notification/domain"
	"github.com/bookhaven/bookstore-admin/internal/notification/usecase/query"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

// NotificationHandler exposes delivered and pending alerts to the dashboard
type NotificationHandler struct {
	listHandler *query.ListNotificationsHandler
	repo        domain.NotificationRepository
}

// NewNotificationHandler creates a new notification handler (manual DI)
func NewNotificationHandler(repo domain.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{
		listHandler: query.NewListNotificationsHandler(repo),
		repo:        repo,
	}
}

// NewNotificationHandlerWithDI creates a new notification handler using dependency injection
func NewNotificationHandlerWithDI(
	listHandler *query.ListNotificationsHandler,
	repo domain.NotificationRepository,
) *NotificationHandler {
	return &NotificationHandler{
		listHandler: listHandler,
		repo:        repo,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *NotificationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/notifications", h.ListNotifications).Methods("GET")
	router.HandleFunc("/api/notifications/{id}", h.GetNotification).Methods("GET")
}

// ListNotifications handles GET /api/notifications
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	status := r.URL.Query().Get("status")

	q := query.ListNotificationsQuery{
		Status: status,
		Limit:  limit,
		Offset: offset,
	}

	notifications, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list notifications")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list notifications",
		})
		return
	}

	count, _ := h.repo.Count()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"notifications": notifications,
			"total":         count,
			"limit":         q.Limit,
			"offset":        offset,
		},
	})
}

// GetNotification handles GET /api/notifications/{id}
func (h *NotificationHandler) GetNotification(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid notification ID",
		})
		return
	}

	notification, err := h.repo.FindByID(uint(id))
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Notification not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    notification,
	})
}

func (h *NotificationHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
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
			Message: "Notification service is healthy",
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
