// Package handler содержит HTTP-обработчики API сервиса заказов лапши.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sulemanmukati/MongodbUserAuth/internal/model"
	"github.com/sulemanmukati/MongodbUserAuth/internal/service"
)

const welcomeText = "Welcome to the Dashboard"

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	Register(ctx context.Context, in model.RegisterInput) (*model.User, error)
	Login(ctx context.Context, in model.LoginInput) error
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id string, in model.UpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
	PlaceOrder(ctx context.Context, in model.PlaceOrderInput) (*model.Order, error)
}

// Handler реализует HTTP-обработчики API.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

// response — общий формат всех JSON-ответов.
type response struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", zap.Error(err))
	}
}

func (h *Handler) writeOK(w http.ResponseWriter, code int, message string, data any) {
	h.writeJSON(w, code, response{Message: message, Status: true, Data: data})
}

// writeError переводит ошибку сервиса в HTTP-статус и тело ответа.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		h.logger.Error("unexpected error", zap.Error(err), zap.String("uri", r.RequestURI))
		h.writeJSON(w, http.StatusInternalServerError, response{
			Message: http.StatusText(http.StatusInternalServerError),
			Error:   err.Error(),
		})
		return
	}

	code := statusCode(svcErr.Kind)
	if code == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err), zap.String("uri", r.RequestURI))
	}

	h.writeJSON(w, code, response{Message: svcErr.Message, Error: svcErr.Kind.Error()})
}

func statusCode(kind error) int {
	switch {
	case errors.Is(kind, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(kind, service.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(kind, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decode читает JSON-тело запроса. При ошибке отвечает 400 с сообщением о незаполненных полях.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any, missingMsg string) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, response{
			Message: missingMsg,
			Error:   service.ErrValidation.Error(),
		})
		return false
	}
	return true
}

// Home отвечает приветственным текстом.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(welcomeText))
}

// PlaceOrder оформляет новый заказ.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req model.PlaceOrderInput
	if !h.decode(w, r, &req, service.MsgOrderFieldsRequired) {
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeOK(w, http.StatusCreated, "Order placed successfully!", order)
}

// Signup регистрирует нового пользователя.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterInput
	if !h.decode(w, r, &req, service.MsgFillAllFields) {
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeOK(w, http.StatusOK, "User account created", user)
}

// ListUsers возвращает всех пользователей.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if users == nil {
		users = []model.User{}
	}

	h.writeOK(w, http.StatusOK, "Users fetched successfully", users)
}

// UpdateUser обновляет имя, фамилию и почту пользователя.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateUserInput
	if !h.decode(w, r, &req, service.MsgUserFieldsRequired) {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeOK(w, http.StatusOK, "User updated successfully", user)
}

// DeleteUser удаляет пользователя.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeOK(w, http.StatusOK, "User deleted successfully", nil)
}

// Login проверяет учётные данные пользователя.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginInput
	if !h.decode(w, r, &req, service.MsgLoginFieldsRequired) {
		return
	}

	if err := h.service.Login(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeOK(w, http.StatusOK, "Login successful", nil)
}
