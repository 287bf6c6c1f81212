package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

func ParseFilterFromQuery(values url.Values) types.Filter {
	filterReq := types.Filter{
		Sort:   make(map[string]string),
		Filter: make(map[string]interface{}),
		Limit:  DefaultLimit,
		Page:   1,
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				filterReq.Limit = MaxLimit
			} else {
				filterReq.Limit = l
			}
		}
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			filterReq.Page = p
		}
	}

	if offsetStr := values.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filterReq.Offset = o
		}
	} else {
		filterReq.Offset = (filterReq.Page - 1) * filterReq.Limit
	}

	if values.Get("withPagination") == "false" {
		filterReq.WithPagination = false
	} else {
		filterReq.WithPagination = true
	}

	// Диапазон дат для календарного представления.
	if fromStr := values.Get("scheduled_from"); fromStr != "" {
		if t, err := time.Parse("2006-01-02", fromStr); err == nil {
			filterReq.ScheduledFrom = &t
		}
	}
	if toStr := values.Get("scheduled_to"); toStr != "" {
		if t, err := time.Parse("2006-01-02", toStr); err == nil {
			filterReq.ScheduledTo = &t
		}
	}

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}

		if key == "search" {
			filterReq.Search = vals[0]
			continue
		}

		if strings.HasPrefix(key, "sort[") && strings.HasSuffix(key, "]") {
			field := key[5 : len(key)-1]
			direction := strings.ToLower(vals[0])
			if direction == "asc" || direction == "desc" {
				filterReq.Sort[field] = direction
			}
			continue
		}

		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			field := key[7 : len(key)-1]

			if existing, ok := filterReq.Filter[field]; ok {
				filterReq.Filter[field] = fmt.Sprintf("%v,%s", existing, vals[0])
			} else {
				filterReq.Filter[field] = vals[0]
			}
		}
	}

	return filterReq
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HTTPResponse{Status: true, Message: message}
	if len(total) > 0 {
		filter := ParseFilterFromQuery(ctx.Request().URL.Query())
		if filter.WithPagination {
			totalPages := 0
			if filter.Limit > 0 {
				totalPages = int((total[0] + uint64(filter.Limit) - 1) / uint64(filter.Limit))
			}
			pagination := types.Pagination{
				TotalCount: total[0],
				Page:       filter.Page,
				Limit:      filter.Limit,
				TotalPages: totalPages,
			}
			response.Body = map[string]interface{}{"list": body, "pagination": pagination}
			return ctx.JSON(code, response)
		}
	}
	response.Body = body
	return ctx.JSON(code, response)
}

// errorStatusCodes — соответствие доменных ошибок HTTP-кодам.
var errorStatusCodes = map[error]int{
	apperrors.ErrNotFound:              http.StatusNotFound,
	apperrors.ErrInvalidTransition:     http.StatusConflict,
	apperrors.ErrDuplicateEmail:        http.StatusConflict,
	apperrors.ErrDuplicateSerialNumber: http.StatusConflict,
	apperrors.ErrDuplicateTeamMember:   http.StatusConflict,
	apperrors.ErrInvalidCredentials:    http.StatusUnauthorized,
	apperrors.ErrUnauthorized:          http.StatusUnauthorized,
	apperrors.ErrEmptyAuthHeader:       http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:     http.StatusUnauthorized,
	apperrors.ErrInvalidToken:          http.StatusUnauthorized,
	apperrors.ErrTokenExpired:          http.StatusUnauthorized,
	apperrors.ErrTokenIsNotRefresh:     http.StatusUnauthorized,
	apperrors.ErrTokenIsNotAccess:      http.StatusUnauthorized,
	apperrors.ErrForbidden:             http.StatusForbidden,
	apperrors.ErrTooManyAttempts:       http.StatusTooManyRequests,
	apperrors.ErrBadRequest:            http.StatusBadRequest,
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}

		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}

		return c.JSON(httpErr.Code, response)
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": invalidInput.Message,
		})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Поле '%s' не прошло проверку '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "Ошибка валидации: " + strings.Join(msgs, "; "),
		})
	}

	for sentinel, statusCode := range errorStatusCodes {
		if errors.Is(err, sentinel) {
			return c.JSON(statusCode, map[string]interface{}{
				"status":  false,
				"message": sentinel.Error(),
			})
		}
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "Внутренняя ошибка сервера",
	})
}
