// internal/handler/handler.go
package handler

import (
	"cardhawk/internal/catalog"
	"cardhawk/internal/recommend"
	"cardhawk/internal/rotating"
	"cardhawk/internal/service"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	val "cardhawk/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	advisor       *service.Advisor
	defaultAmount float64
}

func New(advisor *service.Advisor, defaultAmount float64) *Handler {
	if defaultAmount <= 0 {
		defaultAmount = 100
	}
	return &Handler{advisor: advisor, defaultAmount: defaultAmount}
}

// fail maps domain errors to HTTP statuses; anything unexpected is logged as a 500.
func fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownCard):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAnonymous):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotRotating),
		errors.Is(err, service.ErrPointValue),
		errors.Is(err, rotating.ErrInvalidQuarterKey),
		errors.Is(err, recommend.ErrTooFewCards):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error(op+" failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

// bindJSON decodes and validates the body, writing a 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return false
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// parseAmount sanitizes a spend amount: missing uses the default, malformed,
// negative or non-finite becomes 0.
func (h *Handler) parseAmount(raw string) float64 {
	if raw == "" {
		return h.defaultAmount
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func validateStruct(v any) error {
	if err := val.Validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("invalid input: %w", err)
		}
		errs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			errs = append(errs, fieldErrorToString(e))
		}
		return fmt.Errorf("invalid input: %s", strings.Join(errs, "; "))
	}
	return nil
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "quarterkey":
		return fmt.Sprintf("%s must look like Q1-2025", e.Field())
	case "category":
		return fmt.Sprintf("%s must be a category key such as dining", e.Field())
	case "network":
		return fmt.Sprintf("%s must be one of Visa, Mastercard, American Express, Discover", e.Field())
	case "min":
		if e.Param() == "1" {
			return fmt.Sprintf("%s must not be empty", e.Field())
		}
		return fmt.Sprintf("%s needs at least %s entries", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s allows at most %s entries", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must not be negative", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
