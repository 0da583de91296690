package handlers

import (
	"errors"
	"net/http"

	"jewelry_store/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrEmployeeNotFound),
		errors.Is(err, services.ErrJewelryNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDuplicateNIF),
		errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrDuplicateUsername),
		errors.Is(err, services.ErrJewelryInUse),
		errors.Is(err, services.ErrEmployeeInUse):
		return http.StatusConflict
	case errors.Is(err, services.ErrDuplicateLineItem),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrPaymentExceedsTotal),
		errors.Is(err, services.ErrOrderCanceled),
		errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
