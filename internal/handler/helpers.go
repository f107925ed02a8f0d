package handler

import (
	"errors"
	"net/http"
	"reflect"

	"supermarketapi/internal/apierror"
	"supermarketapi/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation("Validation failed", fields))
		return false
	}
	return true
}

// bindJSON binds the body without tag validation; semantic validation lives in
// the services, which report field-level reasons through apperr.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	return true
}

// parseID resolves a path id. A value that is not a uuid cannot reference any
// row, so it behaves exactly like an id that does not resolve: 404.
func parseID(c *gin.Context, param, resource string) (uuid.UUID, bool) {
	raw := c.Param(param)
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(apperr.NotFound(resource, raw).Message))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps typed service errors onto the HTTP contract:
// not-found → 404, validation → 422, forbidden → 403, unauthenticated → 401.
// Anything untyped is an internal fault: log it, say nothing specific.
func respondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindNotFound:
			c.JSON(http.StatusNotFound, apierror.New(ae.Message))
		case apperr.KindValidation:
			c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(ae.Message, ae.Fields))
		case apperr.KindForbidden:
			c.JSON(http.StatusForbidden, apierror.New(ae.Message))
		case apperr.KindUnauthenticated:
			c.JSON(http.StatusUnauthorized, apierror.New(ae.Message))
		}
		return
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Internal server error"))
}
