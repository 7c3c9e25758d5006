package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Moskzow/StoreControl/internal/apierror"
	"github.com/Moskzow/StoreControl/internal/state"
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
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeStateError maps container rejections to HTTP statuses: missing
// entities to 404, conflicting state to 409, everything else to 400.
func writeStateError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, state.ErrProductNotFound),
		errors.Is(err, state.ErrSupplierNotFound),
		errors.Is(err, state.ErrCustomerNotFound),
		errors.Is(err, state.ErrCustomerTypeNotFound),
		errors.Is(err, state.ErrPurchaseNotFound),
		errors.Is(err, state.ErrSaleNotFound):
		status = http.StatusNotFound
	case errors.Is(err, state.ErrDuplicateCode),
		errors.Is(err, state.ErrCustomerTypeInUse),
		errors.Is(err, state.ErrRegisterAlreadyOpen),
		errors.Is(err, state.ErrRegisterNotOpen),
		errors.Is(err, state.ErrInsufficientStock):
		status = http.StatusConflict
	}
	c.JSON(status, apierror.New(err.Error()))
}
