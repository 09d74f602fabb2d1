package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/transport/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// idParam читает положительный числовой параметр маршрута :id. При ошибке запрос прерывается с 400.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid id")).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

// bindJSONNumbers как ShouldBindJSON, но числа в полях типа any приходят json.Number, а не float64.
// Суммы больше 2^53 так доходят до billing.Parse без потери точности.
func bindJSONNumbers(c *gin.Context, obj any) error {
	if c.Request == nil || c.Request.Body == nil {
		return errors.New("invalid request")
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(obj); err != nil {
		return err //nolint:wrapcheck
	}
	return binding.Validator.ValidateStruct(obj) //nolint:wrapcheck
}

// abortWithBindError ошибки валидации отдаются с 422, прочие ошибки разбора тела с 400.
func abortWithBindError(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
}

// abortWithServiceError переводит ошибки сервисов в HTTP ответ. Отказы по остатку долга несут
// сам остаток в теле ответа.
func abortWithServiceError(c *gin.Context, err error) {
	var exceeds *domain.ExceedsOutstandingError
	var insufficient *domain.InsufficientPaymentError

	switch {
	case errors.As(err, &exceeds):
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusConflict, dto.NewRejection(domain.ErrExceedsOutstanding, exceeds.Outstanding))
	case errors.As(err, &insufficient):
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(
			http.StatusConflict,
			dto.NewRejection(domain.ErrInsufficientPayment, insufficient.Outstanding),
		)
	case errors.Is(err, domain.ErrNonPositiveAmount):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, domain.ErrNonPositiveAmount).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrAmountOutOfRange):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, domain.ErrAmountOutOfRange).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrLineClosed):
		_ = c.AbortWithError(http.StatusConflict, domain.ErrLineClosed).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInvalidTransition):
		_ = c.AbortWithError(http.StatusConflict, domain.ErrInvalidTransition).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrDuplicateKey):
		_ = c.AbortWithError(http.StatusConflict, errors.New("already exists")).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, errors.New("not found")).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrForbidden):
		_ = c.AbortWithError(http.StatusForbidden, domain.ErrForbidden).SetType(gin.ErrorTypePublic)
	case errors.Is(err, context.DeadlineExceeded):
		_ = c.AbortWithError(http.StatusGatewayTimeout, err).SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

// today начало текущих суток по UTC.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
