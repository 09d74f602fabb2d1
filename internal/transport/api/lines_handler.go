package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/tagihan/internal/billing"
	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/service"
	"github.com/fsdevblog/tagihan/internal/transport/api/middlewares"
	"github.com/fsdevblog/tagihan/internal/transport/dto"
	"github.com/gin-gonic/gin"
)

type LinesHandler struct {
	lineSvs LineServicer
}

func NewLinesHandler(lineSvs LineServicer) *LinesHandler {
	return &LinesHandler{
		lineSvs: lineSvs,
	}
}

// LineParams цена и скидка принимаются числом или строкой с разделителями тысяч ("50.000").
type LineParams struct {
	Description string              `binding:"required,not_blank,max=255" json:"description"`
	Category    domain.CategoryType `binding:"required,category"          json:"category"`
	Quantity    int64               `binding:"required,gt=0,max=1000000"  json:"quantity"`
	UnitPrice   any                 `json:"unit_price"`
	Discount    any                 `json:"discount"`
}

type CreateLinesParams struct {
	Lines []LineParams `binding:"required,min=1,max=100,dive" json:"lines"`
}

// Create POST RouteGroup + CustomerLinesRoute. Все строки создаются одной транзакцией.
func (h *LinesHandler) Create(c *gin.Context) {
	customerID, ok := idParam(c)
	if !ok {
		return
	}

	var params CreateLinesParams
	if bindErr := bindJSONNumbers(c, &params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	args := make([]service.CreateLineArgs, len(params.Lines))
	for i, l := range params.Lines {
		args[i] = service.CreateLineArgs{
			Description: l.Description,
			Category:    l.Category,
			Quantity:    l.Quantity,
			UnitPrice:   billing.Parse(l.UnitPrice),
			Discount:    billing.Parse(l.Discount),
		}
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	lines, err := h.lineSvs.Create(ctx, customerID, args)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromLines(lines))
}

// Show GET RouteGroup + LineRoute.
func (h *LinesHandler) Show(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	line, err := h.lineSvs.Get(ctx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromLine(*line))
}

// Pay POST RouteGroup + LinePaymentsRoute. Без paid_on платеж датируется сегодняшним днем.
func (h *LinesHandler) Pay(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var params dto.PaymentRequest
	if bindErr := bindJSONNumbers(c, &params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	paidOn := today()
	if params.PaidOn != "" {
		parsed, err := time.Parse(dto.DateLayout, params.PaidOn)
		if err != nil {
			_ = c.AbortWithError(http.StatusBadRequest, errors.New("paid_on must be YYYY-MM-DD")).
				SetType(gin.ErrorTypePublic)
			return
		}
		paidOn = parsed
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.lineSvs.RecordPayment(ctx, service.RecordPaymentArgs{
		LineID: id,
		Amount: params.Amount,
		PaidOn: paidOn,
		Actor:  middlewares.ActorFromContext(c),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PaymentResult{
		Payment: dto.FromPayment(res.Payment),
		Line:    dto.FromLine(res.Line),
	})
}

// Complete POST RouteGroup + LineCompleteRoute.
func (h *LinesHandler) Complete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	line, err := h.lineSvs.Complete(ctx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromLine(*line))
}

// Cancel POST RouteGroup + LineCancelRoute. Право на отмену проверяет сервис.
func (h *LinesHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	line, err := h.lineSvs.Cancel(ctx, id, middlewares.ActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromLine(*line))
}
