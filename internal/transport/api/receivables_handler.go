package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/tagihan/internal/billing"
	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/transport/dto"
	"github.com/gin-gonic/gin"
)

type ReceivablesHandler struct {
	receivablesSvs ReceivablesServicer
}

func NewReceivablesHandler(receivablesSvs ReceivablesServicer) *ReceivablesHandler {
	return &ReceivablesHandler{
		receivablesSvs: receivablesSvs,
	}
}

// Index GET RouteGroup + CustomersRoute. Клиенты, разделенные на должников и остальных.
func (h *ReceivablesHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	overview, err := h.receivablesSvs.Overview(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Overview{
		WithReceivables:    dto.FromReceivables(overview.WithReceivables, overview.Outstanding),
		WithoutReceivables: dto.FromReceivables(overview.WithoutReceivables, overview.Outstanding),
		Summary:            dto.FromSummary(overview.Summary),
	})
}

type StatementQuery struct {
	Category domain.CategoryType `binding:"omitempty,category" form:"category"`
}

// Statement GET RouteGroup + StatementRoute. Открытые строки клиента с остатками.
func (h *ReceivablesHandler) Statement(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var query StatementQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	st, err := h.receivablesSvs.Statement(ctx, id, query.Category)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	lines := make([]dto.Line, len(st.Lines))
	for i, lb := range st.Lines {
		lines[i] = dto.FromLine(lb.Line)
	}
	c.JSON(http.StatusOK, dto.Statement{
		Customer:       dto.FromCustomer(st.Customer),
		Category:       st.Category,
		Lines:          lines,
		Total:          int64(st.Total),
		TotalFormatted: billing.FormatRupiah(st.Total),
	})
}

// Lines GET RouteGroup + CustomerLinesRoute. Все строки клиента вместе с платежами.
func (h *ReceivablesHandler) Lines(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	lines, err := h.receivablesSvs.Lines(ctx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromLines(lines))
}
