package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/tagihan/internal/service"
	"github.com/fsdevblog/tagihan/internal/transport/dto"
	"github.com/gin-gonic/gin"
)

type CustomersHandler struct {
	customerSvs CustomerServicer
}

func NewCustomersHandler(customerSvs CustomerServicer) *CustomersHandler {
	return &CustomersHandler{
		customerSvs: customerSvs,
	}
}

type CustomerParams struct {
	Name    string `binding:"required,not_blank,max=255" json:"name"`
	Phone   string `binding:"max=32"                     json:"phone"`
	Address string `binding:"max=500"                    json:"address"`
}

func (p CustomerParams) toArgs() service.CustomerArgs {
	return service.CustomerArgs{Name: p.Name, Phone: p.Phone, Address: p.Address}
}

// Create POST RouteGroup + CustomersRoute. Имя клиента должно быть уникальным без учета регистра.
func (h *CustomersHandler) Create(c *gin.Context) {
	var params CustomerParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.customerSvs.Create(ctx, params.toArgs())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromCustomer(*customer))
}

// Update PUT RouteGroup + CustomerRoute.
func (h *CustomersHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var params CustomerParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.customerSvs.Update(ctx, id, params.toArgs())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCustomer(*customer))
}
