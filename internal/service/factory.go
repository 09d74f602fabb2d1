package service

import (
	"fmt"

	"github.com/fsdevblog/tagihan/internal/service/psswd"
	"github.com/fsdevblog/tagihan/pkg/uow"
	"github.com/prometheus/client_golang/prometheus"
)

type AppServices struct {
	UserService        *UserService
	CustomerService    *CustomerService
	LineService        *LineService
	ReceivablesService *ReceivablesService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte, reg prometheus.Registerer) (*AppServices, error) {
	metrics, metricsErr := NewMetrics(reg)
	if metricsErr != nil {
		return nil, fmt.Errorf("service factory: %s", metricsErr.Error())
	}

	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.PasswordHash{})
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	customerService, customerServiceErr := NewCustomerService(unitOfWork)
	if customerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", customerServiceErr.Error())
	}

	lineService, lineServiceErr := NewLineService(unitOfWork, metrics)
	if lineServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", lineServiceErr.Error())
	}

	receivablesService, receivablesServiceErr := NewReceivablesService(unitOfWork)
	if receivablesServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", receivablesServiceErr.Error())
	}

	return &AppServices{
		UserService:        userService,
		CustomerService:    customerService,
		LineService:        lineService,
		ReceivablesService: receivablesService,
	}, nil
}
