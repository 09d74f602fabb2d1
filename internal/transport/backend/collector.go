// Package backend собирает данные о дебиторке с сервера tagihan для локальных расчетов.
package backend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/transport/backend/client"
	"github.com/fsdevblog/tagihan/internal/transport/dto"
	"github.com/sirupsen/logrus"
)

const (
	defaultAPITimeout      = 10 * time.Second
	defaultWorkers    uint = 4
	defaultRetries    uint = 3
)

// Collection результат сбора. Клиенты, чьи строки получить не удалось, попадают в Failed
// и отсутствуют в Customers.
type Collection struct {
	Customers []domain.Customer
	Failed    map[int64]error
}

// Collector выгружает строки всех клиентов параллельно.
type Collector struct {
	client  Client
	l       *logrus.Entry
	workers uint
	retries uint
	// sleep подменяется в тестах.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewCollector(c Client, l *logrus.Logger) *Collector {
	return &Collector{
		client: c,
		l: l.WithFields(logrus.Fields{
			"component": "backend",
			"module":    "collector",
		}),
		workers: defaultWorkers,
		retries: defaultRetries,
		sleep:   sleepCtx,
	}
}

// SetWorkers устанавливает кол-во параллельных запросов. 0 заменяется на 1.
func (c *Collector) SetWorkers(workers uint) *Collector {
	c.workers = max(workers, 1)
	return c
}

// SetRetries устанавливает кол-во повторов запроса после ответа 429.
func (c *Collector) SetRetries(retries uint) *Collector {
	c.retries = retries
	return c
}

// Collect получает список клиентов, затем строки каждого клиента через пул воркеров.
// Ошибка возвращается, только если не удалось получить сам список клиентов или отменен ctx.
func (c *Collector) Collect(ctx context.Context) (*Collection, error) {
	customers, err := c.produce(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}

	results := c.runWorkers(ctx, customers)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("collect: %w", ctxErr)
	}

	collection := Collection{
		Customers: make([]domain.Customer, 0, len(results)),
		Failed:    make(map[int64]error),
	}
	for _, r := range results {
		if r.Error != nil {
			collection.Failed[r.Customer.ID] = r.Error
			continue
		}
		collection.Customers = append(collection.Customers, r.Customer)
	}
	// воркеры завершаются в произвольном порядке.
	sort.Slice(collection.Customers, func(i, j int) bool {
		return collection.Customers[i].ID < collection.Customers[j].ID
	})
	return &collection, nil
}

func (c *Collector) produce(ctx context.Context) ([]domain.Customer, error) {
	reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
	defer cancel()

	overview, err := c.client.ListCustomers(reqCtx)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}

	customers := make([]domain.Customer, 0, len(overview.WithReceivables)+len(overview.WithoutReceivables))
	for _, group := range [][]dto.CustomerReceivable{overview.WithReceivables, overview.WithoutReceivables} {
		for _, cr := range group {
			customers = append(customers, cr.Customer.ToDomain())
		}
	}
	return customers, nil
}

type workerResult struct {
	WorkerID uint
	Attempts uint
	Customer domain.Customer
	Error    error
}

// runWorkers fan-out/fan-in: клиенты раздаются воркерам через канал, результаты собираются в срез.
func (c *Collector) runWorkers(ctx context.Context, customers []domain.Customer) []workerResult {
	var taskCh = make(chan domain.Customer, len(customers))
	for _, customer := range customers {
		taskCh <- customer
	}
	close(taskCh)

	var resultCh = make(chan workerResult, len(customers))

	wg := new(sync.WaitGroup)
	for i := range c.workers {
		wg.Add(1)
		go c.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	var results = make([]workerResult, 0, len(customers))
	for result := range resultCh {
		l := c.l.WithFields(logrus.Fields{
			"worker":     result.WorkerID,
			"customerID": result.Customer.ID,
			"attempts":   result.Attempts,
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("fetch customer lines")
		} else {
			l.WithField("lines", len(result.Customer.Lines)).Debug("fetched")
		}
		results = append(results, result)
	}
	return results
}

func (c *Collector) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan domain.Customer,
	resultCh chan<- workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- c.fetchLines(ctx, workerID, task)
		}
	}
}

// fetchLines запрашивает строки клиента. На ответ 429 ждет указанное сервером время с разбросом
// и повторяет, не более c.retries раз.
func (c *Collector) fetchLines(ctx context.Context, workerID uint, customer domain.Customer) workerResult {
	result := workerResult{WorkerID: workerID, Customer: customer}

	for {
		result.Attempts++

		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		lines, err := c.client.ListLines(reqCtx, customer.ID)
		cancel()

		if err == nil {
			result.Customer.Lines = make([]domain.BillableLine, len(lines))
			for i, l := range lines {
				result.Customer.Lines[i] = l.ToDomain()
			}
			return result
		}

		var tooManyReq *client.TooManyRequestError
		if !errors.As(err, &tooManyReq) || result.Attempts > c.retries {
			result.Error = err
			return result
		}

		wait := time.Duration(jitter(float64(tooManyReq.RetryAfter), 0, 0.2))
		if sleepErr := c.sleep(ctx, wait); sleepErr != nil {
			result.Error = sleepErr
			return result
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	case <-time.After(d):
		return nil
	}
}
