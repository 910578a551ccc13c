package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

// Cache мемоизирующий кэш каталога на время жизни одной сессии конфигуратора.
// Каждый ключ (список услуг; допуслуги конкретной услуги) загружается не более
// одного раза: повторный вызов возвращает закэшированное значение без сетевого
// запроса. Неудачные загрузки НЕ кэшируются.
//
// После заполнения кэш фактически read-only и безопасен для конкурентного чтения.
type Cache struct {
	client CatalogClient
	token  string
	log    Logger

	mu             sync.Mutex
	services       []domain.Service
	servicesLoaded bool
	extras         map[int64][]domain.Extra
}

// NewCache создает кэш каталога для сессии с её widget-токеном
func NewCache(client CatalogClient, token string, log Logger) *Cache {
	return &Cache{
		client: client,
		token:  token,
		log:    log,
		extras: make(map[int64][]domain.Extra),
	}
}

// LoadServices возвращает список активных услуг, отсортированный по SortOrder.
// Первый успешный вызов выполняет сетевой запрос, последующие отдают кэш
func (c *Cache) LoadServices(ctx context.Context) ([]domain.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.servicesLoaded {
		return c.services, nil
	}

	fetched, err := c.client.FetchServices(ctx, c.token)
	if err != nil {
		c.log.Error("Catalog: failed to fetch services: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	services := make([]domain.Service, 0, len(fetched))
	for _, s := range fetched {
		if !s.Active {
			continue
		}
		services = append(services, domain.Service{
			ID:                  s.ID,
			Name:                s.Name,
			Description:         s.Description,
			BasePrice:           s.BasePrice,
			PricePerSquareMeter: s.PricePerSquareMeter,
			BaseDurationMinutes: s.BaseDurationMinutes,
			SortOrder:           s.SortOrder,
			Active:              s.Active,
		})
	}
	sort.Slice(services, func(i, j int) bool {
		return services[i].SortOrder < services[j].SortOrder
	})

	c.services = services
	c.servicesLoaded = true
	c.log.Info("Catalog: loaded %d active services", len(services))

	return c.services, nil
}

// LoadExtras возвращает активные допуслуги для указанной услуги.
// Мемоизируется по serviceID
func (c *Cache) LoadExtras(ctx context.Context, serviceID int64) ([]domain.Extra, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.extras[serviceID]; ok {
		return cached, nil
	}

	fetched, err := c.client.FetchExtras(ctx, c.token, serviceID)
	if err != nil {
		c.log.Error("Catalog: failed to fetch extras for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	extras := make([]domain.Extra, 0, len(fetched))
	for _, e := range fetched {
		if !e.Active {
			continue
		}
		extras = append(extras, domain.Extra{
			ID:              e.ID,
			Name:            e.Name,
			Description:     e.Description,
			Price:           e.Price,
			DurationMinutes: e.DurationMinutes,
			Active:          e.Active,
		})
	}

	c.extras[serviceID] = extras
	c.log.Info("Catalog: loaded %d active extras for service id=%d", len(extras), serviceID)

	return extras, nil
}

// ServiceByID ищет услугу в уже загруженном каталоге
func (c *Cache) ServiceByID(id int64) (*domain.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.services {
		if c.services[i].ID == id {
			svc := c.services[i]
			return &svc, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
}

// ExtraByID ищет допуслугу среди загруженных допуслуг указанной услуги
func (c *Cache) ExtraByID(serviceID, extraID int64) (*domain.Extra, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.extras[serviceID] {
		if e.ID == extraID {
			extra := e
			return &extra, nil
		}
	}
	return nil, fmt.Errorf("%w: service=%d, extra=%d", ErrExtraNotFound, serviceID, extraID)
}

// Services возвращает уже загруженный список услуг без сетевого запроса.
// Пустой результат до первого успешного LoadServices
func (c *Cache) Services() []domain.Service {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.services
}

// ExtrasFor возвращает закэшированные допуслуги услуги без сетевого запроса.
// Пустой результат до первого LoadExtras
func (c *Cache) ExtrasFor(serviceID int64) []domain.Extra {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.extras[serviceID]
}
