package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConfiguratorService/internal/wizard"
)

// Manager реестр живых сессий конфигуратора.
// Сессии single-owner: реестр выдает *wizard.Session, вся мутация идет
// через его методы. Заброшенные сессии вытесняются по TTL фоновым тикером -
// черновики живут только в памяти
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*wizard.Session

	factory SessionFactory
	ttl     time.Duration
	gauge   Gauge
	time    TimeProvider
	log     Logger

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewManager создает реестр сессий
func NewManager(factory SessionFactory, ttl time.Duration, gauge Gauge, log Logger) *Manager {
	if gauge == nil {
		gauge = noopGauge{}
	}
	return &Manager{
		sessions: make(map[string]*wizard.Session),
		factory:  factory,
		ttl:      ttl,
		gauge:    gauge,
		time:     &RealTimeProvider{},
		log:      log,
		stopCh:   make(chan struct{}),
	}
}

// Create создает новую сессию с uuid-идентификатором
func (m *Manager) Create(token string) (*wizard.Session, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}

	id := uuid.NewString()
	session := m.factory(id, token)

	m.mu.Lock()
	m.sessions[id] = session
	total := len(m.sessions)
	m.mu.Unlock()

	m.gauge.Inc()
	m.log.Info("Sessions: created session id=%s (total=%d)", id, total)

	return session, nil
}

// Get возвращает сессию по идентификатору
func (m *Manager) Get(id string) (*wizard.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete удаляет сессию (например, после успешного submit виджет может
// явно завершить сессию)
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	_, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if ok {
		m.gauge.Dec()
		m.log.Info("Sessions: deleted session id=%s", id)
	}
}

// StartCleanup запускает фоновое TTL-вытеснение с указанным интервалом
func (m *Manager) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.evictExpired()
			case <-m.stopCh:
				return
			}
		}
	}()
}

// Stop останавливает фоновое вытеснение
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
	})
}

// evictExpired удаляет сессии, простаивающие дольше TTL
func (m *Manager) evictExpired() {
	deadline := m.time.Now().Add(-m.ttl)

	m.mu.Lock()
	var expired []string
	for id, session := range m.sessions {
		if session.LastActivity().Before(deadline) {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for range expired {
		m.gauge.Dec()
	}
	if len(expired) > 0 {
		m.log.Info("Sessions: evicted %d expired sessions", len(expired))
	}
}

// Len возвращает число живых сессий
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
