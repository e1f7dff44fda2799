// Package session guarda o estado de cada navegador conectado ao painel
package session

import (
	"sync"
	"time"

	"github.com/vfg2006/sales-visualiser/internal/usecases/charting"
	"github.com/vfg2006/sales-visualiser/pkg/utils"
)

// Session tem o próprio controlador, então cada navegador tem a sua seleção
type Session struct {
	ID         string
	Controller *charting.Controller
	Dispatcher *charting.Dispatcher

	lastSeen time.Time
}

// Registry mantém as sessões em memória. Sessões paradas por mais de ttl são
// removidas quando uma nova sessão é criada
type Registry struct {
	charter     charting.Charter
	ttl         time.Duration
	maxSessions int

	mu       sync.Mutex
	sessions map[string]*Session

	now   func() time.Time
	newID func() (string, error)
}

func NewRegistry(charter charting.Charter, ttl time.Duration, maxSessions int) *Registry {
	return &Registry{
		charter:     charter,
		ttl:         ttl,
		maxSessions: maxSessions,
		sessions:    make(map[string]*Session),
		now:         time.Now,
		newID:       utils.GenerateID,
	}
}

// Get retorna a sessão, se existir e não tiver expirado
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}

	now := r.now()
	if r.expired(s, now) {
		delete(r.sessions, id)
		return nil, false
	}

	s.lastSeen = now
	return s, true
}

// Create abre uma nova sessão com a seleção padrão
func (r *Registry) Create() (*Session, error) {
	id, err := r.newID()
	if err != nil {
		return nil, err
	}

	controller := charting.NewController(r.charter)
	dispatcher := charting.NewDispatcher()
	controller.Bind(dispatcher)

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evict(now)

	s := &Session{
		ID:         id,
		Controller: controller,
		Dispatcher: dispatcher,
		lastSeen:   now,
	}
	r.sessions[id] = s

	return s, nil
}

// GetOrCreate retorna a sessão existente ou cria uma nova. O segundo retorno
// indica se a sessão foi criada
func (r *Registry) GetOrCreate(id string) (*Session, bool, error) {
	if id != "" {
		if s, ok := r.Get(id); ok {
			return s, false, nil
		}
	}

	s, err := r.Create()
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

// Len retorna o número de sessões guardadas
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) expired(s *Session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(s.lastSeen) > r.ttl
}

// evict remove as sessões expiradas e, se o limite tiver sido atingido, a
// sessão usada há mais tempo. Deve ser chamado com mu travado
func (r *Registry) evict(now time.Time) {
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
		}
	}

	if r.maxSessions <= 0 || len(r.sessions) < r.maxSessions {
		return
	}

	var oldest *Session
	for _, s := range r.sessions {
		if oldest == nil || s.lastSeen.Before(oldest.lastSeen) {
			oldest = s
		}
	}
	if oldest != nil {
		delete(r.sessions, oldest.ID)
	}
}
