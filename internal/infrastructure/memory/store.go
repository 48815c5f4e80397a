// Package memory implementa o store em memória: as cinco coleções do sistema,
// semeadas uma vez no início do processo e descartadas no fim. Não há disco nem rede.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/pkg/idgen"
)

// Store é dono das coleções. É construído uma vez no main e injetado nos
// repositórios; todas as leituras e escritas passam pelo mesmo RWMutex.
type Store struct {
	mu sync.RWMutex

	users         []entity.User
	serviceOrders []entity.ServiceOrder
	products      []entity.Product
	transactions  []entity.Transaction
	courierOrders []entity.CourierOrder

	now   func() time.Time
	newID func() string
}

// Option configura o Store.
type Option func(*Store)

// WithClock substitui time.Now (testes).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator substitui idgen.New (testes).
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// NewStore cria um store vazio.
func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now, newID: idgen.New}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Now relógio do store, usado para CreatedAt/UpdatedAt.
func (s *Store) Now() time.Time { return s.now() }

// GenerateID novo identificador opaco.
func (s *Store) GenerateID() string { return s.newID() }

// Reset esvazia todas as coleções.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = nil
	s.serviceOrders = nil
	s.products = nil
	s.transactions = nil
	s.courierOrders = nil
}

// Counts quantidade de registros por coleção.
type Counts struct {
	Users         int
	ServiceOrders int
	Products      int
	Transactions  int
	CourierOrders int
}

// Counts devolve o tamanho atual de cada coleção.
func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Counts{
		Users:         len(s.users),
		ServiceOrders: len(s.serviceOrders),
		Products:      len(s.products),
		Transactions:  len(s.transactions),
		CourierOrders: len(s.courierOrders),
	}
}

// guard decide se o repositório precisa travar o store.
// Dentro de TxRunner.Run o lock de escrita já está com quem chamou.
type guard struct {
	s    *Store
	held bool
}

func noop() {}

func (g guard) read() func() {
	if g.held {
		return noop
	}
	g.s.mu.RLock()
	return g.s.mu.RUnlock
}

func (g guard) write() func() {
	if g.held {
		return noop
	}
	g.s.mu.Lock()
	return g.s.mu.Unlock
}
