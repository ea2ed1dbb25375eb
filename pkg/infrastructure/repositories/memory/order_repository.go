package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/imptrack/landedcost/pkg/domain/entities"
	"github.com/imptrack/landedcost/pkg/domain/repositories"
)

// OrderRepository provides in-memory purchase order storage
type OrderRepository struct {
	mu       sync.RWMutex
	orders   map[uuid.UUID]*entities.PurchaseOrder
	byNumber map[string]uuid.UUID
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders:   make(map[uuid.UUID]*entities.PurchaseOrder),
		byNumber: make(map[string]uuid.UUID),
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// LoadOrders loads purchase orders into the repository
func (r *OrderRepository) LoadOrders(orders []*entities.PurchaseOrder) error {
	for _, order := range orders {
		if err := r.SaveOrder(order); err != nil {
			return err
		}
	}
	return nil
}

// SaveOrder saves a purchase order to the repository
func (r *OrderRepository) SaveOrder(order *entities.PurchaseOrder) error {
	if order == nil {
		return fmt.Errorf("order cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byNumber[order.Number]; ok && existing != order.ID {
		return fmt.Errorf("order number already exists: %s", order.Number)
	}

	r.orders[order.ID] = order
	r.byNumber[order.Number] = order.ID
	return nil
}

// GetOrder returns the purchase order with the given ID
func (r *OrderRepository) GetOrder(id uuid.UUID) (*entities.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order not found: %s", id)
	}
	return order, nil
}

// GetOrderByNumber returns the purchase order with the given document number
func (r *OrderRepository) GetOrderByNumber(number string) (*entities.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("order not found: %s", number)
	}
	return r.orders[id], nil
}

// GetAllOrders returns all purchase orders sorted by document number
func (r *OrderRepository) GetAllOrders() ([]*entities.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*entities.PurchaseOrder, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Number < orders[j].Number
	})
	return orders, nil
}
