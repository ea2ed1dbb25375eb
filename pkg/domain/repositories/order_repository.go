package repositories

import (
	"github.com/google/uuid"

	"github.com/imptrack/landedcost/pkg/domain/entities"
)

// OrderRepository provides access to purchase order data
type OrderRepository interface {
	GetOrder(id uuid.UUID) (*entities.PurchaseOrder, error)
	GetOrderByNumber(number string) (*entities.PurchaseOrder, error)
	GetAllOrders() ([]*entities.PurchaseOrder, error)
	LoadOrders(orders []*entities.PurchaseOrder) error
	SaveOrder(order *entities.PurchaseOrder) error
}
