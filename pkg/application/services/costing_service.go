package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/imptrack/landedcost/pkg/application/dto"
	"github.com/imptrack/landedcost/pkg/costing"
	"github.com/imptrack/landedcost/pkg/domain/entities"
	"github.com/imptrack/landedcost/pkg/domain/repositories"
	"github.com/imptrack/landedcost/pkg/infrastructure/events"
)

// CostingService composes the costing engine over the order and override
// repositories: per-order cost reports, shared-expense allocation, and the
// cross-order dashboard roll-up.
type CostingService struct {
	orders   repositories.OrderRepository
	resolver *costing.BasisResolver
	log      logrus.FieldLogger
	events   events.EventStore
}

// NewCostingService creates a costing service. overrides may be nil when no
// persisted basis configuration exists; useConfigured gates whether it is
// consulted at all. log may be nil.
func NewCostingService(
	orders repositories.OrderRepository,
	overrides repositories.BasisOverrideRepository,
	useConfigured bool,
	log logrus.FieldLogger,
) *CostingService {
	if log == nil {
		logger := logrus.New()
		logger.SetLevel(logrus.PanicLevel)
		log = logger
	}
	var lookup costing.OverrideLookup
	if overrides != nil {
		lookup = overrides
	}
	return &CostingService{
		orders:   orders,
		resolver: costing.NewBasisResolver(useConfigured, lookup, log),
		log:      log,
	}
}

// SetEventStore enables the costing audit trail. Allocations and reports are
// recorded as events keyed by order number.
func (s *CostingService) SetEventStore(store events.EventStore) {
	s.events = store
}

// record appends an event to the audit trail when one is configured. Failures
// are logged and never surface to callers.
func (s *CostingService) record(streamID string, event events.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendEvent(streamID, event); err != nil {
		s.log.WithError(err).Warn("failed to record costing event")
	}
}

// OrderCostReport builds the full cost report for one order.
func (s *CostingService) OrderCostReport(ctx context.Context, id uuid.UUID) (*dto.OrderCostReport, error) {
	order, err := s.orders.GetOrder(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %s: %w", id, err)
	}
	return s.buildReport(order), nil
}

// OrderCostReportByNumber builds the full cost report for one order looked
// up by its document number.
func (s *CostingService) OrderCostReportByNumber(ctx context.Context, number string) (*dto.OrderCostReport, error) {
	order, err := s.orders.GetOrderByNumber(number)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %s: %w", number, err)
	}
	return s.buildReport(order), nil
}

func (s *CostingService) buildReport(order *entities.PurchaseOrder) *dto.OrderCostReport {
	report := &dto.OrderCostReport{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Supplier:    order.Supplier,
		Currency:    order.Currency,
		Totals: costing.AggregateOrder(
			order.FOBTotal, order.OrderedQty,
			order.Payments, order.Expenses, order.Receipts,
		),
		Summary:   costing.SummarizeOrder(order.Items, order.Payments, order.Expenses),
		ItemCosts: costing.DistributeOrderCosts(order.Items, order.Expenses, order.Payments),
	}
	s.record(order.Number, events.NewReportBuilt(order.Number, report.Totals.TotalInvestment))
	return report
}

// AllocateExpenseToItems distributes one expense across an order's line
// items using the basis resolved from the expense label.
func (s *CostingService) AllocateExpenseToItems(
	ctx context.Context,
	orderID uuid.UUID,
	expense entities.LogisticsExpense,
) (*dto.ExpenseAllocation, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %s: %w", orderID, err)
	}

	basis := s.resolver.Resolve(expense.Type)
	rate := declaredValueRate(order)

	s.log.WithFields(logrus.Fields{
		"order":   order.Number,
		"expense": expense.Type,
		"basis":   basis.String(),
	}).Debug("allocating expense to line items")

	s.record(order.Number, events.NewExpenseAllocated(order.Number, expense.Type, basis.String(), expense.Amount))

	return &dto.ExpenseAllocation{
		ExpenseType: expense.Type,
		Basis:       basis,
		TotalAmount: expense.Amount,
		Allocations: costing.Distribute(order.Items, expense.Amount, basis, rate),
	}, nil
}

// AllocateSharedExpense distributes one shipment-level expense across the
// given orders using the basis resolved from the expense label.
func (s *CostingService) AllocateSharedExpense(
	ctx context.Context,
	expenseType string,
	totalAmount decimal.Decimal,
	orderIDs []uuid.UUID,
) (*dto.ExpenseAllocation, error) {
	shares := make([]costing.OrderShare, 0, len(orderIDs))
	for _, id := range orderIDs {
		order, err := s.orders.GetOrder(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load order %s: %w", id, err)
		}
		shares = append(shares, costing.OrderShare{
			OrderRef:      order.Number,
			Quantity:      order.OrderedQty,
			BoxCount:      order.BoxCount,
			DeclaredValue: costing.ToBaseAmount(order.FOBTotal, order.Currency, declaredValueRate(order)),
		})
	}

	basis := s.resolver.Resolve(expenseType)

	s.log.WithFields(logrus.Fields{
		"expense": expenseType,
		"basis":   basis.String(),
		"orders":  len(shares),
	}).Debug("allocating shared expense across orders")

	for _, share := range shares {
		s.record(share.OrderRef, events.NewSharedExpenseAllocated(
			share.OrderRef, expenseType, basis.String(), totalAmount, len(shares)))
	}

	return &dto.ExpenseAllocation{
		ExpenseType: expenseType,
		Basis:       basis,
		TotalAmount: totalAmount,
		Allocations: costing.DistributeAcrossOrders(shares, totalAmount, basis),
	}, nil
}

// Dashboard aggregates every stored order into the landing dashboard view.
func (s *CostingService) Dashboard(ctx context.Context) (*dto.DashboardSummary, error) {
	orders, err := s.orders.GetAllOrders()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	summary := &dto.DashboardSummary{
		OrderCount:    len(orders),
		TotalInvested: decimal.Zero,
		TotalExpenses: decimal.Zero,
		Rows:          make([]dto.DashboardRow, 0, len(orders)),
	}

	for _, order := range orders {
		totals := costing.AggregateOrder(
			order.FOBTotal, order.OrderedQty,
			order.Payments, order.Expenses, order.Receipts,
		)
		summary.TotalInvested = summary.TotalInvested.Add(totals.TotalInvestment)
		summary.TotalExpenses = summary.TotalExpenses.Add(totals.TotalExpenses)
		summary.OrderedUnits += order.OrderedQty
		summary.ReceivedUnits += totals.ReceivedQty

		summary.Rows = append(summary.Rows, dto.DashboardRow{
			OrderNumber:      order.Number,
			Supplier:         order.Supplier,
			TotalInvestment:  totals.TotalInvestment,
			UnitCost:         totals.UnitCost,
			ReceptionPercent: totals.ReceptionPercent,
		})
	}

	if summary.OrderedUnits > 0 {
		summary.ReceptionPercent = decimal.NewFromInt(int64(summary.ReceivedUnits)).
			Div(decimal.NewFromInt(int64(summary.OrderedUnits))).
			Mul(decimal.NewFromInt(100)).Round(2)
	}

	return summary, nil
}

// declaredValueRate picks the rate used to express an order's declared value
// in the base currency: the average rate its payments realized, or 1 before
// any foreign payment exists.
func declaredValueRate(order *entities.PurchaseOrder) decimal.Decimal {
	if order.Currency.IsBase() {
		return decimal.NewFromInt(1)
	}
	rate := costing.AverageExchangeRate(order.Payments)
	if rate.IsZero() {
		return decimal.NewFromInt(1)
	}
	return rate
}
