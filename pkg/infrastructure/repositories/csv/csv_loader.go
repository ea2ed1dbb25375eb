package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/imptrack/landedcost/pkg/domain/entities"
)

const dateLayout = "2006-01-02"

// Loader handles loading purchase order data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// DatasetFiles names the files that make up one costing dataset. Orders is
// required; the child files may be empty strings when absent.
type DatasetFiles struct {
	Orders   string
	Items    string
	Payments string
	Expenses string
	Receipts string
}

// LoadDataset loads all dataset files and assembles complete orders with
// their items, payments, expenses and receipts attached.
func (l *Loader) LoadDataset(files DatasetFiles) ([]*entities.PurchaseOrder, error) {
	orders, err := l.LoadOrders(files.Orders)
	if err != nil {
		return nil, err
	}

	byNumber := make(map[string]*entities.PurchaseOrder, len(orders))
	for _, order := range orders {
		byNumber[order.Number] = order
	}

	if files.Items != "" {
		items, err := l.LoadItems(files.Items)
		if err != nil {
			return nil, err
		}
		for number, rows := range items {
			order, ok := byNumber[number]
			if !ok {
				return nil, fmt.Errorf("items CSV references unknown order: %s", number)
			}
			for _, item := range rows {
				order.AddItem(item)
			}
		}
	}

	if files.Payments != "" {
		payments, err := l.LoadPayments(files.Payments)
		if err != nil {
			return nil, err
		}
		for number, rows := range payments {
			order, ok := byNumber[number]
			if !ok {
				return nil, fmt.Errorf("payments CSV references unknown order: %s", number)
			}
			for _, payment := range rows {
				order.AddPayment(payment)
			}
		}
	}

	if files.Expenses != "" {
		expenses, err := l.LoadExpenses(files.Expenses)
		if err != nil {
			return nil, err
		}
		for number, rows := range expenses {
			order, ok := byNumber[number]
			if !ok {
				return nil, fmt.Errorf("expenses CSV references unknown order: %s", number)
			}
			for _, expense := range rows {
				order.AddExpense(expense)
			}
		}
	}

	if files.Receipts != "" {
		receipts, err := l.LoadReceipts(files.Receipts)
		if err != nil {
			return nil, err
		}
		for number, rows := range receipts {
			order, ok := byNumber[number]
			if !ok {
				return nil, fmt.Errorf("receipts CSV references unknown order: %s", number)
			}
			for _, receipt := range rows {
				order.AddReceipt(receipt)
			}
		}
	}

	return orders, nil
}

// LoadOrders loads purchase orders from a CSV file
func (l *Loader) LoadOrders(filename string) ([]*entities.PurchaseOrder, error) {
	records, err := readCSV(filename, "orders")
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("orders CSV must have header and at least one data row")
	}

	expectedHeader := []string{"number", "supplier", "ordered_qty", "fob_total", "currency", "box_count", "placed_at"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("orders CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var orders []*entities.PurchaseOrder
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("orders CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		order, err := parseOrder(record)
		if err != nil {
			return nil, fmt.Errorf("orders CSV row %d: %w", i+2, err)
		}

		orders = append(orders, order)
	}

	return orders, nil
}

// LoadItems loads line items from a CSV file, keyed by order number
func (l *Loader) LoadItems(filename string) (map[string][]entities.LineItem, error) {
	records, err := readCSV(filename, "items")
	if err != nil {
		return nil, err
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("items CSV must have a header row")
	}

	expectedHeader := []string{"order_number", "sku", "description", "quantity", "unit_price", "unit_weight_kg", "unit_volume_m3"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("items CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	items := make(map[string][]entities.LineItem)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("items CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		number, item, err := parseItem(record)
		if err != nil {
			return nil, fmt.Errorf("items CSV row %d: %w", i+2, err)
		}

		items[number] = append(items[number], item)
	}

	return items, nil
}

// LoadPayments loads payments from a CSV file, keyed by order number
func (l *Loader) LoadPayments(filename string) (map[string][]entities.Payment, error) {
	records, err := readCSV(filename, "payments")
	if err != nil {
		return nil, err
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("payments CSV must have a header row")
	}

	expectedHeader := []string{"order_number", "amount", "currency", "rate", "bank_commission", "paid_at", "settled"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("payments CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	payments := make(map[string][]entities.Payment)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("payments CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		number, payment, err := parsePayment(record)
		if err != nil {
			return nil, fmt.Errorf("payments CSV row %d: %w", i+2, err)
		}

		payments[number] = append(payments[number], payment)
	}

	return payments, nil
}

// LoadExpenses loads logistics expenses from a CSV file, keyed by order number
func (l *Loader) LoadExpenses(filename string) (map[string][]entities.LogisticsExpense, error) {
	records, err := readCSV(filename, "expenses")
	if err != nil {
		return nil, err
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("expenses CSV must have a header row")
	}

	expectedHeader := []string{"order_number", "type", "amount", "incurred_at"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("expenses CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	expenses := make(map[string][]entities.LogisticsExpense)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("expenses CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		number, expense, err := parseExpense(record)
		if err != nil {
			return nil, fmt.Errorf("expenses CSV row %d: %w", i+2, err)
		}

		expenses[number] = append(expenses[number], expense)
	}

	return expenses, nil
}

// LoadReceipts loads inventory receipts from a CSV file, keyed by order number
func (l *Loader) LoadReceipts(filename string) (map[string][]entities.InventoryReceipt, error) {
	records, err := readCSV(filename, "receipts")
	if err != nil {
		return nil, err
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("receipts CSV must have a header row")
	}

	expectedHeader := []string{"order_number", "quantity", "received_at"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("receipts CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	receipts := make(map[string][]entities.InventoryReceipt)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("receipts CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		number, receipt, err := parseReceipt(record)
		if err != nil {
			return nil, fmt.Errorf("receipts CSV row %d: %w", i+2, err)
		}

		receipts[number] = append(receipts[number], receipt)
	}

	return receipts, nil
}

// Helper functions for parsing CSV records

func readCSV(filename, label string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", label, filename, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", label, err)
	}
	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseOrder(record []string) (*entities.PurchaseOrder, error) {
	number := record[0]
	supplier := record[1]

	orderedQty, err := strconv.ParseInt(record[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ordered_qty: %s", record[2])
	}

	fobTotal, err := decimal.NewFromString(record[3])
	if err != nil {
		return nil, fmt.Errorf("invalid fob_total: %s", record[3])
	}

	currency, err := entities.ParseCurrency(record[4])
	if err != nil {
		return nil, err
	}

	boxCount, err := strconv.ParseInt(record[5], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid box_count: %s", record[5])
	}

	placedAt, err := time.Parse(dateLayout, record[6])
	if err != nil {
		return nil, fmt.Errorf("invalid placed_at format: %s (expected YYYY-MM-DD)", record[6])
	}

	return entities.NewPurchaseOrder(
		number, supplier,
		entities.Quantity(orderedQty), fobTotal, currency, boxCount, placedAt,
	)
}

func parseItem(record []string) (string, entities.LineItem, error) {
	number := record[0]
	sku := record[1]
	description := record[2]

	quantity, err := strconv.ParseInt(record[3], 10, 64)
	if err != nil {
		return "", entities.LineItem{}, fmt.Errorf("invalid quantity: %s", record[3])
	}

	unitPrice, err := decimal.NewFromString(record[4])
	if err != nil {
		return "", entities.LineItem{}, fmt.Errorf("invalid unit_price: %s", record[4])
	}

	unitWeightKg, err := parseOptionalDecimal(record[5])
	if err != nil {
		return "", entities.LineItem{}, fmt.Errorf("invalid unit_weight_kg: %s", record[5])
	}

	unitVolumeM3, err := parseOptionalDecimal(record[6])
	if err != nil {
		return "", entities.LineItem{}, fmt.Errorf("invalid unit_volume_m3: %s", record[6])
	}

	item, err := entities.NewLineItem(sku, description, entities.Quantity(quantity), unitPrice, unitWeightKg, unitVolumeM3)
	if err != nil {
		return "", entities.LineItem{}, err
	}
	return number, *item, nil
}

func parsePayment(record []string) (string, entities.Payment, error) {
	number := record[0]

	amount, err := decimal.NewFromString(record[1])
	if err != nil {
		return "", entities.Payment{}, fmt.Errorf("invalid amount: %s", record[1])
	}

	currency, err := entities.ParseCurrency(record[2])
	if err != nil {
		return "", entities.Payment{}, err
	}

	rate, err := parseOptionalDecimal(record[3])
	if err != nil {
		return "", entities.Payment{}, fmt.Errorf("invalid rate: %s", record[3])
	}

	bankCommission, err := parseOptionalDecimal(record[4])
	if err != nil {
		return "", entities.Payment{}, fmt.Errorf("invalid bank_commission: %s", record[4])
	}

	paidAt, err := time.Parse(dateLayout, record[5])
	if err != nil {
		return "", entities.Payment{}, fmt.Errorf("invalid paid_at format: %s (expected YYYY-MM-DD)", record[5])
	}

	settled, err := strconv.ParseBool(record[6])
	if err != nil {
		return "", entities.Payment{}, fmt.Errorf("invalid settled: %s (expected true or false)", record[6])
	}

	payment, err := entities.NewPayment(amount, currency, rate, bankCommission, paidAt, settled)
	if err != nil {
		return "", entities.Payment{}, err
	}
	return number, *payment, nil
}

func parseExpense(record []string) (string, entities.LogisticsExpense, error) {
	number := record[0]
	expenseType := record[1]

	amount, err := decimal.NewFromString(record[2])
	if err != nil {
		return "", entities.LogisticsExpense{}, fmt.Errorf("invalid amount: %s", record[2])
	}

	incurredAt, err := time.Parse(dateLayout, record[3])
	if err != nil {
		return "", entities.LogisticsExpense{}, fmt.Errorf("invalid incurred_at format: %s (expected YYYY-MM-DD)", record[3])
	}

	expense, err := entities.NewLogisticsExpense(expenseType, amount, incurredAt)
	if err != nil {
		return "", entities.LogisticsExpense{}, err
	}
	return number, *expense, nil
}

func parseReceipt(record []string) (string, entities.InventoryReceipt, error) {
	number := record[0]

	quantity, err := strconv.ParseInt(record[1], 10, 64)
	if err != nil {
		return "", entities.InventoryReceipt{}, fmt.Errorf("invalid quantity: %s", record[1])
	}

	receivedAt, err := time.Parse(dateLayout, record[2])
	if err != nil {
		return "", entities.InventoryReceipt{}, fmt.Errorf("invalid received_at format: %s (expected YYYY-MM-DD)", record[2])
	}

	receipt, err := entities.NewInventoryReceipt(entities.Quantity(quantity), receivedAt)
	if err != nil {
		return "", entities.InventoryReceipt{}, err
	}
	return number, *receipt, nil
}

// parseOptionalDecimal treats an empty cell as zero.
func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
