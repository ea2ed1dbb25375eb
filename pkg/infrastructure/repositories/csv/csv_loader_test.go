package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/imptrack/landedcost/pkg/domain/entities"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadDataset(t *testing.T) {
	dir := t.TempDir()

	files := DatasetFiles{
		Orders: writeFile(t, dir, "orders.csv",
			"number,supplier,ordered_qty,fob_total,currency,box_count,placed_at\n"+
				"PO-001,Acme Trading Co,100,1000,USD,10,2024-02-01\n"),
		Items: writeFile(t, dir, "items.csv",
			"order_number,sku,description,quantity,unit_price,unit_weight_kg,unit_volume_m3\n"+
				"PO-001,SKU-A,Widget,60,10,0.5,\n"+
				"PO-001,SKU-B,Gadget,40,10,2,0.01\n"),
		Payments: writeFile(t, dir, "payments.csv",
			"order_number,amount,currency,rate,bank_commission,paid_at,settled\n"+
				"PO-001,1000,USD,60,500,2024-03-01,true\n"+
				"PO-001,4500,DOP,,,2024-03-05,true\n"),
		Expenses: writeFile(t, dir, "expenses.csv",
			"order_number,type,amount,incurred_at\n"+
				"PO-001,Flete internacional,3000,2024-03-10\n"),
		Receipts: writeFile(t, dir, "receipts.csv",
			"order_number,quantity,received_at\n"+
				"PO-001,80,2024-04-01\n"),
	}

	loader := NewLoader()
	orders, err := loader.LoadDataset(files)
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}

	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}

	order := orders[0]
	if order.Number != "PO-001" || order.Currency != entities.USD {
		t.Errorf("unexpected order header: %s %s", order.Number, order.Currency)
	}
	if len(order.Items) != 2 || len(order.Payments) != 2 || len(order.Expenses) != 1 || len(order.Receipts) != 1 {
		t.Errorf("unexpected child counts: items=%d payments=%d expenses=%d receipts=%d",
			len(order.Items), len(order.Payments), len(order.Expenses), len(order.Receipts))
	}

	// Ownership is stamped on attach.
	if order.Items[0].OrderID != order.ID {
		t.Error("expected item OrderID to match the order")
	}

	// Empty optional cells parse as zero.
	if !order.Items[0].UnitVolumeM3.IsZero() {
		t.Errorf("expected zero unit volume, got %s", order.Items[0].UnitVolumeM3)
	}
	if !order.Payments[0].Rate.Equal(decimal.RequireFromString("60")) {
		t.Errorf("expected rate 60, got %s", order.Payments[0].Rate)
	}
	if !order.Payments[1].Settled {
		t.Error("expected second payment settled")
	}
}

func TestLoadDataset_OrdersOnly(t *testing.T) {
	dir := t.TempDir()

	files := DatasetFiles{
		Orders: writeFile(t, dir, "orders.csv",
			"number,supplier,ordered_qty,fob_total,currency,box_count,placed_at\n"+
				"PO-001,Acme Trading Co,100,1000,USD,10,2024-02-01\n"),
	}

	orders, err := NewLoader().LoadDataset(files)
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}
	if len(orders) != 1 || len(orders[0].Items) != 0 {
		t.Errorf("expected one bare order, got %+v", orders)
	}
}

func TestLoadDataset_UnknownOrderReference(t *testing.T) {
	dir := t.TempDir()

	files := DatasetFiles{
		Orders: writeFile(t, dir, "orders.csv",
			"number,supplier,ordered_qty,fob_total,currency,box_count,placed_at\n"+
				"PO-001,Acme Trading Co,100,1000,USD,10,2024-02-01\n"),
		Items: writeFile(t, dir, "items.csv",
			"order_number,sku,description,quantity,unit_price,unit_weight_kg,unit_volume_m3\n"+
				"PO-999,SKU-A,Widget,60,10,0.5,\n"),
	}

	_, err := NewLoader().LoadDataset(files)
	if err == nil {
		t.Fatal("expected unknown order reference error")
	}
	if !strings.Contains(err.Error(), "PO-999") {
		t.Errorf("expected error to name the unknown order, got: %v", err)
	}
}

func TestLoadOrders_HeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "orders.csv",
		"number,supplier,quantity\nPO-001,Acme,100\n")

	if _, err := NewLoader().LoadOrders(path); err == nil {
		t.Fatal("expected header mismatch error")
	}
}

func TestLoadOrders_RowError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "orders.csv",
		"number,supplier,ordered_qty,fob_total,currency,box_count,placed_at\n"+
			"PO-001,Acme Trading Co,abc,1000,USD,10,2024-02-01\n")

	_, err := NewLoader().LoadOrders(path)
	if err == nil {
		t.Fatal("expected row parse error")
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("expected error to name the row, got: %v", err)
	}
}

func TestLoadPayments_InvalidCurrency(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "payments.csv",
		"order_number,amount,currency,rate,bank_commission,paid_at,settled\n"+
			"PO-001,1000,GBP,60,0,2024-03-01,true\n")

	if _, err := NewLoader().LoadPayments(path); err == nil {
		t.Fatal("expected invalid currency error")
	}
}
