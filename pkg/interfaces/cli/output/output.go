package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/imptrack/landedcost/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// RenderReport writes one order's cost report in the configured format
func RenderReport(report *dto.OrderCostReport, config Config) error {
	switch config.Format {
	case "text":
		return renderReportText(report, config)
	case "json":
		return renderJSON(report, "cost_report.json", config)
	case "csv":
		return renderReportCSV(report, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// RenderDashboard writes the cross-order dashboard in the configured format
func RenderDashboard(dashboard *dto.DashboardSummary, config Config) error {
	switch config.Format {
	case "text":
		return renderDashboardText(dashboard, config)
	case "json":
		return renderJSON(dashboard, "dashboard.json", config)
	case "csv":
		return renderDashboardCSV(dashboard, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// baseMoney formats a base-currency amount for display ("RD$1,234.56").
func baseMoney(d decimal.Decimal) string {
	return money.New(d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), money.DOP).Display()
}

func renderReportText(report *dto.OrderCostReport, config Config) error {
	fmt.Printf("Order %s (%s)\n", report.OrderNumber, report.Supplier)
	fmt.Printf("======================\n\n")

	fmt.Printf("Currency: %s   FOB unit cost: %s %s\n",
		report.Currency, report.Currency.Symbol(), report.Totals.FOBUnitCost)
	fmt.Printf("Total paid:       %s\n", baseMoney(report.Totals.TotalPaid))
	fmt.Printf("Total expenses:   %s\n", baseMoney(report.Totals.TotalExpenses))
	fmt.Printf("Total investment: %s\n", baseMoney(report.Totals.TotalInvestment))
	fmt.Printf("Average rate:     %s\n", report.Summary.AverageRate)
	fmt.Printf("Received: %d units (%s%%), unit cost %s\n\n",
		report.Totals.ReceivedQty,
		report.Totals.ReceptionPercent,
		baseMoney(report.Totals.UnitCost))

	if len(report.ItemCosts) > 0 {
		fmt.Printf("Line items:\n")
		fmt.Printf("%-15s %-8s %-8s %-14s %-14s %-14s\n",
			"SKU", "Qty", "Share", "FOB Cost", "Logistics", "Unit Cost")
		fmt.Printf("%-15s %-8s %-8s %-14s %-14s %-14s\n",
			"---------------", "--------", "--------", "--------------", "--------------", "--------------")

		for _, item := range report.ItemCosts {
			fmt.Printf("%-15s %-8d %-8s %-14s %-14s %-14s\n",
				item.SKU,
				item.Quantity,
				item.Share.Round(4),
				baseMoney(item.FOBCost),
				baseMoney(item.LogisticsCost),
				baseMoney(item.UnitCost))
		}
		fmt.Println()
	}

	return nil
}

func renderDashboardText(dashboard *dto.DashboardSummary, config Config) error {
	fmt.Printf("Import Dashboard\n")
	fmt.Printf("======================\n\n")

	fmt.Printf("Orders: %d\n", dashboard.OrderCount)
	fmt.Printf("Total invested: %s\n", baseMoney(dashboard.TotalInvested))
	fmt.Printf("Total expenses: %s\n", baseMoney(dashboard.TotalExpenses))
	fmt.Printf("Units: %d ordered / %d received (%s%%)\n\n",
		dashboard.OrderedUnits, dashboard.ReceivedUnits, dashboard.ReceptionPercent)

	if len(dashboard.Rows) > 0 {
		fmt.Printf("%-12s %-22s %-16s %-14s %-10s\n",
			"Order", "Supplier", "Investment", "Unit Cost", "Received")
		fmt.Printf("%-12s %-22s %-16s %-14s %-10s\n",
			"------------", "----------------------", "----------------", "--------------", "----------")

		for _, row := range dashboard.Rows {
			fmt.Printf("%-12s %-22s %-16s %-14s %s%%\n",
				row.OrderNumber,
				row.Supplier,
				baseMoney(row.TotalInvestment),
				baseMoney(row.UnitCost),
				row.ReceptionPercent)
		}
		fmt.Println()
	}

	return nil
}

func renderJSON(v any, filename string, config Config) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(config.OutputDir, filename)
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("JSON results saved to: %s\n", path)
	}
	return nil
}

func renderReportCSV(report *dto.OrderCostReport, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(config.OutputDir, "item_costs.csv")
	rows := [][]string{
		{"order_number", "sku", "quantity", "share", "fob_cost", "logistics_cost", "total_cost", "unit_cost"},
	}
	for _, item := range report.ItemCosts {
		rows = append(rows, []string{
			report.OrderNumber,
			item.SKU,
			fmt.Sprintf("%d", item.Quantity),
			item.Share.String(),
			item.FOBCost.String(),
			item.LogisticsCost.String(),
			item.TotalCost.String(),
			item.UnitCost.String(),
		})
	}

	if err := writeCSV(path, rows); err != nil {
		return err
	}
	if config.Verbose {
		fmt.Printf("CSV results saved to: %s\n", path)
	}
	return nil
}

func renderDashboardCSV(dashboard *dto.DashboardSummary, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(config.OutputDir, "dashboard.csv")
	rows := [][]string{
		{"order_number", "supplier", "total_investment", "unit_cost", "reception_percent"},
	}
	for _, row := range dashboard.Rows {
		rows = append(rows, []string{
			row.OrderNumber,
			row.Supplier,
			row.TotalInvestment.String(),
			row.UnitCost.String(),
			row.ReceptionPercent.String(),
		})
	}

	if err := writeCSV(path, rows); err != nil {
		return err
	}
	if config.Verbose {
		fmt.Printf("CSV results saved to: %s\n", path)
	}
	return nil
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV file %s: %w", path, err)
	}
	writer.Flush()
	return writer.Error()
}
