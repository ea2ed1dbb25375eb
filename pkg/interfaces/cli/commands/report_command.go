package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/imptrack/landedcost/pkg/application/services"
	"github.com/imptrack/landedcost/pkg/domain/repositories"
	"github.com/imptrack/landedcost/pkg/domain/services/order_validator"
	"github.com/imptrack/landedcost/pkg/infrastructure/config"
	"github.com/imptrack/landedcost/pkg/infrastructure/repositories/csv"
	"github.com/imptrack/landedcost/pkg/infrastructure/repositories/memory"
	"github.com/imptrack/landedcost/pkg/interfaces/cli/output"
)

// Config holds configuration for the report command
type Config struct {
	ScenarioDir  string
	OrdersFile   string
	ItemsFile    string
	PaymentsFile string
	ExpensesFile string
	ReceiptsFile string
	Order        string
	// OverridesFile and UseOverrides take precedence over the environment.
	OverridesFile string
	UseOverrides  bool
	OutputDir     string
	Format        string
	Verbose       bool
	Help          bool
}

// ReportCommand loads a costing dataset and renders either one order's cost
// report or the cross-order dashboard
type ReportCommand struct {
	config Config
}

// NewReportCommand creates a new report command with the given configuration
func NewReportCommand(config Config) *ReportCommand {
	return &ReportCommand{
		config: config,
	}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	files, err := c.resolveInputFiles()
	if err != nil {
		return fmt.Errorf("failed to resolve input files: %w", err)
	}

	envCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if c.config.OverridesFile != "" {
		envCfg.OverridesFile = c.config.OverridesFile
	}
	if c.config.UseOverrides {
		envCfg.UseOverrides = true
	}
	if envCfg.UseOverrides && envCfg.OverridesFile == "" {
		return fmt.Errorf("-use-overrides requires an overrides file")
	}

	log := logrus.New()
	level, err := logrus.ParseLevel(envCfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %s: %w", envCfg.LogLevel, err)
	}
	log.SetLevel(level)

	if c.config.Verbose {
		c.printHeader(files)
	}

	loader := csv.NewLoader()
	orders, err := loader.LoadDataset(files)
	if err != nil {
		return fmt.Errorf("error loading dataset: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("Loaded %d orders\n\n", len(orders))
	}

	validation := order_validator.ValidateOrders(orders)
	if !validation.Valid() {
		return fmt.Errorf("dataset validation failed: %s",
			strings.Join(validation.Errors, "; "))
	}
	for _, warning := range validation.Warnings {
		log.Warn(warning)
	}

	orderRepo := memory.NewOrderRepository()
	if err := orderRepo.LoadOrders(orders); err != nil {
		return fmt.Errorf("failed to load orders into repository: %w", err)
	}

	var overrides repositories.BasisOverrideRepository
	if envCfg.OverridesFile != "" {
		overrideRepo, err := config.LoadOverrides(envCfg.OverridesFile)
		if err != nil {
			return fmt.Errorf("failed to load basis overrides: %w", err)
		}
		overrides = overrideRepo
	}

	service := services.NewCostingService(orderRepo, overrides, envCfg.UseOverrides, log)

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}

	if c.config.Order != "" {
		report, err := service.OrderCostReportByNumber(ctx, c.config.Order)
		if err != nil {
			return fmt.Errorf("error building cost report: %w", err)
		}
		return output.RenderReport(report, outputConfig)
	}

	dashboard, err := service.Dashboard(ctx)
	if err != nil {
		return fmt.Errorf("error building dashboard: %w", err)
	}
	return output.RenderDashboard(dashboard, outputConfig)
}

// validateInputs validates the command configuration
func (c *ReportCommand) validateInputs() error {
	if c.config.ScenarioDir == "" && c.config.OrdersFile == "" {
		return fmt.Errorf("must specify either -scenario directory or -orders file")
	}
	return nil
}

// resolveInputFiles determines the actual file paths to use. Only orders.csv
// is required; the child files are attached when present.
func (c *ReportCommand) resolveInputFiles() (csv.DatasetFiles, error) {
	files := csv.DatasetFiles{
		Orders:   c.config.OrdersFile,
		Items:    c.config.ItemsFile,
		Payments: c.config.PaymentsFile,
		Expenses: c.config.ExpensesFile,
		Receipts: c.config.ReceiptsFile,
	}

	if c.config.ScenarioDir != "" {
		files.Orders = filepath.Join(c.config.ScenarioDir, "orders.csv")
		files.Items = optionalFile(filepath.Join(c.config.ScenarioDir, "items.csv"))
		files.Payments = optionalFile(filepath.Join(c.config.ScenarioDir, "payments.csv"))
		files.Expenses = optionalFile(filepath.Join(c.config.ScenarioDir, "expenses.csv"))
		files.Receipts = optionalFile(filepath.Join(c.config.ScenarioDir, "receipts.csv"))
	}

	if _, err := os.Stat(files.Orders); os.IsNotExist(err) {
		return csv.DatasetFiles{}, fmt.Errorf("orders file not found: %s", files.Orders)
	}

	return files, nil
}

// optionalFile returns path when it exists, empty string otherwise.
func optionalFile(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ""
	}
	return path
}

// printHeader prints the command header information
func (c *ReportCommand) printHeader(files csv.DatasetFiles) {
	fmt.Printf("Landed Cost CLI\n")
	fmt.Printf("Input files:\n")
	fmt.Printf("  Orders: %s\n", files.Orders)
	if files.Items != "" {
		fmt.Printf("  Items: %s\n", files.Items)
	}
	if files.Payments != "" {
		fmt.Printf("  Payments: %s\n", files.Payments)
	}
	if files.Expenses != "" {
		fmt.Printf("  Expenses: %s\n", files.Expenses)
	}
	if files.Receipts != "" {
		fmt.Printf("  Receipts: %s\n", files.Receipts)
	}
	fmt.Printf("Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Printf("Output directory: %s\n", c.config.OutputDir)
	}
	fmt.Println()
}

// showHelp displays the help message
func (c *ReportCommand) showHelp() {
	fmt.Printf(`Landed Cost CLI - Import Purchase Order Costing

USAGE:
    landedcost -scenario <directory>           # Use scenario directory with CSV files
    landedcost -orders <file> ...              # Use individual CSV files

OPTIONS:
    -scenario <dir>     Path to scenario directory containing CSV files
    -orders <file>      Path to orders CSV file
    -items <file>       Path to line items CSV file
    -payments <file>    Path to payments CSV file
    -expenses <file>    Path to expenses CSV file
    -receipts <file>    Path to receipts CSV file
    -order <number>     Render the cost report for one order (default: dashboard)
    -overrides <file>   Path to the JSON basis override table
    -use-overrides      Consult the override table before keyword rules
    -output <dir>       Output directory for results (optional)
    -format <fmt>       Output format: text, json, csv (default: text)
    -verbose            Enable verbose output
    -help               Show this help message

ENVIRONMENT:
    LANDEDCOST_OVERRIDES_FILE   Path to the JSON basis override table
    LANDEDCOST_USE_OVERRIDES    Consult the override table before keyword rules
    LANDEDCOST_LOG_LEVEL        Log level (default: warn)

SCENARIO DIRECTORY STRUCTURE:
    scenario_name/
    ├── orders.csv      # Purchase orders (required)
    ├── items.csv       # Line items
    ├── payments.csv    # Supplier payments
    ├── expenses.csv    # Logistics expenses
    └── receipts.csv    # Inventory receipts

CSV FILE FORMATS:

orders.csv:
    number,supplier,ordered_qty,fob_total,currency,box_count,placed_at
    PO-001,Acme Trading Co,100,1000,USD,10,2024-02-01

items.csv:
    order_number,sku,description,quantity,unit_price,unit_weight_kg,unit_volume_m3
    PO-001,SKU-A,Widget,60,10,0.5,

payments.csv:
    order_number,amount,currency,rate,bank_commission,paid_at,settled
    PO-001,1000,USD,60,500,2024-03-01,true

expenses.csv:
    order_number,type,amount,incurred_at
    PO-001,Flete internacional,3000,2024-03-10

receipts.csv:
    order_number,quantity,received_at
    PO-001,80,2024-04-01

EXAMPLES:
    # Render the dashboard for a scenario
    landedcost -scenario examples/basic_import -verbose

    # Render one order's cost report
    landedcost -scenario examples/basic_import -order PO-001

    # Generate JSON output
    landedcost -scenario examples/basic_import -order PO-001 -format json -output results/
`)
}
