package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/imptrack/landedcost/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		scenarioDir = flag.String(
			"scenario",
			"",
			"Path to scenario directory containing CSV files",
		)
		ordersFile    = flag.String("orders", "", "Path to orders CSV file")
		itemsFile     = flag.String("items", "", "Path to line items CSV file")
		paymentsFile  = flag.String("payments", "", "Path to payments CSV file")
		expensesFile  = flag.String("expenses", "", "Path to expenses CSV file")
		receiptsFile  = flag.String("receipts", "", "Path to receipts CSV file")
		order         = flag.String("order", "", "Render the cost report for one order number")
		overridesFile = flag.String("overrides", "", "Path to the JSON basis override table")
		useOverrides  = flag.Bool("use-overrides", false, "Consult the override table before keyword rules")
		outputDir     = flag.String("output", "", "Output directory for results (optional)")
		format        = flag.String("format", "text", "Output format: text, json, csv")
		verbose       = flag.Bool("verbose", false, "Enable verbose output")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ScenarioDir:   *scenarioDir,
		OrdersFile:    *ordersFile,
		ItemsFile:     *itemsFile,
		PaymentsFile:  *paymentsFile,
		ExpensesFile:  *expensesFile,
		ReceiptsFile:  *receiptsFile,
		Order:         *order,
		OverridesFile: *overridesFile,
		UseOverrides:  *useOverrides,
		OutputDir:     *outputDir,
		Format:        *format,
		Verbose:       *verbose,
		Help:          *help,
	}

	// Create and execute command
	cmd := commands.NewReportCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
