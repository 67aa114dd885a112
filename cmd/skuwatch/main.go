package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/skuwatch/skuwatch/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		suppliersFile = flag.String("suppliers", "", "Path to supplier catalog CSV file")
		variantsFile  = flag.String("variants", "", "Path to variant index CSV file")
		importFile    = flag.String("import", "", "Path to import feed (.csv or .json)")
		report        = flag.String("report", "", "Report to print: risk or stats")
		format        = flag.String("format", "text", "Output format: text, json")
		verbose       = flag.Bool("verbose", false, "Enable verbose output")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		SuppliersFile: *suppliersFile,
		VariantsFile:  *variantsFile,
		ImportFile:    *importFile,
		Report:        *report,
		Format:        *format,
		Verbose:       *verbose,
		Help:          *help,
	}

	// Create and execute command
	cmd := commands.NewRunCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
