package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/skuwatch/skuwatch/pkg/application/services"
	"github.com/skuwatch/skuwatch/pkg/domain/repositories"
	"github.com/skuwatch/skuwatch/pkg/infrastructure/config"
	"github.com/skuwatch/skuwatch/pkg/infrastructure/events"
	"github.com/skuwatch/skuwatch/pkg/infrastructure/feeds"
	"github.com/skuwatch/skuwatch/pkg/infrastructure/repositories/csv"
	"github.com/skuwatch/skuwatch/pkg/infrastructure/repositories/memory"
	"github.com/skuwatch/skuwatch/pkg/infrastructure/repositories/redis"
	"github.com/skuwatch/skuwatch/pkg/interfaces/cli/output"
)

// Config holds configuration for one CLI run
type Config struct {
	SuppliersFile string
	VariantsFile  string
	ImportFile    string
	Report        string
	Format        string
	Verbose       bool
	Help          bool
}

// RunCommand wires repositories and services for one CLI invocation
type RunCommand struct {
	config Config
}

// NewRunCommand creates a new run command with the given configuration
func NewRunCommand(config Config) *RunCommand {
	return &RunCommand{
		config: config,
	}
}

// Execute runs the command: load fixtures, optionally run an import feed,
// optionally print a report
func (c *RunCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	env, err := config.Load()
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if c.config.Verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		defer logger.Sync()
	}

	// Load platform fixtures
	loader := csv.NewLoader()

	suppliers, err := loader.LoadSuppliers(c.config.SuppliersFile)
	if err != nil {
		return fmt.Errorf("error loading suppliers: %w", err)
	}

	variants, err := loader.LoadVariants(c.config.VariantsFile)
	if err != nil {
		return fmt.Errorf("error loading variants: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  Suppliers: %d\n", len(suppliers))
		fmt.Printf("  Variants: %d\n", len(variants))
		fmt.Println()
	}

	catalog := memory.NewSupplierCatalog()
	if err := catalog.LoadSuppliers(suppliers); err != nil {
		return fmt.Errorf("failed to load suppliers into catalog: %w", err)
	}

	index := memory.NewVariantIndex()
	if err := index.LoadVariants(variants); err != nil {
		return fmt.Errorf("failed to load variants into index: %w", err)
	}

	store := c.newAssignmentStore(env)
	assignments := services.NewAssignmentService(index, store)
	outputConfig := output.Config{Format: c.config.Format, Verbose: c.config.Verbose}

	if c.config.ImportFile != "" {
		if err := c.runImport(ctx, catalog, index, store, env, logger, outputConfig); err != nil {
			return err
		}
	}

	switch c.config.Report {
	case "":
	case "risk":
		riskService := services.NewRiskService(catalog, index, assignments)
		reports, err := riskService.ReportAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to compute risk reports: %w", err)
		}
		if err := output.RiskReports(reports, outputConfig); err != nil {
			return err
		}
	case "stats":
		assignmentsBySKU, err := assignments.AssignmentsBySKU(ctx)
		if err != nil {
			return fmt.Errorf("failed to read assignments: %w", err)
		}

		policy := services.DropUnknownSuppliers
		if env.UnknownSupplierBucket {
			policy = services.BucketUnknownSuppliers
		}

		statsService := services.NewStatsServiceWithPolicy(policy)
		stats, err := statsService.Aggregate(variants, assignmentsBySKU, catalog)
		if err != nil {
			return fmt.Errorf("failed to aggregate supplier stats: %w", err)
		}
		if err := output.SupplierStats(stats, outputConfig); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported report: %s (expected risk or stats)", c.config.Report)
	}

	return nil
}

func (c *RunCommand) runImport(
	ctx context.Context,
	catalog repositories.SupplierCatalog,
	index repositories.VariantIndex,
	store repositories.AssignmentStore,
	env *config.Config,
	logger *zap.Logger,
	outputConfig output.Config,
) error {
	feed, err := os.Open(c.config.ImportFile)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer feed.Close()

	importConfig := services.DefaultImportConfig()
	importConfig.CommitDelay = env.CommitDelay
	importConfig.CommitRetries = env.CommitRetries

	importService := services.NewImportServiceWithConfig(
		catalog, index, store, events.NewInMemoryEventStore(), logger, importConfig)

	result, err := importService.Run(ctx, feed, c.importFormat())
	if err != nil {
		return fmt.Errorf("import run failed: %w", err)
	}

	return output.ImportResult(result, outputConfig)
}

// newAssignmentStore picks the redis store when configured and falls back
// to the in-memory store otherwise.
func (c *RunCommand) newAssignmentStore(env *config.Config) repositories.AssignmentStore {
	if env.RedisAddr == "" {
		return memory.NewAssignmentStore()
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     env.RedisAddr,
		Password: env.RedisPassword,
		DB:       env.RedisDB,
	})
	return redis.NewAssignmentStore(client)
}

func (c *RunCommand) importFormat() feeds.Format {
	if strings.EqualFold(filepath.Ext(c.config.ImportFile), ".json") {
		return feeds.FormatJSON
	}
	return feeds.FormatCSV
}

func (c *RunCommand) validateInputs() error {
	if c.config.SuppliersFile == "" || c.config.VariantsFile == "" {
		return fmt.Errorf("both -suppliers and -variants files are required")
	}
	if c.config.ImportFile == "" && c.config.Report == "" {
		return fmt.Errorf("nothing to do: provide -import and/or -report")
	}
	if c.config.Format != "text" && c.config.Format != "json" {
		return fmt.Errorf("unsupported format: %s (expected text or json)", c.config.Format)
	}
	return nil
}

func (c *RunCommand) showHelp() {
	fmt.Println("skuwatch - supplier assignment and inventory risk engine")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  skuwatch -suppliers suppliers.csv -variants variants.csv [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -suppliers FILE   Supplier catalog fixture (CSV)")
	fmt.Println("  -variants FILE    Variant index fixture (CSV)")
	fmt.Println("  -import FILE      Import feed to reconcile (.csv or .json)")
	fmt.Println("  -report KIND      Report to print: risk or stats")
	fmt.Println("  -format FORMAT    Output format: text or json (default text)")
	fmt.Println("  -verbose          Enable verbose output")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  SKUWATCH_REDIS_ADDR     Use a redis-backed assignment store")
	fmt.Println("  SKUWATCH_COMMIT_DELAY   Inter-commit throttle (default 120ms)")
}
