package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"marketplace/config"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/usecase"
	"marketplace/internal/usecase/impl"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - backfill-slugs:             Derive slugs for categories without one
// - backfill-order-seller:      Assign a default seller to orders without one
// - migrate-order-associations: Infer seller and hotel references of legacy orders
// - backfill-buyer-names:       Fill blank buyer names from a candidate list

type maintenanceFlags struct {
	BackfillSlugs            *flag.FlagSet
	BackfillOrderSeller      *flag.FlagSet
	MigrateOrderAssociations *flag.FlagSet
	BackfillBuyerNames       *flag.FlagSet
	defaultSeller            *string
	candidateNames           *string
}

// jobDeps are the usecases a maintenance job may call.
type jobDeps struct {
	fx.In

	Categories usecase.CategoryUsecase
	Migrations usecase.OrderMigrationUsecase
	Logger     *slog.Logger
}

type job func(ctx context.Context, deps jobDeps) error

func newMaintenanceFlags(handling flag.ErrorHandling) *maintenanceFlags {
	flags := &maintenanceFlags{
		BackfillSlugs:            flag.NewFlagSet("backfill-slugs", handling),
		BackfillOrderSeller:      flag.NewFlagSet("backfill-order-seller", handling),
		MigrateOrderAssociations: flag.NewFlagSet("migrate-order-associations", handling),
		BackfillBuyerNames:       flag.NewFlagSet("backfill-buyer-names", handling),
	}
	flags.defaultSeller = flags.BackfillOrderSeller.String("seller", "", "ID of the seller assigned to orders without one")
	flags.candidateNames = flags.BackfillBuyerNames.String("names", "", "Comma-separated buyer name candidates")

	return flags
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	selected, err := selectJob(newMaintenanceFlags(flag.ExitOnError), os.Args[1], os.Args[2:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if err := run(selected); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func selectJob(flags *maintenanceFlags, name string, args []string) (job, error) {
	switch name {
	case flags.BackfillSlugs.Name():
		if err := flags.BackfillSlugs.Parse(args); err != nil {
			return nil, errors.WithStack(err)
		}

		return backfillSlugs, nil

	case flags.BackfillOrderSeller.Name():
		if err := flags.BackfillOrderSeller.Parse(args); err != nil {
			return nil, errors.WithStack(err)
		}
		sellerID, err := uuid.Parse(*flags.defaultSeller)
		if err != nil {
			return nil, errors.Wrap(err, "-seller must be a valid ID")
		}

		return backfillOrderSeller(sellerID), nil

	case flags.MigrateOrderAssociations.Name():
		if err := flags.MigrateOrderAssociations.Parse(args); err != nil {
			return nil, errors.WithStack(err)
		}

		return migrateOrderAssociations, nil

	case flags.BackfillBuyerNames.Name():
		if err := flags.BackfillBuyerNames.Parse(args); err != nil {
			return nil, errors.WithStack(err)
		}

		return backfillBuyerNames(strings.Split(*flags.candidateNames, ",")), nil

	default:
		return nil, errors.Errorf("unknown subcommand %q", name)
	}
}

// run starts the persistence stack, executes the job and stops everything again.
func run(selected job) error {
	var deps jobDeps
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			postgres.NewBusinessRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			impl.NewCategoryService,
			impl.NewOrderMigrationService,
		),
		fx.Populate(&deps),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start maintenance app")
	}
	defer func() {
		if err := app.Stop(ctx); err != nil {
			slog.Error("Failed to stop maintenance app", slog.Any("error", err))
		}
	}()

	start := time.Now()
	if err := selected(ctx, deps); err != nil {
		return err
	}
	deps.Logger.Info("Maintenance job finished", slog.String("elapsed", util.FormatDuration(time.Since(start))))

	return nil
}

func backfillSlugs(ctx context.Context, deps jobDeps) error {
	updated, err := deps.Categories.BackfillMissingSlugs(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Categories updated: %d\n", updated)

	return nil
}

func backfillOrderSeller(sellerID uuid.UUID) job {
	return func(ctx context.Context, deps jobDeps) error {
		report, err := deps.Migrations.BackfillSellerField(ctx, sellerID)
		if err != nil {
			return err
		}
		printReport(report)

		return nil
	}
}

func migrateOrderAssociations(ctx context.Context, deps jobDeps) error {
	report, err := deps.Migrations.MigrateLegacyAssociations(ctx)
	if report != nil {
		printReport(report)
	}

	return err
}

func backfillBuyerNames(candidates []string) job {
	return func(ctx context.Context, deps jobDeps) error {
		report, err := deps.Migrations.BackfillBuyerNames(ctx, candidates)
		if report != nil {
			printReport(report)
		}

		return err
	}
}

func printReport(report *usecase.MigrationReport) {
	fmt.Printf("Scanned: %d, modified: %d, skipped: %d\n", report.Scanned, report.Modified, report.Skipped)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: maintenance <subcommand> [flags]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Subcommands:")
	fmt.Fprintln(os.Stderr, "  backfill-slugs")
	fmt.Fprintln(os.Stderr, "  backfill-order-seller -seller <id>")
	fmt.Fprintln(os.Stderr, "  migrate-order-associations")
	fmt.Fprintln(os.Stderr, "  backfill-buyer-names -names <a,b,c>")
}
