package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/utils/accounting"
	"github.com/google/subcommands"
)

type fiscalCloseCmd struct {
	env   *Env
	force bool
}

func (*fiscalCloseCmd) Name() string     { return "fiscal-close" }
func (*fiscalCloseCmd) Synopsis() string { return "close a fiscal year for an asset" }
func (*fiscalCloseCmd) Usage() string {
	return `fiscal-close [-force] <assetId> <year>

  Archives every ledger entry of <year> for the asset's account and records
  the closing balance carried into <year>+1. This cannot be undone; you are
  asked to confirm unless -force is given.
`
}

func (c *fiscalCloseCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "skip the confirmation prompt")
}

func (c *fiscalCloseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprint(c.env.Err, c.Usage())
		return subcommands.ExitUsageError
	}
	assetID, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(c.env.Err, "invalid assetId %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	year, err := strconv.Atoi(f.Arg(1))
	if err != nil {
		fmt.Fprintf(c.env.Err, "invalid year %q\n", f.Arg(1))
		return subcommands.ExitUsageError
	}

	if !c.force {
		ok, err := c.env.confirm(fmt.Sprintf("Close fiscal year %d for asset %d? All its entries will be archived.", year, assetID))
		if err != nil {
			fmt.Fprintf(c.env.Err, "fiscal-close: %v\n", err)
			return subcommands.ExitFailure
		}
		if !ok {
			fmt.Fprintln(c.env.Err, "aborted")
			return subcommands.ExitFailure
		}
	}

	return c.env.withServices(ctx, c.Name(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		closure, err := svc.FiscalYear.CloseFiscalYear(ctx, assetID, year)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.env.Out, "closed fiscal year %d for asset %d: archived %d entries, closing balance %s (opening balance of %d)\n",
			closure.FiscalYear, closure.AssetID, closure.ArchivedEntryCount, accounting.FormatMoney(closure.ClosingBalance), closure.OpeningYear())
		return nil
	})
}

type financialResyncCmd struct {
	env *Env
}

func (*financialResyncCmd) Name() string { return "financial-resync" }
func (*financialResyncCmd) Synopsis() string {
	return "create missing ledger entries from incomes and costs"
}
func (*financialResyncCmd) Usage() string {
	return `financial-resync

  Reconciles every stored income and cost against the ledger and creates the
  entries that are missing. Running it again creates nothing.
`
}

func (*financialResyncCmd) SetFlags(*flag.FlagSet) {}

func (c *financialResyncCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.withServices(ctx, c.Name(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		result, err := svc.Reconciliation.ResyncAll(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.env.Out, "created: %d\nskipped: %d\n", result.Created, result.Skipped)
		return nil
	})
}
