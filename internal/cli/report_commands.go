package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"text/tabwriter"

	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/utils/accounting"
	"github.com/google/subcommands"
)

type mortgageCalcCmd struct {
	env      *Env
	schedule bool
}

func (*mortgageCalcCmd) Name() string     { return "mortgage-calc" }
func (*mortgageCalcCmd) Synopsis() string { return "print the breakdown of a mortgage" }
func (*mortgageCalcCmd) Usage() string {
	return `mortgage-calc [-schedule] <mortgageId>

  Prints ship cost, mortgage and insurance payments and the total financed
  amount. With -schedule the installment plan is printed as well.
`
}

func (c *mortgageCalcCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.schedule, "schedule", false, "also print the installment schedule")
}

func (c *mortgageCalcCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(c.env.Err, c.Usage())
		return subcommands.ExitUsageError
	}
	mortgageID, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(c.env.Err, "invalid mortgageId %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	return c.env.withServices(ctx, c.Name(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		b, err := svc.Mortgage.GetBreakdown(ctx, mortgageID)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(c.env.Out, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "ship cost\t%s\t\n", accounting.FormatMoney(b.ShipCost))
		fmt.Fprintf(w, "mortgage monthly\t%s\t\n", accounting.FormatMoney(b.MortgageMonthly))
		fmt.Fprintf(w, "mortgage annual\t%s\t\n", accounting.FormatMoney(b.MortgageAnnual))
		fmt.Fprintf(w, "insurance monthly\t%s\t\n", accounting.FormatMoney(b.InsuranceMonthly))
		fmt.Fprintf(w, "insurance annual\t%s\t\n", accounting.FormatMoney(b.InsuranceAnnual))
		fmt.Fprintf(w, "total monthly\t%s\t\n", accounting.FormatMoney(b.TotalMonthly))
		fmt.Fprintf(w, "total annual\t%s\t\n", accounting.FormatMoney(b.TotalAnnual))
		fmt.Fprintf(w, "total mortgage\t%s\t\n", accounting.FormatMoney(b.TotalMortgage))
		if err := w.Flush(); err != nil {
			return err
		}

		if !c.schedule {
			return nil
		}
		s, err := svc.Mortgage.GetSchedule(ctx, mortgageID)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.env.Out, "\nschedule from %s\n", s.Start)
		w = tabwriter.NewWriter(c.env.Out, 0, 0, 2, ' ', tabwriter.AlignRight)
		for _, inst := range s.Installments {
			fmt.Fprintf(w, "%d\t%s\t%s\t\n", inst.Number, inst.Due, accounting.FormatMoney(inst.Amount))
		}
		return w.Flush()
	})
}

type budgetCmd struct {
	env *Env
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "print the projection of an annual budget" }
func (*budgetCmd) Usage() string {
	return `budget <budgetId>

  Prints total income, costs, remaining mortgage installments and the
  projected and actual budget of the stored period.
`
}

func (*budgetCmd) SetFlags(*flag.FlagSet) {}

func (c *budgetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(c.env.Err, c.Usage())
		return subcommands.ExitUsageError
	}
	budgetID := f.Arg(0)

	return c.env.withServices(ctx, c.Name(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		p, err := svc.Budget.ProjectBudget(ctx, budgetID)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.env.Out, "budget %s (%s .. %s)\n", budgetID, p.Start, p.End)
		w := tabwriter.NewWriter(c.env.Out, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "income\t%s\t\n", accounting.FormatMoney(p.TotalIncomeAmount))
		fmt.Fprintf(w, "costs\t%s\t\n", accounting.FormatMoney(p.TotalCostsAmount))
		fmt.Fprintf(w, "remaining installments\t%s\t\n", accounting.FormatMoney(p.RemainingInstallments))
		fmt.Fprintf(w, "mortgage annual\t%s\t\n", accounting.FormatMoney(p.MortgageAnnual))
		fmt.Fprintf(w, "projected budget\t%s\t\n", accounting.FormatMoney(p.ProjectedBudget))
		fmt.Fprintf(w, "actual budget\t%s\t\n", accounting.FormatMoney(p.ActualBudget))
		return w.Flush()
	})
}
