package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cashease/backend/internal/application/session"
	insightuc "github.com/cashease/backend/internal/application/usecase/insight"
	reportuc "github.com/cashease/backend/internal/application/usecase/report"
	"github.com/cashease/backend/internal/domain/entity"
	"github.com/cashease/backend/internal/domain/insight"
	"github.com/cashease/backend/internal/integration/email"
	"github.com/cashease/backend/internal/integration/report"
)

type options struct {
	expensesPath string
	goalsPath    string
	limit        string
	streak       int
	month        string
	seed         int64
	currency     string
	today        string
	threshold    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "insights",
		Short:        "Spending summary and insights from CSV files",
		Long:         "Reads expenses (date,description,category,amount) and goals (name,amount,saved,target_date) from CSV files and prints a summary with advisory insights.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummary(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.expensesPath, "expenses", "e", "expenses.csv", "Expenses CSV file")
	flags.StringVarP(&opts.goalsPath, "goals", "g", "", "Goals CSV file (optional)")
	flags.StringVarP(&opts.limit, "limit", "l", "0", "Monthly spending limit, 0 for none")
	flags.IntVar(&opts.streak, "streak", 0, "Current savings streak in days")
	flags.StringVarP(&opts.month, "month", "m", "", "Restrict the report to a month (YYYY-MM)")
	flags.Int64Var(&opts.seed, "seed", 0, "Seed for the random tip, 0 for a random one")
	flags.StringVar(&opts.currency, "currency", envOr("INSIGHTS_CURRENCY", "₹"), "Currency symbol")
	flags.StringVar(&opts.today, "today", "", "Evaluate as of this date (YYYY-MM-DD)")
	flags.StringVar(&opts.threshold, "daily-threshold", envOr("INSIGHTS_DAILY_THRESHOLD", "1000"), "Average daily spend that triggers a warning")

	root.AddCommand(newReportCmd(opts))
	return root
}

func newReportCmd(opts *options) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF or CSV report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd.Context(), cmd.OutOrStdout(), opts, format, out)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "Report format: pdf or csv")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults to the suggested report name)")
	return cmd
}

// app is a loaded session plus the pieces needed to query it.
type app struct {
	sessions *session.Manager
	engine   *insight.Engine
	data     *dataset
}

func (o *options) load(ctx context.Context) (*app, error) {
	now := time.Now
	if o.today != "" {
		day, err := entity.ParseDate(o.today)
		if err != nil {
			return nil, fmt.Errorf("invalid --today %q: expected YYYY-MM-DD", o.today)
		}
		now = func() time.Time { return day.Add(12 * time.Hour) }
	}

	limit, err := decimal.NewFromString(o.limit)
	if err != nil || limit.IsNegative() {
		return nil, fmt.Errorf("invalid --limit %q", o.limit)
	}
	threshold, err := decimal.NewFromString(o.threshold)
	if err != nil {
		return nil, fmt.Errorf("invalid --daily-threshold %q", o.threshold)
	}
	if o.streak < 0 {
		return nil, errors.New("--streak must not be negative")
	}

	data := newDataset()
	if err := data.loadExpenses(ctx, o.expensesPath); err != nil {
		return nil, err
	}
	if o.goalsPath != "" {
		if err := data.loadGoals(ctx, o.goalsPath); err != nil {
			return nil, err
		}
	}
	if err := data.setLimit(ctx, limit); err != nil {
		return nil, err
	}
	if err := data.setStreak(ctx, o.streak); err != nil {
		return nil, err
	}

	sessions := session.NewManager(session.Store{
		Expenses: data.expenses,
		Goals:    data.goals,
		Budget:   data.budget,
		Streaks:  data.streaks,
	}, email.NewLogNotifier(), session.WithClock(now))
	if _, err := sessions.Open(ctx, data.userID); err != nil {
		return nil, err
	}

	engineOpts := []insight.Option{
		insight.WithCurrency(o.currency),
		insight.WithDailyThreshold(threshold),
	}
	if o.seed != 0 {
		rng := rand.New(rand.NewPCG(uint64(o.seed), uint64(o.seed)))
		engineOpts = append(engineOpts, insight.WithPicker(rng.IntN))
	}

	return &app{sessions: sessions, engine: insight.NewEngine(engineOpts...), data: data}, nil
}

func runSummary(ctx context.Context, w io.Writer, opts *options) error {
	a, err := opts.load(ctx)
	if err != nil {
		return err
	}

	summary, err := insightuc.NewGetSummaryUseCase(a.sessions).Execute(ctx, insightuc.GetSummaryInput{UserID: a.data.userID})
	if err != nil {
		return err
	}
	insights, err := insightuc.NewGetInsightsUseCase(a.sessions, a.engine).Execute(ctx, insightuc.GetInsightsInput{UserID: a.data.userID})
	if err != nil {
		return err
	}

	money := func(d decimal.Decimal) string { return opts.currency + d.StringFixed(2) }

	fmt.Fprintln(w, "SUMMARY")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total spent\t%s\n", money(summary.TotalSpent))
	fmt.Fprintf(tw, "Expenses\t%d\n", summary.ExpenseCount)
	fmt.Fprintf(tw, "Average daily\t%s\n", money(summary.AverageDaily))
	fmt.Fprintf(tw, "This month\t%s\n", money(summary.CurrentMonthTotal))
	if summary.Limit.IsPositive() {
		fmt.Fprintf(tw, "Monthly limit\t%s\n", money(summary.Limit))
	}
	if summary.HighestCategory != "" {
		fmt.Fprintf(tw, "Top category\t%s\n", summary.HighestCategory)
	}
	fmt.Fprintf(tw, "Savings streak\t%d\n", summary.Streak.Count)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(summary.Categories) > 0 {
		fmt.Fprintln(w, "\nCATEGORIES")
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		for _, c := range summary.Categories {
			fmt.Fprintf(tw, "%s\t%s\t%s%%\t\n", c.Category, money(c.Amount), c.Percent.StringFixed(1))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "\nINSIGHTS")
	for _, i := range insights.Insights {
		fmt.Fprintf(w, "[%s] %s\n", strings.ToUpper(string(i.Level)), i.Message)
	}
	return nil
}

func runReport(ctx context.Context, w io.Writer, opts *options, format, out string) error {
	a, err := opts.load(ctx)
	if err != nil {
		return err
	}
	uc := reportuc.NewExportReportUseCase(a.sessions, report.Renderers(), opts.currency)
	result, err := uc.Execute(ctx, reportuc.ExportReportInput{
		UserID: a.data.userID,
		Format: format,
		Month:  opts.month,
	})
	if err != nil {
		return err
	}

	if out == "" {
		out = result.Filename
	}
	if err := os.WriteFile(out, result.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintf(w, "Wrote %s (%d bytes)\n", out, len(result.Content))
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
