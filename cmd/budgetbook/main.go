package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/budgetbook/internal/domain"
	"github.com/iho/budgetbook/internal/infrastructure/config"
	"github.com/iho/budgetbook/internal/infrastructure/eventpublisher"
	"github.com/iho/budgetbook/internal/infrastructure/logger"
	"github.com/iho/budgetbook/internal/infrastructure/storage"
	"github.com/iho/budgetbook/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session is the ledger opened for one command.
type session struct {
	cfg     *config.Config
	log     zerolog.Logger
	storage *storage.Ledger
	events  *eventpublisher.EventPublisher
	ledger  *usecase.LedgerUseCase
}

type rootOptions struct {
	file     string
	backend  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	s := &session{}

	rootCmd := &cobra.Command{
		Use:           "budgetbook",
		Short:         "Personal income and expense ledger",
		Long:          `Record expenses and incomes, review them by month and keep them in a JSON ledger.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd.Context(), cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			s.close(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.file, "file", "", "Ledger JSON file (default $LEDGER_FILE or budgetbook.json)")
	rootCmd.PersistentFlags().StringVar(&opts.backend, "backend", "", "Storage backend: file or redis (default $STORAGE_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level for diagnostics on stderr")

	rootCmd.AddCommand(
		addCmd(s),
		listCmd(s),
		summaryCmd(s),
		editCmd(s),
		deleteCmd(s),
		categoriesCmd(s),
	)

	return rootCmd
}

func (s *session) open(ctx context.Context, cmd *cobra.Command, opts *rootOptions) error {
	if err := config.LoadDotenv(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.file != "" {
		cfg.LedgerFile = opts.file
	}
	if opts.backend != "" {
		cfg.StorageBackend = opts.backend
	}

	s.cfg = cfg
	s.log = logger.New(logger.Config{Level: opts.logLevel, Format: "console", Output: cmd.ErrOrStderr()})

	st, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	s.storage = st

	s.events = eventpublisher.NewEventPublisher(eventpublisher.Config{
		Publishers: []eventpublisher.Publisher{eventpublisher.NewLogPublisher(s.log)},
		Logger:     s.log,
	})

	s.ledger = usecase.NewLedgerUseCase(usecase.LedgerConfig{
		Repository: st.Repository,
		Events:     s.events,
	})

	found, err := s.ledger.LoadOrInit(ctx)
	if err != nil {
		return fmt.Errorf("open %s: %w", st.Repository.Location(), err)
	}
	if !found {
		s.log.Debug().Str("location", st.Repository.Location()).Msg("starting a new ledger")
	}
	return nil
}

func (s *session) close(ctx context.Context) {
	if s.events != nil {
		s.events.Drain(ctx)
	}
	if s.storage != nil {
		s.storage.Close()
	}
}

func addCmd(s *session) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add <expense|income> <amount> <category>",
		Short: "Add a record and save the ledger",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			amount, err := domain.ParseAmount(args[1])
			if err != nil {
				return err
			}

			view, err := s.ledger.AddRecord(cmd.Context(), usecase.AddRecordInput{
				Kind:     kind,
				Amount:   amount,
				Category: args[2],
				Date:     date,
			})
			if err != nil {
				return err
			}
			if err := s.ledger.Save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s %s on %s\n", view.Kind, view.Category, view.Amount.StringFixed(2), view.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Record date YYYY-MM-DD (default today)")
	return cmd
}

type monthFlags struct {
	period string
	sorted bool
}

func (f *monthFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.period, "period", "", "Month YYYY-MM (default current month)")
	cmd.Flags().BoolVar(&f.sorted, "sorted", false, "Order by date and time instead of insertion order")
}

func (f *monthFlags) resolve(s *session) string {
	if f.period == "" {
		return s.ledger.CurrentPeriod()
	}
	return f.period
}

func listCmd(s *session) *cobra.Command {
	month := &monthFlags{}

	cmd := &cobra.Command{
		Use:   "list <expense|income>",
		Short: "List one month's records with their numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			period := month.resolve(s)

			views, err := s.ledger.Render(cmd.Context(), kind, period, month.sorted)
			if err != nil {
				return err
			}

			printRecords(cmd.OutOrStdout(), kind, period, views)
			return nil
		},
	}

	month.register(cmd)
	return cmd
}

func printRecords(out io.Writer, kind domain.Kind, period string, views []usecase.RecordView) {
	if len(views) == 0 {
		fmt.Fprintf(out, "No %s records in %s\n", kind, period)
		return
	}

	total := decimal.Zero
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tDATE\tCATEGORY\tAMOUNT")
	for _, v := range views {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", v.DisplayID, v.Date, v.Category, v.Amount.StringFixed(2))
		total = total.Add(v.Amount)
	}
	w.Flush()

	fmt.Fprintf(out, "Total %s in %s: %s\n", kind, period, total.StringFixed(2))
}

func summaryCmd(s *session) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a month's totals, daily averages and the all-time balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if period == "" {
				period = s.ledger.CurrentPeriod()
			}

			m, err := s.ledger.MonthlySummary(cmd.Context(), period)
			if err != nil {
				return err
			}
			totals := s.ledger.Totals(cmd.Context())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Summary for %s\n", m.Period)
			fmt.Fprintf(out, "  Expenses: %s (%d records, %s per day)\n", m.TotalExpense.StringFixed(2), m.ExpenseCount, m.DailyAverageExpense.StringFixed(2))
			fmt.Fprintf(out, "  Incomes:  %s (%d records, %s per day)\n", m.TotalIncome.StringFixed(2), m.IncomeCount, m.DailyAverageIncome.StringFixed(2))
			fmt.Fprintf(out, "  Balance:  %s over %d days, %s\n", m.Balance.StringFixed(2), m.DaysCounted, m.Verdict)
			fmt.Fprintf(out, "All time: %s expenses, %s incomes, balance %s\n",
				totals.TotalExpense.StringFixed(2), totals.TotalIncome.StringFixed(2), totals.Balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "Month YYYY-MM (default current month)")
	return cmd
}

func selectRecord(cmd *cobra.Command, s *session, month *monthFlags, args []string) (usecase.RecordView, error) {
	kind, err := domain.ParseKind(args[0])
	if err != nil {
		return usecase.RecordView{}, err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return usecase.RecordView{}, fmt.Errorf("record number %q: %w", args[1], err)
	}

	return s.ledger.SelectDisplayed(cmd.Context(), kind, month.resolve(s), month.sorted, n)
}

func editCmd(s *session) *cobra.Command {
	month := &monthFlags{}
	var amount, category, date string

	cmd := &cobra.Command{
		Use:   "edit <expense|income> <n>",
		Short: "Edit the record listed as number n",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := selectRecord(cmd, s, month, args)
			if err != nil {
				return err
			}

			input := usecase.UpdateRecordInput{ID: view.ID}
			if cmd.Flags().Changed("amount") {
				a, err := domain.ParseAmount(amount)
				if err != nil {
					return err
				}
				input.Amount = &a
			}
			if cmd.Flags().Changed("category") {
				input.Category = &category
			}
			if cmd.Flags().Changed("date") {
				input.Date = &date
			}
			if input.Amount == nil && input.Category == nil && input.Date == nil {
				return fmt.Errorf("nothing to edit: set --amount, --category or --date")
			}

			updated, err := s.ledger.UpdateRecord(cmd.Context(), input)
			if err != nil {
				return err
			}
			if err := s.ledger.Save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s %s on %s\n", updated.Kind, updated.Category, updated.Amount.StringFixed(2), updated.Date)
			return nil
		},
	}

	month.register(cmd)
	cmd.Flags().StringVar(&amount, "amount", "", "New amount")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&date, "date", "", "New date YYYY-MM-DD")
	return cmd
}

func deleteCmd(s *session) *cobra.Command {
	month := &monthFlags{}

	cmd := &cobra.Command{
		Use:   "delete <expense|income> <n>",
		Short: "Delete the record listed as number n",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := selectRecord(cmd, s, month, args)
			if err != nil {
				return err
			}

			if err := s.ledger.DeleteRecord(cmd.Context(), view.ID); err != nil {
				return err
			}
			if err := s.ledger.Save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s %s on %s\n", view.Kind, view.Category, view.Amount.StringFixed(2), view.Date)
			return nil
		},
	}

	month.register(cmd)
	return cmd
}

func categoriesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "categories <expense|income>",
		Short: "List the categories of a kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			names, err := s.ledger.Categories(kind)
			if err != nil {
				return err
			}

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
