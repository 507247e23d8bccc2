package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"storeops/cmd"
	"storeops/internal"
	"storeops/internal/db/models/postgres/public/model"
	"storeops/internal/repository"
	"storeops/internal/service"
	"storeops/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type historyCsvRow struct {
	StoreID      string  `csv:"store_id"`
	Date         string  `csv:"date"`
	NetSales     float64 `csv:"net_sales"`
	Transactions int32   `csv:"transactions"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "storeops-script",
		Short: "ad-hoc operational tools for the goals portal",
	}
	rootCmd.AddCommand(importHistoryCmd())
	rootCmd.AddCommand(setTargetCmd())
	rootCmd.AddCommand(suggestCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func importHistoryCmd() *cobra.Command {
	var filePath string

	c := &cobra.Command{
		Use:   "import-history",
		Short: "upsert per-day store actuals from a csv export",
		RunE: func(c *cobra.Command, args []string) error {
			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)

			f, err := os.Open(filePath)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", filePath, err)
			}
			defer f.Close()

			csvRows := []historyCsvRow{}
			if err := gocsv.UnmarshalFile(f, &csvRows); err != nil {
				return fmt.Errorf("failed to parse csv: %w", err)
			}

			rows := make([]model.StoreDay, 0, len(csvRows))
			for _, r := range csvRows {
				storeID, err := uuid.Parse(r.StoreID)
				if err != nil {
					return fmt.Errorf("bad store id '%s': %w", r.StoreID, err)
				}
				date, err := util.ParseDate(r.Date)
				if err != nil {
					return fmt.Errorf("bad date '%s': %w", r.Date, err)
				}
				rows = append(rows, model.StoreDay{
					StoreID:      storeID,
					Date:         date,
					NetSales:     r.NetSales,
					Transactions: r.Transactions,
					CreatedAt:    time.Now().UTC(),
				})
			}

			if err := apiHandler.StoreDayRepository.Add(rows); err != nil {
				return err
			}
			fmt.Printf("imported %d store-day rows\n", len(rows))
			return nil
		},
	}
	c.Flags().StringVar(&filePath, "file", "", "csv file with store_id,date,net_sales,transactions")
	_ = c.MarkFlagRequired("file")

	return c
}

func setTargetCmd() *cobra.Command {
	var (
		storeIDStr    string
		monthStartStr string
		salesStr      string
		transactions  int32
	)

	c := &cobra.Command{
		Use:   "set-target",
		Short: "set the raw monthly target for one store/month",
		RunE: func(c *cobra.Command, args []string) error {
			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)

			storeID, err := uuid.Parse(storeIDStr)
			if err != nil {
				return fmt.Errorf("bad store id: %w", err)
			}
			monthStart, err := util.ParseDate(monthStartStr)
			if err != nil {
				return fmt.Errorf("bad month start: %w", err)
			}
			sales, err := decimal.NewFromString(salesStr)
			if err != nil {
				return fmt.Errorf("bad sales total '%s': %w", salesStr, err)
			}

			now := time.Now().UTC()
			monthlyGoalRepository := repository.NewMonthlyGoalRepository(apiHandler.Db)
			err = monthlyGoalRepository.Upsert(model.MonthlyGoal{
				StoreID:            storeID,
				MonthStart:         util.MonthStart(monthStart),
				NetSalesTarget:     sales,
				TransactionsTarget: transactions,
				CreatedAt:          now,
				ModifiedAt:         now,
			})
			if err != nil {
				return err
			}
			fmt.Printf("set target for %s %s: %s / %d\n", storeIDStr, monthStartStr, sales, transactions)
			return nil
		},
	}
	c.Flags().StringVar(&storeIDStr, "store", "", "store uuid")
	c.Flags().StringVar(&monthStartStr, "month", "", "target month start (YYYY-MM-01)")
	c.Flags().StringVar(&salesStr, "sales", "", "monthly net sales target")
	c.Flags().Int32Var(&transactions, "transactions", 0, "monthly transaction target")
	_ = c.MarkFlagRequired("store")
	_ = c.MarkFlagRequired("month")
	_ = c.MarkFlagRequired("sales")
	_ = c.MarkFlagRequired("transactions")

	return c
}

func suggestCmd() *cobra.Command {
	var (
		storeIDStr      string
		monthStartStr   string
		closedDatesText string
	)

	c := &cobra.Command{
		Use:   "suggest",
		Short: "run a suggestion for one store/month and print the grid",
		RunE: func(c *cobra.Command, args []string) error {
			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)

			storeID, err := uuid.Parse(storeIDStr)
			if err != nil {
				return fmt.Errorf("bad store id: %w", err)
			}
			monthStart, err := util.ParseDate(monthStartStr)
			if err != nil {
				return fmt.Errorf("bad month start: %w", err)
			}

			grid, err := apiHandler.GoalService.RunSuggestion(c.Context(), service.RunSuggestionInput{
				StoreID:         storeID,
				MonthStart:      monthStart,
				ClosedDatesText: closedDatesText,
				DowMultipliers:  [7]float64{1, 1, 1, 1, 1, 1, 1},
			})
			if err != nil {
				return err
			}

			internal.Pprint(grid)
			return nil
		},
	}
	c.Flags().StringVar(&storeIDStr, "store", "", "store uuid")
	c.Flags().StringVar(&monthStartStr, "month", "", "target month start (YYYY-MM-01)")
	c.Flags().StringVar(&closedDatesText, "closed", "", "free-text closed dates")
	_ = c.MarkFlagRequired("store")
	_ = c.MarkFlagRequired("month")

	return c
}
