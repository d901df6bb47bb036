package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"fundsignal/cmd"
	"fundsignal/internal"
	"fundsignal/internal/domain"
	"fundsignal/internal/service"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	_ "github.com/lib/pq"
)

var (
	flagTickers []string
	flagFile    string
	flagEndDate string
	flagModel   string
)

type tickerRow struct {
	Ticker string `csv:"ticker"`
}

func loadTickersFromCsv(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ticker file: %w", err)
	}
	defer f.Close()

	rows := []tickerRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("could not parse ticker file: %w", err)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Ticker != "" {
			out = append(out, row.Ticker)
		}
	}
	return out, nil
}

func runAnalyze(c *cobra.Command, args []string) error {
	tickers := flagTickers
	if flagFile != "" {
		fromFile, err := loadTickersFromCsv(flagFile)
		if err != nil {
			return err
		}
		tickers = append(tickers, fromFile...)
	}

	endDate := time.Now().UTC()
	if flagEndDate != "" {
		parsed, err := time.Parse(time.DateOnly, flagEndDate)
		if err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
		endDate = parsed
	}

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(apiHandler)

	profile, endProfile := domain.NewProfile()
	defer endProfile()
	ctx := context.WithValue(c.Context(), domain.ContextProfileKey, profile)

	analyses, err := apiHandler.SignalAnalysisService.Analyze(ctx, service.SignalAnalysisRequest{
		Tickers: tickers,
		EndDate: endDate,
		Model:   flagModel,
	})
	if err != nil {
		return err
	}

	internal.Pprint(analyses)

	endProfile()
	internal.Pprint(profile.Spans)
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "fundsignal",
		Short: "fundamental signal pipeline",
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "score tickers and produce trading signals",
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringSliceVar(&flagTickers, "tickers", nil, "tickers to analyze")
	analyzeCmd.Flags().StringVar(&flagFile, "file", "", "csv file with a ticker column")
	analyzeCmd.Flags().StringVar(&flagEndDate, "end-date", "", "analysis end date (YYYY-MM-DD), defaults to today")
	analyzeCmd.Flags().StringVar(&flagModel, "model", "", "review model, defaults to the configured one")
	rootCmd.AddCommand(analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
