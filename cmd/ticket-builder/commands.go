package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourusername/clever-tickets/internal/models"
	"github.com/yourusername/clever-tickets/internal/service"
	"github.com/yourusername/clever-tickets/internal/strategy"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Derive market tables and value bets for a JSON match file",
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := a.readMatches(input)
			if err != nil {
				return err
			}

			analyses, err := a.analyzer.AnalyzeAll(cmd.Context(), matches)
			if err != nil {
				return err
			}
			return a.printJSON(analyses)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "Match file (JSON), - for stdin")
	return cmd
}

type ticketOutput struct {
	*models.Ticket
	ExpectedValue float64 `json:"expected_value"`
	ROIPercent    float64 `json:"roi_percent"`
}

func newTicketCmd(a *app) *cobra.Command {
	var (
		input        string
		strategyName string
		bankroll     float64
		legs         int
		oddsBand     bool
	)

	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Build a staked ticket for a strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strategy") {
				strategyName = a.cfg.Ticket.DefaultStrategy
			}
			if !cmd.Flags().Changed("bankroll") {
				bankroll = a.cfg.Ticket.DefaultBankroll
			}
			if cmd.Flags().Changed("odds-band") && oddsBand != a.cfg.Evaluation.UseOddsBand {
				a.cfg.Evaluation.UseOddsBand = oddsBand
				if err := a.rebuildAnalyzer(); err != nil {
					return err
				}
			}

			matches, err := a.readMatches(input)
			if err != nil {
				return err
			}

			t, err := a.analyzer.BuildTicket(cmd.Context(), service.TicketRequest{
				Strategy: strategyName,
				Bankroll: bankroll,
				Legs:     legs,
				Matches:  matches,
			})
			if err != nil {
				return err
			}
			return a.printJSON(ticketOutput{Ticket: t, ExpectedValue: t.ExpectedValue(), ROIPercent: t.GetROI()})
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "Match file (JSON), - for stdin")
	cmd.Flags().StringVarP(&strategyName, "strategy", "s", "", "Strategy name (default from config)")
	cmd.Flags().Float64VarP(&bankroll, "bankroll", "b", 0, "Bankroll (default from config)")
	cmd.Flags().IntVar(&legs, "legs", 0, "Maximum legs, 0 for the strategy's maximum")
	cmd.Flags().BoolVar(&oddsBand, "odds-band", false, "Drop candidates outside the recommended odds band")
	return cmd
}

func newStrategiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printJSON(strategy.All())
		},
	}
}

func (a *app) rebuildAnalyzer() error {
	analyzer, err := service.NewFromConfig(a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("failed to setup analyzer: %w", err)
	}
	a.analyzer = analyzer
	return nil
}

// readMatches accepts either a JSON array of matches or an object with a "matches" array
func (a *app) readMatches(path string) ([]service.MatchInput, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no matches supplied", models.ErrInvalidInput)
	}

	var matches []service.MatchInput
	if data[0] == '[' {
		err = json.Unmarshal(data, &matches)
	} else {
		var wrapper struct {
			Matches []service.MatchInput `json:"matches"`
		}
		err = json.Unmarshal(data, &wrapper)
		matches = wrapper.Matches
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse matches: %v", models.ErrInvalidInput, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no matches supplied", models.ErrInvalidInput)
	}
	return matches, nil
}
