package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func watchlistAnalytics(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("watchlist analytics requires one argument-- a " +
			"watchlist item ID")
	}
	itemID := c.Args().Get(0)

	// Command-specific flags
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	analytics, err := client.Watchlist().Analytics(c.Context, itemID)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("SYMBOL", "TRADES", "WIN RATE", "PROFIT FACTOR", "NET P&L")
		table.AddRow(
			analytics.Symbol,
			analytics.TotalTrades,
			analytics.WinRate,
			analytics.ProfitFactor,
			analytics.NetPnL,
		)
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(analytics)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from watchlist analytics operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(analytics, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from watchlist analytics operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
