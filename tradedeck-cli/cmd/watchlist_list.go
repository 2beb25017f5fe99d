package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck/api/watchlist"
)

func watchlistList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("watchlist list requires no arguments")
	}

	// Command-specific flags
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	page, err := client.Watchlist().List(
		c.Context,
		watchlist.ListOptions{
			Page:   c.Int(flagPage),
			Limit:  c.Int(flagLimit),
			Search: c.String(flagSearch),
		},
	)
	if err != nil {
		return err
	}

	if len(page.Items) == 0 {
		fmt.Println("No watchlist items found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "SYMBOL", "QTY", "STRATEGY", "ACTIVE?")
		for _, item := range page.Items {
			table.AddRow(
				item.Key(),
				item.ExchangeSymbol,
				item.Quantity(),
				item.Strategy,
				item.IsActive,
			)
		}
		fmt.Println(table)
		if page.TotalPages > 1 {
			fmt.Printf("\nPage %d of %d\n", page.Page, page.TotalPages)
		}

	case "yaml":
		yamlBytes, err := yaml.Marshal(page.Items)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from watchlist list operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(page.Items, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from watchlist list operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
