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

func watchlistChart(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("watchlist chart requires one argument-- a " +
			"watchlist item ID")
	}
	itemID := c.Args().Get(0)

	// Command-specific flags
	output := c.String(flagOutput)
	startDate := c.String(flagStartDate)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	points, err := client.Watchlist().Chart(c.Context, itemID, startDate)
	if err != nil {
		return err
	}

	if len(points) == 0 {
		fmt.Println("No chart data found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("DATE", "VALUE")
		for _, point := range points {
			table.AddRow(point.Date, point.Value)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(points)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from watchlist chart operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(points, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from watchlist chart operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
