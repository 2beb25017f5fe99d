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

func adminDashboard(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("admin dashboard requires no arguments")
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

	dashboard, err := client.Admin().Dashboard(c.Context)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("METRIC", "TOTAL", "DETAIL")
		table.AddRow(
			"Users",
			dashboard.Summary.TotalUsers.Total,
			fmt.Sprintf("%d active", dashboard.Summary.TotalUsers.Active),
		)
		table.AddRow(
			"Brokers",
			dashboard.Summary.Brokers.Total,
			fmt.Sprintf("%d connected", dashboard.Summary.Brokers.Connected),
		)
		table.AddRow(
			"Orders",
			dashboard.Summary.TotalOrders.AllTime,
			fmt.Sprintf("%d this month", dashboard.Summary.TotalOrders.ThisMonth),
		)
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(dashboard)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from admin dashboard operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(dashboard, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from admin dashboard operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
