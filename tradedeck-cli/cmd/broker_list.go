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

func brokerList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("broker list requires no arguments")
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

	dashboard, err := client.Brokers().Dashboard(c.Context)
	if err != nil {
		return err
	}

	if len(dashboard.Brokers) == 0 {
		fmt.Println("No brokers found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "STATUS", "CONNECTED?", "BALANCE")
		for _, broker := range dashboard.Brokers {
			table.AddRow(
				broker.DisplayID(),
				broker.DisplayName(),
				broker.Status,
				broker.Connected,
				broker.Balance,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(dashboard.Brokers)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from broker list operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(dashboard.Brokers, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from broker list operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
