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

func adminStrategyList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("admin strategy list requires no arguments")
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

	strategies, err := client.Admin().ListStrategies(
		c.Context,
		c.String(flagSearch),
	)
	if err != nil {
		return err
	}

	if len(strategies) == 0 {
		fmt.Println("No strategies found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "USER", "ACTIVE?")
		for _, strategy := range strategies {
			table.AddRow(
				strategy.ID,
				strategy.Name,
				strategy.User.Email,
				strategy.IsActive,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(strategies)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from admin strategy list operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(strategies, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from admin strategy list operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
