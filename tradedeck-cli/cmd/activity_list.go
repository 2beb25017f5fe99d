package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck"
	"github.com/tradedeck/tradedeck/api/activity"
)

func activityList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("activity requires no arguments")
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

	page, err := client.Activity().List(
		c.Context,
		activity.ListOptions{
			Page:  c.Int(flagPage),
			Limit: c.Int(flagLimit),
		},
	)
	if err != nil {
		return err
	}

	return printActivityPage(output, page)
}

func printActivityPage(output string, page tradedeck.ActivityPage) error {
	if len(page.Entries) == 0 {
		fmt.Println("No activity found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("TIMESTAMP", "TYPE", "LOG")
		for _, entry := range page.Entries {
			table.AddRow(
				entry.Timestamp,
				entry.ActionType,
				entry.Log,
			)
		}
		fmt.Println(table)
		if page.Pagination.TotalPages > 1 {
			fmt.Printf(
				"\nPage %d of %d\n",
				page.Pagination.Page,
				page.Pagination.TotalPages,
			)
		}

	case "yaml":
		yamlBytes, err := yaml.Marshal(page.Entries)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from activity operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(page.Entries, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from activity operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
