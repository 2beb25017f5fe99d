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

func adminPlanList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("admin plan list requires no arguments")
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

	plans, err := client.Admin().ListPricingPlans(c.Context)
	if err != nil {
		return err
	}

	if len(plans) == 0 {
		fmt.Println("No pricing plans found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "PRICE", "BILLING", "ACTIVE?")
		for _, plan := range plans {
			table.AddRow(
				plan.ID,
				plan.Name,
				fmt.Sprintf("%s %.2f", plan.Currency, plan.Price),
				plan.BillingPeriod,
				plan.IsActive,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(plans)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from admin plan list operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(plans, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from admin plan list operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
