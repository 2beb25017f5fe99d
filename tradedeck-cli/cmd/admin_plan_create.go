package main

import (
	"fmt"
	"io/ioutil"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck"
)

// readPlanFile reads a pricing plan definition from a JSON or YAML file.
func readPlanFile(filename string) (tradedeck.PricingPlan, error) {
	plan := tradedeck.PricingPlan{}
	planBytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return plan, errors.Wrapf(err, "error reading plan file %s", filename)
	}
	if err := yaml.Unmarshal(planBytes, &plan); err != nil {
		return plan, errors.Wrapf(err, "error parsing plan file %s", filename)
	}
	return plan, nil
}

func adminPlanCreate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("admin plan create requires one argument-- a plan " +
			"definition file")
	}

	plan, err := readPlanFile(c.Args().Get(0))
	if err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	message, err := client.Admin().CreatePricingPlan(c.Context, plan)
	if err != nil {
		return err
	}

	if message == "" {
		message = fmt.Sprintf("Pricing plan %q has been created.", plan.Name)
	}
	fmt.Println(message)

	return nil
}
