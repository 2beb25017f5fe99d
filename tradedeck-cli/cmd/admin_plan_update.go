package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func adminPlanUpdate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 2 {
		return errors.New("admin plan update requires two arguments-- a plan " +
			"ID and a plan definition file")
	}
	planID := c.Args().Get(0)

	plan, err := readPlanFile(c.Args().Get(1))
	if err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	message, err := client.Admin().UpdatePricingPlan(c.Context, planID, plan)
	if err != nil {
		return err
	}

	if message == "" {
		message = fmt.Sprintf("Pricing plan %s has been updated.", planID)
	}
	fmt.Println(message)

	return nil
}
