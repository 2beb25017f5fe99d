package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func adminPlanDelete(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("admin plan delete requires one argument-- a plan ID")
	}
	planID := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	message, err := client.Admin().DeletePricingPlan(c.Context, planID)
	if err != nil {
		return err
	}

	if message == "" {
		message = fmt.Sprintf("Pricing plan %s has been deleted.", planID)
	}
	fmt.Println(message)

	return nil
}
