package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck/api/admin"
)

func adminActivityList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("admin activity requires no arguments")
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

	page, err := client.Admin().ListActivity(
		c.Context,
		admin.ActivityListOptions{
			Page:  c.Int(flagPage),
			Limit: c.Int(flagLimit),
		},
	)
	if err != nil {
		return err
	}

	return printActivityPage(output, page)
}
