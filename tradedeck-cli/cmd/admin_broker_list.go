package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck/api/admin"
)

func adminBrokerList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("admin broker list requires no arguments")
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

	page, err := client.Admin().ListBrokerSessions(
		c.Context,
		admin.BrokerListOptions{
			Page:   c.Int(flagPage),
			Limit:  c.Int(flagLimit),
			Search: c.String(flagSearch),
			Status: c.String(flagStatus),
		},
	)
	if err != nil {
		return err
	}

	if len(page.Sessions) == 0 {
		fmt.Println("No broker sessions found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "USER", "BROKER", "ACTIVE?", "STATUS", "EXPIRES")
		for _, sess := range page.Sessions {
			table.AddRow(
				sess.ID,
				sess.User.Email,
				sess.BrokerName,
				sess.IsActive,
				sess.Status,
				sess.ExpiresAt,
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
		yamlBytes, err := yaml.Marshal(page.Sessions)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from admin broker list operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(page.Sessions, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from admin broker list operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
