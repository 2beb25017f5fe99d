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

func adminUserList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("admin user list requires no arguments")
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

	users, err := client.Admin().ListUsers(c.Context, c.String(flagSearch))
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "EMAIL", "ROLE", "STATUS", "LAST LOGIN")
		for _, user := range users {
			table.AddRow(
				user.ID,
				user.FullName,
				user.Email,
				user.Role,
				user.Status,
				user.LastLogin,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(users)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from admin user list operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(users, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from admin user list operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
