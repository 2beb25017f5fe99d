package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck"
)

func adminUserUpdate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("admin user update requires one argument-- a user ID")
	}
	userID := c.Args().Get(0)

	// Command-specific flags
	update := tradedeck.AdminUserUpdate{
		FullName: c.String(flagFullName),
		Mobile:   c.String(flagMobile),
		Role:     c.String(flagRole),
		Status:   c.String(flagStatus),
	}
	if update == (tradedeck.AdminUserUpdate{}) {
		return errors.New("admin user update requires at least one flag")
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	message, err := client.Admin().UpdateUser(c.Context, userID, update)
	if err != nil {
		return err
	}

	if message == "" {
		message = fmt.Sprintf("User %s has been updated.", userID)
	}
	fmt.Println(message)

	return nil
}
