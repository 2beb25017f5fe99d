package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func adminUserDelete(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("admin user delete requires one argument-- a user ID")
	}
	userID := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	message, err := client.Admin().DeleteUser(c.Context, userID)
	if err != nil {
		return err
	}

	if message == "" {
		message = fmt.Sprintf("User %s has been deleted.", userID)
	}
	fmt.Println(message)

	return nil
}
