package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func passwordForgot(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("password forgot requires one argument-- an email " +
			"address")
	}
	email := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	message, err := client.Users().ForgotPassword(c.Context, email)
	if err != nil {
		return err
	}

	if message == "" {
		message = "If the address is registered, a reset email is on its way."
	}
	fmt.Println(message)

	return nil
}
