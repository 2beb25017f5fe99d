package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck"
)

func register(c *cli.Context) error {
	name := c.String(flagFullName)
	mobile := c.String(flagMobile)

	email, password, err := promptCredentials(
		c.String(flagEmail),
		c.String(flagPassword),
	)
	if err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	message, err := client.Users().Register(
		c.Context,
		tradedeck.RegistrationRequest{
			Name:     name,
			Email:    email,
			Phone:    mobile,
			Password: password,
		},
	)
	if err != nil {
		return err
	}

	if message == "" {
		message = "Registration was successful. Please log in to continue."
	}
	fmt.Println(message)

	return nil
}
