package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck"
)

func profileUpdate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("profile update requires no arguments")
	}

	// Command-specific flags
	update := tradedeck.ProfileUpdate{
		Name:  c.String(flagFullName),
		Phone: c.String(flagMobile),
	}
	if update == (tradedeck.ProfileUpdate{}) {
		return errors.New("profile update requires at least one flag")
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	user, err := client.Users().UpdateProfile(c.Context, update)
	if err != nil {
		return err
	}

	fmt.Printf("Profile for %s has been updated.\n", user.Email)

	return nil
}
