package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck"
)

func passwordChange(c *cli.Context) error {
	currentPassword := c.String(flagCurrentPassword)
	newPassword := c.String(flagNewPassword)

	reader := bufio.NewReader(os.Stdin)
	var err error
	for {
		currentPassword = strings.TrimSpace(currentPassword)
		if currentPassword != "" {
			break
		}
		fmt.Print("Current password? ")
		if currentPassword, err = reader.ReadString('\n'); err != nil {
			return errors.Wrap(err, "error reading password from stdin")
		}
	}
	for {
		newPassword = strings.TrimSpace(newPassword)
		if newPassword != "" {
			break
		}
		fmt.Print("New password? ")
		if newPassword, err = reader.ReadString('\n'); err != nil {
			return errors.Wrap(err, "error reading password from stdin")
		}
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	message, err := client.Users().ChangePassword(
		c.Context,
		tradedeck.ChangePasswordRequest{
			CurrentPassword: currentPassword,
			NewPassword:     newPassword,
		},
	)
	if err != nil {
		return err
	}

	if message == "" {
		message = "Your password has been changed."
	}
	fmt.Println(message)

	return nil
}
