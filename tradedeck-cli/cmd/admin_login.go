package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck"
	"github.com/tradedeck/tradedeck/internal/session"
)

func adminLogin(c *cli.Context) error {
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

	authDetails, err := client.Admin().Login(
		c.Context,
		tradedeck.LoginRequest{
			Email:    email,
			Password: password,
		},
	)
	if err != nil {
		return err
	}

	sessions, err := getSessions()
	if err != nil {
		return err
	}
	if err := sessions.Set(
		session.ScopeAdmin,
		session.Session{
			AccessToken:  authDetails.AccessToken,
			RefreshToken: authDetails.RefreshToken,
			TokenType:    authDetails.TokenType,
			Principal:    authDetails.Admin,
		},
	); err != nil {
		return errors.Wrap(err, "error persisting session")
	}

	fmt.Println("\nYou are logged in to the admin console.")

	return nil
}
