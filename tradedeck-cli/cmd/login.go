package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck"
	"github.com/tradedeck/tradedeck/internal/session"
)

// promptCredentials collects an email address and password, falling back to
// stdin for whatever the flags didn't provide.
func promptCredentials(email, password string) (string, string, error) {
	reader := bufio.NewReader(os.Stdin)
	var err error
	for {
		email = strings.TrimSpace(email)
		if email != "" {
			break
		}
		fmt.Print("Email? ")
		if email, err = reader.ReadString('\n'); err != nil {
			return "", "", errors.Wrap(err, "error reading email from stdin")
		}
	}
	for {
		password = strings.TrimSpace(password)
		if password != "" {
			break
		}
		fmt.Print("Password? ")
		if password, err = reader.ReadString('\n'); err != nil {
			return "", "", errors.Wrap(err, "error reading password from stdin")
		}
	}
	return email, password, nil
}

func login(c *cli.Context) error {
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

	authDetails, err := client.Users().Login(
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
		session.ScopeUser,
		session.Session{
			AccessToken:  authDetails.AccessToken,
			RefreshToken: authDetails.RefreshToken,
			TokenType:    authDetails.TokenType,
			Principal:    authDetails.User,
		},
	); err != nil {
		return errors.Wrap(err, "error persisting session")
	}

	fmt.Println("\nYou are logged in.")

	return nil
}
