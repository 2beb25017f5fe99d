package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck/internal/session"
)

func whoami(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("whoami requires no arguments")
	}

	sessions, err := getSessions()
	if err != nil {
		return err
	}
	sess, err := sessions.Get(session.ScopeUser)
	if err != nil {
		return err
	}
	if !sess.Authenticated() {
		return errors.Errorf(
			"you are not logged in; please use `%s` to continue",
			session.ScopeUser.LoginCommand(),
		)
	}

	userID, err := sess.Principal.UserID()
	if err != nil {
		return err
	}
	fmt.Printf("You are logged in as user %s.\n", userID)

	// The expiry is advisory. A token that doesn't decode as a JWT simply
	// has no expiry to show.
	if expiry, err := session.TokenExpiry(sess.AccessToken); err == nil {
		fmt.Printf("Your session expires at %s.\n", expiry.Local())
	}

	return nil
}
