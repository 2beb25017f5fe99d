package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck/internal/session"
)

func logout(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("logout requires no arguments")
	}

	sessions, err := getSessions()
	if err != nil {
		return err
	}

	// Logout is purely local. There is no server-side session to revoke;
	// clearing an already-cleared scope is a no-op.
	if err := sessions.Clear(session.ScopeUser); err != nil {
		return errors.Wrap(err, "error clearing session")
	}

	fmt.Println("Logout was successful.")

	return nil
}
