package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck/internal/session"
)

func adminLogout(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("admin logout requires no arguments")
	}

	sessions, err := getSessions()
	if err != nil {
		return err
	}

	// Only the admin scope is cleared. A user-scope session, if any, is left
	// untouched.
	if err := sessions.Clear(session.ScopeAdmin); err != nil {
		return errors.Wrap(err, "error clearing session")
	}

	fmt.Println("Logout was successful.")

	return nil
}
