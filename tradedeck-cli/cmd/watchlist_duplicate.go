package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func watchlistDuplicate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("watchlist duplicate requires one argument-- a " +
			"watchlist item ID")
	}
	itemID := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	message, err := client.Watchlist().Duplicate(c.Context, itemID)
	if err != nil {
		return err
	}

	if message == "" {
		message = fmt.Sprintf("Watchlist item %s has been duplicated.", itemID)
	}
	fmt.Println(message)

	return nil
}
