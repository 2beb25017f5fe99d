package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck"
)

func watchlistExecute(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("watchlist execute requires one argument-- a " +
			"watchlist item ID")
	}
	itemID := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	message, err := client.Watchlist().Execute(
		c.Context,
		itemID,
		tradedeck.ExecuteOrderRequest{
			Action:     c.String(flagAction),
			BrokerName: c.String(flagBroker),
		},
	)
	if err != nil {
		return err
	}

	if message == "" {
		message = fmt.Sprintf("Order for watchlist item %s has been placed.", itemID)
	}
	fmt.Println(message)

	return nil
}
