package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func tradeSettingsApply(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("trade-settings apply requires one argument-- a " +
			"settings file")
	}
	filename := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	message, err := client.TradeSettings().ApplyFile(c.Context, filename)
	if err != nil {
		return err
	}

	if message == "" {
		message = "Trade settings have been updated."
	}
	fmt.Println(message)

	return nil
}
