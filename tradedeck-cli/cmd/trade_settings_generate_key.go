package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck"
)

func tradeSettingsGenerateKey(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("trade-settings generate-key requires one " +
			"argument-- a settings section")
	}
	section := tradedeck.TradeSettingsSection(c.Args().Get(0))

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	key, err := client.TradeSettings().GenerateKey(c.Context, section)
	if err != nil {
		return err
	}

	fmt.Printf("New %s trading key: %s\n", section, key.TradingKey)

	return nil
}
