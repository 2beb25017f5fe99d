package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func tradeSettingsWebhookURL(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("trade-settings webhook-url requires no arguments")
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	webhookURL, err := client.TradeSettings().WebhookURL(c.Context)
	if err != nil {
		return err
	}

	fmt.Println(webhookURL.WebhookURL)

	return nil
}
