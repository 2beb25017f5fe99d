package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func tradeSettingsGet(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("trade-settings get requires no arguments")
	}

	// Command-specific flags
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	settings, err := client.TradeSettings().Get(c.Context)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("SECTION", "TRADING KEY", "WEBHOOK URL")
		table.AddRow(
			"tradingview",
			settings.TradingView.TradingKey,
			settings.TradingView.WebhookURL,
		)
		table.AddRow("amibroker", settings.Amibroker.TradingKey, "")
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(settings)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from trade-settings get operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from trade-settings get operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
