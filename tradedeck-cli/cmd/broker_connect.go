package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck"
)

// submitBrokerCredentials runs one broker credential submission and reports
// the outcome. Validation failures surface here before anything is sent.
func submitBrokerCredentials(
	c *cli.Context,
	credentials tradedeck.BrokerCredentials,
) error {
	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	result, err := client.Brokers().Login(c.Context, credentials)
	if err != nil {
		return err
	}

	message := result.Message
	if message == "" {
		message = fmt.Sprintf("Broker %s has been linked.", credentials.Broker())
	}
	fmt.Println(message)
	if result.Account != nil {
		fmt.Printf(
			"Linked account: %s (%s)\n",
			result.Account.DisplayName(),
			result.Account.DisplayID(),
		)
	}

	return nil
}

func brokerConnectAngelOne(c *cli.Context) error {
	return submitBrokerCredentials(c, tradedeck.AngelOneCredentials{
		BrokerUserID: c.String(flagBrokerUserID),
		Password:     c.String(flagPassword),
		APIKey:       c.String(flagAPIKey),
		TOTPKey:      c.String(flagTOTPKey),
	})
}

func brokerConnectAliceBlue(c *cli.Context) error {
	return submitBrokerCredentials(c, tradedeck.AliceBlueCredentials{
		BrokerUserID: c.String(flagBrokerUserID),
		APIKey:       c.String(flagAPIKey),
	})
}

func brokerConnectDhan(c *cli.Context) error {
	return submitBrokerCredentials(c, tradedeck.DhanCredentials{
		AccessToken: c.String(flagAccessToken),
	})
}

func brokerConnectFyers(c *cli.Context) error {
	return submitBrokerCredentials(c, tradedeck.FyersCredentials{
		ClientID:  c.String(flagClientID),
		Password:  c.String(flagPassword),
		PIN:       c.String(flagPIN),
		AppID:     c.String(flagAppID),
		AppSecret: c.String(flagAppSecret),
	})
}

func brokerConnectZerodha(c *cli.Context) error {
	return submitBrokerCredentials(c, tradedeck.ZerodhaCredentials{
		UserID:    c.String(flagBrokerUserID),
		Password:  c.String(flagPassword),
		APIKey:    c.String(flagAPIKey),
		APISecret: c.String(flagAPISecret),
		PIN:       c.String(flagPIN),
	})
}

func brokerConnectUpstox(c *cli.Context) error {
	return submitBrokerCredentials(c, tradedeck.UpstoxCredentials{
		APIKey:    c.String(flagAPIKey),
		APISecret: c.String(flagAPISecret),
	})
}
