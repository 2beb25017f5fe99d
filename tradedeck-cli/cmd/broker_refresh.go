package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func brokerRefresh(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("broker refresh requires one argument-- a broker " +
			"API ID")
	}
	brokerAPIID := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	message, err := client.Brokers().Refresh(c.Context, brokerAPIID)
	if err != nil {
		return err
	}

	if message == "" {
		message = fmt.Sprintf("Broker %s has been refreshed.", brokerAPIID)
	}
	fmt.Println(message)

	return nil
}
