package main

import (
	"fmt"
	"io/ioutil"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck"
)

func adminSettingsSet(c *cli.Context) error {
	// Args
	if c.Args().Len() != 2 {
		return errors.New("admin settings set requires two arguments-- a " +
			"settings section and a settings file")
	}
	section := c.Args().Get(0)
	filename := c.Args().Get(1)

	settingsBytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "error reading settings file %s", filename)
	}
	settings := tradedeck.AdminSettings{}
	if err := yaml.Unmarshal(settingsBytes, &settings); err != nil {
		return errors.Wrapf(err, "error parsing settings file %s", filename)
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	message, err := client.Admin().UpdateSettings(c.Context, section, settings)
	if err != nil {
		return err
	}

	if message == "" {
		message = fmt.Sprintf("Settings section %s has been updated.", section)
	}
	fmt.Println(message)

	return nil
}
