package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func adminSettingsGet(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("admin settings get requires one argument-- a " +
			"settings section")
	}
	section := c.Args().Get(0)

	// Command-specific flags
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting tradedeck client")
	}

	settings, err := client.Admin().GetSettings(c.Context, section)
	if err != nil {
		return err
	}

	// Settings sections are opaque documents, so table output degrades to
	// JSON.
	switch strings.ToLower(output) {
	case "yaml":
		yamlBytes, err := yaml.Marshal(settings)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from admin settings get operation",
			)
		}
		fmt.Println(string(yamlBytes))

	default:
		prettyJSON, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from admin settings get operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
