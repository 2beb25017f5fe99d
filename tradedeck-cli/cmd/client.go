package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck/api"
	"github.com/tradedeck/tradedeck/internal/config"
	"github.com/tradedeck/tradedeck/internal/session"
)

// getSessions returns the session store shared by every command. Sessions
// live under ~/.tradedeck, one file per scope.
func getSessions() (session.Store, error) {
	sessions, err := session.NewHomeFileStore()
	if err != nil {
		return nil, errors.Wrap(err, "error locating session store")
	}
	return sessions, nil
}

func getClient(c *cli.Context) (api.Client, error) {
	cfg, err := config.GetConfigFromEnvironment()
	if err != nil {
		return nil, errors.Wrap(err, "error retrieving configuration")
	}
	sessions, err := getSessions()
	if err != nil {
		return nil, err
	}
	return api.NewClient(
		cfg.APIAddress,
		cfg.RedirectURI,
		sessions,
		cfg.AllowInsecure || c.Bool(flagInsecure),
	), nil
}
