package main

import "github.com/urfave/cli/v2"

const (
	flagAccessToken     = "access-token"
	flagAction          = "action"
	flagActive          = "active"
	flagAPIKey          = "api-key"
	flagAPISecret       = "api-secret"
	flagAppID           = "app-id"
	flagAppSecret       = "app-secret"
	flagBroker          = "broker"
	flagBrokerUserID    = "broker-user-id"
	flagClientID        = "client-id"
	flagCurrentPassword = "current-password"
	flagEmail           = "email"
	flagFullName        = "fullname"
	flagInsecure        = "insecure"
	flagLimit           = "limit"
	flagMobile          = "mobile"
	flagNewPassword     = "new-password"
	flagOutput          = "output"
	flagPage            = "page"
	flagPassword        = "password"
	flagPIN             = "pin"
	flagRole            = "role"
	flagSearch          = "search"
	flagStartDate       = "start-date"
	flagStatus          = "status"
	flagTOTPKey         = "totp-key"
)

var (
	cliFlagOutput = &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage: "Return output in another format. Supported formats: table, " +
			"json, yaml",
		Value: "table",
	}
	cliFlagPage = &cli.IntFlag{
		Name:  flagPage,
		Usage: "Retrieve the specified page of results",
		Value: 1,
	}
	cliFlagLimit = &cli.IntFlag{
		Name:  flagLimit,
		Usage: "Retrieve no more than the specified number of results per page",
	}
	cliFlagSearch = &cli.StringFlag{
		Name:    flagSearch,
		Aliases: []string{"s"},
		Usage:   "Narrow results using the specified search term",
	}
)
