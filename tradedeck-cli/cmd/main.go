package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/tradedeck/tradedeck/internal/config"
)

func main() {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if cfg, err := config.GetConfigFromEnvironment(); err == nil && cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	app := cli.NewApp()
	app.Name = "tradedeck"
	app.Usage = "Trade from the terminal"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    flagInsecure,
			Aliases: []string{"k"},
			Usage:   "Allow insecure API server connections when using TLS",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:  "login",
			Usage: "Log in to TradeDeck",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    flagEmail,
					Aliases: []string{"e"},
					Usage:   "The email address to log in with",
				},
				&cli.StringFlag{
					Name:    flagPassword,
					Aliases: []string{"p"},
					Usage:   "Specify the password non-interactively",
				},
			},
			Action: login,
		},
		{
			Name:   "logout",
			Usage:  "Log out of TradeDeck",
			Action: logout,
		},
		{
			Name:   "whoami",
			Usage:  "Show the logged-in user and session expiry",
			Action: whoami,
		},
		{
			Name:  "register",
			Usage: "Create a new TradeDeck account",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagFullName,
					Usage: "The new account's full name",
				},
				&cli.StringFlag{
					Name:    flagEmail,
					Aliases: []string{"e"},
					Usage:   "The new account's email address",
				},
				&cli.StringFlag{
					Name:  flagMobile,
					Usage: "The new account's mobile number",
				},
				&cli.StringFlag{
					Name:    flagPassword,
					Aliases: []string{"p"},
					Usage:   "Specify the password non-interactively",
				},
			},
			Action: register,
		},
		{
			Name:  "password",
			Usage: "Manage the account password",
			Subcommands: []*cli.Command{
				{
					Name:  "change",
					Usage: "Change the logged-in user's password",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  flagCurrentPassword,
							Usage: "The current password",
						},
						&cli.StringFlag{
							Name:  flagNewPassword,
							Usage: "The new password",
						},
					},
					Action: passwordChange,
				},
				{
					Name:      "forgot",
					Usage:     "Request a password reset email",
					ArgsUsage: "EMAIL",
					Action:    passwordForgot,
				},
			},
		},
		{
			Name:  "profile",
			Usage: "Manage the account profile",
			Subcommands: []*cli.Command{
				{
					Name:  "get",
					Usage: "Get the logged-in user's profile",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: profileGet,
				},
				{
					Name:  "update",
					Usage: "Update the logged-in user's profile",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  flagFullName,
							Usage: "The new full name",
						},
						&cli.StringFlag{
							Name:  flagMobile,
							Usage: "The new mobile number",
						},
					},
					Action: profileUpdate,
				},
			},
		},
		{
			Name:  "broker",
			Usage: "Manage broker links",
			Subcommands: []*cli.Command{
				{
					Name:  "connect",
					Usage: "Link a broker account",
					Subcommands: []*cli.Command{
						{
							Name:  "angelone",
							Usage: "Link an Angel One account",
							Flags: []cli.Flag{
								&cli.StringFlag{
									Name:  flagBrokerUserID,
									Usage: "The Angel One client code",
								},
								&cli.StringFlag{
									Name:    flagPassword,
									Aliases: []string{"p"},
									Usage:   "The Angel One password or PIN",
								},
								&cli.StringFlag{
									Name:  flagAPIKey,
									Usage: "The SmartAPI key",
								},
								&cli.StringFlag{
									Name:  flagTOTPKey,
									Usage: "The TOTP secret key",
								},
							},
							Action: brokerConnectAngelOne,
						},
						{
							Name:  "aliceblue",
							Usage: "Link an Alice Blue account",
							Flags: []cli.Flag{
								&cli.StringFlag{
									Name:  flagBrokerUserID,
									Usage: "The Alice Blue user ID",
								},
								&cli.StringFlag{
									Name:  flagAPIKey,
									Usage: "The Alice Blue API key",
								},
							},
							Action: brokerConnectAliceBlue,
						},
						{
							Name:  "dhan",
							Usage: "Link a Dhan account",
							Flags: []cli.Flag{
								&cli.StringFlag{
									Name:  flagAccessToken,
									Usage: "The Dhan access token",
								},
							},
							Action: brokerConnectDhan,
						},
						{
							Name:  "fyers",
							Usage: "Link a Fyers account",
							Flags: []cli.Flag{
								&cli.StringFlag{
									Name:  flagClientID,
									Usage: "The Fyers client ID",
								},
								&cli.StringFlag{
									Name:    flagPassword,
									Aliases: []string{"p"},
									Usage:   "The Fyers password",
								},
								&cli.StringFlag{
									Name:  flagPIN,
									Usage: "The Fyers PIN",
								},
								&cli.StringFlag{
									Name:  flagAppID,
									Usage: "The Fyers app ID",
								},
								&cli.StringFlag{
									Name:  flagAppSecret,
									Usage: "The Fyers app secret",
								},
							},
							Action: brokerConnectFyers,
						},
						{
							Name:  "zerodha",
							Usage: "Link a Zerodha account",
							Flags: []cli.Flag{
								&cli.StringFlag{
									Name:  flagBrokerUserID,
									Usage: "The Zerodha user ID",
								},
								&cli.StringFlag{
									Name:    flagPassword,
									Aliases: []string{"p"},
									Usage:   "The Zerodha password",
								},
								&cli.StringFlag{
									Name:  flagAPIKey,
									Usage: "The Kite Connect API key",
								},
								&cli.StringFlag{
									Name:  flagAPISecret,
									Usage: "The Kite Connect API secret",
								},
								&cli.StringFlag{
									Name:  flagPIN,
									Usage: "The Zerodha PIN",
								},
							},
							Action: brokerConnectZerodha,
						},
						{
							Name:  "upstox",
							Usage: "Link an Upstox account",
							Flags: []cli.Flag{
								&cli.StringFlag{
									Name:  flagAPIKey,
									Usage: "The Upstox API key",
								},
								&cli.StringFlag{
									Name:  flagAPISecret,
									Usage: "The Upstox API secret",
								},
							},
							Action: brokerConnectUpstox,
						},
					},
				},
				{
					Name:  "list",
					Usage: "List linked broker accounts",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: brokerList,
				},
				{
					Name:      "toggle",
					Usage:     "Enable or disable a linked broker account",
					ArgsUsage: "BROKER_API_ID",
					Action:    brokerToggle,
				},
				{
					Name:      "refresh",
					Usage:     "Refresh a linked broker account's session",
					ArgsUsage: "BROKER_API_ID",
					Action:    brokerRefresh,
				},
			},
		},
		{
			Name:  "watchlist",
			Usage: "Manage the watchlist",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "List watchlist items",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagPage,
						cliFlagLimit,
						cliFlagSearch,
					},
					Action: watchlistList,
				},
				{
					Name:      "duplicate",
					Usage:     "Duplicate a watchlist item",
					ArgsUsage: "ITEM_ID",
					Action:    watchlistDuplicate,
				},
				{
					Name:      "execute",
					Usage:     "Execute an order for a watchlist item",
					ArgsUsage: "ITEM_ID",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:    flagAction,
							Aliases: []string{"a"},
							Usage:   "The order action. Supported actions: BUY, SELL",
							Value:   "BUY",
						},
						&cli.StringFlag{
							Name:    flagBroker,
							Aliases: []string{"b"},
							Usage:   "Route the order through the specified broker",
						},
					},
					Action: watchlistExecute,
				},
				{
					Name:      "analytics",
					Usage:     "Get analytics for a watchlist item",
					ArgsUsage: "ITEM_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: watchlistAnalytics,
				},
				{
					Name:      "chart",
					Usage:     "Get chart data for a watchlist item",
					ArgsUsage: "ITEM_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
						&cli.StringFlag{
							Name:  flagStartDate,
							Usage: "Return data points from the specified date (YYYY-MM-DD)",
						},
					},
					Action: watchlistChart,
				},
			},
		},
		{
			Name:  "activity",
			Usage: "View the account activity log",
			Flags: []cli.Flag{
				cliFlagOutput,
				cliFlagPage,
				cliFlagLimit,
			},
			Action: activityList,
		},
		{
			Name:  "trade-settings",
			Usage: "Manage trade automation settings",
			Subcommands: []*cli.Command{
				{
					Name:  "get",
					Usage: "Get the current trade automation settings",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: tradeSettingsGet,
				},
				{
					Name:      "apply",
					Usage:     "Apply a trade automation settings file",
					ArgsUsage: "FILE",
					Action:    tradeSettingsApply,
				},
				{
					Name:      "generate-key",
					Usage:     "Generate a fresh trading key",
					ArgsUsage: "SECTION",
					Description: "Supported sections: tradingview, amibroker. " +
						"The previous key stops working immediately.",
					Action: tradeSettingsGenerateKey,
				},
				{
					Name:   "webhook-url",
					Usage:  "Show the TradingView webhook URL",
					Action: tradeSettingsWebhookURL,
				},
			},
		},
		{
			Name:  "admin",
			Usage: "Administer TradeDeck",
			Subcommands: []*cli.Command{
				{
					Name:  "login",
					Usage: "Log in to the admin console",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:    flagEmail,
							Aliases: []string{"e"},
							Usage:   "The email address to log in with",
						},
						&cli.StringFlag{
							Name:    flagPassword,
							Aliases: []string{"p"},
							Usage:   "Specify the password non-interactively",
						},
					},
					Action: adminLogin,
				},
				{
					Name:   "logout",
					Usage:  "Log out of the admin console",
					Action: adminLogout,
				},
				{
					Name:  "dashboard",
					Usage: "Show platform-wide summary counts",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: adminDashboard,
				},
				{
					Name:  "user",
					Usage: "Manage users",
					Subcommands: []*cli.Command{
						{
							Name:  "list",
							Usage: "List users",
							Flags: []cli.Flag{
								cliFlagOutput,
								cliFlagSearch,
							},
							Action: adminUserList,
						},
						{
							Name:      "update",
							Usage:     "Update a user",
							ArgsUsage: "USER_ID",
							Flags: []cli.Flag{
								&cli.StringFlag{
									Name:  flagFullName,
									Usage: "The user's new full name",
								},
								&cli.StringFlag{
									Name:  flagMobile,
									Usage: "The user's new mobile number",
								},
								&cli.StringFlag{
									Name:  flagRole,
									Usage: "The user's new role",
								},
								&cli.StringFlag{
									Name:  flagStatus,
									Usage: "The user's new status",
								},
							},
							Action: adminUserUpdate,
						},
						{
							Name:      "delete",
							Usage:     "Delete a user",
							ArgsUsage: "USER_ID",
							Action:    adminUserDelete,
						},
					},
				},
				{
					Name:  "broker",
					Usage: "Manage broker sessions platform-wide",
					Subcommands: []*cli.Command{
						{
							Name:  "list",
							Usage: "List broker sessions",
							Flags: []cli.Flag{
								cliFlagOutput,
								cliFlagPage,
								cliFlagLimit,
								cliFlagSearch,
								&cli.StringFlag{
									Name:  flagStatus,
									Usage: "Return sessions only in the specified status",
								},
							},
							Action: adminBrokerList,
						},
					},
				},
				{
					Name:  "plan",
					Usage: "Manage pricing plans",
					Subcommands: []*cli.Command{
						{
							Name:  "list",
							Usage: "List pricing plans",
							Flags: []cli.Flag{
								cliFlagOutput,
							},
							Action: adminPlanList,
						},
						{
							Name:      "create",
							Usage:     "Create a new pricing plan",
							ArgsUsage: "FILE",
							Action:    adminPlanCreate,
						},
						{
							Name:      "update",
							Usage:     "Update a pricing plan",
							ArgsUsage: "PLAN_ID FILE",
							Action:    adminPlanUpdate,
						},
						{
							Name:      "delete",
							Usage:     "Delete a pricing plan",
							ArgsUsage: "PLAN_ID",
							Action:    adminPlanDelete,
						},
					},
				},
				{
					Name:  "settings",
					Usage: "Manage platform settings",
					Subcommands: []*cli.Command{
						{
							Name:      "get",
							Usage:     "Get one section of the platform settings",
							ArgsUsage: "SECTION",
							Flags: []cli.Flag{
								cliFlagOutput,
							},
							Action: adminSettingsGet,
						},
						{
							Name:      "set",
							Usage:     "Replace one section of the platform settings",
							ArgsUsage: "SECTION FILE",
							Action:    adminSettingsSet,
						},
					},
				},
				{
					Name:  "strategy",
					Usage: "Manage strategies platform-wide",
					Subcommands: []*cli.Command{
						{
							Name:  "list",
							Usage: "List strategies",
							Flags: []cli.Flag{
								cliFlagOutput,
								cliFlagSearch,
							},
							Action: adminStrategyList,
						},
					},
				},
				{
					Name:  "activity",
					Usage: "View the platform-wide activity log",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagPage,
						cliFlagLimit,
					},
					Action: adminActivityList,
				},
			},
		},
	}
	fmt.Println()
	if err := app.Run(os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
