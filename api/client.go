package api

import (
	"github.com/tradedeck/tradedeck/api/activity"
	"github.com/tradedeck/tradedeck/api/admin"
	"github.com/tradedeck/tradedeck/api/brokers"
	"github.com/tradedeck/tradedeck/api/tradesettings"
	"github.com/tradedeck/tradedeck/api/users"
	"github.com/tradedeck/tradedeck/api/watchlist"
	"github.com/tradedeck/tradedeck/internal/session"
)

// Client is the general interface for the TradeDeck API. It does little more
// than expose functions for obtaining more specialized clients for different
// areas of concern, like broker links or watchlist management.
type Client interface {
	// Users returns a specialized client for account management and
	// authentication in the user scope.
	Users() users.Client
	// Brokers returns a specialized client for broker link management.
	Brokers() brokers.Client
	// Watchlist returns a specialized client for watchlist management.
	Watchlist() watchlist.Client
	// Activity returns a specialized client for the user activity log.
	Activity() activity.Client
	// TradeSettings returns a specialized client for trade automation
	// settings.
	TradeSettings() tradesettings.Client
	// Admin returns a specialized client for the admin console. It operates
	// in the admin session scope, independent of the user scope.
	Admin() admin.Client
}

type client struct {
	usersClient         users.Client
	brokersClient       brokers.Client
	watchlistClient     watchlist.Client
	activityClient      activity.Client
	tradeSettingsClient tradesettings.Client
	adminClient         admin.Client
}

// NewClient returns a TradeDeck client. All specialized clients share the
// given session store; the user-scope and admin-scope clients read and clear
// only their own scope.
func NewClient(
	apiAddress string,
	redirectURI string,
	sessions session.Store,
	allowInsecure bool,
) Client {
	return &client{
		usersClient: users.NewClient(apiAddress, sessions, allowInsecure),
		brokersClient: brokers.NewClient(
			apiAddress,
			redirectURI,
			sessions,
			allowInsecure,
		),
		watchlistClient: watchlist.NewClient(
			apiAddress,
			sessions,
			allowInsecure,
		),
		activityClient: activity.NewClient(apiAddress, sessions, allowInsecure),
		tradeSettingsClient: tradesettings.NewClient(
			apiAddress,
			sessions,
			allowInsecure,
		),
		adminClient: admin.NewClient(apiAddress, sessions, allowInsecure),
	}
}

func (c *client) Users() users.Client {
	return c.usersClient
}

func (c *client) Brokers() brokers.Client {
	return c.brokersClient
}

func (c *client) Watchlist() watchlist.Client {
	return c.watchlistClient
}

func (c *client) Activity() activity.Client {
	return c.activityClient
}

func (c *client) TradeSettings() tradesettings.Client {
	return c.tradeSettingsClient
}

func (c *client) Admin() admin.Client {
	return c.adminClient
}
