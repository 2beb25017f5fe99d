package tradedeck

import (
	"encoding/json"
	"time"
)

// AdminAuthDetails is issued by POST /api/admin/login. Deployed servers have
// been inconsistent about this payload (token vs. accessToken, admin vs.
// user), so decoding is deliberately tolerant.
type AdminAuthDetails struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Admin        Principal
}

func (a *AdminAuthDetails) UnmarshalJSON(data []byte) error {
	var raw struct {
		AccessToken  string          `json:"accessToken"`
		Token        string          `json:"token"`
		RefreshToken string          `json:"refreshToken"`
		TokenType    string          `json:"tokenType"`
		Admin        json.RawMessage `json:"admin"`
		User         json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.AccessToken = raw.AccessToken
	if a.AccessToken == "" {
		a.AccessToken = raw.Token
	}
	a.RefreshToken = raw.RefreshToken
	a.TokenType = raw.TokenType
	if a.TokenType == "" {
		a.TokenType = "Bearer"
	}
	if len(raw.Admin) > 0 {
		a.Admin = Principal(raw.Admin)
	} else if len(raw.User) > 0 {
		a.Admin = Principal(raw.User)
	}
	return nil
}

type AdminUser struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullname"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin,omitempty"`
}

type AdminUserUpdate struct {
	FullName string `json:"fullname,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	Role     string `json:"role,omitempty"`
	Status   string `json:"status,omitempty"`
}

type UserInfo struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"fullname"`
}

// BrokerSession is one user's live link to a broker, as listed on the admin
// broker console.
type BrokerSession struct {
	ID                string   `json:"id"`
	UserID            string   `json:"userId"`
	User              UserInfo `json:"user"`
	BrokerName        string   `json:"brokerName"`
	BrokerDisplayName string   `json:"brokerDisplayName"`
	IsActive          bool     `json:"isActive"`
	AccountNumber     string   `json:"accountNumber,omitempty"`
	AccountName       string   `json:"accountName,omitempty"`
	LastUsed          string   `json:"lastUsed,omitempty"`
	LoginTime         string   `json:"loginTime,omitempty"`
	ExpiresAt         string   `json:"expiresAt,omitempty"`
	Status            string   `json:"status"`
}

type PricingPlan struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price"`
	Currency      string   `json:"currency"`
	BillingPeriod string   `json:"billingPeriod"`
	Features      []string `json:"features,omitempty"`
	MaxUsers      int      `json:"maxUsers,omitempty"`
	MaxBrokers    int      `json:"maxBrokers,omitempty"`
	MaxOrders     int      `json:"maxOrders,omitempty"`
	MaxTrades     int      `json:"maxTrades,omitempty"`
	IsActive      bool     `json:"isActive"`
}

type AdminStrategy struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	UserID      string   `json:"userId"`
	User        UserInfo `json:"user"`
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

type CountSummary struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type BrokerSummary struct {
	Total     int `json:"total"`
	Connected int `json:"connected"`
}

type OrderSummary struct {
	AllTime   int `json:"allTime"`
	ThisMonth int `json:"thisMonth"`
}

type AdminDashboard struct {
	Summary struct {
		TotalUsers  CountSummary  `json:"totalUsers"`
		Brokers     BrokerSummary `json:"brokers"`
		TotalOrders OrderSummary  `json:"totalOrders"`
	} `json:"summary"`
}

// AdminSettings are keyed by section name server-side; each section is an
// arbitrary document this client does not interpret.
type AdminSettings map[string]json.RawMessage

// AdminUserList decodes either a bare array or an object with a users field.
type AdminUserList []AdminUser

func (l *AdminUserList) UnmarshalJSON(data []byte) error {
	var bare []AdminUser
	if err := json.Unmarshal(data, &bare); err == nil {
		*l = bare
		return nil
	}
	var wrapped struct {
		Users []AdminUser `json:"users"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*l = wrapped.Users
	return nil
}

// PricingPlanList decodes either a bare array or an object with a plans
// field.
type PricingPlanList []PricingPlan

func (l *PricingPlanList) UnmarshalJSON(data []byte) error {
	var bare []PricingPlan
	if err := json.Unmarshal(data, &bare); err == nil {
		*l = bare
		return nil
	}
	var wrapped struct {
		Plans []PricingPlan `json:"plans"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*l = wrapped.Plans
	return nil
}

// BrokerSessionPage is the admin broker console listing.
type BrokerSessionPage struct {
	Sessions   []BrokerSession `json:"brokerSessions"`
	Pagination Pagination      `json:"pagination"`
}

// AdminStrategyList decodes either a bare array or an object with a
// strategies field.
type AdminStrategyList []AdminStrategy

func (l *AdminStrategyList) UnmarshalJSON(data []byte) error {
	var bare []AdminStrategy
	if err := json.Unmarshal(data, &bare); err == nil {
		*l = bare
		return nil
	}
	var wrapped struct {
		Strategies []AdminStrategy `json:"strategies"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*l = wrapped.Strategies
	return nil
}
