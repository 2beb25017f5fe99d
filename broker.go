package tradedeck

import "encoding/json"

type BrokerName string

const (
	BrokerAngelOne  BrokerName = "angelone"
	BrokerAliceBlue BrokerName = "aliceblue"
	BrokerDhan      BrokerName = "dhan"
	BrokerFyers     BrokerName = "fyers"
	BrokerZerodha   BrokerName = "zerodha"
	BrokerUpstox    BrokerName = "upstox"
)

// BrokerCredentials is the tagged union of per-broker credential sets. Every
// variant is submitted against the same login endpoint; the variant decides
// both the required fields and the wire shape of the request.
type BrokerCredentials interface {
	// Broker returns the identifier the API dispatches on.
	Broker() BrokerName
	// Validate checks the variant's required-field set. It returns
	// FieldErrors keyed by field name, or nil. A validation failure blocks
	// submission; nothing is sent to the server.
	Validate() error
}

type AngelOneCredentials struct {
	BrokerUserID string `json:"brokerUserID"`
	Password     string `json:"password"`
	APIKey       string `json:"apiKey"`
	TOTPKey      string `json:"totpKey"`
}

func (c AngelOneCredentials) Broker() BrokerName { return BrokerAngelOne }

func (c AngelOneCredentials) Validate() error {
	fieldErrs := FieldErrors{}
	if c.BrokerUserID == "" {
		fieldErrs["brokerUserID"] = "BrokerUserID is required"
	}
	if c.Password == "" {
		fieldErrs["password"] = "Password is required"
	}
	if c.APIKey == "" {
		fieldErrs["apiKey"] = "API Key is required"
	}
	if c.TOTPKey == "" {
		fieldErrs["totpKey"] = "TOTP Key is required"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

type AliceBlueCredentials struct {
	BrokerUserID string `json:"brokerUserID"`
	APIKey       string `json:"apiKey"`
}

func (c AliceBlueCredentials) Broker() BrokerName { return BrokerAliceBlue }

func (c AliceBlueCredentials) Validate() error {
	fieldErrs := FieldErrors{}
	if c.BrokerUserID == "" {
		fieldErrs["brokerUserID"] = "BrokerUserID is required"
	}
	if c.APIKey == "" {
		fieldErrs["apiKey"] = "API Key is required"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

// DhanCredentials carries only a broker-issued access token. Note that dhan
// submissions use a flat {userId, accessToken} wire shape rather than the
// nested credentials object every other broker uses. The backend expects
// exactly that asymmetry; do not normalize it.
type DhanCredentials struct {
	AccessToken string `json:"accessToken"`
}

func (c DhanCredentials) Broker() BrokerName { return BrokerDhan }

func (c DhanCredentials) Validate() error {
	if c.AccessToken == "" {
		return FieldErrors{"accessToken": "Access token is required"}
	}
	return nil
}

type FyersCredentials struct {
	ClientID  string `json:"clientId"`
	Password  string `json:"password"`
	PIN       string `json:"pin"`
	AppID     string `json:"appId"`
	AppSecret string `json:"appSecret"`
}

func (c FyersCredentials) Broker() BrokerName { return BrokerFyers }

func (c FyersCredentials) Validate() error {
	fieldErrs := FieldErrors{}
	if c.ClientID == "" {
		fieldErrs["clientId"] = "Client ID is required"
	}
	if c.Password == "" {
		fieldErrs["password"] = "Password is required"
	}
	if c.PIN == "" {
		fieldErrs["pin"] = "PIN is required"
	} else if len(c.PIN) < 4 {
		fieldErrs["pin"] = "PIN must be at least 4 digits"
	}
	if c.AppID == "" {
		fieldErrs["appId"] = "App ID is required"
	}
	if c.AppSecret == "" {
		fieldErrs["appSecret"] = "App Secret is required"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

type ZerodhaCredentials struct {
	UserID    string `json:"userId"`
	Password  string `json:"password"`
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
	PIN       string `json:"pin"`
}

func (c ZerodhaCredentials) Broker() BrokerName { return BrokerZerodha }

func (c ZerodhaCredentials) Validate() error {
	fieldErrs := FieldErrors{}
	if c.UserID == "" {
		fieldErrs["userId"] = "User ID is required"
	}
	if c.Password == "" {
		fieldErrs["password"] = "Password is required"
	}
	if c.APIKey == "" {
		fieldErrs["apiKey"] = "API Key is required"
	}
	if c.APISecret == "" {
		fieldErrs["apiSecret"] = "API Secret is required"
	}
	if c.PIN == "" {
		fieldErrs["pin"] = "PIN is required"
	} else if len(c.PIN) < 4 {
		fieldErrs["pin"] = "PIN must be at least 4 digits"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

type UpstoxCredentials struct {
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}

func (c UpstoxCredentials) Broker() BrokerName { return BrokerUpstox }

func (c UpstoxCredentials) Validate() error {
	fieldErrs := FieldErrors{}
	if c.APIKey == "" {
		fieldErrs["apiKey"] = "API Key is required"
	}
	if c.APISecret == "" {
		fieldErrs["apiSecret"] = "API Secret is required"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

// BrokerLoginRequest is the body of POST /api/brokers/login.
type BrokerLoginRequest struct {
	UserID      string
	RedirectURI string
	Credentials BrokerCredentials
}

func (r BrokerLoginRequest) MarshalJSON() ([]byte, error) {
	if dhan, ok := r.Credentials.(DhanCredentials); ok {
		return json.Marshal(struct {
			UserID      string `json:"userId"`
			AccessToken string `json:"accessToken"`
		}{
			UserID:      r.UserID,
			AccessToken: dhan.AccessToken,
		})
	}
	return json.Marshal(struct {
		UserID      string            `json:"userId"`
		BrokerName  BrokerName        `json:"brokerName"`
		RedirectURI string            `json:"redirectURI,omitempty"`
		Credentials BrokerCredentials `json:"credentials"`
	}{
		UserID:      r.UserID,
		BrokerName:  r.Credentials.Broker(),
		RedirectURI: r.RedirectURI,
		Credentials: r.Credentials,
	})
}

// BrokerAccount is one entry on the broker dashboard.
type BrokerAccount struct {
	ID         string  `json:"id,omitempty"`
	BrokerID   string  `json:"brokerId,omitempty"`
	Name       string  `json:"name,omitempty"`
	BrokerName string  `json:"brokerName,omitempty"`
	Status     string  `json:"status,omitempty"`
	Connected  bool    `json:"connected,omitempty"`
	AccountID  string  `json:"accountId,omitempty"`
	Balance    float64 `json:"balance,omitempty"`
}

// DisplayID prefers the stable broker identifier over the record ID,
// mirroring how the dashboard resolves its rows.
func (b BrokerAccount) DisplayID() string {
	if b.ID != "" {
		return b.ID
	}
	return b.BrokerID
}

// DisplayName falls back across the two name fields the API has used.
func (b BrokerAccount) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.BrokerName
}

// BrokerDashboard tolerates both shapes the API returns: a bare array of
// accounts or an object with a brokers field.
type BrokerDashboard struct {
	Brokers []BrokerAccount
}

func (d *BrokerDashboard) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Brokers []BrokerAccount `json:"brokers"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Brokers != nil {
		d.Brokers = wrapped.Brokers
		return nil
	}
	var bare []BrokerAccount
	if err := json.Unmarshal(data, &bare); err != nil {
		return err
	}
	d.Brokers = bare
	return nil
}

// BrokerLoginResult is the outcome of a successful broker credential
// submission. The message is the server's own; the account, when present, is
// the canonical record of the new connection.
type BrokerLoginResult struct {
	Message string
	Account *BrokerAccount
}
