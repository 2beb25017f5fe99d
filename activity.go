package tradedeck

import "encoding/json"

// ActivityEntry is one row of the activity log, shared by the user-facing
// and admin consoles.
type ActivityEntry struct {
	ID         string    `json:"id"`
	Log        string    `json:"log"`
	Data       string    `json:"data,omitempty"`
	ActionType string    `json:"actionType,omitempty"`
	Timestamp  string    `json:"timestamp,omitempty"`
	UserID     string    `json:"userId,omitempty"`
	User       *UserInfo `json:"user,omitempty"`
}

type Pagination struct {
	Page       int `json:"page,omitempty"`
	Limit      int `json:"limit,omitempty"`
	TotalPages int `json:"totalPages,omitempty"`
	TotalItems int `json:"totalItems,omitempty"`
}

// ActivityPage tolerates the several shapes the activity endpoints have
// returned: a bare array, or an object keyed activities, logs, or items,
// optionally with pagination.
type ActivityPage struct {
	Entries    []ActivityEntry
	Pagination Pagination
}

func (p *ActivityPage) UnmarshalJSON(data []byte) error {
	var bare []ActivityEntry
	if err := json.Unmarshal(data, &bare); err == nil {
		p.Entries = bare
		p.Pagination = Pagination{TotalItems: len(bare)}
		return nil
	}
	var wrapped struct {
		Activities []ActivityEntry `json:"activities"`
		Logs       []ActivityEntry `json:"logs"`
		Items      []ActivityEntry `json:"items"`
		Pagination Pagination      `json:"pagination"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	switch {
	case wrapped.Activities != nil:
		p.Entries = wrapped.Activities
	case wrapped.Logs != nil:
		p.Entries = wrapped.Logs
	default:
		p.Entries = wrapped.Items
	}
	p.Pagination = wrapped.Pagination
	return nil
}
