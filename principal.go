package tradedeck

import "encoding/json"

// Principal is the user or admin record returned by a login call. It is
// stored verbatim and treated as opaque except for identity resolution.
type Principal json.RawMessage

// UserID resolves the principal's identifier. Different deployments of the
// API have returned the ID under different keys, so id, _id, and userId are
// checked in that priority order.
func (p Principal) UserID() (string, error) {
	if len(p) == 0 {
		return "", &ErrMissingUserIdentity{}
	}
	var fields struct {
		ID     string `json:"id"`
		AltID  string `json:"_id"`
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(p, &fields); err != nil {
		return "", &ErrMissingUserIdentity{}
	}
	switch {
	case fields.ID != "":
		return fields.ID, nil
	case fields.AltID != "":
		return fields.AltID, nil
	case fields.UserID != "":
		return fields.UserID, nil
	}
	return "", &ErrMissingUserIdentity{}
}

func (p Principal) MarshalJSON() ([]byte, error) {
	return json.RawMessage(p).MarshalJSON()
}

func (p *Principal) UnmarshalJSON(data []byte) error {
	return (*json.RawMessage)(p).UnmarshalJSON(data)
}
