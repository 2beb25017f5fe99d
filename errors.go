package tradedeck

import (
	"fmt"
	"sort"
	"strings"
)

// ErrSessionExpired is returned by any authenticated call that received a 401
// from the API. By the time a caller sees this error, the offending scope's
// session has already been cleared; the only recovery is logging in again.
type ErrSessionExpired struct {
	Scope string `json:"scope"`
}

func NewErrSessionExpired(scope string) *ErrSessionExpired {
	return &ErrSessionExpired{Scope: scope}
}

func (e *ErrSessionExpired) Error() string {
	return fmt.Sprintf(
		"your %s session has expired or is invalid; please log in again",
		e.Scope,
	)
}

// ErrRequestFailed represents any non-401 failure response from the API. The
// message is the server's own, taken verbatim from the response envelope.
type ErrRequestFailed struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func NewErrRequestFailed(statusCode int, message string) *ErrRequestFailed {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", statusCode)
	}
	return &ErrRequestFailed{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e *ErrRequestFailed) Error() string {
	return e.Message
}

// ErrMissingUserIdentity indicates that the locally stored principal carries
// none of the recognized identity fields (id, _id, userId). It is raised
// before any network call is made.
type ErrMissingUserIdentity struct{}

func (e *ErrMissingUserIdentity) Error() string {
	return "could not determine the current user's ID from the stored session"
}

// FieldErrors is a set of client-side validation failures keyed by field
// name. A non-empty FieldErrors blocks submission entirely; nothing is sent
// to the server.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	msgs := make([]string, len(fields))
	for i, field := range fields {
		msgs[i] = fmt.Sprintf("%s: %s", field, e[field])
	}
	return strings.Join(msgs, "; ")
}
