package apimachinery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	uuid "github.com/satori/go.uuid"
	"github.com/tradedeck/tradedeck"
	"github.com/tradedeck/tradedeck/internal/session"
)

// OutboundRequest is a declarative description of one API call.
type OutboundRequest struct {
	Method      string
	Path        string
	QueryParams map[string]string
	Headers     map[string]string
	ReqBodyObj  interface{}
	SuccessCode int
	RespObj     interface{}
	// Unauthenticated suppresses Authorization injection and the 401 session
	// teardown. Used by the login endpoints themselves, where a 401 means bad
	// credentials rather than an expired session.
	Unauthenticated bool
}

// Envelope is the response wrapper every endpoint of the API uses.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// BaseClient executes OutboundRequests against one authentication scope. It
// reads the scope's session to attach credentials and, on any 401, tears that
// session down before surfacing ErrSessionExpired to the caller. The other
// scope's session is never touched.
type BaseClient struct {
	APIAddress string
	Scope      session.Scope
	Sessions   session.Store
	HTTPClient *http.Client
}

// ExecuteRequest submits the request and decodes the response envelope. When
// the envelope carries data and req.RespObj is non-nil, data is unmarshaled
// into it. The server's message is returned so callers can surface it.
func (b *BaseClient) ExecuteRequest(
	ctx context.Context,
	req OutboundRequest,
) (string, error) {
	resp, err := b.SubmitRequest(ctx, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	respBodyBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "error reading response body")
	}
	if len(respBodyBytes) == 0 {
		return "", nil
	}
	env := Envelope{}
	if err := json.Unmarshal(respBodyBytes, &env); err != nil {
		return "", errors.Wrap(err, "error unmarshaling response envelope")
	}
	if !env.Success {
		return "", tradedeck.NewErrRequestFailed(resp.StatusCode, env.Message)
	}
	if req.RespObj != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, req.RespObj); err != nil {
			return "", errors.Wrap(err, "error unmarshaling response data")
		}
	}
	return env.Message, nil
}

// SubmitRequest issues the request exactly once and enforces the status-code
// contract: 2xx (or req.SuccessCode) passes through, 401 on an authenticated
// call tears down this scope's session, and anything else becomes
// ErrRequestFailed carrying the server's message. Transport-level failures
// are returned as-is (wrapped) and never trigger a logout.
func (b *BaseClient) SubmitRequest(
	ctx context.Context,
	req OutboundRequest,
) (*http.Response, error) {
	var reqBodyReader io.Reader
	bodyIsJSON := false
	if req.ReqBodyObj != nil {
		switch rb := req.ReqBodyObj.(type) {
		case []byte:
			reqBodyReader = bytes.NewBuffer(rb)
		default:
			reqBodyBytes, err := json.Marshal(req.ReqBodyObj)
			if err != nil {
				return nil, errors.Wrap(err, "error marshaling request body")
			}
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
			bodyIsJSON = true
		}
	}

	r, err := http.NewRequestWithContext(
		ctx,
		req.Method,
		fmt.Sprintf(
			"%s/%s",
			strings.TrimSuffix(b.APIAddress, "/"),
			strings.TrimPrefix(req.Path, "/"),
		),
		reqBodyReader,
	)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error creating request %s %s",
			req.Method,
			req.Path,
		)
	}
	if len(req.QueryParams) > 0 {
		q := r.URL.Query()
		for k, v := range req.QueryParams {
			q.Set(k, v)
		}
		r.URL.RawQuery = q.Encode()
	}
	for k, v := range req.Headers {
		r.Header.Add(k, v)
	}
	if bodyIsJSON && r.Header.Get("Content-Type") == "" {
		r.Header.Set("Content-Type", "application/json")
	}
	if r.Header.Get("X-Request-ID") == "" {
		r.Header.Set("X-Request-ID", uuid.NewV4().String())
	}
	if !req.Unauthenticated && r.Header.Get("Authorization") == "" {
		sess, err := b.Sessions.Get(b.Scope)
		if err != nil {
			return nil, errors.Wrapf(
				err,
				"error reading %s session",
				b.Scope,
			)
		}
		if sess.AccessToken != "" {
			r.Header.Set("Authorization", sess.AuthorizationValue())
		}
	}

	resp, err := b.HTTPClient.Do(r)
	if err != nil {
		return nil, errors.Wrap(err, "error invoking API")
	}

	log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Str("scope", string(b.Scope)).
		Int("status", resp.StatusCode).
		Msg("api request")

	if resp.StatusCode == http.StatusUnauthorized && !req.Unauthenticated {
		resp.Body.Close()
		if err := b.Sessions.Clear(b.Scope); err != nil {
			return nil, errors.Wrapf(
				err,
				"error clearing expired %s session",
				b.Scope,
			)
		}
		log.Warn().
			Str("scope", string(b.Scope)).
			Msgf(
				"Your %s session has expired. Please run `%s`.",
				b.Scope,
				b.Scope.LoginCommand(),
			)
		return nil, tradedeck.NewErrSessionExpired(string(b.Scope))
	}

	success := resp.StatusCode >= 200 && resp.StatusCode < 300
	if req.SuccessCode != 0 {
		success = resp.StatusCode == req.SuccessCode
	}
	if !success {
		defer resp.Body.Close()
		return nil, tradedeck.NewErrRequestFailed(
			resp.StatusCode,
			readErrorMessage(resp.Body),
		)
	}
	return resp, nil
}

// readErrorMessage extracts the server's message from a failure response
// envelope, falling back to the raw body when the envelope doesn't parse.
func readErrorMessage(body io.Reader) string {
	bodyBytes, err := ioutil.ReadAll(body)
	if err != nil {
		return ""
	}
	env := Envelope{}
	if err := json.Unmarshal(bodyBytes, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return strings.TrimSpace(string(bodyBytes))
}
