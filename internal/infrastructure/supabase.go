package infrastructure

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SupabaseClient talks to the Supabase PostgREST endpoint. It only knows
// about tables, conjunctive filters and JSON rows; what the rows mean is the
// repository layer's business.
type SupabaseClient struct {
	RestURL string
	APIKey  string
	Client  *http.Client
}

func NewSupabaseClient(baseURL, apiKey string) *SupabaseClient {
	return &SupabaseClient{
		RestURL: strings.TrimRight(baseURL, "/") + "/rest/v1",
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Filter is a single predicate on a column, rendered as PostgREST
// "column=op.value" query syntax.
type Filter struct {
	Column string
	Op     string
	Value  string
}

func Eq(column, value string) Filter  { return Filter{Column: column, Op: "eq", Value: value} }
func Neq(column, value string) Filter { return Filter{Column: column, Op: "neq", Value: value} }

// StoreError is any failure reported by the store. Code carries the
// PostgREST/Postgres error code when the response body had one.
type StoreError struct {
	Status  int
	Code    string
	Message string
}

func (e *StoreError) Error() string { return e.Message }

// IsConflict reports whether err is a unique-constraint violation
// (Postgres SQLSTATE 23505, surfaced by PostgREST as HTTP 409).
func IsConflict(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && (se.Code == "23505" || se.Status == http.StatusConflict)
}

// IsNotFound reports whether err is PostgREST's no-single-row answer to a
// SelectOne (PGRST116).
func IsNotFound(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && (se.Code == "PGRST116" || se.Status == http.StatusNotAcceptable)
}

// Select returns all rows of table matching every filter. sel is the
// PostgREST column list, "*" or an embed like "*,ratings(*)".
func (c *SupabaseClient) Select(table, sel string, filters ...Filter) ([]json.RawMessage, error) {
	data, err := c.do(http.MethodGet, table, queryValues(sel, filters), "", nil)
	if err != nil {
		return nil, err
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode %s rows: %w", table, err)
	}
	return rows, nil
}

// SelectOne returns exactly one matching row, or an error satisfying
// IsNotFound when there is none.
func (c *SupabaseClient) SelectOne(table, sel string, filters ...Filter) (json.RawMessage, error) {
	return c.do(http.MethodGet, table, queryValues(sel, filters), "application/vnd.pgrst.object+json", nil)
}

// Insert stores record and returns the row as the store persisted it,
// generated id included.
func (c *SupabaseClient) Insert(table string, record any) (json.RawMessage, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode %s record: %w", table, err)
	}
	data, err := c.do(http.MethodPost, table, nil, "", body)
	if err != nil {
		return nil, err
	}
	// PostgREST answers an insert with a one-element array.
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err == nil {
		if len(rows) == 0 {
			return nil, &StoreError{Status: http.StatusInternalServerError, Message: "insert returned no row"}
		}
		return rows[0], nil
	}
	return data, nil
}

// Delete removes every row matching the filters.
func (c *SupabaseClient) Delete(table string, filters ...Filter) error {
	_, err := c.do(http.MethodDelete, table, queryValues("", filters), "", nil)
	return err
}

func (c *SupabaseClient) do(method, table string, query url.Values, accept string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	target := c.RestURL + "/" + table
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if method == http.MethodPost {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, &StoreError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, storeErrorFrom(resp.StatusCode, data)
	}
	return data, nil
}

func queryValues(sel string, filters []Filter) url.Values {
	query := url.Values{}
	if sel != "" {
		query.Set("select", sel)
	}
	for _, f := range filters {
		query.Set(f.Column, f.Op+"."+f.Value)
	}
	return query
}

func storeErrorFrom(status int, body []byte) *StoreError {
	var remote struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &remote); err == nil && remote.Message != "" {
		return &StoreError{Status: status, Code: remote.Code, Message: remote.Message}
	}
	return &StoreError{Status: status, Message: fmt.Sprintf("status %d: %s", status, string(body))}
}
