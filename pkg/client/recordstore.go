package client

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

const (
	TableAttendants  = "atendentes"
	TableWorkWindows = "horarios_trabalho"
	TableBookings    = "agendamentos"
	TableServices    = "servicos"
)

// Filter is one column condition in the store's col=op.value query syntax.
type Filter struct {
	Column string
	Op     string
	Value  string
}

func Eq(column, value string) Filter {
	return Filter{Column: column, Op: "eq", Value: value}
}

func Neq(column, value string) Filter {
	return Filter{Column: column, Op: "neq", Value: value}
}

func Gte(column, value string) Filter {
	return Filter{Column: column, Op: "gte", Value: value}
}

func Lte(column, value string) Filter {
	return Filter{Column: column, Op: "lte", Value: value}
}

func encodeFilters(filters []Filter) string {
	if len(filters) == 0 {
		return ""
	}
	q := url.Values{}
	for _, f := range filters {
		q.Add(f.Column, f.Op+"."+f.Value)
	}
	return "?" + q.Encode()
}

// RecordStore is the generic table-addressed HTTP store. Row shape is the
// caller's concern; the typed clients in this package wrap it per table.
type RecordStore struct {
	httpClient *HttpClient
}

func NewRecordStore(baseURL, apiKey string, timeout time.Duration) *RecordStore {
	hc := NewHttpClient(baseURL, timeout)
	if apiKey != "" {
		hc.SetDefaultHeader("apikey", apiKey)
		hc.SetDefaultHeader("Authorization", "Bearer "+apiKey)
	}
	hc.SetDefaultHeader("Prefer", "return=representation")
	return &RecordStore{httpClient: hc}
}

func (s *RecordStore) Select(ctx context.Context, table string, filters ...Filter) (*Response, error) {
	return s.httpClient.GET(ctx, "/"+table+encodeFilters(filters))
}

func (s *RecordStore) Insert(ctx context.Context, table string, body any) (*Response, error) {
	return s.httpClient.POST(ctx, "/"+table, body)
}

func (s *RecordStore) Patch(ctx context.Context, table string, body any, filters ...Filter) (*Response, error) {
	return s.httpClient.PATCH(ctx, "/"+table+encodeFilters(filters), body)
}

func (s *RecordStore) Delete(ctx context.Context, table string, filters ...Filter) (*Response, error) {
	return s.httpClient.DELETE(ctx, "/"+table+encodeFilters(filters))
}

func checkStatus(resp *Response, op, table string) error {
	if resp.IsSuccess() {
		return nil
	}
	return fmt.Errorf("record store %s %s: status %d: %s", op, table, resp.StatusCode, GetErrorMessage(resp))
}
