package client

import (
	"context"
	"encoding/json"
	"fmt"

	"zapagenda/pkg/model"
)

type WorkWindowClient struct {
	store *RecordStore
}

func NewWorkWindowClient(store *RecordStore) *WorkWindowClient {
	return &WorkWindowClient{store: store}
}

func (c *WorkWindowClient) ListByAttendant(ctx context.Context, attendantID string) ([]model.WorkWindow, error) {
	resp, err := c.store.Select(ctx, TableWorkWindows, Eq("atendente_id", attendantID))
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, "select", TableWorkWindows); err != nil {
		return nil, err
	}
	return c.DecodeWorkWindows(resp)
}

func (c *WorkWindowClient) DecodeWorkWindows(resp *Response) ([]model.WorkWindow, error) {
	var windows []model.WorkWindow
	if err := json.Unmarshal(resp.Body, &windows); err != nil {
		return nil, fmt.Errorf("could not decode work window list:\n%+v\n%s", resp.ToString(), err)
	}
	return windows, nil
}
