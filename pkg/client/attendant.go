package client

import (
	"context"
	"encoding/json"
	"fmt"

	"zapagenda/pkg/model"
)

type AttendantClient struct {
	store *RecordStore
}

func NewAttendantClient(store *RecordStore) *AttendantClient {
	return &AttendantClient{store: store}
}

func (c *AttendantClient) GetByID(ctx context.Context, id string) (*model.Attendant, error) {
	resp, err := c.store.Select(ctx, TableAttendants, Eq("id", id))
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, "select", TableAttendants); err != nil {
		return nil, err
	}

	attendants, err := c.DecodeAttendants(resp)
	if err != nil {
		return nil, err
	}
	if len(attendants) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &attendants[0], nil
}

func (c *AttendantClient) ListActive(ctx context.Context) ([]model.Attendant, error) {
	resp, err := c.store.Select(ctx, TableAttendants, Eq("ativo", "true"))
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, "select", TableAttendants); err != nil {
		return nil, err
	}
	return c.DecodeAttendants(resp)
}

func (c *AttendantClient) DecodeAttendants(resp *Response) ([]model.Attendant, error) {
	var attendants []model.Attendant
	if err := json.Unmarshal(resp.Body, &attendants); err != nil {
		return nil, fmt.Errorf("could not decode attendant list:\n%+v\n%s", resp.ToString(), err)
	}
	return attendants, nil
}
