package client

import (
	"context"
	"encoding/json"
	"fmt"

	"zapagenda/pkg/model"
)

type ServiceClient struct {
	store *RecordStore
}

func NewServiceClient(store *RecordStore) *ServiceClient {
	return &ServiceClient{store: store}
}

func (c *ServiceClient) GetByID(ctx context.Context, id string) (*model.Service, error) {
	resp, err := c.store.Select(ctx, TableServices, Eq("id", id))
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, "select", TableServices); err != nil {
		return nil, err
	}

	services, err := c.DecodeServices(resp)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &services[0], nil
}

func (c *ServiceClient) DecodeServices(resp *Response) ([]model.Service, error) {
	var services []model.Service
	if err := json.Unmarshal(resp.Body, &services); err != nil {
		return nil, fmt.Errorf("could not decode service list:\n%+v\n%s", resp.ToString(), err)
	}
	return services, nil
}
