package client

import (
	"context"
	"encoding/json"
	"fmt"

	"zapagenda/pkg/model"
)

type BookingClient struct {
	store *RecordStore
}

func NewBookingClient(store *RecordStore) *BookingClient {
	return &BookingClient{store: store}
}

// ListActive returns the attendant's non-cancelled bookings for one date.
func (c *BookingClient) ListActive(ctx context.Context, attendantID, isoDate string) ([]model.Booking, error) {
	resp, err := c.store.Select(ctx, TableBookings,
		Eq("atendente_id", attendantID),
		Eq("data", isoDate),
		Neq("status", model.BookingStatusCancelled),
	)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, "select", TableBookings); err != nil {
		return nil, err
	}
	return c.DecodeBookings(resp)
}

// ListByClient returns a client's non-cancelled bookings on or after
// fromISODate.
func (c *BookingClient) ListByClient(ctx context.Context, clientPhone, fromISODate string) ([]model.Booking, error) {
	resp, err := c.store.Select(ctx, TableBookings,
		Eq("telefone_cliente", clientPhone),
		Neq("status", model.BookingStatusCancelled),
		Gte("data", fromISODate),
	)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, "select", TableBookings); err != nil {
		return nil, err
	}
	return c.DecodeBookings(resp)
}

func (c *BookingClient) Insert(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	resp, err := c.store.Insert(ctx, TableBookings, booking)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, "insert", TableBookings); err != nil {
		return nil, err
	}

	created, err := c.DecodeBookings(resp)
	if err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("record store insert %s: no row returned", TableBookings)
	}
	return &created[0], nil
}

// Cancel patches the booking's status to cancelado. The status filter makes
// the patch a no-op for already-cancelled rows, which surfaces as ErrNotFound.
func (c *BookingClient) Cancel(ctx context.Context, id string) (*model.Booking, error) {
	resp, err := c.store.Patch(ctx, TableBookings,
		model.BookingUpdate{Status: model.BookingStatusCancelled},
		Eq("id", id),
		Neq("status", model.BookingStatusCancelled),
	)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, "patch", TableBookings); err != nil {
		return nil, err
	}

	updated, err := c.DecodeBookings(resp)
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &updated[0], nil
}

func (c *BookingClient) DecodeBookings(resp *Response) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := json.Unmarshal(resp.Body, &bookings); err != nil {
		return nil, fmt.Errorf("could not decode booking list:\n%+v\n%s", resp.ToString(), err)
	}
	return bookings, nil
}
