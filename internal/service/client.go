package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sarahbeaino/pharmapos/internal/apperr"
	"github.com/sarahbeaino/pharmapos/internal/model"
	"github.com/sarahbeaino/pharmapos/internal/state"
)

type AddClientParams struct {
	Name    string `validate:"required"`
	Phone   string `validate:"omitempty,max=32"`
	Address string `validate:"omitempty,max=256"`
	Email   string `validate:"omitempty,email"`
}

func (s *Pharmacy) AddClient(ctx context.Context, params AddClientParams) (model.Client, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Client{}, err
	}

	id, err := newID()
	if err != nil {
		return model.Client{}, err
	}

	client := model.Client{
		ID:      id,
		Name:    params.Name,
		Phone:   params.Phone,
		Address: params.Address,
		Email:   params.Email,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.applyAndSave(ctx, state.AddClient{Client: client}); err != nil {
		return model.Client{}, err
	}

	return client, nil
}

type UpdateClientParams struct {
	ID      string `validate:"required"`
	Name    string `validate:"required"`
	Phone   string `validate:"omitempty,max=32"`
	Address string `validate:"omitempty,max=256"`
	Email   string `validate:"omitempty,email"`
}

func (s *Pharmacy) UpdateClient(ctx context.Context, params UpdateClientParams) (model.Client, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Client{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := state.FindClient(s.snapshot, params.ID); !ok {
		return model.Client{}, apperr.ClientNotFoundErr
	}

	client := model.Client{
		ID:      params.ID,
		Name:    params.Name,
		Phone:   params.Phone,
		Address: params.Address,
		Email:   params.Email,
	}

	if _, err := s.applyAndSave(ctx, state.UpdateClient{Client: client}); err != nil {
		return model.Client{}, err
	}

	return client, nil
}

// DeleteClient removes a client. The client's sale history stays in place.
func (s *Pharmacy) DeleteClient(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.applyAndSave(ctx, state.DeleteClient{ID: id}); err != nil {
		return err
	}
	return nil
}

// ListClients returns all clients.
func (s *Pharmacy) ListClients(_ context.Context) []model.Client {
	return s.Snapshot().Clients
}

// ClientBalance returns a client's outstanding balance.
func (s *Pharmacy) ClientBalance(_ context.Context, clientID string) (decimal.Decimal, error) {
	snapshot := s.Snapshot()
	if _, ok := state.FindClient(snapshot, clientID); !ok {
		return decimal.Zero, apperr.ClientNotFoundErr
	}
	return state.ClientBalance(snapshot, clientID), nil
}

// OutstandingBalances returns the outstanding balance per client id.
func (s *Pharmacy) OutstandingBalances(_ context.Context) map[string]decimal.Decimal {
	return state.OutstandingBalances(s.Snapshot())
}
