// Package testutil provides in-memory stores for service and handler tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/anyulbade/petshop-pix/internal/model"
)

type SettingsStore struct {
	mu       sync.Mutex
	settings *model.MerchantSettings
	Err      error
}

func NewSettingsStore(s *model.MerchantSettings) *SettingsStore {
	return &SettingsStore{settings: s}
}

func (m *SettingsStore) Get(_ context.Context) (*model.MerchantSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.settings == nil {
		return nil, model.ErrNotFound
	}
	s := *m.settings
	return &s, nil
}

func (m *SettingsStore) Upsert(_ context.Context, s *model.MerchantSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	s.UpdatedAt = time.Now()
	stored := *s
	m.settings = &stored
	return nil
}

// ChargeStore mimics the pix_charges table, including the unique
// transaction_id constraint.
type ChargeStore struct {
	mu      sync.Mutex
	charges map[string]*model.PixCharge
	Err     error
}

func NewChargeStore() *ChargeStore {
	return &ChargeStore{charges: make(map[string]*model.PixCharge)}
}

func (m *ChargeStore) Insert(_ context.Context, c *model.PixCharge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.charges {
		if existing.TransactionID == c.TransactionID {
			return &pgconn.PgError{Code: "23505", Detail: "Key (transaction_id)=(" + c.TransactionID + ") already exists."}
		}
	}
	now := time.Now()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	stored := *c
	m.charges[c.ID] = &stored
	return nil
}

func (m *ChargeStore) FindByID(_ context.Context, id string) (*model.PixCharge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.charges[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (m *ChargeStore) UpdateStatus(_ context.Context, id, fromStatus, toStatus string) (*model.PixCharge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.charges[id]
	if !ok || c.Status != fromStatus {
		return nil, model.ErrNotFound
	}
	c.Status = toStatus
	c.UpdatedAt = time.Now()
	out := *c
	return &out, nil
}

// SetStatus forces a status without the pending check.
func (m *ChargeStore) SetStatus(id, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.charges[id]; ok {
		c.Status = status
	}
}

func (m *ChargeStore) List(_ context.Context, f model.ChargeFilter) ([]model.PixCharge, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, 0, m.Err
	}

	var matched []model.PixCharge
	for _, c := range m.charges {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		matched = append(matched, *c)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	if f.Offset >= total {
		return []model.PixCharge{}, total, nil
	}
	end := total
	if f.Limit > 0 && f.Offset+f.Limit < end {
		end = f.Offset + f.Limit
	}
	return matched[f.Offset:end], total, nil
}
