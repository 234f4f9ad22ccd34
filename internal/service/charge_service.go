package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/petshop-pix/internal/dto"
	"github.com/anyulbade/petshop-pix/internal/model"
	"github.com/anyulbade/petshop-pix/internal/pix"
)

// maxTransactionIDLen is the BR Code limit for the 62/05 reference.
const maxTransactionIDLen = 25

type ChargeService struct {
	charges  ChargeStore
	settings *SettingsService
	payloads *PayloadService
}

func NewChargeService(charges ChargeStore, settings *SettingsService, payloads *PayloadService) *ChargeService {
	return &ChargeService{charges: charges, settings: settings, payloads: payloads}
}

// Issue builds a payload for the checkout amount with the stored merchant
// settings and records it as a pending charge.
func (s *ChargeService) Issue(ctx context.Context, req *dto.CreateChargeRequest) (*model.PixCharge, error) {
	if !pix.ValidLedgerAmount(req.Amount) {
		return nil, &pix.InvalidInputError{
			Field:  "amount",
			Reason: "must be a canonical decimal with at most 10 integer digits and 2 fraction digits",
		}
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	txid := req.TransactionID
	if txid == "" {
		txid = newTransactionID()
	}

	payload, err := s.payloads.Build(pix.Payload{
		PixKey:        settings.PixKey,
		MerchantName:  settings.MerchantName,
		MerchantCity:  settings.MerchantCity,
		Amount:        req.Amount,
		TransactionID: txid,
	})
	if err != nil {
		return nil, err
	}

	charge := &model.PixCharge{
		TransactionID: txid,
		Amount:        req.Amount,
		PixKey:        settings.PixKey,
		MerchantName:  settings.MerchantName,
		MerchantCity:  settings.MerchantCity,
		Payload:       payload,
		Status:        model.ChargeStatusPending,
	}
	if err := s.charges.Insert(ctx, charge); err != nil {
		return nil, fmt.Errorf("insert charge: %w", err)
	}

	log.Info().
		Str("charge_id", charge.ID).
		Str("transaction_id", charge.TransactionID).
		Str("amount", charge.Amount).
		Msg("pix charge issued")

	return charge, nil
}

func (s *ChargeService) Get(ctx context.Context, id string) (*model.PixCharge, error) {
	return s.charges.FindByID(ctx, id)
}

func (s *ChargeService) List(ctx context.Context, f model.ChargeFilter) ([]model.PixCharge, int, error) {
	return s.charges.List(ctx, f)
}

// UpdateStatus settles or cancels a pending charge. Settled and cancelled
// charges are final.
func (s *ChargeService) UpdateStatus(ctx context.Context, id, status string) (*model.PixCharge, error) {
	current, err := s.charges.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != model.ChargeStatusPending {
		return nil, fmt.Errorf("%w: status is %s", ErrStatusConflict, current.Status)
	}

	updated, err := s.charges.UpdateStatus(ctx, id, model.ChargeStatusPending, status)
	if errors.Is(err, model.ErrNotFound) {
		// changed by someone else between the read and the update
		return nil, ErrStatusConflict
	}
	if err != nil {
		return nil, fmt.Errorf("update charge status: %w", err)
	}

	log.Info().
		Str("charge_id", updated.ID).
		Str("status", updated.Status).
		Msg("pix charge status changed")

	return updated, nil
}

func newTransactionID() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return id[:maxTransactionIDLen]
}
