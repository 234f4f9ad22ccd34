package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/anyulbade/petshop-pix/internal/dto"
	"github.com/anyulbade/petshop-pix/internal/metric"
	"github.com/anyulbade/petshop-pix/internal/pix"
)

type PayloadService struct {
	metrics     *metric.Metrics
	concurrency int
}

func NewPayloadService(metrics *metric.Metrics, concurrency int) *PayloadService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &PayloadService{metrics: metrics, concurrency: concurrency}
}

func (s *PayloadService) Build(p pix.Payload) (string, error) {
	payload, err := p.Build()
	s.metrics.PayloadBuilt(outcome(err))
	return payload, err
}

func (s *PayloadService) Encode(req *dto.EncodePixRequest) (string, error) {
	return s.Build(pix.Payload{
		PixKey:        req.PixKey,
		MerchantName:  req.MerchantName,
		MerchantCity:  req.MerchantCity,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
	})
}

// EncodeBatch encodes every request or none. Item failures are collected
// per index; only context cancellation aborts the batch.
func (s *PayloadService) EncodeBatch(ctx context.Context, req *dto.BatchEncodePixRequest) ([]string, []dto.ValidationError, error) {
	payloads := make([]string, len(req.Payloads))

	var (
		mu               sync.Mutex
		validationErrors []dto.ValidationError
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range req.Payloads {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			payload, err := s.Encode(&req.Payloads[i])
			if err != nil {
				field, message := describe(err)
				mu.Lock()
				validationErrors = append(validationErrors, dto.ValidationError{
					Index:   i,
					Field:   field,
					Message: message,
				})
				mu.Unlock()
				return nil
			}

			payloads[i] = payload
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("encode batch: %w", err)
	}

	if len(validationErrors) > 0 {
		sort.Slice(validationErrors, func(a, b int) bool {
			return validationErrors[a].Index < validationErrors[b].Index
		})
		return nil, validationErrors, nil
	}

	return payloads, nil, nil
}

func (s *PayloadService) Decode(payload string) (pix.Payload, error) {
	return pix.Decode(payload)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metric.OutcomeOK
	case errors.Is(err, pix.ErrInvalidInput):
		return metric.OutcomeInvalidInput
	case errors.Is(err, pix.ErrFieldTooLong):
		return metric.OutcomeFieldTooLong
	default:
		return metric.OutcomeError
	}
}

func describe(err error) (field, message string) {
	var invalid *pix.InvalidInputError
	if errors.As(err, &invalid) {
		return invalid.Field, invalid.Reason
	}
	var tooLong *pix.FieldTooLongError
	if errors.As(err, &tooLong) {
		return "tag_" + tooLong.Tag, err.Error()
	}
	return "", err.Error()
}
