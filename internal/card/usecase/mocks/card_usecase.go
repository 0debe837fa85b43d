// Package mocks provides mock implementations of the card use case for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/cardid/internal/card/domain"
	"github.com/allisson/cardid/internal/card/usecase"
)

// MockCardUseCase is a mock implementation of usecase.CardUseCase.
type MockCardUseCase struct {
	mock.Mock
}

// Classify mocks the Classify method.
func (m *MockCardUseCase) Classify(ctx context.Context, raw string) (*domain.ValidatedCard, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidatedCard), args.Error(1)
}

// ClassifyBatch mocks the ClassifyBatch method.
func (m *MockCardUseCase) ClassifyBatch(ctx context.Context, raws []string) ([]usecase.BatchItem, error) {
	args := m.Called(ctx, raws)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usecase.BatchItem), args.Error(1)
}

// CardTypes mocks the CardTypes method.
func (m *MockCardUseCase) CardTypes(ctx context.Context) ([]*domain.CardType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CardType), args.Error(1)
}

// CardType mocks the CardType method.
func (m *MockCardUseCase) CardType(ctx context.Context, name string) (*domain.CardType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardType), args.Error(1)
}

// CheckDigit mocks the CheckDigit method.
func (m *MockCardUseCase) CheckDigit(ctx context.Context, payload string) (int, error) {
	args := m.Called(ctx, payload)
	return args.Int(0), args.Error(1)
}
