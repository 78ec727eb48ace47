package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	args := m.Called(ctx, sessionID, key)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Set(ctx context.Context, sessionID, key, value string) error {
	args := m.Called(ctx, sessionID, key, value)
	return args.Error(0)
}

func (m *MockStore) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
