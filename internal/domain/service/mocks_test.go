package service

import (
	"context"

	"github.com/amimof/huego"
	"github.com/stretchr/testify/mock"
)

type MockLightPort struct {
	mock.Mock
}

func (m *MockLightPort) SetLightState(ctx context.Context, id int, state huego.State) error {
	args := m.Called(ctx, id, state)
	return args.Error(0)
}

type fixedGate bool

func (g fixedGate) IsNight() bool { return bool(g) }
