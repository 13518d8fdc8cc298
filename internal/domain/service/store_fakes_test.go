package service

import (
	"context"
)

type memoryState[S any] struct {
	state   S
	loadErr error
	saveErr error
	saves   int
}

func (m *memoryState[S]) Load(ctx context.Context) (S, error) {
	return m.state, m.loadErr
}

func (m *memoryState[S]) Save(ctx context.Context, state S) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.state = state
	return nil
}
