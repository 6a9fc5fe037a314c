package userrepo

import (
	"context"

	"eternalink/model"
)

type MemRepo struct{ users []model.User }

func NewMem(seed []model.User) *MemRepo {
	m := &MemRepo{}
	m.users = append(m.users, seed...)
	return m
}

func (m *MemRepo) Load(_ context.Context) ([]model.User, error) {
	out := make([]model.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *MemRepo) Save(_ context.Context, users []model.User) error {
	m.users = make([]model.User, len(users))
	copy(m.users, users)
	return nil
}
