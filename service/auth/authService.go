package authsvc

import (
	"context"
	"errors"
	"strings"

	"eternalink/model"
	"eternalink/util/hash"
)

var (
	ErrBadInput     = errors.New("bad input")
	ErrEmailTaken   = errors.New("user already exists")
	ErrInvalidCreds = errors.New("invalid credentials")
	ErrNoUsers      = errors.New("no users found")
)

type Repo interface {
	Load(ctx context.Context) ([]model.User, error)
	Save(ctx context.Context, users []model.User) error
}

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.PublicUser, error)
	Login(ctx context.Context, req model.LoginReq) (*model.PublicUser, error)
	Profile(ctx context.Context) (*model.PublicUser, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.PublicUser, error) {
	if strings.TrimSpace(req.Username) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		req.Password == "" {
		return nil, ErrBadInput
	}

	users, err := s.r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == req.Email {
			return nil, ErrEmailTaken
		}
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := model.User{
		ID:           nextID(users),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
	}
	users = append(users, user)
	if err := s.r.Save(ctx, users); err != nil {
		return nil, err
	}

	pub := user.Public()
	return &pub, nil
}

// Login reports the same error for an unknown email and a wrong password so
// callers cannot probe which accounts exist.
func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.PublicUser, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, ErrBadInput
	}

	users, err := s.r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == req.Email {
			if !hash.Check(u.PasswordHash, req.Password) {
				return nil, ErrInvalidCreds
			}
			pub := u.Public()
			return &pub, nil
		}
	}
	return nil, ErrInvalidCreds
}

// Profile is a placeholder until real sessions exist: it returns the first
// stored user.
func (s *service) Profile(ctx context.Context) (*model.PublicUser, error) {
	users, err := s.r.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNoUsers
	}
	pub := users[0].Public()
	return &pub, nil
}

// nextID is max existing id + 1 so deletions or reordering in the data file
// can never hand out a duplicate.
func nextID(users []model.User) int64 {
	var max int64
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
