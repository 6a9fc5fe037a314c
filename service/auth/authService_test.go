package authsvc

import (
	"context"
	"errors"
	"testing"

	"eternalink/model"
	userrepo "eternalink/repository/user"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	loadFn func(ctx context.Context) ([]model.User, error)
	saveFn func(ctx context.Context, users []model.User) error
	saves  int
}

func (m *mockRepo) Load(ctx context.Context) ([]model.User, error) {
	if m.loadFn == nil {
		return nil, nil
	}
	return m.loadFn(ctx)
}

func (m *mockRepo) Save(ctx context.Context, users []model.User) error {
	m.saves++
	if m.saveFn == nil {
		return nil
	}
	return m.saveFn(ctx, users)
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	repo := userrepo.NewMem(nil)
	svc := New(repo)

	u, err := svc.Register(ctx, model.RegisterReq{
		Username: "daniel",
		Email:    "daniel@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID) // first user in an empty store
	require.Equal(t, "daniel", u.Username)
	require.Equal(t, "daniel@example.com", u.Email)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.NotEmpty(t, stored[0].PasswordHash)
	require.NotEqual(t, "supersecret", stored[0].PasswordHash)
}

func TestRegister_NextIDIsMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	repo := userrepo.NewMem([]model.User{
		{ID: 3, Username: "a", Email: "a@example.com"},
		{ID: 9, Username: "b", Email: "b@example.com"},
		{ID: 5, Username: "c", Email: "c@example.com"},
	})
	svc := New(repo)

	u, err := svc.Register(ctx, model.RegisterReq{
		Username: "d",
		Email:    "d@example.com",
		Password: "pw123456",
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), u.ID)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := New(&mockRepo{})

	_, err := svc.Register(context.Background(), model.RegisterReq{
		Email:    "x@example.com",
		Password: "pw",
	})
	require.ErrorIs(t, err, ErrBadInput)
}

func TestRegister_DuplicateEmailLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := userrepo.NewMem(nil)
	svc := New(repo)

	_, err := svc.Register(ctx, model.RegisterReq{Username: "a", Email: "dup@example.com", Password: "first-pass"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, model.RegisterReq{Username: "b", Email: "dup@example.com", Password: "second-pass"})
	require.ErrorIs(t, err, ErrEmailTaken)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, "a", stored[0].Username)
}

func TestLogin_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := userrepo.NewMem(nil)
	svc := New(repo)

	_, err := svc.Register(ctx, model.RegisterReq{Username: "daniel", Email: "daniel@example.com", Password: "supersecret"})
	require.NoError(t, err)

	u, err := svc.Login(ctx, model.LoginReq{Email: "daniel@example.com", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, "daniel", u.Username)
}

func TestLogin_WrongPasswordLooksLikeUnknownEmail(t *testing.T) {
	ctx := context.Background()
	repo := userrepo.NewMem(nil)
	svc := New(repo)

	_, err := svc.Register(ctx, model.RegisterReq{Username: "daniel", Email: "daniel@example.com", Password: "correct-password"})
	require.NoError(t, err)

	_, wrongPass := svc.Login(ctx, model.LoginReq{Email: "daniel@example.com", Password: "wrong-password"})
	_, noUser := svc.Login(ctx, model.LoginReq{Email: "ghost@example.com", Password: "whatever"})

	require.ErrorIs(t, wrongPass, ErrInvalidCreds)
	require.ErrorIs(t, noUser, ErrInvalidCreds)
	require.Equal(t, wrongPass, noUser) // indistinguishable on purpose
}

func TestLogin_MissingFields(t *testing.T) {
	svc := New(&mockRepo{})

	_, err := svc.Login(context.Background(), model.LoginReq{Email: " ", Password: ""})
	require.ErrorIs(t, err, ErrBadInput)
}

func TestLogin_StoreErrorPropagates(t *testing.T) {
	svc := New(&mockRepo{
		loadFn: func(ctx context.Context) ([]model.User, error) {
			return nil, errors.New("disk on fire")
		},
	})

	_, err := svc.Login(context.Background(), model.LoginReq{Email: "a@example.com", Password: "pw"})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCreds)
}

func TestProfile_FirstUserOrNotFound(t *testing.T) {
	ctx := context.Background()

	svc := New(userrepo.NewMem(nil))
	_, err := svc.Profile(ctx)
	require.ErrorIs(t, err, ErrNoUsers)

	svc = New(userrepo.NewMem([]model.User{
		{ID: 1, Username: "first", Email: "first@example.com", PasswordHash: "x"},
		{ID: 2, Username: "second", Email: "second@example.com", PasswordHash: "y"},
	}))
	u, err := svc.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, "first", u.Username)
}
