package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"rail-booking/internal/data/entity"
	"rail-booking/internal/data/repository"
	"rail-booking/internal/dto/request"
	"rail-booking/pkg/utils"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.User
	for _, u := range f.users {
		user := u
		out = append(out, &user)
	}
	return out, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.ID] = *session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sessions {
		if s.Token.String() == token && s.RevokedAt == nil && s.ExpiresAt.After(time.Now()) {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for id, s := range f.sessions {
		if s.Token.String() == token {
			s.RevokedAt = &now
			f.sessions[id] = s
		}
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for id, s := range f.sessions {
		if s.UserID == userID {
			s.RevokedAt = &now
			f.sessions[id] = s
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	return nil
}

func newAuthService(t *testing.T) (*AuthService, *repository.Repository) {
	t.Helper()
	repos, _ := newTestRepos()
	repos.User = newFakeUserRepo()
	repos.Session = newFakeSessionRepo()

	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	return NewAuthService(repos, config, testLogger()), repos
}

func registerRequest() request.RegisterRequest {
	return request.RegisterRequest{
		Username: "traveler1",
		Email:    "traveler@example.com",
		Password: "supersecret1",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerRequest())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != string(entity.RoleCustomer) {
		t.Errorf("role = %s, want customer", user.Role)
	}
	if !user.IsActive {
		t.Error("new user should be active")
	}

	login, err := svc.Login(ctx, request.LoginRequest{
		Email:    "traveler@example.com",
		Password: "supersecret1",
	}, "test-agent", "127.0.0.1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.Token == "" {
		t.Error("login returned empty token")
	}
	if login.User.ID != user.ID {
		t.Errorf("login user = %s, want %s", login.User.ID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerRequest()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	dup := registerRequest()
	dup.Username = "othername"
	if _, err := svc.Register(ctx, dup); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}

	dup = registerRequest()
	dup.Email = "other@example.com"
	if _, err := svc.Register(ctx, dup); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t)

	req := registerRequest()
	req.Password = "short"
	_, err := svc.Register(context.Background(), req)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerRequest()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(ctx, request.LoginRequest{
		Email:    "traveler@example.com",
		Password: "wrongpassword",
	}, "", "")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(ctx, request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	}, "", "")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, repos := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerRequest())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	stored, _ := repos.User.FindByID(ctx, uuid.MustParse(user.ID))
	stored.IsActive = false
	if err := repos.User.Update(ctx, stored); err != nil {
		t.Fatalf("disable user: %v", err)
	}

	_, err = svc.Login(ctx, request.LoginRequest{
		Email:    "traveler@example.com",
		Password: "supersecret1",
	}, "", "")
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("err = %v, want ErrAccountDisabled", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, repos := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerRequest()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	login, err := svc.Login(ctx, request.LoginRequest{
		Email:    "traveler@example.com",
		Password: "supersecret1",
	}, "", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(ctx, login.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	session, err := repos.Session.FindValidSession(ctx, login.Token)
	if err != nil {
		t.Fatalf("FindValidSession: %v", err)
	}
	if session != nil {
		t.Error("session still valid after logout")
	}
}
