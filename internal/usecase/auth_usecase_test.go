package usecase

import (
	"io"
	"time"

	"vaccination-management/config"
	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/apperror"
	"vaccination-management/internal/domain/entity"
	"vaccination-management/internal/repository"
	"vaccination-management/internal/service"
	"vaccination-management/pkg/password"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func (s *UsecaseSuite) TestRegisterThenLogin() {
	registered, err := s.auth.Register(s.ctx, &dto.RegisterRequest{
		FullName: "Moussa Ba",
		Email:    "Moussa@X.com",
		Password: "secret123",
	})
	s.Require().NoError(err)
	s.Equal("moussa@x.com", registered.Email)
	s.Equal(string(entity.RoleCitizen), registered.Role)

	token, err := s.auth.Login(s.ctx, &dto.LoginRequest{Email: "moussa@x.com", Password: "secret123"})
	s.Require().NoError(err)
	s.Equal("bearer", token.TokenType)
	s.EqualValues(30*60, token.ExpiresIn)

	subject, err := s.tokens.Verify(token.AccessToken)
	s.Require().NoError(err)
	s.Equal(registered.ID, subject)
}

func (s *UsecaseSuite) TestRegisterStoresOnlyAHash() {
	registered, err := s.auth.Register(s.ctx, &dto.RegisterRequest{FullName: "Fatou", Email: "fatou@x.com", Password: "plain-secret"})
	s.Require().NoError(err)

	user, err := repository.NewUserRepository().FindByID(s.ctx, s.db, registered.ID)
	s.Require().NoError(err)
	s.NotEqual("plain-secret", user.PasswordHash)
	s.NotContains(user.PasswordHash, "plain-secret")
}

func (s *UsecaseSuite) TestRegisterDuplicateEmail() {
	_, err := s.auth.Register(s.ctx, &dto.RegisterRequest{FullName: "First", Email: "dup@x.com", Password: "secret123"})
	s.Require().NoError(err)

	_, err = s.auth.Register(s.ctx, &dto.RegisterRequest{FullName: "Second", Email: "dup@x.com", Password: "different"})
	s.ErrorIs(err, ErrEmailAlreadyExists)
	s.True(apperror.HasKind(err, apperror.KindConflict))

	_, err = s.auth.Register(s.ctx, &dto.RegisterRequest{FullName: "Third", Email: " DUP@x.com", Password: "another"})
	s.ErrorIs(err, ErrEmailAlreadyExists)
}

func (s *UsecaseSuite) TestLoginRejectsBadCredentials() {
	_, err := s.auth.Register(s.ctx, &dto.RegisterRequest{FullName: "Ibou", Email: "ibou@x.com", Password: "secret123"})
	s.Require().NoError(err)

	_, err = s.auth.Login(s.ctx, &dto.LoginRequest{Email: "ibou@x.com", Password: "wrong"})
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.auth.Login(s.ctx, &dto.LoginRequest{Email: "nobody@x.com", Password: "secret123"})
	s.ErrorIs(err, ErrInvalidCredentials)

	s.Equal(2.0, testutil.ToFloat64(s.metrics.LoginFailures))
}

func (s *UsecaseSuite) TestGetCurrentUser() {
	me, err := s.auth.GetCurrentUser(s.ctx, s.citizen)
	s.Require().NoError(err)
	s.Equal(s.citizen.ID, me.ID)

	_, err = s.auth.GetCurrentUser(s.ctx, nil)
	s.True(apperror.HasKind(err, apperror.KindUnauthenticated))
}

func (s *UsecaseSuite) TestEnsureAdmin() {
	cfg := config.AdminConfig{Email: "Root@X.com", Password: "rootpass", FullName: "Root"}

	s.Require().NoError(s.auth.EnsureAdmin(s.ctx, cfg))
	s.Require().NoError(s.auth.EnsureAdmin(s.ctx, cfg))

	root, err := repository.NewUserRepository().FindByEmail(s.ctx, s.db, "root@x.com")
	s.Require().NoError(err)
	s.Require().NotNil(root)
	s.True(root.IsAdmin())

	_, err = s.auth.Login(s.ctx, &dto.LoginRequest{Email: "root@x.com", Password: "rootpass"})
	s.NoError(err)
}

func (s *UsecaseSuite) TestEnsureAdminPromotesExistingCitizen() {
	s.Require().NoError(s.auth.EnsureAdmin(s.ctx, config.AdminConfig{Email: s.citizen.Email, Password: "ignored"}))

	user, err := repository.NewUserRepository().FindByID(s.ctx, s.db, s.citizen.ID)
	s.Require().NoError(err)
	s.True(user.IsAdmin())
	s.Equal("unused", user.PasswordHash)
}

func (s *UsecaseSuite) TestEnsureAdminDisabled() {
	s.NoError(s.auth.EnsureAdmin(s.ctx, config.AdminConfig{}))
}

func (s *UsecaseSuite) TestLoginLockout() {
	mr := miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)
	limiter := service.NewLoginLimiter(client, log, config.LoginConfig{MaxAttempts: 2, Window: time.Minute})
	auth := NewAuthUsecase(s.db, log, repository.NewUserRepository(), password.NewHasher(bcrypt.MinCost), s.tokens, limiter, s.metrics)

	_, err := auth.Register(s.ctx, &dto.RegisterRequest{FullName: "Lamine", Email: "lamine@x.com", Password: "secret123"})
	s.Require().NoError(err)

	// a success clears earlier failures
	_, err = auth.Login(s.ctx, &dto.LoginRequest{Email: "lamine@x.com", Password: "wrong"})
	s.ErrorIs(err, ErrInvalidCredentials)
	_, err = auth.Login(s.ctx, &dto.LoginRequest{Email: "lamine@x.com", Password: "secret123"})
	s.Require().NoError(err)

	for i := 0; i < 2; i++ {
		_, err = auth.Login(s.ctx, &dto.LoginRequest{Email: "lamine@x.com", Password: "wrong"})
		s.ErrorIs(err, ErrInvalidCredentials)
	}

	_, err = auth.Login(s.ctx, &dto.LoginRequest{Email: "LAMINE@x.com", Password: "secret123"})
	s.ErrorIs(err, service.ErrTooManyLoginAttempts)
	s.True(apperror.HasKind(err, apperror.KindTooManyRequests))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.LoginLockouts))

	mr.FastForward(time.Minute + time.Second)
	_, err = auth.Login(s.ctx, &dto.LoginRequest{Email: "lamine@x.com", Password: "secret123"})
	s.NoError(err)
}
