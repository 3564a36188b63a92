//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"dealer-portal/internal/domain/user"
	"dealer-portal/internal/pkg/errs"
	"dealer-portal/internal/pkg/jwt"
	"dealer-portal/internal/pkg/password"
	"dealer-portal/internal/usecase/commands"
	"dealer-portal/tests/common/builder"
	commandsmock "dealer-portal/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testPassword = "password1234"

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockUsers  *commandsmock.MockUserRepository
	jwtService *jwt.Service
	commands   commands.AuthCommands
	hashed     string
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	hashed, err := password.HashPassword(testPassword)
	s.Require().NoError(err)
	s.hashed = hashed
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = commandsmock.NewMockUserRepository(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
	s.commands = commands.NewAuthCommands(s.mockUsers, s.jwtService)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) credentials(email string) user.Credentials {
	e, err := user.NewEmail(email)
	s.Require().NoError(err)
	p, err := user.NewPassword(testPassword)
	s.Require().NoError(err)
	return user.NewCredentials(e, p)
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("valid credentials issue a token pair", func() {
		view := builder.NewUserBuilder().WithEmail("staff@dealer.example.com").BuildView()

		s.mockUsers.EXPECT().
			FindByEmail(gomock.Any(), "staff@dealer.example.com").
			Return(view, s.hashed, nil)
		s.mockUsers.EXPECT().UpdateLastLogin(gomock.Any(), view.ID).Return(nil)

		result, err := s.commands.Login(context.Background(), s.credentials("staff@dealer.example.com"))
		s.NoError(err)
		s.Equal(view.ID, result.UserID)
		s.Equal(user.RoleDealerStaff, result.Role)
		s.NotEmpty(result.TokenPair.AccessToken)
		s.NotEmpty(result.TokenPair.RefreshToken)

		claims, err := s.jwtService.ValidateToken(result.TokenPair.AccessToken)
		s.NoError(err)
		s.Equal(view.ID, claims.UserID)
		s.Equal(jwt.TokenTypeAccess, claims.TokenType)
	})

	s.Run("unknown email and wrong password share one error", func() {
		s.mockUsers.EXPECT().
			FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, "", errs.New("no rows"))

		_, err := s.commands.Login(context.Background(), s.credentials("ghost@dealer.example.com"))
		s.ErrorIs(err, commands.ErrInvalidCredentials)

		view := builder.NewUserBuilder().BuildView()
		otherHash, hashErr := password.HashPassword("a-different-password")
		s.Require().NoError(hashErr)
		s.mockUsers.EXPECT().
			FindByEmail(gomock.Any(), gomock.Any()).
			Return(view, otherHash, nil)

		_, err = s.commands.Login(context.Background(), s.credentials(view.Email))
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("inactive user cannot log in", func() {
		view := builder.NewUserBuilder().Inactive().BuildView()

		s.mockUsers.EXPECT().
			FindByEmail(gomock.Any(), gomock.Any()).
			Return(view, s.hashed, nil)

		_, err := s.commands.Login(context.Background(), s.credentials(view.Email))
		s.ErrorIs(err, commands.ErrUserInactive)
	})

	s.Run("last login failure does not block the login", func() {
		view := builder.NewUserBuilder().BuildView()

		s.mockUsers.EXPECT().
			FindByEmail(gomock.Any(), gomock.Any()).
			Return(view, s.hashed, nil)
		s.mockUsers.EXPECT().
			UpdateLastLogin(gomock.Any(), view.ID).
			Return(errs.New("deadlock"))

		result, err := s.commands.Login(context.Background(), s.credentials(view.Email))
		s.NoError(err)
		s.NotNil(result.TokenPair)
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	dealerID := uuid.New()

	s.Run("valid refresh token issues a fresh pair", func() {
		view := builder.NewUserBuilder().WithDealerID(&dealerID).BuildView()
		refresh, err := s.jwtService.GenerateRefreshToken(view.ID, &dealerID, user.RoleDealerStaff)
		s.Require().NoError(err)

		s.mockUsers.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		pair, err := s.commands.RefreshToken(context.Background(), refresh)
		s.NoError(err)
		s.NotEmpty(pair.AccessToken)
		s.NotEmpty(pair.RefreshToken)
	})

	s.Run("access token cannot be used as a refresh token", func() {
		access, err := s.jwtService.GenerateAccessToken(uuid.New(), &dealerID, user.RoleDealerStaff)
		s.Require().NoError(err)

		_, err = s.commands.RefreshToken(context.Background(), access)
		s.ErrorIs(err, commands.ErrTokenValidation)
	})

	s.Run("deactivated account cannot refresh", func() {
		view := builder.NewUserBuilder().WithDealerID(&dealerID).Inactive().BuildView()
		refresh, err := s.jwtService.GenerateRefreshToken(view.ID, &dealerID, user.RoleDealerStaff)
		s.Require().NoError(err)

		s.mockUsers.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err = s.commands.RefreshToken(context.Background(), refresh)
		s.ErrorIs(err, commands.ErrUserInactive)
	})

	s.Run("garbage token is rejected", func() {
		_, err := s.commands.RefreshToken(context.Background(), "not.a.jwt")
		s.ErrorIs(err, commands.ErrTokenValidation)
	})
}
