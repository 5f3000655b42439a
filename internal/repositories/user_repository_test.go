package repositories

import (
	"context"
	"testing"

	"budget-tracker/internal/database"
	"budget-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
	ctx  context.Context
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) TestUserRepository_Create() {
	user := &models.User{
		ExternalID: "user_" + gofakeit.UUID(),
		Email:      gofakeit.Email(),
	}

	err := s.repo.Create(s.ctx, user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.NotZero(user.CreatedAt)
	s.NotZero(user.UpdatedAt)
}

func (s *UserRepositorySuite) TestUserRepository_CreateNil() {
	s.Error(s.repo.Create(s.ctx, nil))
}

func (s *UserRepositorySuite) TestUserRepository_CreateDuplicateExternalID() {
	externalID := "user_" + gofakeit.UUID()

	s.NoError(s.repo.Create(s.ctx, &models.User{ExternalID: externalID}))

	err := s.repo.Create(s.ctx, &models.User{ExternalID: externalID})
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *UserRepositorySuite) TestUserRepository_CreateRequiresExternalID() {
	err := s.repo.Create(s.ctx, &models.User{Email: gofakeit.Email()})
	s.Error(err)
}

func (s *UserRepositorySuite) TestUserRepository_GetByExternalID() {
	user := database.CreateTestUser(s.T(), s.db, "user_lookup")

	found, err := s.repo.GetByExternalID(s.ctx, "user_lookup")
	s.NoError(err)
	s.Equal(user.ID, found.ID)
	s.Equal(user.Email, found.Email)

	_, err = s.repo.GetByExternalID(s.ctx, "user_missing")
	s.Equal(ErrUserNotFound, err)
}
