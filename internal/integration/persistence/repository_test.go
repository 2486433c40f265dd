package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/persistence/model"
)

type RepositorySuite struct {
	suite.Suite

	ctx    context.Context
	db     *gorm.DB
	userID uuid.UUID
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(model.All()...))

	s.ctx = context.Background()
	s.db = db
	s.userID = uuid.New()
}

func (s *RepositorySuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())
}

func (s *RepositorySuite) TestUserRepository() {
	repo := NewUserRepository(s.db)
	user := entity.NewUser("ana@example.com", "Ana", "hash")

	s.Require().NoError(repo.Create(s.ctx, user))

	found, err := repo.FindByEmail(s.ctx, "ana@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)

	exists, err := repo.ExistsByEmail(s.ctx, "ana@example.com")
	s.Require().NoError(err)
	s.True(exists)

	_, err = repo.FindByID(s.ctx, uuid.New())
	s.ErrorIs(err, domainerror.ErrUserNotFound)

	dup := entity.NewUser("ana@example.com", "Other", "hash")
	s.Error(repo.Create(s.ctx, dup))
}

func (s *RepositorySuite) TestExpenseRepositoryKeepsInsertionOrder() {
	repo := NewExpenseRepository(s.db)
	day := time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC)

	first := entity.NewExpense(s.userID, "Rent", decimal.RequireFromString("1200.00"), "Bills", day.AddDate(0, 0, 5))
	second := entity.NewExpense(s.userID, "Coffee", decimal.RequireFromString("3.75"), "Food", day)
	second.CreatedAt = first.CreatedAt.Add(time.Millisecond)
	other := entity.NewExpense(uuid.New(), "Other", decimal.RequireFromString("1"), "Food", day)

	for _, e := range []*entity.Expense{first, second, other} {
		s.Require().NoError(repo.Create(s.ctx, e))
	}

	got, err := repo.FindByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(first.ID, got[0].ID)
	s.Equal(second.ID, got[1].ID)
	s.True(got[1].Amount.Equal(decimal.RequireFromString("3.75")))
	s.Equal(day, got[1].Date)

	s.ErrorIs(repo.Delete(s.ctx, uuid.New(), first.ID), domainerror.ErrExpenseNotFound)
	s.Require().NoError(repo.Delete(s.ctx, s.userID, first.ID))

	got, err = repo.FindByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Len(got, 1)
}

func (s *RepositorySuite) TestGoalRepository() {
	repo := NewGoalRepository(s.db)
	goal := entity.NewGoal(s.userID, "Emergency fund", decimal.NewFromInt(5000), time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(repo.Create(s.ctx, goal))

	_, err := goal.AddSavings(decimal.RequireFromString("250.50"))
	s.Require().NoError(err)
	s.Require().NoError(repo.UpdateSaved(s.ctx, goal))

	found, err := repo.FindByID(s.ctx, goal.ID)
	s.Require().NoError(err)
	s.True(found.Saved.Equal(decimal.RequireFromString("250.50")))
	s.Equal("Emergency fund", found.Name)

	list, err := repo.FindByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Len(list, 1)

	s.Require().NoError(repo.Delete(s.ctx, s.userID, goal.ID))
	_, err = repo.FindByID(s.ctx, goal.ID)
	s.ErrorIs(err, domainerror.ErrGoalNotFound)
	s.ErrorIs(repo.UpdateSaved(s.ctx, goal), domainerror.ErrGoalNotFound)
}

func (s *RepositorySuite) TestBudgetRepositoryUpserts() {
	repo := NewBudgetRepository(s.db)

	empty, err := repo.Get(s.ctx, s.userID)
	s.Require().NoError(err)
	s.False(empty.IsSet())

	s.Require().NoError(repo.Save(s.ctx, entity.MonthlyLimit{UserID: s.userID, Amount: decimal.NewFromInt(800)}))
	s.Require().NoError(repo.Save(s.ctx, entity.MonthlyLimit{UserID: s.userID, Amount: decimal.NewFromInt(650)}))

	got, err := repo.Get(s.ctx, s.userID)
	s.Require().NoError(err)
	s.True(got.Amount.Equal(decimal.NewFromInt(650)))

	var count int64
	s.Require().NoError(s.db.Model(&model.MonthlyLimitModel{}).Count(&count).Error)
	s.EqualValues(1, count)
}

func (s *RepositorySuite) TestStreakRepository() {
	repo := NewStreakRepository(s.db)

	zero, err := repo.Get(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal(0, zero.Count)
	s.Nil(zero.LastActivity)

	day := time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(repo.Save(s.ctx, s.userID, entity.Streak{Count: 3, LastActivity: &day}))
	next := day.AddDate(0, 0, 1)
	s.Require().NoError(repo.Save(s.ctx, s.userID, entity.Streak{Count: 4, LastActivity: &next}))

	got, err := repo.Get(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal(4, got.Count)
	s.Require().NotNil(got.LastActivity)
	s.Equal(next, *got.LastActivity)
}

func (s *RepositorySuite) TestTokenRepository() {
	repo := NewTokenRepository(s.db)

	s.Require().NoError(repo.Record(s.ctx, "live", s.userID, time.Now().UTC().Add(time.Hour)))
	s.Require().NoError(repo.Record(s.ctx, "stale", s.userID, time.Now().UTC().Add(-time.Hour)))

	valid, err := repo.IsActive(s.ctx, "live")
	s.Require().NoError(err)
	s.True(valid)

	valid, err = repo.IsActive(s.ctx, "stale")
	s.Require().NoError(err)
	s.False(valid)

	removed, err := repo.DeleteExpired(s.ctx, time.Now().UTC())
	s.Require().NoError(err)
	s.EqualValues(1, removed)

	s.Require().NoError(repo.RevokeUserTokens(s.ctx, s.userID))
	valid, err = repo.IsActive(s.ctx, "live")
	s.Require().NoError(err)
	s.False(valid)

	var rows []model.RefreshTokenModel
	s.Require().NoError(s.db.Where("user_id = ?", s.userID).Find(&rows).Error)
	s.Require().Len(rows, 1)
	s.Require().NotNil(rows[0].RevokedAt)
	s.WithinDuration(time.Now(), *rows[0].RevokedAt, time.Minute)
}

func (s *RepositorySuite) TestEmailQueueRepository() {
	repo := NewEmailQueueRepository(s.db)
	now := time.Now().UTC()

	due := entity.NewEmailJob(s.userID, entity.EmailGoalCompleted, "ana@example.com", "Ana", "Goal reached", map[string]string{"goal_name": "Bike"}, now)
	later := entity.NewEmailJob(s.userID, entity.EmailLimitExceeded, "ana@example.com", "Ana", "Limit", nil, now)
	later.ScheduledAt = now.Add(time.Hour)

	s.Require().NoError(repo.Create(s.ctx, due))
	s.Require().NoError(repo.Create(s.ctx, later))

	pending, err := repo.GetPendingJobs(s.ctx, now.Add(time.Second), 10)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(due.ID, pending[0].ID)
	s.Equal("Bike", pending[0].Data["goal_name"])

	pending[0].Delivered("re_123", now)
	s.Require().NoError(repo.Update(s.ctx, pending[0]))

	got, err := repo.GetByID(s.ctx, due.ID)
	s.Require().NoError(err)
	s.Equal(entity.EmailDelivered, got.Status)
	s.Equal("re_123", got.ProviderMessageID)
	s.Require().NotNil(got.ProcessedAt)
	s.WithinDuration(now, *got.ProcessedAt, time.Second)

	byUser, err := repo.GetByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Len(byUser, 2)

	repo.(*emailQueueRepository).now = func() time.Time { return now.AddDate(0, 0, 31) }
	deleted, err := repo.DeleteOldSentJobs(s.ctx, 30)
	s.Require().NoError(err)
	s.EqualValues(1, deleted)
}

func (s *RepositorySuite) TestEmailQueueClaimIsExclusive() {
	repo := NewEmailQueueRepository(s.db)
	now := time.Now().UTC()
	s.Require().NoError(repo.Create(s.ctx, entity.NewEmailJob(s.userID, entity.EmailGoalCompleted, "ana@example.com", "Ana", "Goal", nil, now)))

	first, err := repo.GetPendingJobs(s.ctx, now.Add(time.Second), 10)
	s.Require().NoError(err)
	second, err := repo.GetPendingJobs(s.ctx, now.Add(time.Second), 10)
	s.Require().NoError(err)
	s.Require().Len(first, 1)
	s.Require().Len(second, 1)

	first[0].Claim(now)
	claimed, err := repo.Claim(s.ctx, first[0])
	s.Require().NoError(err)
	s.True(claimed)

	second[0].Claim(now)
	claimed, err = repo.Claim(s.ctx, second[0])
	s.Require().NoError(err)
	s.False(claimed)

	got, err := repo.GetByID(s.ctx, first[0].ID)
	s.Require().NoError(err)
	s.Equal(entity.EmailSending, got.Status)
	s.Require().NotNil(got.ClaimedAt)
}

func (s *RepositorySuite) TestEmailQueueRequeueStale() {
	repo := NewEmailQueueRepository(s.db)
	now := time.Now().UTC()

	stale := entity.NewEmailJob(s.userID, entity.EmailGoalCompleted, "ana@example.com", "Ana", "Goal", nil, now.Add(-time.Hour))
	fresh := entity.NewEmailJob(s.userID, entity.EmailGoalCompleted, "ana@example.com", "Ana", "Goal", nil, now)
	for _, job := range []*entity.EmailJob{stale, fresh} {
		s.Require().NoError(repo.Create(s.ctx, job))
	}
	stale.Claim(now.Add(-time.Hour))
	fresh.Claim(now)
	for _, job := range []*entity.EmailJob{stale, fresh} {
		claimed, err := repo.Claim(s.ctx, job)
		s.Require().NoError(err)
		s.Require().True(claimed)
	}

	n, err := repo.RequeueStale(s.ctx, now.Add(-10*time.Minute), now)
	s.Require().NoError(err)
	s.EqualValues(1, n)

	pending, err := repo.GetPendingJobs(s.ctx, now.Add(time.Second), 10)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(stale.ID, pending[0].ID)
	s.Nil(pending[0].ClaimedAt)
}
