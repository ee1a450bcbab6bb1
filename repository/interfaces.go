package repository

import (
	"context"

	"triviaBackend/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetByUUID(ctx context.Context, userUUID string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, userUUID string, username, passwordHash *string) error
	Delete(ctx context.Context, userUUID string) (bool, error)
}

// SessionRepositoryI defines operations on Session entities.
type SessionRepositoryI interface {
	Create(ctx context.Context, userUUID string) (*models.Session, error)
	GetByUser(ctx context.Context, userUUID string) (*models.Session, error)
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	DeleteByUser(ctx context.Context, userUUID string) (bool, error)
	DeleteByToken(ctx context.Context, token string) (bool, error)
}

// QuestionRepositoryI defines operations on Question entities.
type QuestionRepositoryI interface {
	Create(ctx context.Context, q *models.Question) (*models.Question, error)
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	List(ctx context.Context) ([]models.Question, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TagRepositoryI defines operations on Tag entities.
type TagRepositoryI interface {
	Create(ctx context.Context, t *models.Tag) (*models.Tag, error)
	GetByID(ctx context.Context, id int64) (*models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// QuestionTagRepositoryI defines operations on the question/tag association.
type QuestionTagRepositoryI interface {
	Create(ctx context.Context, questionID, tagID int64) (*models.QuestionTag, error)
	Get(ctx context.Context, questionID, tagID int64) (*models.QuestionTag, error)
	List(ctx context.Context) ([]models.QuestionTag, error)
	Delete(ctx context.Context, questionID, tagID int64) (bool, error)
}

// StatisticsRepositoryI defines operations on per-user statistics.
type StatisticsRepositoryI interface {
	Get(ctx context.Context, userUUID string) (*models.Statistics, error)
	Update(ctx context.Context, userUUID string, xpDelta, winsDelta, lossesDelta int64) error
}

// Compile-time checks: concrete repositories satisfy their contracts.
var (
	_ UserRepositoryI        = (*UserRepository)(nil)
	_ SessionRepositoryI     = (*SessionRepository)(nil)
	_ QuestionRepositoryI    = (*QuestionRepository)(nil)
	_ TagRepositoryI         = (*TagRepository)(nil)
	_ QuestionTagRepositoryI = (*QuestionTagRepository)(nil)
	_ StatisticsRepositoryI  = (*StatisticsRepository)(nil)
)
