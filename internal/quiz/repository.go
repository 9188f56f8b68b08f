package quiz

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(q *Quiz) error
	Save(q *Quiz) error
	GetByID(id uuid.UUID) (*Quiz, error)
	ListByUser(userID uuid.UUID) ([]*Quiz, error)
	Delete(id uuid.UUID) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(q *Quiz) error {
	return r.db.Create(q).Error
}

func (r *quizRepository) Save(q *Quiz) error {
	return r.db.Save(q).Error
}

func (r *quizRepository) GetByID(id uuid.UUID) (*Quiz, error) {
	var quiz Quiz
	if err := r.db.First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) ListByUser(userID uuid.UUID) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Quiz{}, "id = ?", id).Error
}
