package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "mymoney/internal/errors"
	"mymoney/internal/models"
)

// defaultCategories is seeded for every new user: one income category and
// six expense categories.
var defaultCategories = []struct {
	Name string
	Type models.CategoryType
}{
	{"Salary", models.CategoryTypeIncome},
	{"Food", models.CategoryTypeExpense},
	{"Transport", models.CategoryTypeExpense},
	{"Shopping", models.CategoryTypeExpense},
	{"Bills", models.CategoryTypeExpense},
	{"Entertainment", models.CategoryTypeExpense},
	{"Health", models.CategoryTypeExpense},
}

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// Register creates a new user together with the default category set in
// one database transaction.
func (s *userService) Register(email, password, name string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}
	email = strings.ToLower(email)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     name,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// The unique index on email is the duplicate check; a concurrent
		// registration of the same address loses the insert race here.
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateEmail
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		categories := make([]models.Category, 0, len(defaultCategories))
		for _, c := range defaultCategories {
			categories = append(categories, models.Category{
				UserID: user.ID,
				Name:   c.Name,
				Type:   c.Type,
			})
		}
		if err := tx.Create(&categories).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// AttemptLogin verifies the credentials and returns the user. A missing
// user and a wrong password produce the same error.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}
