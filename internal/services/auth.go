package services

import (
	"errors"
	"strings"

	"github.com/taskflow-dev/taskflow/db"
	"github.com/taskflow-dev/taskflow/internal/auth"
	"github.com/taskflow-dev/taskflow/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// NormalizeEmail produces the canonical form used as the unique user key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func Register(fullName string, email string, password string, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	email = NormalizeEmail(email)

	var existingUser models.User

	err := db.DB.Where("email = ?", email).First(&existingUser).Error

	if err == nil {
		return ErrEmailTaken
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return err
	}

	user := models.User{
		FullName:     strings.TrimSpace(fullName),
		Email:        email,
		PasswordHash: string(passwordHash),
	}

	return db.DB.Create(&user).Error
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password return the same error.
func Login(email string, password string) (string, *models.User, error) {
	var user models.User

	err := db.DB.Where("email = ?", NormalizeEmail(email)).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(user.Email, user.FullName)

	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}
