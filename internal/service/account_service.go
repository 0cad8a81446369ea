package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"mindful/backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignupInput is the data needed to create an account.
type SignupInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Username    *string
	Nationality *string
	IsSuperuser bool
}

// AccountService owns user records and credential checks.
type AccountService struct {
	db   *gorm.DB
	cost int
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db, cost: bcrypt.DefaultCost}
}

// NormalizeEmail lower-cases the domain part of an address.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// Signup creates a user with a hashed password. A superuser is also staff.
func (s *AccountService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	email := NormalizeEmail(in.Email)
	missing := &ValidationError{Fields: map[string][]string{}}
	for field, value := range map[string]string{
		"email":      email,
		"password":   in.Password,
		"first_name": strings.TrimSpace(in.FirstName),
		"last_name":  strings.TrimSpace(in.LastName),
	} {
		if value == "" {
			missing.Fields[field] = []string{"This field is required."}
		}
	}
	if len(missing.Fields) > 0 {
		return nil, missing
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		Nationality:  in.Nationality,
		IsActive:     true,
		IsStaff:      in.IsSuperuser,
		IsSuperuser:  in.IsSuperuser,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errDuplicateEmail()
		}
		return tx.Create(&user).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, errDuplicateEmail()
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func errDuplicateEmail() *ValidationError {
	return NewValidationError("email", "user with this email already exists.")
}

// Authenticate checks credentials. Unknown email, wrong password and inactive
// accounts all yield ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Keep timing comparable to the found-user path.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// RecordLogin stamps the user's last login time.
func (s *AccountService) RecordLogin(ctx context.Context, user *models.User) error {
	now := time.Now()
	if err := s.db.WithContext(ctx).Model(user).Update("last_login", now).Error; err != nil {
		return err
	}
	user.LastLogin = &now
	return nil
}

// Get loads an active or inactive user by id.
func (s *AccountService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
