package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"contact_service/internal/auth"
	"contact_service/internal/domain"
	"contact_service/internal/validation"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type authUseCase struct {
	userRepo  domain.UserRepository
	log       *logrus.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthUseCase(repo domain.UserRepository, logger *logrus.Logger, jwtSecret []byte, tokenTTL time.Duration) domain.AuthUseCase {
	return &authUseCase{
		userRepo:  repo,
		log:       logger,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register validates the registration fields, hashes the password with
// bcrypt, and stores the credential row. A duplicate email surfaces as
// ErrConflict from the repository's unique-constraint handling.
func (uc *authUseCase) Register(name, email, phnumber, address, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	uc.log.Infof("Use Case: Attempting registration for email: %s", email)

	if err := validation.ValidateNewUser(name, email, phnumber, address, password); err != nil {
		uc.log.Warnf("Use Case: Registration failed validation: %v", err)
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to hash password for %s: %v", email, err)
		return nil, fmt.Errorf("internal error processing password: %w", err)
	}

	newUser := &domain.User{
		Name:         name,
		Email:        email,
		Phnumber:     phnumber,
		Address:      address,
		PasswordHash: string(hashedPassword),
	}

	createdUser, err := uc.userRepo.CreateUser(newUser)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create user %s: %v", email, err)
		return nil, err
	}

	uc.log.Infof("Use Case: User registered successfully. ID: %d, Email: %s", createdUser.ID, createdUser.Email)
	return createdUser, nil
}

// Login verifies credentials and issues the bearer token. Unknown email and
// wrong password both come back as ErrInvalidCredentials so the response
// cannot be used to probe which addresses are registered.
func (uc *authUseCase) Login(email, password string) (*domain.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	uc.log.Infof("Use Case: Attempting authentication for email: %s", email)

	user, err := uc.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Warnf("Use Case: Auth failed - user not found: %s", email)
			return nil, domain.ErrInvalidCredentials
		}
		uc.log.Errorf("Use Case: Error retrieving user %s during auth: %v", email, err)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			uc.log.Warnf("Use Case: Auth failed - incorrect password for user %s (ID: %d)", email, user.ID)
			return nil, domain.ErrInvalidCredentials
		}
		uc.log.Errorf("Use Case: Error comparing password hash for user %s: %v", email, err)
		return nil, fmt.Errorf("internal error during authentication: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Name, user.Email, uc.jwtSecret, uc.tokenTTL)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to generate token for user %s (ID: %d): %v", email, user.ID, err)
		return nil, fmt.Errorf("internal error during authentication: %w", err)
	}

	uc.log.Infof("Use Case: Authentication successful for user %s (ID: %d)", email, user.ID)

	return &domain.AuthResult{
		Token:    token,
		Username: user.Name,
		Phnumber: user.Phnumber,
		Address:  user.Address,
	}, nil
}
