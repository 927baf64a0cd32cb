package processor

import (
	"context"
	"errors"
	"strings"

	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthProcessor struct {
	store     AuthStore
	jwtSecret string
	logger    *observability.Logger
}

func New(store AuthStore, jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		logger:    logger,
		jwtSecret: jwtSecret,
	}
}

var (
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrIncorrectCredentials = errors.New("incorrect email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidJWTToken      = errors.New("invalid jwt token")
	ErrParseJWTToken        = errors.New("failed to parse jwt token")
	ErrExpiredToken         = errors.New("jwt token expired")
)

type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
}

type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
	AuthType       string           `json:"auth_type"`
	Role           string           `json:"role"`
}

// splitName turns a full name into first and last name; everything after
// the first space is the last name.
func splitName(fullName string) (string, string) {
	fullName = strings.TrimSpace(fullName)
	first, last, _ := strings.Cut(fullName, " ")
	return first, strings.TrimSpace(last)
}

func (p *AuthProcessor) createUser(ctx context.Context, fullName, email, password, role string) (store.User, error) {
	exists, err := p.store.CheckIfEmailExists(ctx, email)
	if err != nil {
		p.logger.Error(ctx, "failed to check if email exists", err)
		return store.User{}, err
	}
	if exists {
		return store.User{}, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return store.User{}, err
	}

	firstName, lastName := splitName(fullName)
	user, err := p.store.CreateUserOnEmailSignup(ctx, firstName, lastName, email, string(hashedPassword), role)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyRegistered) {
			return store.User{}, ErrEmailAlreadyExists
		}
		p.logger.Error(ctx, "failed to create user", err)
		return store.User{}, err
	}
	return user, nil
}

// CreateIdentity provisions an affiliate login. It returns
// ErrEmailAlreadyExists when the email already has credentials.
func (p *AuthProcessor) CreateIdentity(ctx context.Context, fullName, email, password string) (uuid.UUID, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})
	user, err := p.createUser(ctx, fullName, email, password, store.UserRoleAffiliate)
	if err != nil {
		return uuid.UUID{}, err
	}
	return user.ID, nil
}

// Authenticate checks the credentials and returns the user ID they belong to.
func (p *AuthProcessor) Authenticate(ctx context.Context, email, password string) (uuid.UUID, error) {
	user, err := p.authenticate(ctx, email, password)
	if err != nil {
		return uuid.UUID{}, err
	}
	return user.UserID, nil
}

func (p *AuthProcessor) authenticate(ctx context.Context, email, password string) (store.AuthenticatedUser, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})
	credentials, err := p.store.GetCredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AuthenticatedUser{}, ErrIncorrectCredentials
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return store.AuthenticatedUser{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(credentials.HashedPassword), []byte(password)); err != nil {
		p.logger.Warn(ctx, "password mismatch")
		return store.AuthenticatedUser{}, ErrIncorrectCredentials
	}
	user, err := p.store.GetUserByAuthID(ctx, credentials.AuthID)
	if err != nil {
		p.logger.Error(ctx, "failed to get user by auth id", err)
		return store.AuthenticatedUser{}, err
	}
	return user, nil
}

func (p *AuthProcessor) Login(ctx context.Context, email string, password string) (string, error) {
	user, err := p.authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	token, err := p.generateJWTToken(user)
	if err != nil {
		p.logger.Error(ctx, "failed to generate jwt token", err)
		return "", err
	}
	return token, nil
}

// EnsureAdmin creates the administrator login when the email is not yet
// registered.
func (p *AuthProcessor) EnsureAdmin(ctx context.Context, fullName, email, password string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})
	_, err := p.createUser(ctx, fullName, email, password, store.UserRoleAdmin)
	if errors.Is(err, ErrEmailAlreadyExists) {
		return nil
	}
	if err == nil {
		p.logger.Info(ctx, "admin user created")
	}
	return err
}

func (p *AuthProcessor) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user by id", err)
		return User{}, err
	}
	return User{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}, nil
}
