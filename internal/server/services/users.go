// Package services contains server-side business logic. This file implements
// UserService, the credential manager: registering users with salted slow-hash
// credentials and verifying logins without leaking which part failed.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/cryptox"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// UserService provides authentication-related operations:
// - Register: create users with derived credentials
// - Login: verify credentials
// - IssueAccessToken: mint session JWTs for the transport layer
type UserService struct {
	db                          dbx.DBTX
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration

	// dummyCredential is verified against on unknown-email logins so that
	// the failure path costs a KDF run either way.
	dummyCredential string
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db dbx.DBTX, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		dummyCredential:             cryptox.NewCredential(uuid.NewString()),
	}
}

// Register creates a new user with the given email and password. The stored
// credential is a salted argon2id hash; the returned projection never carries
// it. A taken email yields common.ErrDuplicateEmail; the match is
// case-sensitive, so A@b.com and a@b.com are distinct accounts.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	user := &models.User{
		ID:         uuid.NewString(),
		Email:      email,
		Credential: cryptox.NewCredential(password),
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return publicProjection(user), nil
}

// Login verifies the email/password pair and returns the public user
// projection. Unknown email, wrong password, and a malformed stored
// credential all collapse into common.ErrInvalidCredentials: one kind, one
// message, and a KDF run on every path.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.VerifyCredential(s.dummyCredential, password)
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !cryptox.VerifyCredential(user.Credential, password) {
		return nil, common.ErrInvalidCredentials
	}

	return publicProjection(user), nil
}

// IssueAccessToken mints a session JWT for the given user. Session handling
// is a transport concern; the token never flows back into core operations.
func (s *UserService) IssueAccessToken(user *models.User) (string, error) {
	return auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
}

func publicProjection(u *models.User) *models.User {
	return &models.User{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}
