package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/holextra/accounts-api/internal/model"
	"github.com/holextra/accounts-api/internal/validation"
)

// UserStore is the repository surface the service depends on.  It is
// satisfied by *repository.UserRepo; tests substitute an in-memory fake.
type UserStore interface {
	GetByEmailPassword(ctx context.Context, email, password string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByDBID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetAllByEmail(ctx context.Context, email string) ([]model.User, error)
	GetAll(ctx context.Context) ([]model.User, error)
	Insert(ctx context.Context, u model.User) error
	Update(ctx context.Context, dbID primitive.ObjectID, u model.User) (bool, error)
	SaveAuthToken(ctx context.Context, email, password, token string) (bool, error)
	Delete(ctx context.Context, dbID primitive.ObjectID) (bool, error)
}

// UserService holds the business rules for account operations.  It keeps no
// per-request state; only the store and the token signing secret.
type UserService struct {
	store  UserStore
	secret string
}

func NewUserService(store UserStore, secret string) *UserService {
	return &UserService{store: store, secret: secret}
}

// ValidateLogin reports whether a login pair is well formed.  Runs before
// any store access.
func (s *UserService) ValidateLogin(email, password string) bool {
	return validation.Login(email, password)
}

// ValidateUser reports whether full account details are well formed.
func (s *UserService) ValidateUser(id int, email, givenName, familyName, password, about string) bool {
	return validation.User(id, email, givenName, familyName, password, about)
}

// DoLogin reports whether an account with the exact (email, password) pair
// exists.  The pair is matched verbatim by the store; see the token note on
// GenerateAuthToken.
func (s *UserService) DoLogin(ctx context.Context, email, password string) (bool, error) {
	u, err := s.store.GetByEmailPassword(ctx, email, password)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

// GenerateAuthToken signs an HS256 token for the account.  The claims embed
// the email/password pair itself — an inherited weakness of the system this
// replaces, kept so that issued tokens stay wire-compatible.
func (s *UserService) GenerateAuthToken(email, password string) (string, error) {
	claims := jwt.MapClaims{
		"email":    email,
		"password": password,
		"iat":      time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// SaveToken persists the most recent token on the account matching the
// (email, password) pair.  A false result means no such account exists.
func (s *UserService) SaveToken(ctx context.Context, email, password, token string) (bool, error) {
	return s.store.SaveAuthToken(ctx, email, password, token)
}

// InsertUser registers a new account.  A record already owning the email
// refuses the insert with ErrEmailTaken and writes nothing; otherwise the
// created timestamp is stamped here, once, and never touched again.
func (s *UserService) InsertUser(ctx context.Context, id int, email, givenName, familyName, password, about string) error {
	existing, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}
	u := model.User{
		ID:         id,
		Email:      email,
		GivenName:  givenName,
		FamilyName: familyName,
		Password:   password,
		About:      about,
		Created:    time.Now().UTC(),
	}
	return s.store.Insert(ctx, u)
}

// IsUserEmailDuplicated reports whether some record other than dbID owns the
// given email.
func (s *UserService) IsUserEmailDuplicated(ctx context.Context, dbID primitive.ObjectID, email string) (bool, error) {
	owners, err := s.store.GetAllByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	for _, u := range owners {
		if u.DBID != dbID {
			return true, nil
		}
	}
	return false, nil
}

// UpdateUser rewrites the mutable fields of an existing record.  A missing
// target is ErrNotFound; an email owned by a different record is
// ErrEmailTaken; both leave the collection unchanged.
func (s *UserService) UpdateUser(ctx context.Context, dbID string, id int, email, givenName, familyName, password, about string) error {
	oid, err := primitive.ObjectIDFromHex(dbID)
	if err != nil {
		// A malformed _id can never match a document.
		return ErrNotFound
	}
	target, err := s.store.GetByDBID(ctx, oid)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrNotFound
	}
	dup, err := s.IsUserEmailDuplicated(ctx, oid, email)
	if err != nil {
		return err
	}
	if dup {
		return ErrEmailTaken
	}
	ok, err := s.store.Update(ctx, oid, model.User{
		ID:         id,
		Email:      email,
		GivenName:  givenName,
		FamilyName: familyName,
		Password:   password,
		About:      about,
	})
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes a record by _id.  ErrNotFound when nothing matched.
func (s *UserService) DeleteUser(ctx context.Context, dbID string) error {
	oid, err := primitive.ObjectIDFromHex(dbID)
	if err != nil {
		return ErrNotFound
	}
	ok, err := s.store.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// GetUser fetches a record by _id.  ErrNotFound when nothing matched.
func (s *UserService) GetUser(ctx context.Context, dbID string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(dbID)
	if err != nil {
		return nil, ErrNotFound
	}
	u, err := s.store.GetByDBID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// GetAllUsers projects every account to its public profile.  An empty
// collection yields an empty slice; only a failing fetch yields an error.
func (s *UserService) GetAllUsers(ctx context.Context) ([]model.PublicProfile, error) {
	users, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]model.PublicProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, model.PublicProfile{
			Name:  u.GivenName + " " + u.FamilyName,
			About: u.About,
		})
	}
	return profiles, nil
}
