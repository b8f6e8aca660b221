package service

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/forumhub-dev/forumhub/internal/api"
	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
)

type UserService interface {
	Register(name string, login domain.Login, password string) (domain.UserId, error)
	Get(id domain.UserId) (api.UserSummary, error)
	List(page domain.PageRequest) (domain.Page[api.UserSummary], error)
	Update(id domain.UserId, name, password string) error
	Delete(id domain.UserId) error
}

type User struct {
	storage UserStorage
}

type UserStorage interface {
	CreateUser(data domain.UserCreationData) (domain.UserId, error)
	GetUser(id domain.UserId) (domain.User, error)
	ListUsers(page domain.PageRequest) (domain.Page[domain.User], error)
	UpdateUser(id domain.UserId, name, passHash string) error
	DeleteUser(id domain.UserId) error
}

func NewUser(storage UserStorage) *User {
	return &User{storage}
}

func (u *User) Register(name string, login domain.Login, password string) (domain.UserId, error) {
	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	id, err := u.storage.CreateUser(domain.UserCreationData{
		Name:     name,
		Login:    login,
		PassHash: string(passHash),
	})
	if err != nil {
		return 0, err
	}

	slog.Info("user registered", "id", id, "login", login)
	return id, nil
}

func (u *User) Get(id domain.UserId) (api.UserSummary, error) {
	user, err := u.storage.GetUser(id)
	if err != nil {
		return api.UserSummary{}, err
	}
	return userView(user), nil
}

func (u *User) List(page domain.PageRequest) (domain.Page[api.UserSummary], error) {
	users, err := u.storage.ListUsers(clampPage(page))
	if err != nil {
		return domain.Page[api.UserSummary]{}, err
	}
	return domain.MapPage(users, userView), nil
}

// Update overwrites the display name and, when a new password is supplied,
// the password hash. An empty password keeps the current one.
func (u *User) Update(id domain.UserId, name, password string) error {
	user, err := u.storage.GetUser(id)
	if err != nil {
		return err
	}

	passHash := user.PassHash
	if password != "" {
		newHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		passHash = string(newHash)
	}

	return u.storage.UpdateUser(id, name, passHash)
}

func (u *User) Delete(id domain.UserId) error {
	return u.storage.DeleteUser(id)
}

// AuthService authenticates a login/password pair and issues access tokens.
type AuthService interface {
	Login(login domain.Login, password string) (string, domain.User, error)
}

type Auth struct {
	identity IdentityDirectory
	jwt      TokenIssuer
}

type TokenIssuer interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(identity IdentityDirectory, jwt TokenIssuer) *Auth {
	return &Auth{identity, jwt}
}

func (a *Auth) Login(login domain.Login, password string) (string, domain.User, error) {
	user, err := a.identity.ResolveByLogin(login)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			// don't reveal whether the login exists
			return "", domain.User{}, internal_errors.NewUnauthorized("Invalid login or password")
		}
		return "", domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		return "", domain.User{}, internal_errors.NewUnauthorized("Invalid login or password")
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}
