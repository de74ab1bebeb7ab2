package service

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mmeshcher/pos-system/internal/model"
)

// Auth отвечает за вход и регистрацию пользователей.
// Пароли хранятся и сравниваются как есть: это учебная проверка подлинности,
// а не механизм безопасности.
type Auth struct {
	mu      sync.Mutex
	storage Storage
	logger  *zap.Logger
}

// NewAuth создаёт сервис аутентификации поверх указанного хранилища.
func NewAuth(storage Storage, logger *zap.Logger) *Auth {
	return &Auth{
		storage: storage,
		logger:  logger,
	}
}

// Login проверяет имя и пароль и возвращает сеанс пользователя.
// Первый вход с зарезервированным именем администратора в пустое хранилище
// неявно создаёт учётную запись администратора.
func (a *Auth) Login(username, password string) (*model.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.storage.LoadUsers()
	if err != nil {
		return nil, err
	}

	if len(users) == 0 && username == model.AdminUsername {
		users[username] = model.User{Password: password, Role: model.RoleAdmin}
		if err := a.storage.SaveUsers(users); err != nil {
			return nil, err
		}
		a.logger.Info("admin account created on first login")
		return &model.Session{Username: username, Role: model.RoleAdmin}, nil
	}

	u, ok := users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	if u.Password != password {
		return nil, ErrInvalidCredentials
	}

	return &model.Session{Username: username, Role: u.Role}, nil
}

// Register создаёт учётную запись продавца. Зарезервированное имя
// администратора отклоняется в любом регистре независимо от того,
// существует ли уже учётная запись администратора.
func (a *Auth) Register(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password must not be empty", ErrInvalidInput)
	}
	if strings.EqualFold(username, model.AdminUsername) {
		return ErrAdminReserved
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.storage.LoadUsers()
	if err != nil {
		return err
	}

	if _, ok := users[username]; ok {
		return fmt.Errorf("%w: %s", ErrUserExists, username)
	}

	users[username] = model.User{Password: password, Role: model.RoleSalesman}
	if err := a.storage.SaveUsers(users); err != nil {
		return err
	}

	a.logger.Info("salesman account registered", zap.String("username", username))
	return nil
}
