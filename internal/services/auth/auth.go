// Package services содержит логику бизнес-уровня для работы с пользователями
// и аутентификацией: регистрация, вход, проверка токена и восстановление пароля.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/discount-storefront/internal/lib/jwt"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/otp"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/password"
	"github.com/magabrotheeeer/discount-storefront/internal/models"
	"github.com/magabrotheeeer/discount-storefront/internal/storage"
)

// Ожидаемые исходы, которые обработчики переводят в конкретные HTTP-коды
// вместо общего 500.
var (
	// ErrEmailTaken — email уже зарегистрирован.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	// Снаружи эти два случая неразличимы.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidOTP — код восстановления не совпал.
	ErrInvalidOTP = errors.New("invalid reset code")
	// ErrOTPExpired — срок действия кода восстановления истек.
	ErrOTPExpired = errors.New("reset code expired")
	// ErrUserNotFound — пользователь с таким email не найден.
	ErrUserNotFound = errors.New("user not found")
)

// otpTTL — срок действия одноразового кода восстановления.
const otpTTL = 10 * time.Minute

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя.
	CreateUser(ctx context.Context, user models.User) error
	// GetUserByEmail возвращает пользователя по email или storage.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUser возвращает пользователя по ID или storage.ErrNotFound.
	GetUser(ctx context.Context, id string) (*models.User, error)
	// UpdateLastLogin ставит отметку последнего входа.
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	// UpdateUserName меняет имя пользователя и возвращает свежий документ.
	UpdateUserName(ctx context.Context, id, name string) (*models.User, error)
	// SetResetOTP сохраняет код восстановления и срок его действия.
	SetResetOTP(ctx context.Context, id, code string, expiry time.Time) error
	// ResetPassword заменяет хэш пароля и очищает поля восстановления.
	ResetPassword(ctx context.Context, id, passwordHash string) error
}

// Mailer доставляет код восстановления по внеполосному каналу.
// Код никогда не возвращается в ответе API.
type Mailer interface {
	SendResetCode(ctx context.Context, toEmail, toName, code string) error
}

// AuthService отвечает за регистрацию, вход, валидацию JWT и восстановление пароля.
type AuthService struct {
	users      UserRepository
	mailer     Mailer
	jwtMaker   jwt.Maker
	adminEmail string
	log        *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, mailer Mailer, jwtMaker jwt.Maker, adminEmail string, log *slog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		mailer:     mailer,
		jwtMaker:   jwtMaker,
		adminEmail: adminEmail,
		log:        log,
	}
}

// IsAdminEmail сообщает, совпадает ли email с настроенным адресом администратора.
// Это единственное место, где выдается роль admin.
func (s *AuthService) IsAdminEmail(email string) bool {
	return email == s.adminEmail
}

// Register создает нового пользователя с хэшированием пароля и ролью,
// выведенной из адреса администратора. Возвращает пользователя и его токен.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) (*models.User, string, error) {
	const op = "services.auth.Register"

	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	role := models.RoleCustomer
	if s.IsAdminEmail(email) {
		role = models.RoleAdmin
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
		CreatedAt:    now,
		LastLogin:    &now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(&user)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("registered new user", slog.String("id", user.ID), slog.String("role", string(role)))
	return &user, token, nil
}

// Login проверяет пароль пользователя, ставит отметку входа и генерирует JWT.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	user.LastLogin = &now

	token, err := s.jwtMaker.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return user, token, nil
}

// ValidateToken проверяет JWT и возвращает claims пользователя.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	return s.jwtMaker.ParseToken(token)
}

// ForgotPassword генерирует одноразовый код, сохраняет его со сроком действия
// и передает доставщику. В ответ API код не попадает.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	const op = "services.auth.ForgotPassword"

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	code, err := otp.Generate()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	expiry := time.Now().UTC().Add(otpTTL)
	if err := s.users.SetResetOTP(ctx, user.ID, code, expiry); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.mailer.SendResetCode(ctx, user.Email, user.Name, code); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("password reset code sent", slog.String("id", user.ID))
	return nil
}

// ResetPassword проверяет код восстановления и срок его действия,
// заменяет хэш пароля и очищает поля восстановления.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	const op = "services.auth.ResetPassword"

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if user.ResetOTP == "" || user.ResetOTP != code {
		return ErrInvalidOTP
	}
	if user.ResetOTPExpiry == nil || time.Now().UTC().After(*user.ResetOTPExpiry) {
		return ErrOTPExpired
	}

	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.users.ResetPassword(ctx, user.ID, hashed); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("password reset completed", slog.String("id", user.ID))
	return nil
}

// Profile возвращает свежую запись пользователя по claims.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetUser(ctx, userID)
}

// UpdateProfileName обновляет имя пользователя в его профиле.
func (s *AuthService) UpdateProfileName(ctx context.Context, userID, name string) (*models.User, error) {
	const op = "services.auth.UpdateProfileName"
	user, err := s.users.UpdateUserName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}
