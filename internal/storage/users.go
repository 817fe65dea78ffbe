package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/discount-storefront/internal/models"
)

// CreateUser сохраняет нового пользователя.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.CreateUser"
	if _, err := s.users().InsertOne(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetUserByEmail возвращает пользователя по email или ErrNotFound.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	var user models.User
	err := s.users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// GetUser возвращает пользователя по его ID или ErrNotFound.
func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.GetUser"
	var user models.User
	err := s.users().FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// UpdateLastLogin ставит отметку последнего входа.
func (s *Storage) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	const op = "storage.UpdateLastLogin"
	_, err := s.users().UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"last_login": at}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateUserName обновляет имя пользователя и возвращает свежий документ.
func (s *Storage) UpdateUserName(ctx context.Context, id, name string) (*models.User, error) {
	const op = "storage.UpdateUserName"
	res, err := s.users().UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"name": name, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return s.GetUser(ctx, id)
}

// SetResetOTP сохраняет одноразовый код восстановления и срок его действия.
func (s *Storage) SetResetOTP(ctx context.Context, id, code string, expiry time.Time) error {
	const op = "storage.SetResetOTP"
	_, err := s.users().UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"reset_otp": code, "reset_otp_expiry": expiry}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ResetPassword заменяет хэш пароля и очищает поля восстановления,
// чтобы код нельзя было использовать повторно.
func (s *Storage) ResetPassword(ctx context.Context, id, passwordHash string) error {
	const op = "storage.ResetPassword"
	_, err := s.users().UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{
			"$set":   bson.M{"password": passwordHash},
			"$unset": bson.M{"reset_otp": "", "reset_otp_expiry": ""},
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListUsers возвращает всех пользователей, самые свежие первыми.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListUsers"
	cursor, err := s.users().Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []*models.User
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountUsers возвращает общее число пользователей.
func (s *Storage) CountUsers(ctx context.Context) (int64, error) {
	const op = "storage.CountUsers"
	n, err := s.users().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
