// Package models содержит доменные структуры витрины: пользователей,
// товары каталога и заказы. Структуры используются в бизнес-логике
// и при работе с хранилищем.
package models

import "time"

// Role описывает закрытое множество ролей пользователя.
// Роль назначается только при регистрации и никогда не приходит от клиента.
type Role string

const (
	// RoleCustomer — обычный покупатель.
	RoleCustomer Role = "customer"
	// RoleAdmin — администратор витрины.
	RoleAdmin Role = "admin"
)

// CanManageStore сообщает, имеет ли роль доступ к админ-панели.
func (r Role) CanManageStore() bool {
	return r == RoleAdmin
}

// User представляет зарегистрированного пользователя витрины.
// Хэш пароля и поля восстановления никогда не сериализуются в JSON.
type User struct {
	ID             string     `bson:"id" json:"id"`                                   // Уникальный идентификатор (uuid)
	Name           string     `bson:"name" json:"name"`                               // Отображаемое имя
	Email          string     `bson:"email" json:"email"`                             // Электронная почта (уникальная)
	PasswordHash   string     `bson:"password" json:"-"`                              // bcrypt-хэш пароля
	Role           Role       `bson:"role" json:"role"`                               // customer или admin
	CreatedAt      time.Time  `bson:"created_at" json:"createdAt"`                    // Дата регистрации
	UpdatedAt      *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"` // Дата последнего изменения профиля
	LastLogin      *time.Time `bson:"last_login,omitempty" json:"lastLogin,omitempty"` // Дата последнего входа
	ResetOTP       string     `bson:"reset_otp,omitempty" json:"-"`                   // Одноразовый код восстановления
	ResetOTPExpiry *time.Time `bson:"reset_otp_expiry,omitempty" json:"-"`            // Срок действия кода
}
