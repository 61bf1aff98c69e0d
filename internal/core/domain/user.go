package domain

import "time"

// User - пользователь мок-аутентификации
type User struct {
	ID     string
	Name   string
	Email  string
	Phone  string
	Avatar string
}

// ProfileUpdate - частичное обновление профиля, nil поля не меняются
type ProfileUpdate struct {
	Name   *string
	Email  *string
	Phone  *string
	Avatar *string
}

// Apply возвращает копию пользователя с примененными изменениями
func (u User) Apply(upd ProfileUpdate) User {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	return u
}

// Claims - данные, которые зашиваются в токен сессии
type Claims struct {
	SessionID string
	UserID    string
	ExpiresAt time.Time
}

// Session - результат входа или регистрации
type Session struct {
	User      User
	Token     string
	ExpiresAt time.Time
}
