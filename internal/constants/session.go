package constants

import "time"

// SessionKeyPrefix - префикс ключа, под которым хранится пользователь сессии
const SessionKeyPrefix = "palestine_marketplace_user"

// Значения, которые подставляет мок-аутентификация
const (
	MockUserPhone  = "+970 59-000-0000"
	MockUserIDBase = "u_"
	MockUserIDLen  = 9

	DefaultSessionTTL = 72 * time.Hour
)
