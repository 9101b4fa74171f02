// pkg/apperrors/errors.go
package apperrors

import (
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/redis/go-redis/v9"
)

// Ошибки уровня приложения: обработчики бота сопоставляют их с ответами
// пользователю, наружу из обработчика ничего не выбрасывается.
var (
	// ErrNotFound возвращается, когда пользователь или запись не найдены
	ErrNotFound = errors.New("запись не найдена")

	// ErrNoProfile возвращается, когда операция требует профиль здоровья, а его нет
	ErrNoProfile = errors.New("профиль здоровья не заполнен")

	// ErrValidation возвращается при некорректном пользовательском вводе
	ErrValidation = errors.New("некорректный ввод")

	// ErrUnavailable возвращается, когда внешний сервис недоступен или ответ не разобран
	ErrUnavailable = errors.New("внешний сервис недоступен")

	// ErrNoRows возвращается драйвером базы, когда строка не найдена
	ErrNoRows = pgx.ErrNoRows

	// ErrCacheMiss возвращается, когда записи нет в Redis
	ErrCacheMiss = redis.Nil
)

// IsNotFound проверяет, является ли ошибка ошибкой "запись не найдена"
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrNoRows) ||
		errors.Is(err, ErrCacheMiss)
}
