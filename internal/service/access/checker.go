// Package access определяет роль пользователя.
// Аутентификация внешняя: шлюз передаёт X-User-ID, администраторы перечислены в конфиге.
package access

// Checker проверяет права администратора
type Checker struct {
	admins map[int64]struct{}
}

// NewChecker создает проверку по списку ID администраторов
func NewChecker(adminIDs []int64) *Checker {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &Checker{admins: admins}
}

// IsAdmin возвращает true, если пользователь администратор
func (c *Checker) IsAdmin(userID int64) bool {
	if c == nil {
		return false
	}
	_, ok := c.admins[userID]
	return ok
}
