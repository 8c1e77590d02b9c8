package handlers

import (
	"encoding/json"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/pkg/grid"
)

// EntityFinder описывает любую структуру, которая может находить сущность по ID.
type EntityFinder interface {
	GetEntity(id domain.EntityID) *domain.Entity
}

// Context передает хендлеру состояние уровня.
// Передаются ссылки: хендлер мутирует состояние напрямую.
type Context struct {
	Finder   EntityFinder
	State    *domain.LevelState
	Nav      *grid.Navigator
	Entities []*domain.Entity
	Actor    *domain.Entity // Тот, кто выполняет команду (Игрок или зомби)
}

// Result - результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string          // Текст лога
	MsgType string          // Тип лога (INFO, COMBAT, ERROR)
	Event   json.RawMessage // Сырые данные события для обработки движком
}

// HandlerFunc - это контракт для любой команды (MOVE, FIRE, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
