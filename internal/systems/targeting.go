package systems

import (
	"github.com/TianyuZhao6/Z-Game/internal/domain"
)

// EntityProvider - интерфейс для поиска сущностей (чтобы не зависеть
// от движка напрямую)
type EntityProvider interface {
	GetEntity(id domain.EntityID) *domain.Entity
}

// ValidationResult - результат проверки цели
type ValidationResult struct {
	Target  *domain.Entity
	Valid   bool
	Message string // Сообщение об ошибке, если Valid == false
}

// ValidateInteraction проверяет, может ли actor ударить targetID.
//
// rangeLimit - максимальная дистанция в клетках (1 для ближнего боя).
// needLOS - нужна ли прямая видимость: для удара через соседнюю
// клетку не важна, для дальних взаимодействий блоки мешают.
func ValidateInteraction(actor *domain.Entity, targetID domain.EntityID, rangeLimit int, needLOS bool, finder EntityProvider, state *domain.LevelState) ValidationResult {
	target := finder.GetEntity(targetID)
	if target == nil {
		return ValidationResult{Valid: false, Message: "Цель не найдена."}
	}

	// Сущности должны быть на одном уровне
	if target.Level != actor.Level {
		return ValidationResult{Valid: false, Message: "Цель слишком далеко."}
	}

	if actor.Pos.ManhattanTo(target.Pos) > rangeLimit {
		return ValidationResult{Valid: false, Message: "Цель слишком далеко."}
	}

	if !target.IsAlive() {
		return ValidationResult{Valid: false, Message: "Цель уже мертва."}
	}

	if needLOS && state != nil {
		if !HasLineOfSight(state, actor.Pos, target.Pos) {
			return ValidationResult{Valid: false, Message: "Цель не видна."}
		}
	}

	return ValidationResult{Target: target, Valid: true}
}
