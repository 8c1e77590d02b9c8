package systems

import (
	"github.com/TianyuZhao6/Z-Game/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewPos    domain.Position
	HasMoved  bool
	BlockedBy *domain.Entity   // Если врезались в кого-то (для атаки)
	Obstacle  *domain.Obstacle // Если врезались в блок (зомби может его грызть)
	OutOfMap  bool
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
func CalculateMove(e *domain.Entity, dx, dy int, state *domain.LevelState, entities []*domain.Entity) MovementResult {
	targetPos := e.Pos.Shift(dx, dy)
	res := MovementResult{NewPos: targetPos}

	// 1. Проверка границ
	if !state.InBounds(targetPos) {
		res.OutOfMap = true
		return res
	}

	// 2. Проверка препятствий
	if ob := state.ObstacleAt(targetPos); ob != nil {
		res.Obstacle = ob
		return res
	}

	// 3. Проверка сущностей: живое тело блокирует клетку
	for _, other := range entities {
		if other.ID == e.ID {
			continue
		}
		if other.Pos == targetPos && other.IsAlive() {
			res.BlockedBy = other
			return res
		}
	}

	res.HasMoved = true
	return res
}
