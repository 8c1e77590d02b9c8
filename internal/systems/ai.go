package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/pkg/grid"
	"github.com/TianyuZhao6/Z-Game/pkg/logger"
)

// ZombieDecision - что зомби решил делать на своем ходу.
type ZombieDecision struct {
	Action   domain.ActionType
	Target   *domain.Entity  // Цель удара (игрок)
	BlockPos domain.Position // Блок, который зомби грызет
	DX, DY   int             // Шаг движения
}

// ComputeZombieAction решает ход зомби. Преследование идет по пути
// A*, так что зомби осознанно ломится через слабые блоки, когда обход
// дороже. Маршрут кэшируется в AI-компоненте и пересчитывается,
// только если топология уровня изменилась, цель сместилась или путь
// кончился.
func ComputeZombieAction(z, player *domain.Entity, state *domain.LevelState, nav *grid.Navigator) ZombieDecision {
	wait := ZombieDecision{Action: domain.ActionWait}
	if z.AI == nil || !z.IsAlive() || !z.AI.IsHostile || player == nil || !player.IsAlive() {
		return wait
	}

	dist := z.Pos.ManhattanTo(player.Pos)
	if dist == 1 {
		return ZombieDecision{Action: domain.ActionAttack, Target: player}
	}
	if dist > domain.AggroRadius {
		return wait
	}

	next, ok := nextPathStep(z, player.Pos, state, nav)
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "ai_system",
			"zombie":    z.ID,
			"player":    player.Pos,
		}).Debug("No path to player, zombie waits")
		return wait
	}

	// Путь ведет сквозь блок - сначала его надо сломать
	if ob := state.ObstacleAt(next); ob != nil {
		if ob.Kind.Destructible() {
			return ZombieDecision{Action: domain.ActionAttack, BlockPos: next}
		}
		// Стена на маршруте означает протухший кэш
		z.AI.InvalidatePath()
		return wait
	}

	dx, dy := z.Pos.DirectionTo(next)
	return ZombieDecision{Action: domain.ActionMove, DX: dx, DY: dy}
}

// nextPathStep возвращает следующую клетку кэшированного маршрута,
// при необходимости пересчитывая его.
func nextPathStep(z *domain.Entity, goal domain.Position, state *domain.LevelState, nav *grid.Navigator) (domain.Position, bool) {
	ai := z.AI
	stale := len(ai.Path) < 2 ||
		ai.PathVersion != state.TopologyVersion() ||
		ai.Path[0] != z.Pos ||
		ai.Path[len(ai.Path)-1] != goal

	if stale {
		path, _, ok := nav.FindPath(z.Pos, goal)
		if !ok || len(path) < 2 {
			ai.InvalidatePath()
			return domain.Position{}, false
		}
		ai.Path = path
		ai.PathVersion = state.TopologyVersion()
	}

	return ai.Path[1], true
}

// AdvancePath сдвигает кэшированный маршрут после успешного шага.
func AdvancePath(z *domain.Entity) {
	if z.AI != nil && len(z.AI.Path) > 1 && z.AI.Path[1] == z.Pos {
		z.AI.Path = z.AI.Path[1:]
	}
}
