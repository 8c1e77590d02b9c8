package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/pkg/logger"
)

func combatLogger(attacker *domain.Entity) *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
	})
}

// ApplyAttack - удар по живой цели.
func ApplyAttack(attacker, target *domain.Entity) string {
	log := combatLogger(attacker).WithFields(logrus.Fields{
		"target_id":   target.ID,
		"target_name": target.Name,
	})

	if target.Stats == nil {
		log.Warn("Attack failed: target has no StatsComponent")
		return fmt.Sprintf("Атака по %s бесполезна.", target.Name)
	}
	if target.Stats.IsDead {
		log.Info("Attack ineffective: target is already dead")
		return fmt.Sprintf("%s уже мертв.", target.Name)
	}

	damage := 1
	if attacker.Stats != nil {
		damage = attacker.Stats.Attack
	}

	hpBefore := target.Stats.HP
	died := target.Stats.TakeDamage(damage)

	log.WithFields(logrus.Fields{
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    target.Stats.HP,
		"target_died": died,
	}).Info("Attack resolved")

	msg := fmt.Sprintf("%s наносит %d урона по %s.", attacker.Name, damage, target.Name)
	if died {
		if target.AI != nil {
			target.AI.IsHostile = false
		}
		msg += fmt.Sprintf(" %s погибает.", target.Name)
	}
	return msg
}

// AttackObstacle - удар по блоку. Разрушение блока меняет топологию
// уровня, так что все кэшированные маршруты начинают пересчитываться.
func AttackObstacle(state *domain.LevelState, attacker *domain.Entity, pos domain.Position) (string, bool) {
	ob := state.ObstacleAt(pos)
	if ob == nil {
		return "Там нечего ломать.", false
	}
	log := combatLogger(attacker).WithFields(logrus.Fields{
		"obstacle": pos,
		"kind":     ob.Kind.String(),
	})

	if !ob.Kind.Destructible() {
		log.Info("Attack ineffective: obstacle is indestructible")
		return "Стена не поддается.", false
	}

	damage := 1
	if attacker.Stats != nil {
		damage = attacker.Stats.Attack
	}
	_, destroyed := state.DamageObstacle(pos, damage)

	log.WithFields(logrus.Fields{
		"damage":    damage,
		"destroyed": destroyed,
		"hp_left":   ob.Health,
	}).Info("Obstacle attack resolved")

	if destroyed {
		return fmt.Sprintf("%s разрушает блок.", attacker.Name), true
	}
	return fmt.Sprintf("%s бьет по блоку (%d HP осталось).", attacker.Name, ob.Health), false
}

// ResolveShot - выстрел игрока в направлении (dx, dy). Снаряд летит
// по прямой не дальше FireRange клеток и застревает в первом, во что
// попал: живая сущность или блок.
func ResolveShot(state *domain.LevelState, shooter *domain.Entity, dx, dy int, entities []*domain.Entity) string {
	if dx == 0 && dy == 0 {
		return "Выстрел в никуда."
	}

	byPos := make(map[domain.Position]*domain.Entity, len(entities))
	for _, e := range entities {
		if e.ID != shooter.ID && e.IsAlive() {
			byPos[e.Pos] = e
		}
	}

	pos := shooter.Pos
	for step := 0; step < domain.FireRange; step++ {
		pos = pos.Shift(dx, dy)
		if !state.InBounds(pos) {
			return "Выстрел ушел в пустоту."
		}
		if target, ok := byPos[pos]; ok {
			return ApplyAttack(shooter, target)
		}
		if state.ObstacleAt(pos) != nil {
			msg, _ := AttackObstacle(state, shooter, pos)
			return msg
		}
	}
	return "Снаряд потерял силу, никого не задев."
}
