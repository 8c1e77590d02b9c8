package systems

import (
	"testing"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
)

func TestApplyAttack_KillsZombie(t *testing.T) {
	p := domain.NewPlayer("p1", domain.Position{X: 0, Y: 0})
	z := domain.NewZombie("z1", domain.Position{X: 1, Y: 0})

	// 30 HP / 10 урона = три удара
	for i := 0; i < 2; i++ {
		ApplyAttack(p, z)
		if !z.IsAlive() {
			t.Fatalf("zombie died too early on hit %d", i+1)
		}
	}
	ApplyAttack(p, z)
	if z.IsAlive() {
		t.Fatal("zombie should be dead after three hits")
	}
	if z.AI.IsHostile {
		t.Error("dead zombie must stop being hostile")
	}
}

func TestAttackObstacle(t *testing.T) {
	s := domain.NewLevelState(10)
	pos := domain.Position{X: 2, Y: 2}
	s.PlaceObstacle(pos, domain.KindDestructible)
	p := domain.NewPlayer("p1", domain.Position{X: 1, Y: 2})

	_, destroyed := AttackObstacle(s, p, pos)
	if destroyed {
		t.Fatal("20 HP block must survive one 10 damage hit")
	}
	_, destroyed = AttackObstacle(s, p, pos)
	if !destroyed {
		t.Fatal("block should fall on the second hit")
	}
	if s.IsBlocked(pos) {
		t.Error("cell must be free after destruction")
	}

	// Стена не ломается
	wall := domain.Position{X: 3, Y: 3}
	s.PlaceObstacle(wall, domain.KindIndestructible)
	_, destroyed = AttackObstacle(s, p, wall)
	if destroyed || !s.IsBlocked(wall) {
		t.Error("indestructible wall must survive")
	}
}

func TestResolveShot_HitsFirstThing(t *testing.T) {
	s := domain.NewLevelState(10)
	p := domain.NewPlayer("p1", domain.Position{X: 0, Y: 5})
	z := domain.NewZombie("z1", domain.Position{X: 4, Y: 5})
	s.PlaceObstacle(domain.Position{X: 6, Y: 5}, domain.KindDestructible)

	// Зомби ближе блока - снаряд достается ему
	ResolveShot(s, p, 1, 0, []*domain.Entity{p, z})
	if z.Stats.HP != domain.ZombieMaxHealth-domain.PlayerAttack {
		t.Errorf("zombie HP = %d, want %d", z.Stats.HP, domain.ZombieMaxHealth-domain.PlayerAttack)
	}
	if ob := s.ObstacleAt(domain.Position{X: 6, Y: 5}); ob.Health != domain.ObstacleHealth {
		t.Error("block behind the zombie must not be hit")
	}

	// Убираем зомби - теперь снаряд долетает до блока
	z.Stats.TakeDamage(1000)
	ResolveShot(s, p, 1, 0, []*domain.Entity{p, z})
	if ob := s.ObstacleAt(domain.Position{X: 6, Y: 5}); ob.Health != domain.ObstacleHealth-domain.PlayerAttack {
		t.Errorf("block HP = %d after shot", ob.Health)
	}
}

func TestResolveShot_LimitedRange(t *testing.T) {
	s := domain.NewLevelState(domain.GridSize)
	p := domain.NewPlayer("p1", domain.Position{X: 0, Y: 5})

	// На границе дальности зомби еще достается
	near := domain.NewZombie("z1", domain.Position{X: domain.FireRange, Y: 5})
	ResolveShot(s, p, 1, 0, []*domain.Entity{p, near})
	if near.Stats.HP != domain.ZombieMaxHealth-domain.PlayerAttack {
		t.Errorf("zombie at range limit HP = %d, want %d",
			near.Stats.HP, domain.ZombieMaxHealth-domain.PlayerAttack)
	}

	// За границей - снаряд гаснет, не долетев
	far := domain.NewZombie("z2", domain.Position{X: domain.FireRange + 2, Y: 7})
	shooter := domain.NewPlayer("p2", domain.Position{X: 0, Y: 7})
	msg := ResolveShot(s, shooter, 1, 0, []*domain.Entity{shooter, far})
	if far.Stats.HP != domain.ZombieMaxHealth {
		t.Errorf("zombie beyond range took damage, HP = %d", far.Stats.HP)
	}
	if msg == "" {
		t.Error("spent shot should still report a message")
	}
}

func TestResolveShot_MissesIntoVoid(t *testing.T) {
	s := domain.NewLevelState(10)
	p := domain.NewPlayer("p1", domain.Position{X: 0, Y: 0})
	msg := ResolveShot(s, p, 0, -1, []*domain.Entity{p})
	if msg == "" {
		t.Error("missed shot should still report a message")
	}
}
