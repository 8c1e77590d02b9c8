package systems

import (
	"testing"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
)

func testArena(t *testing.T) *domain.LevelState {
	t.Helper()
	return domain.NewLevelState(10)
}

func TestCalculateMove_Free(t *testing.T) {
	s := testArena(t)
	p := domain.NewPlayer("p1", domain.Position{X: 5, Y: 5})

	res := CalculateMove(p, 1, 0, s, nil)
	if !res.HasMoved {
		t.Fatal("move onto free cell should succeed")
	}
	if res.NewPos != (domain.Position{X: 6, Y: 5}) {
		t.Errorf("NewPos = %v", res.NewPos)
	}
}

func TestCalculateMove_OutOfMap(t *testing.T) {
	s := testArena(t)
	p := domain.NewPlayer("p1", domain.Position{X: 0, Y: 0})

	res := CalculateMove(p, -1, 0, s, nil)
	if res.HasMoved || !res.OutOfMap {
		t.Errorf("move off the map must be rejected: %+v", res)
	}
}

func TestCalculateMove_Obstacle(t *testing.T) {
	s := testArena(t)
	s.PlaceObstacle(domain.Position{X: 6, Y: 5}, domain.KindDestructible)
	p := domain.NewPlayer("p1", domain.Position{X: 5, Y: 5})

	res := CalculateMove(p, 1, 0, s, nil)
	if res.HasMoved {
		t.Fatal("move into obstacle must be blocked")
	}
	if res.Obstacle == nil || res.Obstacle.Kind != domain.KindDestructible {
		t.Errorf("expected obstacle in result, got %+v", res)
	}
}

func TestCalculateMove_Entities(t *testing.T) {
	s := testArena(t)
	p := domain.NewPlayer("p1", domain.Position{X: 5, Y: 5})
	z := domain.NewZombie("z1", domain.Position{X: 6, Y: 5})
	dead := domain.NewZombie("z2", domain.Position{X: 4, Y: 5})
	dead.Stats.TakeDamage(1000)

	res := CalculateMove(p, 1, 0, s, []*domain.Entity{p, z, dead})
	if res.HasMoved || res.BlockedBy != z {
		t.Errorf("living zombie must block the cell: %+v", res)
	}

	// Труп не занимает клетку
	res = CalculateMove(p, -1, 0, s, []*domain.Entity{p, z, dead})
	if !res.HasMoved {
		t.Error("dead zombie must not block the cell")
	}
}

func TestHasLineOfSight(t *testing.T) {
	s := testArena(t)
	a := domain.Position{X: 0, Y: 0}
	b := domain.Position{X: 5, Y: 0}

	if !HasLineOfSight(s, a, b) {
		t.Fatal("clear line should be visible")
	}

	s.PlaceObstacle(domain.Position{X: 3, Y: 0}, domain.KindIndestructible)
	if HasLineOfSight(s, a, b) {
		t.Error("wall must break line of sight")
	}

	// Сам блок видно: конечная точка не считается преградой
	if !HasLineOfSight(s, a, domain.Position{X: 3, Y: 0}) {
		t.Error("target cell itself must not block the trace")
	}
}
