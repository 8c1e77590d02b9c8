package grid

import (
	"testing"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
)

func TestNavigator_RebuildsAfterDestruction(t *testing.T) {
	s := domain.NewLevelState(6)
	wallColumn(s, 3, 0, 5, domain.KindIndestructible)
	s.ForceEmpty(domain.Position{X: 3, Y: 2})
	s.PlaceObstacle(domain.Position{X: 3, Y: 2}, domain.KindDestructible)

	nav := NewNavigator(s)

	_, cost, ok := nav.FindPath(domain.Position{X: 0, Y: 2}, domain.Position{X: 5, Y: 2})
	if !ok {
		t.Fatal("path through destructible gap should exist")
	}
	want := 4.0 + 1.2
	if diff := cost - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("cost before destruction = %v, want %v", cost, want)
	}

	first := nav.Grid()
	if nav.Grid() != first {
		t.Error("grid snapshot should be cached while topology is unchanged")
	}

	// Слом блока обязан обесценить кэш: проход становится бесплатным
	s.DamageObstacle(domain.Position{X: 3, Y: 2}, domain.ObstacleHealth)
	if nav.Grid() == first {
		t.Fatal("navigator must rebuild after obstacle destruction")
	}

	_, cost, ok = nav.FindPath(domain.Position{X: 0, Y: 2}, domain.Position{X: 5, Y: 2})
	if !ok || cost != 5 {
		t.Errorf("cost after destruction = %v ok=%v, want 5", cost, ok)
	}
}

func TestNavigator_ReachableSplitArena(t *testing.T) {
	s := domain.NewLevelState(4)
	wallColumn(s, 2, 0, 3, domain.KindIndestructible)
	nav := NewNavigator(s)

	seen := nav.Reachable(domain.Position{X: 0, Y: 0})
	// Левая половина: колонки 0 и 1, все 4 строки
	if len(seen) != 8 {
		t.Errorf("reachable cells = %d, want 8", len(seen))
	}
	g := nav.Grid()
	if _, ok := seen[g.Index(domain.Position{X: 3, Y: 0})]; ok {
		t.Error("right half must be unreachable across the wall")
	}
}

func TestLine_Diagonal(t *testing.T) {
	cells := Line(domain.Position{X: 0, Y: 0}, domain.Position{X: 3, Y: 3})
	if cells[0] != (domain.Position{X: 0, Y: 0}) || cells[len(cells)-1] != (domain.Position{X: 3, Y: 3}) {
		t.Fatalf("line endpoints wrong: %v", cells)
	}
	if len(cells) != 4 {
		t.Errorf("diagonal line length = %d, want 4", len(cells))
	}
}

func TestFirstObstacleOnLine(t *testing.T) {
	s := domain.NewLevelState(8)
	near := domain.Position{X: 3, Y: 0}
	far := domain.Position{X: 5, Y: 0}
	s.PlaceObstacle(near, domain.KindDestructible)
	s.PlaceObstacle(far, domain.KindDestructible)

	ob, ok := FirstObstacleOnLine(s, domain.Position{X: 0, Y: 0}, domain.Position{X: 7, Y: 0})
	if !ok {
		t.Fatal("obstacle on the line should be found")
	}
	if ob.Pos != near {
		t.Errorf("hit %v, want nearest %v", ob.Pos, near)
	}

	// Стрелок на клетке с блоком не попадает сам в себя
	ob, ok = FirstObstacleOnLine(s, near, domain.Position{X: 7, Y: 0})
	if !ok || ob.Pos != far {
		t.Errorf("trace from occupied cell hit %v, want %v", ob, far)
	}

	if _, ok := FirstObstacleOnLine(s, domain.Position{X: 0, Y: 7}, domain.Position{X: 7, Y: 7}); ok {
		t.Error("clear line must report no obstacle")
	}
}
