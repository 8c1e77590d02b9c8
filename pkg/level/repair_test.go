package level

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/pkg/grid"
)

// Спавн замурован стенами со всех сторон - ремонт обязан пробить выход.
func TestRepair_SealedSpawn(t *testing.T) {
	s := domain.NewLevelState(10)
	s.PlayerSpawn = domain.Position{X: 5, Y: 5}
	for _, d := range []domain.Position{{X: 4, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 6},
		{X: 4, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}, {X: 6, Y: 4}} {
		s.PlaceObstacle(d, domain.KindIndestructible)
	}

	RepairConnectivity(s, rand.New(rand.NewSource(1)))

	nav := grid.NewNavigator(s)
	for _, exit := range []domain.Position{{X: 5, Y: 0}, {X: 5, Y: 9}, {X: 0, Y: 5}, {X: 9, Y: 5}} {
		_, _, ok := nav.FindPath(s.PlayerSpawn, exit)
		assert.True(t, ok, "exit %v must be reachable after repair", exit)
	}
}

// Изолированный карман в углу должен быть присоединен зачисткой.
func TestRepair_CornerPocket(t *testing.T) {
	s := domain.NewLevelState(12)
	s.PlayerSpawn = domain.Position{X: 6, Y: 6}
	// Глухая стена, отрезающая угол 3x3
	for i := 0; i <= 3; i++ {
		s.PlaceObstacle(domain.Position{X: 3, Y: i}, domain.KindIndestructible)
		s.PlaceObstacle(domain.Position{X: i, Y: 3}, domain.KindIndestructible)
	}

	RepairConnectivity(s, rand.New(rand.NewSource(2)))

	g := grid.BuildCostGrid(s)
	seen := g.Reachable(s.PlayerSpawn)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			p := domain.Position{X: x, Y: y}
			if !g.Passable(p) {
				continue
			}
			_, ok := seen[g.Index(p)]
			require.True(t, ok, "pocket cell %v still unreachable", p)
		}
	}
}

// Коридоры не имеют права сносить главный блок: предмет под ним
// должен оставаться закрытым.
func TestRepair_KeepsMainBlock(t *testing.T) {
	s := domain.NewLevelState(10)
	s.PlayerSpawn = domain.Position{X: 2, Y: 5}
	mainPos := domain.Position{X: 7, Y: 5} // на базовой горизонтали спавна
	s.PlaceObstacle(mainPos, domain.KindMainBlock)
	s.PlaceItem(&domain.Item{ID: "main", Pos: mainPos, IsMain: true})

	RepairConnectivity(s, rand.New(rand.NewSource(3)))

	ob := s.ObstacleAt(mainPos)
	require.NotNil(t, ob, "main block must survive corridor carving")
	assert.Equal(t, domain.KindMainBlock, ob.Kind)
	if _, ok := s.CollectItemAt(mainPos); ok {
		t.Error("main item must stay gated after repair")
	}
}

func TestRepair_HalfWidthWidensCorridor(t *testing.T) {
	s := domain.NewLevelState(9)
	s.PlayerSpawn = domain.Position{X: 4, Y: 4}
	// Колонна стен поперек базовой горизонтали
	for y := 0; y < 9; y++ {
		s.PlaceObstacle(domain.Position{X: 6, Y: y}, domain.KindIndestructible)
	}

	opts := DefaultRepairOptions()
	opts.HalfWidth = 1
	opts.ExtraCorridors = 0
	RepairConnectivityWith(s, rand.New(rand.NewSource(4)), opts)

	// Полуширина 1: проход шириной в три клетки вокруг y=4
	for _, y := range []int{3, 4, 5} {
		assert.False(t, s.IsBlocked(domain.Position{X: 6, Y: y}), "cell (6,%d) should be carved", y)
	}
}
