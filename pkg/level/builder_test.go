package level

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/pkg/grid"
)

func TestBuilder_Deterministic(t *testing.T) {
	build := func() *domain.LevelState {
		s, err := NewLevel(3, rand.New(rand.NewSource(42))).Build()
		require.NoError(t, err)
		return s
	}
	a := build()
	b := build()

	assert.Equal(t, a.PlayerSpawn, b.PlayerSpawn)
	assert.Equal(t, a.ZombieSpawns, b.ZombieSpawns)
	require.Equal(t, len(a.Obstacles), len(b.Obstacles))
	for idx, ob := range a.Obstacles {
		other, ok := b.Obstacles[idx]
		require.True(t, ok, "obstacle at %v missing in second build", ob.Pos)
		assert.Equal(t, ob.Kind, other.Kind)
		assert.Equal(t, ob.Health, other.Health)
	}
	require.Equal(t, len(a.Items), len(b.Items))
	for idx, it := range a.Items {
		other, ok := b.Items[idx]
		require.True(t, ok, "item at %v missing in second build", it.Pos)
		assert.Equal(t, it.ID, other.ID)
		assert.Equal(t, it.IsMain, other.IsMain)
	}
}

func TestBuilder_PlacementInvariants(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s, err := NewLevel(2, rand.New(rand.NewSource(seed))).Build()
		require.NoError(t, err, "seed %d", seed)

		// Спавны на свободных клетках
		assert.False(t, s.IsBlocked(s.PlayerSpawn), "seed %d: player spawn blocked", seed)
		for _, z := range s.ZombieSpawns {
			assert.False(t, s.IsBlocked(z), "seed %d: zombie spawn blocked", seed)
			assert.GreaterOrEqual(t, s.PlayerSpawn.ManhattanTo(z), domain.MinSpawnDistance,
				"seed %d: zombie too close to player", seed)
		}

		// Углы свободны от всего
		n := s.Size - 1
		for _, c := range []domain.Position{{X: 0, Y: 0}, {X: 0, Y: n}, {X: n, Y: 0}, {X: n, Y: n}} {
			assert.False(t, s.IsBlocked(c), "seed %d: corner %v blocked", seed, c)
			assert.Nil(t, s.ItemAt(c), "seed %d: item in corner %v", seed, c)
			assert.NotEqual(t, s.PlayerSpawn, c, "seed %d: player in corner", seed)
		}

		// Ровно один главный блок и ровно один главный предмет под ним
		mains := 0
		for _, ob := range s.Obstacles {
			if ob.Kind == domain.KindMainBlock {
				mains++
				it := s.ItemAt(ob.Pos)
				require.NotNil(t, it, "seed %d: main block without item", seed)
				assert.True(t, it.IsMain, "seed %d: item under main block is not main", seed)
				// Не на кромке
				assert.True(t, ob.Pos.X > 0 && ob.Pos.X < s.Size-1 && ob.Pos.Y > 0 && ob.Pos.Y < s.Size-1,
					"seed %d: main block on the edge at %v", seed, ob.Pos)
			}
		}
		assert.Equal(t, 1, mains, "seed %d", seed)

		// Обычные предметы не под блоками
		for _, it := range s.Items {
			if !it.IsMain {
				assert.False(t, s.IsBlocked(it.Pos), "seed %d: item %v buried", seed, it.Pos)
			}
		}
	}
}

// Каждая проходимая клетка достижима из спавна после ремонта.
func TestBuilder_ReachabilityProperty(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		lvl := int(seed % 6)
		s, err := NewLevel(lvl, rand.New(rand.NewSource(seed))).Build()
		require.NoError(t, err, "seed %d", seed)

		g := grid.BuildCostGrid(s)
		seen := g.Reachable(s.PlayerSpawn)
		for y := 0; y < s.Size; y++ {
			for x := 0; x < s.Size; x++ {
				p := domain.Position{X: x, Y: y}
				if !g.Passable(p) {
					continue
				}
				_, ok := seen[g.Index(p)]
				require.True(t, ok, "seed %d level %d: cell %v unreachable from spawn %v",
					seed, lvl, p, s.PlayerSpawn)
			}
		}
	}
}

func TestBuilder_SmallArenaScenario(t *testing.T) {
	cfg := Config{ObstacleCount: 5, ItemCount: 2, ZombieCount: 1, BlockHealth: 10}
	s, err := NewLevel(0, rand.New(rand.NewSource(7))).WithSize(6).WithConfig(cfg).Build()
	require.NoError(t, err)

	assert.Len(t, s.ZombieSpawns, 1)
	// Ремонт мог снести часть блоков, но добавить не мог
	assert.LessOrEqual(t, len(s.Obstacles), 5)
	assert.Equal(t, 2, s.ItemsLeft())

	var mainPos domain.Position
	mains := 0
	for _, it := range s.Items {
		if it.IsMain {
			mainPos = it.Pos
			mains++
		}
	}
	require.Equal(t, 1, mains)

	// До главного предмета есть путь: его блок проходим "с боем"
	_, _, ok := grid.NewNavigator(s).FindPath(s.PlayerSpawn, mainPos)
	assert.True(t, ok, "main item must be reachable")
}

func TestBuilder_ClampsObstacleCount(t *testing.T) {
	cfg := Config{ObstacleCount: 10000, ItemCount: 3, ZombieCount: 0, BlockHealth: 10}
	s, err := NewLevel(0, rand.New(rand.NewSource(1))).WithSize(8).WithConfig(cfg).Build()
	require.NoError(t, err)
	assert.LessOrEqual(t, len(s.Obstacles), 8*8)
	assert.False(t, s.IsBlocked(s.PlayerSpawn))
}

func TestBuilder_GenerationFailed(t *testing.T) {
	// 12 открытых клеток и 11 зомби: у игрока нет шансов держать
	// дистанцию от всех
	cfg := Config{ObstacleCount: 0, ItemCount: 1, ZombieCount: 11, BlockHealth: 10}
	_, err := NewLevel(0, rand.New(rand.NewSource(1))).WithSize(4).WithConfig(cfg).Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))
}

func TestBuilder_TooManySpawns(t *testing.T) {
	cfg := Config{ObstacleCount: 0, ItemCount: 1, ZombieCount: 50, BlockHealth: 10}
	_, err := NewLevel(0, rand.New(rand.NewSource(1))).WithSize(4).WithConfig(cfg).Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))
}
