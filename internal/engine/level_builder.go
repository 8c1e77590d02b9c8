package engine

import (
	"fmt"
	"math/rand"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/pkg/level"
	"github.com/TianyuZhao6/Z-Game/pkg/utils"
)

// buildLevel генерирует арену уровня и его зомби.
// Сид уровня выводится из мастер-сида: Seed + номер уровня, так что
// один и тот же запуск всегда дает одну и ту же последовательность
// арен.
func buildLevel(cfg Config, levelNum int) (*domain.LevelState, []*domain.Entity, int64, error) {
	seed := cfg.Seed + int64(levelNum)
	return buildLevelSeeded(cfg.Table, levelNum, seed)
}

// buildLevelSeeded строит уровень с явным сидом. Нужен воспроизведению
// записей: там сид берется из файла, а не из мастер-сида.
func buildLevelSeeded(table *level.Table, levelNum int, seed int64) (*domain.LevelState, []*domain.Entity, int64, error) {
	rng := rand.New(rand.NewSource(seed))

	state, err := level.NewLevel(levelNum, rng).
		WithConfig(table.ForLevel(levelNum)).
		Build()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("build level %d: %w", levelNum, err)
	}

	zombies := make([]*domain.Entity, 0, len(state.ZombieSpawns))
	for idx, pos := range state.ZombieSpawns {
		z := domain.NewZombie(domain.EntityID(fmt.Sprintf("zombie_%d_%d", levelNum, idx)), pos)
		z.Level = levelNum
		zombies = append(zombies, z)
	}

	return state, zombies, seed, nil
}

// SpawnPlayer создает игрока на точке спавна уровня.
func SpawnPlayer(name, controllerID string, state *domain.LevelState, levelNum int) *domain.Entity {
	id := domain.EntityID("player_" + utils.GenerateID())
	p := domain.NewPlayer(id, state.PlayerSpawn)
	if name != "" {
		p.Name = name
	}
	p.ControllerID = controllerID
	p.Level = levelNum
	return p
}
