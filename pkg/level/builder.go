package level

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/pkg/logger"
)

// ErrGenerationFailed - размещение сущностей не уложилось в лимит
// попыток. Вызывающий может перегенерировать уровень с другим сидом.
var ErrGenerationFailed = errors.New("level generation failed: placement retry limit exhausted")

// Builder предоставляет fluent API для сборки уровня.
type Builder struct {
	level int
	size  int
	cfg   Config
	rng   *rand.Rand
	err   error

	state *domain.LevelState
}

// NewLevel создает builder для уровня с номером level.
// Детерминизм обеспечивает переданный rng: один сид - одна арена.
func NewLevel(levelNum int, rng *rand.Rand) *Builder {
	return &Builder{
		level: levelNum,
		size:  domain.GridSize,
		cfg:   DefaultTable().ForLevel(levelNum),
		rng:   rng,
	}
}

// WithSize устанавливает сторону арены.
func (b *Builder) WithSize(size int) *Builder {
	if size < 4 {
		b.err = fmt.Errorf("arena size %d is too small", size)
		return b
	}
	b.size = size
	return b
}

// WithConfig переопределяет параметры уровня.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.cfg = cfg
	return b
}

// Build собирает уровень: спавны, главный блок, препятствия, предметы,
// потом ремонт связности. Порядок важен: коридоры прокладываются по
// уже расставленным препятствиям.
func (b *Builder) Build() (*domain.LevelState, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.state = domain.NewLevelState(b.size)

	forbidden := make(map[domain.Position]bool)
	for _, c := range b.corners() {
		forbidden[c] = true
	}

	if err := b.placeSpawns(forbidden); err != nil {
		return nil, err
	}
	mainPos, err := b.placeMainBlock(forbidden)
	if err != nil {
		return nil, err
	}
	b.placeObstacles(forbidden)
	b.placeItems(forbidden, mainPos)

	RepairConnectivity(b.state, b.rng)

	logger.Component("level").WithFields(logrus.Fields{
		"level":     b.level,
		"size":      b.size,
		"obstacles": len(b.state.Obstacles),
		"items":     b.state.ItemsLeft(),
		"zombies":   len(b.state.ZombieSpawns),
	}).Info("Level generated")
	return b.state, nil
}

func (b *Builder) corners() [4]domain.Position {
	n := b.size - 1
	return [4]domain.Position{{X: 0, Y: 0}, {X: 0, Y: n}, {X: n, Y: 0}, {X: n, Y: n}}
}

// placeSpawns выбирает спавн игрока и зомби. Каждый зомби обязан
// стоять не ближе MinSpawnDistance шагов от игрока; неудачные наборы
// перебрасываются целиком, но не бесконечно.
func (b *Builder) placeSpawns(forbidden map[domain.Position]bool) error {
	candidates := b.openPositions(forbidden)
	need := b.cfg.ZombieCount + 1
	if len(candidates) < need {
		return fmt.Errorf("%w: %d open cells for %d spawns", ErrGenerationFailed, len(candidates), need)
	}

	for attempt := 0; attempt < domain.PlacementRetryLimit; attempt++ {
		b.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		player := candidates[0]
		zombies := candidates[1:need]

		ok := true
		for _, z := range zombies {
			if player.ManhattanTo(z) < domain.MinSpawnDistance {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		b.state.PlayerSpawn = player
		b.state.ZombieSpawns = append([]domain.Position(nil), zombies...)
		forbidden[player] = true
		for _, z := range zombies {
			forbidden[z] = true
		}
		return nil
	}
	return fmt.Errorf("%w: no spawn layout with distance >= %d after %d attempts",
		ErrGenerationFailed, domain.MinSpawnDistance, domain.PlacementRetryLimit)
}

// placeMainBlock ставит усиленный блок во внутренней области арены
// (не на кромке) и возвращает его позицию - там же будет лежать
// главный предмет.
func (b *Builder) placeMainBlock(forbidden map[domain.Position]bool) (domain.Position, error) {
	candidates := make([]domain.Position, 0)
	for y := 1; y < b.size-1; y++ {
		for x := 1; x < b.size-1; x++ {
			p := domain.Position{X: x, Y: y}
			if !forbidden[p] {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return domain.Position{}, fmt.Errorf("%w: no interior cell for the main block", ErrGenerationFailed)
	}
	pos := candidates[b.rng.Intn(len(candidates))]
	b.state.PlaceObstacle(pos, domain.KindMainBlock)
	if ob := b.state.ObstacleAt(pos); b.cfg.BlockHealth > 0 {
		ob.Health = 2 * b.cfg.BlockHealth
		ob.MaxHealth = ob.Health
	}
	forbidden[pos] = true
	return pos, nil
}

// placeObstacles расставляет остальные препятствия. Счетчик
// обрезается по числу свободных клеток; заданная доля блоков
// разрушаемая, остальные - стены.
func (b *Builder) placeObstacles(forbidden map[domain.Position]bool) {
	candidates := b.openPositions(forbidden)
	count := b.cfg.ObstacleCount - 1
	if count < 0 {
		count = 0
	}
	if count > len(candidates) {
		count = len(candidates)
	}
	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	destructible := int(float64(count) * domain.DestructibleRatio)
	for i := 0; i < count; i++ {
		pos := candidates[i]
		kind := domain.KindIndestructible
		if i < destructible {
			kind = domain.KindDestructible
		}
		b.state.PlaceObstacle(pos, kind)
		if kind == domain.KindDestructible && b.cfg.BlockHealth > 0 {
			ob := b.state.ObstacleAt(pos)
			ob.Health = b.cfg.BlockHealth
			ob.MaxHealth = b.cfg.BlockHealth
		}
		forbidden[pos] = true
	}
}

// placeItems раскладывает предметы по свободным клеткам. Главный
// предмет лежит под главным блоком и в счетчик обычных не входит.
func (b *Builder) placeItems(forbidden map[domain.Position]bool, mainPos domain.Position) {
	candidates := b.openPositions(forbidden)
	count := b.cfg.ItemCount
	if count < 1 {
		count = 1
	}
	count-- // место главного предмета
	if count > len(candidates) {
		count = len(candidates)
	}
	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("item_%d_%d", b.level, i)
		b.state.PlaceItem(&domain.Item{ID: id, Pos: candidates[i]})
	}
	id := fmt.Sprintf("main_%d", b.level)
	b.state.PlaceItem(&domain.Item{ID: id, Pos: mainPos, IsMain: true})
}

// openPositions - клетки без препятствий и не из списка запрещенных,
// в детерминированном порядке обхода.
func (b *Builder) openPositions(forbidden map[domain.Position]bool) []domain.Position {
	open := make([]domain.Position, 0, b.size*b.size)
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			p := domain.Position{X: x, Y: y}
			if forbidden[p] || b.state.IsBlocked(p) {
				continue
			}
			open = append(open, p)
		}
	}
	return open
}
