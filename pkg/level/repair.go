package level

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/pkg/grid"
	"github.com/TianyuZhao6/Z-Game/pkg/logger"
)

// RepairOptions - настройки ремонта связности.
type RepairOptions struct {
	// HalfWidth - полуширина прокладываемого коридора в клетках
	// (0 - коридор в одну клетку).
	HalfWidth int
	// ExtraCorridors - сколько дополнительных случайных коридоров
	// проложить от спавна к кромке для разнообразия маршрутов.
	ExtraCorridors int
	// SweepPasses - предел проходов финальной зачистки недостижимых
	// областей.
	SweepPasses int
}

// DefaultRepairOptions - параметры, с которыми генератор собирает
// боевые уровни.
func DefaultRepairOptions() RepairOptions {
	return RepairOptions{HalfWidth: 0, ExtraCorridors: 2, SweepPasses: 16}
}

// RepairConnectivity доводит свежесгенерированную арену до связности:
// после ремонта каждая проходимая клетка достижима из спавна игрока.
func RepairConnectivity(state *domain.LevelState, rng *rand.Rand) {
	RepairConnectivityWith(state, rng, DefaultRepairOptions())
}

// RepairConnectivityWith - ремонт связности в четыре этапа:
//  1. базовые коридоры - горизонталь и вертикаль через спавн,
//  2. случайные дополнительные коридоры к кромке,
//  3. четыре зондирующих поиска пути к точкам выхода на кромку,
//     с прокладкой коридора при провале,
//  4. зачистка: BFS от спавна, коридор к каждой оставшейся
//     недостижимой области, ограниченное число проходов.
//
// Порядок выбран так, что зонды этапа 3 почти всегда проходят сразу:
// базовые коридоры уже соединяют спавн со всеми четырьмя сторонами.
// Если зачистка исчерпала лимит проходов, уровень остается
// "отремонтированным по возможности" - это предупреждение, не ошибка.
func RepairConnectivityWith(state *domain.LevelState, rng *rand.Rand, opts RepairOptions) {
	log := logger.Component("repair")
	spawn := state.PlayerSpawn
	n := state.Size

	// Этап 1: базовые коридоры через спавн
	carveLine(state, domain.Position{X: 0, Y: spawn.Y}, domain.Position{X: n - 1, Y: spawn.Y}, opts.HalfWidth)
	carveLine(state, domain.Position{X: spawn.X, Y: 0}, domain.Position{X: spawn.X, Y: n - 1}, opts.HalfWidth)

	// Этап 2: случайные коридоры к кромке
	for i := 0; i < opts.ExtraCorridors; i++ {
		carveLine(state, spawn, randomBorderCell(n, rng), opts.HalfWidth)
	}

	// Этап 3: зонды к точкам выхода прямых из спавна на каждую сторону
	nav := grid.NewNavigator(state)
	exits := [4]domain.Position{
		{X: spawn.X, Y: 0},
		{X: spawn.X, Y: n - 1},
		{X: 0, Y: spawn.Y},
		{X: n - 1, Y: spawn.Y},
	}
	for _, exit := range exits {
		if _, _, ok := nav.FindPath(spawn, exit); !ok {
			carveLine(state, spawn, exit, opts.HalfWidth)
		}
	}

	// Этап 4: зачистка оставшихся карманов
	for pass := 0; pass < opts.SweepPasses; pass++ {
		pocket, found := firstUnreachable(state, nav)
		if !found {
			return
		}
		carveLine(state, spawn, pocket, opts.HalfWidth)
	}

	if pocket, found := firstUnreachable(state, nav); found {
		log.WithFields(logrus.Fields{
			"spawn":  spawn,
			"pocket": pocket,
			"passes": opts.SweepPasses,
		}).Warn("Connectivity repair is best-effort: unreachable pocket remains")
	}
}

// carveLine принудительно расчищает клетки отрезка (и полосу вокруг
// него заданной полуширины). Диагональные шаги растеризации
// достраиваются промежуточной клеткой, чтобы коридор был связным в
// 4-связности. Главный блок не сносится: предмет под ним обязан
// оставаться закрытым до честного слома.
func carveLine(state *domain.LevelState, from, to domain.Position, halfWidth int) {
	cells := grid.Line(from, to)
	for i, p := range cells {
		if i > 0 {
			prev := cells[i-1]
			if prev.X != p.X && prev.Y != p.Y {
				carveCell(state, domain.Position{X: prev.X, Y: p.Y}, halfWidth)
			}
		}
		carveCell(state, p, halfWidth)
	}
}

func carveCell(state *domain.LevelState, p domain.Position, halfWidth int) {
	for dy := -halfWidth; dy <= halfWidth; dy++ {
		for dx := -halfWidth; dx <= halfWidth; dx++ {
			q := p.Shift(dx, dy)
			if ob := state.ObstacleAt(q); ob != nil && ob.Kind != domain.KindMainBlock {
				state.ForceEmpty(q)
			}
		}
	}
}

// firstUnreachable находит первую (в порядке обхода) проходимую
// клетку, до которой нет пути от спавна.
func firstUnreachable(state *domain.LevelState, nav *grid.Navigator) (domain.Position, bool) {
	g := nav.Grid()
	seen := g.Reachable(state.PlayerSpawn)
	for y := 0; y < state.Size; y++ {
		for x := 0; x < state.Size; x++ {
			p := domain.Position{X: x, Y: y}
			if !g.Passable(p) {
				continue
			}
			if _, ok := seen[g.Index(p)]; !ok {
				return p, true
			}
		}
	}
	return domain.Position{}, false
}

func randomBorderCell(n int, rng *rand.Rand) domain.Position {
	switch rng.Intn(4) {
	case 0:
		return domain.Position{X: rng.Intn(n), Y: 0}
	case 1:
		return domain.Position{X: rng.Intn(n), Y: n - 1}
	case 2:
		return domain.Position{X: 0, Y: rng.Intn(n)}
	default:
		return domain.Position{X: n - 1, Y: rng.Intn(n)}
	}
}
