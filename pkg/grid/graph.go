// Package grid - навигационный слой арены: взвешенный граф клеток,
// поиск пути A* и проверки достижимости. Граф строится по снимку
// состояния уровня и считается устаревшим, как только топология
// уровня меняется.
package grid

import (
	"math"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
)

// Impassable - вес непроходимой клетки.
const Impassable = math.MaxFloat64

// CostGrid - снимок весов клеток арены. Вес назначается на ВХОД в
// клетку, поэтому графу не нужны явные ребра: стоимость шага A->B
// равна весу B независимо от A.
type CostGrid struct {
	size    int
	weights []float64
	version uint64
}

// EnterCost считает стоимость входа в клетку по текущему состоянию
// уровня. Пустая клетка стоит 1. Разрушаемый блок проходим "с боем":
// к базовой единице добавляется число ударов, нужных для слома,
// умноженное на BreakFactor. Неразрушаемая стена непроходима.
func EnterCost(state *domain.LevelState, p domain.Position) float64 {
	if !state.InBounds(p) {
		return Impassable
	}
	ob := state.ObstacleAt(p)
	if ob == nil {
		return 1.0
	}
	if !ob.Kind.Destructible() {
		return Impassable
	}
	hits := (ob.Health + domain.ZombieAttack - 1) / domain.ZombieAttack
	return 1.0 + float64(hits)*domain.BreakFactor
}

// BuildCostGrid снимает веса всех клеток уровня. Снимок помнит версию
// топологии, по которой был построен.
func BuildCostGrid(state *domain.LevelState) *CostGrid {
	g := &CostGrid{
		size:    state.Size,
		weights: make([]float64, state.Size*state.Size),
		version: state.TopologyVersion(),
	}
	for y := 0; y < state.Size; y++ {
		for x := 0; x < state.Size; x++ {
			p := domain.Position{X: x, Y: y}
			g.weights[g.Index(p)] = EnterCost(state, p)
		}
	}
	return g
}

// Size - сторона арены.
func (g *CostGrid) Size() int {
	return g.size
}

// Version - версия топологии уровня на момент снимка.
func (g *CostGrid) Version() uint64 {
	return g.version
}

// Index переводит позицию в плоский индекс (row-major).
func (g *CostGrid) Index(p domain.Position) int {
	return p.Y*g.size + p.X
}

// InBounds проверяет, что клетка лежит внутри снимка.
func (g *CostGrid) InBounds(p domain.Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// Cost - стоимость входа в клетку. Вне арены - Impassable.
func (g *CostGrid) Cost(p domain.Position) float64 {
	if !g.InBounds(p) {
		return Impassable
	}
	return g.weights[g.Index(p)]
}

// Passable - можно ли вообще попасть в клетку.
func (g *CostGrid) Passable(p domain.Position) bool {
	return g.Cost(p) < Impassable
}

// Reachable возвращает множество индексов клеток, достижимых из from
// по проходимым клеткам (BFS, 4-связность). Сама from входит в
// результат, если проходима.
func (g *CostGrid) Reachable(from domain.Position) map[int]struct{} {
	seen := make(map[int]struct{})
	if !g.Passable(from) {
		return seen
	}
	queue := []domain.Position{from}
	seen[g.Index(from)] = struct{}{}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range domain.Orthogonal {
			next := cur.Shift(d.X, d.Y)
			if !g.Passable(next) {
				continue
			}
			idx := g.Index(next)
			if _, ok := seen[idx]; ok {
				continue
			}
			seen[idx] = struct{}{}
			queue = append(queue, next)
		}
	}
	return seen
}
