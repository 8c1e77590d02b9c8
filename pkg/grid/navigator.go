package grid

import "github.com/TianyuZhao6/Z-Game/internal/domain"

// Navigator прячет перестройку графа от игровых систем: держит
// последний снимок весов и лениво пересобирает его, когда версия
// топологии уровня уходит вперед. Разрушение блока или прокладка
// коридора автоматически делают следующий запрос пути честным.
//
// Навигатор не потокобезопасен: игровой цикл владеет им единолично.
type Navigator struct {
	state  *domain.LevelState
	cached *CostGrid
}

// NewNavigator создает навигатор поверх состояния уровня.
// Снимок не строится до первого запроса.
func NewNavigator(state *domain.LevelState) *Navigator {
	return &Navigator{state: state}
}

// Grid возвращает актуальный снимок весов, пересобирая его при
// устаревании.
func (n *Navigator) Grid() *CostGrid {
	if n.cached == nil || n.cached.Version() != n.state.TopologyVersion() {
		n.cached = BuildCostGrid(n.state)
	}
	return n.cached
}

// FindPath ищет путь по актуальному снимку.
func (n *Navigator) FindPath(start, goal domain.Position) ([]domain.Position, float64, bool) {
	return n.Grid().FindPath(start, goal)
}

// Reachable - множество клеток, достижимых из from.
func (n *Navigator) Reachable(from domain.Position) map[int]struct{} {
	return n.Grid().Reachable(from)
}
