package grid

import (
	"container/heap"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
)

type pathNode struct {
	pos    domain.Position
	g      float64
	f      float64
	index  int
	parent *pathNode
}

// pathQueue - минимальная куча открытых узлов по f = g + h.
type pathQueue []*pathNode

func (pq pathQueue) Len() int { return len(pq) }

func (pq pathQueue) Less(i, j int) bool { return pq[i].f < pq[j].f }

func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *pathQueue) Push(x any) {
	n := len(*pq)
	item := x.(*pathNode)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *pathQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// FindPath ищет дешевейший путь между клетками алгоритмом A*.
// Эвристика - манхэттенское расстояние: вес любой клетки не меньше 1,
// так что оценка никогда не завышает остаток и результат оптимален.
//
// Возвращает путь от start до goal включительно, его суммарную
// стоимость и признак успеха. Если цель недостижима или непроходима,
// ok равен false и путь пуст - "почти путь" до ближайшей точки не
// возвращается.
func (g *CostGrid) FindPath(start, goal domain.Position) ([]domain.Position, float64, bool) {
	if !g.InBounds(start) || !g.Passable(goal) {
		return nil, 0, false
	}
	if start == goal {
		return []domain.Position{start}, 0, true
	}

	open := &pathQueue{}
	heap.Init(open)
	heap.Push(open, &pathNode{pos: start, g: 0, f: heuristic(start, goal)})

	gScore := map[int]float64{g.Index(start): 0}
	closed := make(map[int]struct{})

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		currIdx := g.Index(current.pos)
		// Устаревшие дубликаты в куче пропускаем вместо decrease-key
		if _, seen := closed[currIdx]; seen {
			continue
		}
		closed[currIdx] = struct{}{}

		if current.pos == goal {
			return reconstructPath(current), current.g, true
		}

		for _, d := range domain.Orthogonal {
			next := current.pos.Shift(d.X, d.Y)
			stepCost := g.Cost(next)
			if stepCost >= Impassable {
				continue
			}
			idx := g.Index(next)
			if _, seen := closed[idx]; seen {
				continue
			}
			tentativeG := current.g + stepCost
			if prev, ok := gScore[idx]; ok && tentativeG >= prev {
				continue
			}
			gScore[idx] = tentativeG
			heap.Push(open, &pathNode{
				pos:    next,
				g:      tentativeG,
				f:      tentativeG + heuristic(next, goal),
				parent: current,
			})
		}
	}
	return nil, 0, false
}

func heuristic(a, b domain.Position) float64 {
	return float64(a.ManhattanTo(b))
}

func reconstructPath(end *pathNode) []domain.Position {
	path := make([]domain.Position, 0)
	for node := end; node != nil; node = node.parent {
		path = append(path, node.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
