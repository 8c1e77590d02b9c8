package grid

import "github.com/TianyuZhao6/Z-Game/internal/domain"

// Line возвращает клетки отрезка между a и b включительно
// (алгоритм Брезенхэма). Используется прокладкой коридоров и
// трассировкой выстрелов.
func Line(a, b domain.Position) []domain.Position {
	cells := make([]domain.Position, 0)

	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy

	x, y := a.X, a.Y
	for {
		cells = append(cells, domain.Position{X: x, Y: y})
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return cells
}

// FirstObstacleOnLine трассирует отрезок от from (не включая ее саму)
// к to и возвращает первое встреченное препятствие.
func FirstObstacleOnLine(state *domain.LevelState, from, to domain.Position) (*domain.Obstacle, bool) {
	for _, p := range Line(from, to) {
		if p == from {
			continue
		}
		if ob := state.ObstacleAt(p); ob != nil {
			return ob, true
		}
	}
	return nil, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
