package domain

// EntityID - уникальный идентификатор сущности (игрока или зомби).
type EntityID string

func (id EntityID) String() string {
	return string(id)
}

// Position - координата клетки на квадратной сетке.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ManhattanTo возвращает манхэттенское расстояние до другой клетки.
// Это и метрика ограничения спавна, и эвристика для поиска пути.
func (p Position) ManhattanTo(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Shift возвращает новую позицию со смещением (не меняя текущую,
// т.к. Go передает структуры по значению).
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DirectionTo возвращает знаковые шаги (-1/0/1) по обеим осям в сторону цели.
func (p Position) DirectionTo(other Position) (int, int) {
	return sign(other.X - p.X), sign(other.Y - p.Y)
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// Orthogonal - четыре ортогональных направления обхода сетки.
// Диагоналей нет: и генерация, и поиск пути работают в 4-связности.
var Orthogonal = [4]Position{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}
