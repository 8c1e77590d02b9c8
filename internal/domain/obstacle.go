package domain

// ObstacleKind - разновидность препятствия на клетке.
// Пустые клетки в карте препятствий не хранятся вовсе.
type ObstacleKind int

const (
	// KindDestructible - блок, который можно сломать атакой.
	KindDestructible ObstacleKind = iota
	// KindIndestructible - блок-стена, непроходимая навсегда.
	KindIndestructible
	// KindMainBlock - усиленный блок, под которым лежит главный предмет.
	KindMainBlock
)

func (k ObstacleKind) String() string {
	switch k {
	case KindDestructible:
		return "destructible"
	case KindIndestructible:
		return "indestructible"
	case KindMainBlock:
		return "main_block"
	default:
		return "unknown"
	}
}

// Destructible сообщает, можно ли блок в принципе сломать.
func (k ObstacleKind) Destructible() bool {
	return k == KindDestructible || k == KindMainBlock
}

// Obstacle - препятствие, занимающее ровно одну клетку.
type Obstacle struct {
	Pos       Position     `json:"pos"`
	Kind      ObstacleKind `json:"kind"`
	Health    int          `json:"health"`
	MaxHealth int          `json:"max_health"`
}

// NewObstacle создает препятствие со здоровьем, положенным его типу.
func NewObstacle(pos Position, kind ObstacleKind) *Obstacle {
	hp := 0
	switch kind {
	case KindDestructible:
		hp = ObstacleHealth
	case KindMainBlock:
		hp = MainBlockHealth
	}
	return &Obstacle{Pos: pos, Kind: kind, Health: hp, MaxHealth: hp}
}

// Item - предмет, который игрок собирает на уровне.
type Item struct {
	ID     string   `json:"id"`
	Pos    Position `json:"pos"`
	IsMain bool     `json:"is_main"`
}
