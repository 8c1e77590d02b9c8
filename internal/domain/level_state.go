package domain

// LevelState - полное статическое состояние уровня: препятствия,
// предметы и точки спавна. Сущности боевого цикла живут отдельно,
// здесь только то, что определяет топологию арены.
//
// Препятствия хранятся в map по плоскому индексу клетки: арена
// разрежена, и карта дешевле плотного среза из GridSize*GridSize
// указателей.
type LevelState struct {
	Size         int
	Obstacles    map[int]*Obstacle
	Items        map[int]*Item
	PlayerSpawn  Position
	ZombieSpawns []Position

	destructibleCount int
	topologyVersion   uint64
}

// NewLevelState создает пустой уровень заданного размера.
func NewLevelState(size int) *LevelState {
	return &LevelState{
		Size:      size,
		Obstacles: make(map[int]*Obstacle),
		Items:     make(map[int]*Item),
	}
}

// GetIndex переводит координаты клетки в плоский индекс (row-major).
func (s *LevelState) GetIndex(p Position) int {
	return p.Y*s.Size + p.X
}

// PositionOf - обратное преобразование плоского индекса в координаты.
func (s *LevelState) PositionOf(idx int) Position {
	return Position{X: idx % s.Size, Y: idx / s.Size}
}

// InBounds проверяет, что клетка лежит внутри арены.
func (s *LevelState) InBounds(p Position) bool {
	return p.X >= 0 && p.X < s.Size && p.Y >= 0 && p.Y < s.Size
}

// TopologyVersion - счетчик поколений топологии. Растет при любом
// изменении проходимости; кэши путей сверяются с ним перед
// использованием.
func (s *LevelState) TopologyVersion() uint64 {
	return s.topologyVersion
}

// DestructibleCount - сколько разрушаемых блоков осталось на арене.
func (s *LevelState) DestructibleCount() int {
	return s.destructibleCount
}

// ObstacleAt возвращает препятствие на клетке или nil.
func (s *LevelState) ObstacleAt(p Position) *Obstacle {
	if !s.InBounds(p) {
		return nil
	}
	return s.Obstacles[s.GetIndex(p)]
}

// IsBlocked сообщает, занята ли клетка препятствием.
// Клетки за границей арены тоже считаются занятыми.
func (s *LevelState) IsBlocked(p Position) bool {
	if !s.InBounds(p) {
		return true
	}
	_, ok := s.Obstacles[s.GetIndex(p)]
	return ok
}

// PlaceObstacle ставит препятствие на пустую клетку.
// Возвращает false, если клетка занята или вне арены.
func (s *LevelState) PlaceObstacle(p Position, kind ObstacleKind) bool {
	if s.IsBlocked(p) {
		return false
	}
	s.Obstacles[s.GetIndex(p)] = NewObstacle(p, kind)
	if kind.Destructible() {
		s.destructibleCount++
	}
	s.topologyVersion++
	return true
}

// DamageObstacle наносит урон блоку на клетке. Возвращает блок и
// признак того, что блок был уничтожен этим ударом. Неразрушаемые
// блоки урон игнорируют.
func (s *LevelState) DamageObstacle(p Position, damage int) (*Obstacle, bool) {
	ob := s.ObstacleAt(p)
	if ob == nil || !ob.Kind.Destructible() {
		return ob, false
	}
	ob.Health -= damage
	if ob.Health > 0 {
		return ob, false
	}
	s.removeObstacle(ob)
	return ob, true
}

// ForceEmpty безусловно расчищает клетку. Используется прокладкой
// коридоров при ремонте связности; неразрушаемые стены тоже убираются.
func (s *LevelState) ForceEmpty(p Position) {
	if ob := s.ObstacleAt(p); ob != nil {
		s.removeObstacle(ob)
	}
}

func (s *LevelState) removeObstacle(ob *Obstacle) {
	delete(s.Obstacles, s.GetIndex(ob.Pos))
	if ob.Kind.Destructible() {
		s.destructibleCount--
	}
	s.topologyVersion++
}

// ItemAt возвращает предмет на клетке или nil.
func (s *LevelState) ItemAt(p Position) *Item {
	if !s.InBounds(p) {
		return nil
	}
	return s.Items[s.GetIndex(p)]
}

// PlaceItem кладет предмет на клетку.
func (s *LevelState) PlaceItem(it *Item) {
	s.Items[s.GetIndex(it.Pos)] = it
}

// CollectItemAt забирает предмет с клетки. Главный предмет нельзя
// взять, пока над ним стоит главный блок: сначала блок надо сломать.
func (s *LevelState) CollectItemAt(p Position) (*Item, bool) {
	it := s.ItemAt(p)
	if it == nil {
		return nil, false
	}
	if it.IsMain {
		if ob := s.ObstacleAt(p); ob != nil && ob.Kind == KindMainBlock {
			return nil, false
		}
	}
	delete(s.Items, s.GetIndex(p))
	return it, true
}

// ItemsLeft - сколько предметов еще лежит на арене.
func (s *LevelState) ItemsLeft() int {
	return len(s.Items)
}

// IsClearWithRadius проверяет, что клетка и все клетки в квадратной
// окрестности радиуса r свободны от препятствий. Окрестность, вылезшая
// за границу, просто обрезается.
func (s *LevelState) IsClearWithRadius(p Position, r int) bool {
	if !s.InBounds(p) {
		return false
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			q := p.Shift(dx, dy)
			if !s.InBounds(q) {
				continue
			}
			if _, ok := s.Obstacles[s.GetIndex(q)]; ok {
				return false
			}
		}
	}
	return true
}

// FreeCells возвращает все пустые клетки арены в детерминированном
// порядке обхода.
func (s *LevelState) FreeCells() []Position {
	free := make([]Position, 0, s.Size*s.Size-len(s.Obstacles))
	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			p := Position{X: x, Y: y}
			if _, ok := s.Obstacles[s.GetIndex(p)]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
