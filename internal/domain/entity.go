package domain

// StatsComponent - здоровье и урон сущности.
type StatsComponent struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	Attack int  `json:"attack"`
	IsDead bool `json:"isDead"`
}

// TakeDamage наносит урон. Возвращает true, если цель погибла.
func (s *StatsComponent) TakeDamage(amount int) bool {
	if s.IsDead {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	s.HP -= amount
	if s.HP <= 0 {
		s.HP = 0
		s.IsDead = true
		return true
	}
	return false
}

// AIComponent - поведение и место в очереди ходов.
// Примечание: у игрока тоже есть этот компонент, чтобы хранить NextActionTick.
type AIComponent struct {
	IsHostile      bool `json:"isHostile"`
	NextActionTick int  `json:"nextActionTick"`

	// Кэш пути преследования. Валиден, только пока PathVersion
	// совпадает с текущей версией топологии уровня.
	Path        []Position `json:"-"`
	PathVersion uint64     `json:"-"`
}

// InvalidatePath сбрасывает кэшированный маршрут.
func (a *AIComponent) InvalidatePath() {
	a.Path = nil
	a.PathVersion = 0
}

// Wait сдвигает сущность в очереди ходов на cost тактов вперед.
func (a *AIComponent) Wait(cost int) {
	a.NextActionTick += cost
}

// Entity - игрок или зомби на арене.
type Entity struct {
	ID   EntityID `json:"id"`
	Type string   `json:"type"`
	Name string   `json:"name"`

	// ControllerID - ID сессии, которая управляет сущностью.
	// Если пусто - управляется AI.
	ControllerID string `json:"controllerId,omitempty"`

	// Level - номер уровня, на котором сущность находится сейчас.
	Level int `json:"level"`

	Pos Position `json:"pos"`

	// Компоненты (nil - свойство отсутствует)
	Stats *StatsComponent `json:"stats,omitempty"`
	AI    *AIComponent    `json:"ai,omitempty"`
}

// NewPlayer создает сущность игрока на стартовой позиции.
func NewPlayer(id EntityID, pos Position) *Entity {
	return &Entity{
		ID:   id,
		Type: EntityPlayer,
		Name: "Player",
		Pos:  pos,
		Stats: &StatsComponent{
			HP:     PlayerMaxHealth,
			MaxHP:  PlayerMaxHealth,
			Attack: PlayerAttack,
		},
		AI: &AIComponent{},
	}
}

// NewZombie создает зомби на позиции спавна.
func NewZombie(id EntityID, pos Position) *Entity {
	return &Entity{
		ID:   id,
		Type: EntityZombie,
		Name: "Zombie",
		Pos:  pos,
		Stats: &StatsComponent{
			HP:     ZombieMaxHealth,
			MaxHP:  ZombieMaxHealth,
			Attack: ZombieAttack,
		},
		AI: &AIComponent{IsHostile: true},
	}
}

// IsAlive - жива ли сущность.
func (e *Entity) IsAlive() bool {
	return e.Stats != nil && !e.Stats.IsDead
}
