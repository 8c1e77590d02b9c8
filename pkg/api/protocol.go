package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Полный снимок арены для конкретного клиента; отправляется каждый раз,
// когда наступает ход сущности, которой управляет клиент.
type ServerResponse struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// Tick текущее время уровня. Увеличивается с каждым ходом.
	Tick int `json:"tick"`

	// Level номер текущего уровня.
	Level int `json:"level"`

	// ActiveEntityID ID сущности, чей ход сейчас.
	// Если совпадает с MyEntityID, клиент может принимать ввод.
	ActiveEntityID string `json:"activeEntityId,omitempty"`

	// MyEntityID ID сущности, которой управляет данный клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Grid метаданные арены.
	Grid *GridMeta `json:"grid,omitempty"`

	// Obstacles все блоки арены с их текущим здоровьем.
	Obstacles []ObstacleView `json:"obstacles,omitempty"`

	// Items несобранные предметы.
	Items []ItemView `json:"items,omitempty"`

	// Entities игрок и зомби.
	Entities []EntityView `json:"entities,omitempty"`

	// ItemsLeft сколько предметов осталось до завершения уровня.
	ItemsLeft int `json:"itemsLeft"`

	// DestructiblesLeft сколько разрушаемых блоков еще стоит.
	DestructiblesLeft int `json:"destructiblesLeft"`

	// Logs новые сообщения с прошлого хода.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит размер арены: клиент готовит сетку Size x Size.
type GridMeta struct {
	Size int `json:"size"`
}

// ObstacleView это DTO одного блока.
type ObstacleView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Kind: "destructible", "indestructible" или "main_block".
	Kind string `json:"kind"`

	// HP текущее здоровье; у неразрушаемых стен поле опущено.
	HP    int `json:"hp,omitempty"`
	MaxHP int `json:"maxHp,omitempty"`
}

// ItemView это DTO предмета на полу.
type ItemView struct {
	ID     string `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	IsMain bool   `json:"isMain,omitempty"`
}

// EntityView это DTO игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // player, zombie
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	// Stats может отсутствовать, если клиенту не положено видеть
	// характеристики этой сущности.
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView это DTO характеристик сущности.
type StatsView struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	Attack int  `json:"attack,omitempty"`
	IsDead bool `json:"isDead"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента.
type ClientCommand struct {
	// Token ID сущности, от имени которой выполняется действие.
	Token string `json:"token,omitempty"`

	// Action название действия: INIT, MOVE, FIRE, COLLECT, WAIT.
	Action string `json:"action"`

	// Payload JSON-объект с данными действия. Структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE и FIRE.
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// PositionPayload используется для действий, нацеленных на клетку.
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// EntityPayload используется для действий, нацеленных на другую
// сущность (ATTACK).
type EntityPayload struct {
	TargetID string `json:"targetId"`
}
