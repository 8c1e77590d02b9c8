package domain

import "encoding/json"

// ReplayAction - запись одного действия извне (от игрока или бота)
type ReplayAction struct {
	Tick    int             `json:"tick"`
	Token   EntityID        `json:"token"`   // Кто сделал
	Action  ActionType      `json:"action"`  // Что сделал
	Payload json.RawMessage `json:"payload"` // С какими параметрами
}

// ReplaySession - полная запись прохождения уровня. Сид плюс лента
// действий полностью детерминируют повтор: генерация и AI зависят
// только от rng уровня.
type ReplaySession struct {
	LevelID     int             `json:"levelId"`
	Seed        int64           `json:"seed"`
	Timestamp   int64           `json:"timestamp"`
	PlayerState json.RawMessage `json:"playerState,omitempty"`
	Actions     []ReplayAction  `json:"actions"`
}
