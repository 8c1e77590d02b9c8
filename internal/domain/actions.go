package domain

import (
	"encoding/json"
	"strings"
)

// ActionType - внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionFire
	ActionAttack
	ActionCollect
	ActionWait
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":    ActionInit,
	"MOVE":    ActionMove,
	"FIRE":    ActionFire,
	"ATTACK":  ActionAttack,
	"COLLECT": ActionCollect,
	"WAIT":    ActionWait,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:    "INIT",
	ActionMove:    "MOVE",
	ActionFire:    "FIRE",
	ActionAttack:  "ATTACK",
	ActionCollect: "COLLECT",
	ActionWait:    "WAIT",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// InternalCommand - команда для движка от клиента или бота.
type InternalCommand struct {
	Action  ActionType
	Token   string          // ID сущности (Actor)
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
