package engine

import (
	"time"

	"github.com/TianyuZhao6/Z-Game/pkg/level"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все уровни:
	// Level N Seed = Seed + N.
	Seed int64

	// StartLevel - номер уровня, с которого начинается забег.
	StartLevel int

	// Table - таблица баланса уровней.
	Table *level.Table

	// TurnTimeout - сколько ждать хода игрока, прежде чем
	// принудительно пропустить его.
	TurnTimeout time.Duration
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:        time.Now().UnixNano(),
		StartLevel:  0,
		Table:       level.DefaultTable(),
		TurnTimeout: 60 * time.Second,
	}
}
