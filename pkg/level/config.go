// Package level - генерация уровней: подбор параметров по номеру
// уровня, расстановка препятствий, предметов и спавнов, и ремонт
// связности арены.
package level

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config - параметры одного уровня.
type Config struct {
	ObstacleCount int      `yaml:"obstacle_count"`
	ItemCount     int      `yaml:"item_count"`
	ZombieCount   int      `yaml:"zombie_count"`
	BlockHealth   int      `yaml:"block_hp"`
	ZombieTypes   []string `yaml:"zombie_types,omitempty"`
}

// Table - таблица уровней: явные записи для первых уровней,
// дальше параметры считаются по формуле прогрессии.
type Table struct {
	Levels []Config `yaml:"levels"`
}

// DefaultTable - вшитая прогрессия первых уровней.
func DefaultTable() *Table {
	return &Table{
		Levels: []Config{
			{ObstacleCount: 15, ItemCount: 3, ZombieCount: 1, BlockHealth: 10, ZombieTypes: []string{"basic"}},
			{ObstacleCount: 18, ItemCount: 4, ZombieCount: 2, BlockHealth: 15, ZombieTypes: []string{"basic", "strong"}},
		},
	}
}

// LoadTable читает таблицу уровней из YAML-файла. Используется для
// переопределения баланса без пересборки.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read levels file: %w", err)
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse levels file: %w", err)
	}
	if len(t.Levels) == 0 {
		return nil, fmt.Errorf("levels file %s defines no levels", path)
	}
	return &t, nil
}

// ForLevel возвращает параметры уровня с номером n (нумерация с нуля).
// За пределами таблицы сложность растет по формуле: препятствий
// больше с каждым уровнем, зомби добавляются каждые три уровня
// (не больше пяти), здоровье блоков растет на 20% за уровень.
func (t *Table) ForLevel(n int) Config {
	if n < 0 {
		n = 0
	}
	if n < len(t.Levels) {
		return t.Levels[n]
	}
	zombies := 1 + n/3
	if zombies > 5 {
		zombies = 5
	}
	types := []string{"basic", "strong", "fire"}
	return Config{
		ObstacleCount: 20 + n,
		ItemCount:     5,
		ZombieCount:   zombies,
		BlockHealth:   int(10 * math.Pow(1.2, float64(n-len(t.Levels)+1))),
		ZombieTypes:   types[n%3:],
	}
}
