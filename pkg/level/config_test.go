package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_ForLevel(t *testing.T) {
	tbl := DefaultTable()

	// Табличные уровни
	assert.Equal(t, 15, tbl.ForLevel(0).ObstacleCount)
	assert.Equal(t, 2, tbl.ForLevel(1).ZombieCount)
	assert.Equal(t, 15, tbl.ForLevel(1).BlockHealth)

	// Отрицательный номер сводится к первому уровню
	assert.Equal(t, tbl.ForLevel(0), tbl.ForLevel(-3))

	// Формула прогрессии за пределами таблицы
	c2 := tbl.ForLevel(2)
	assert.Equal(t, 22, c2.ObstacleCount)
	assert.Equal(t, 5, c2.ItemCount)
	assert.Equal(t, 1, c2.ZombieCount)
	assert.Equal(t, 12, c2.BlockHealth) // 10 * 1.2

	// Зомби капятся на пяти
	assert.Equal(t, 5, tbl.ForLevel(30).ZombieCount)

	// Сложность монотонно растет
	prev := tbl.ForLevel(2)
	for n := 3; n < 12; n++ {
		cur := tbl.ForLevel(n)
		assert.Greater(t, cur.ObstacleCount, prev.ObstacleCount, "level %d", n)
		assert.GreaterOrEqual(t, cur.BlockHealth, prev.BlockHealth, "level %d", n)
		prev = cur
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	data := `levels:
  - obstacle_count: 7
    item_count: 2
    zombie_count: 1
    block_hp: 5
    zombie_types: [basic]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	tbl, err := LoadTable(path)
	require.NoError(t, err)
	require.Len(t, tbl.Levels, 1)
	assert.Equal(t, 7, tbl.ForLevel(0).ObstacleCount)
	assert.Equal(t, []string{"basic"}, tbl.ForLevel(0).ZombieTypes)
	// Дальше таблицы включается формула
	assert.Equal(t, 21, tbl.ForLevel(1).ObstacleCount)
}

func TestLoadTable_Errors(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("levels: []\n"), 0o644))
	_, err = LoadTable(empty)
	assert.Error(t, err)
}
