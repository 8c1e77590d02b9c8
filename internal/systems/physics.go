package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/pkg/grid"
	"github.com/TianyuZhao6/Z-Game/pkg/logger"
)

// HasLineOfSight проверяет прямую видимость между двумя клетками.
// Трасса идет по растеризованному отрезку; стартовая и конечная
// клетки препятствиями не считаются.
func HasLineOfSight(state *domain.LevelState, p1, p2 domain.Position) bool {
	if p1 == p2 {
		return true
	}
	for _, p := range grid.Line(p1, p2) {
		if p == p1 || p == p2 {
			continue
		}
		if !state.InBounds(p) {
			return false
		}
		if state.IsBlocked(p) {
			logger.Log.WithFields(logrus.Fields{
				"component": "physics_system",
				"from":      p1,
				"to":        p2,
				"blocked":   p,
			}).Debug("Line of sight blocked")
			return false
		}
	}
	return true
}
