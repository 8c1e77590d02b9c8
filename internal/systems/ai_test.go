package systems

import (
	"testing"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/pkg/grid"
)

func TestComputeZombieAction_AttacksAdjacentPlayer(t *testing.T) {
	s := domain.NewLevelState(10)
	nav := grid.NewNavigator(s)
	p := domain.NewPlayer("p1", domain.Position{X: 5, Y: 5})
	z := domain.NewZombie("z1", domain.Position{X: 5, Y: 6})

	d := ComputeZombieAction(z, p, s, nav)
	if d.Action != domain.ActionAttack || d.Target != p {
		t.Errorf("adjacent zombie must attack the player: %+v", d)
	}
}

func TestComputeZombieAction_ChasesAlongPath(t *testing.T) {
	s := domain.NewLevelState(10)
	nav := grid.NewNavigator(s)
	p := domain.NewPlayer("p1", domain.Position{X: 8, Y: 5})
	z := domain.NewZombie("z1", domain.Position{X: 2, Y: 5})

	d := ComputeZombieAction(z, p, s, nav)
	if d.Action != domain.ActionMove || d.DX != 1 || d.DY != 0 {
		t.Errorf("zombie should step towards the player: %+v", d)
	}
	if len(z.AI.Path) == 0 {
		t.Error("path should be cached after the query")
	}

	// Повторный запрос без изменений топологии идет из кэша
	version := z.AI.PathVersion
	d = ComputeZombieAction(z, p, s, nav)
	if d.Action != domain.ActionMove || z.AI.PathVersion != version {
		t.Error("cached path should be reused while topology is unchanged")
	}
}

func TestComputeZombieAction_BreaksBlockOnPath(t *testing.T) {
	s := domain.NewLevelState(7)
	// Сплошная стена с единственным разрушаемым блоком на прямой
	for y := 0; y < 7; y++ {
		kind := domain.KindIndestructible
		if y == 3 {
			kind = domain.KindDestructible
		}
		s.PlaceObstacle(domain.Position{X: 3, Y: y}, kind)
	}
	nav := grid.NewNavigator(s)
	p := domain.NewPlayer("p1", domain.Position{X: 6, Y: 3})
	z := domain.NewZombie("z1", domain.Position{X: 2, Y: 3})

	d := ComputeZombieAction(z, p, s, nav)
	if d.Action != domain.ActionAttack || d.Target != nil {
		t.Fatalf("zombie should gnaw the block: %+v", d)
	}
	if d.BlockPos != (domain.Position{X: 3, Y: 3}) {
		t.Errorf("BlockPos = %v", d.BlockPos)
	}
}

func TestComputeZombieAction_RepathsAfterTopologyChange(t *testing.T) {
	s := domain.NewLevelState(10)
	nav := grid.NewNavigator(s)
	p := domain.NewPlayer("p1", domain.Position{X: 8, Y: 5})
	z := domain.NewZombie("z1", domain.Position{X: 2, Y: 5})

	ComputeZombieAction(z, p, s, nav)
	oldVersion := z.AI.PathVersion

	// Блок на прямой обесценивает кэш
	s.PlaceObstacle(domain.Position{X: 5, Y: 5}, domain.KindIndestructible)
	d := ComputeZombieAction(z, p, s, nav)
	if z.AI.PathVersion == oldVersion {
		t.Error("path must be recomputed after topology change")
	}
	if d.Action != domain.ActionMove {
		t.Errorf("zombie should still find a detour: %+v", d)
	}
}

func TestComputeZombieAction_WaitsWhenFarOrInvalid(t *testing.T) {
	s := domain.NewLevelState(40)
	nav := grid.NewNavigator(s)
	p := domain.NewPlayer("p1", domain.Position{X: 39, Y: 39})
	z := domain.NewZombie("z1", domain.Position{X: 0, Y: 0})

	// Далеко за пределами агро-радиуса
	if d := ComputeZombieAction(z, p, s, nav); d.Action != domain.ActionWait {
		t.Errorf("far zombie should idle: %+v", d)
	}

	z.Stats.TakeDamage(1000)
	z.Pos = domain.Position{X: 38, Y: 39}
	if d := ComputeZombieAction(z, p, s, nav); d.Action != domain.ActionWait {
		t.Errorf("dead zombie must not act: %+v", d)
	}
}
