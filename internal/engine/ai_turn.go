package engine

import (
	"encoding/json"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/internal/systems"
	"github.com/TianyuZhao6/Z-Game/pkg/api"
)

// processZombieTurn выполняет ход NPC: выбирает ближайшего живого
// игрока и превращает решение AI-системы во внутреннюю команду.
func (i *Instance) processZombieTurn(z *domain.Entity) {
	target := i.nearestPlayer(z.Pos)

	decision := systems.ComputeZombieAction(z, target, i.State, i.Nav)

	var cmd domain.InternalCommand
	cmd.Token = z.ID.String()

	switch decision.Action {
	case domain.ActionAttack:
		if decision.Target != nil {
			cmd.Action = domain.ActionAttack
			cmd.Payload = mustMarshal(api.EntityPayload{TargetID: decision.Target.ID.String()})
		} else {
			// Блок на пути: шаг в его сторону превращается в удар
			dx, dy := z.Pos.DirectionTo(decision.BlockPos)
			cmd.Action = domain.ActionMove
			cmd.Payload = mustMarshal(api.DirectionPayload{Dx: dx, Dy: dy})
		}

	case domain.ActionMove:
		cmd.Action = domain.ActionMove
		cmd.Payload = mustMarshal(api.DirectionPayload{Dx: decision.DX, Dy: decision.DY})

	default:
		cmd.Action = domain.ActionWait
	}

	i.executeCommand(cmd, z)
}

// nearestPlayer возвращает ближайшего живого игрока или nil.
func (i *Instance) nearestPlayer(from domain.Position) *domain.Entity {
	var best *domain.Entity
	bestDist := 0

	for _, e := range i.Entities {
		if e.Type != domain.EntityPlayer || !e.IsAlive() {
			continue
		}
		d := from.ManhattanTo(e.Pos)
		if best == nil || d < bestDist {
			best = e
			bestDist = d
		}
	}
	return best
}

func mustMarshal(v interface{}) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}
