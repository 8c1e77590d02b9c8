package actions

import (
	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/internal/engine/handlers"
	"github.com/TianyuZhao6/Z-Game/internal/systems"
	"github.com/TianyuZhao6/Z-Game/pkg/api"
)

// HandleFire - выстрел в направлении (dx, dy). Снаряд останавливается
// на первом, во что попал: зомби или блоке.
func HandleFire(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	if ctx.Actor.AI == nil {
		return handlers.EmptyResult(), nil
	}

	logMsg := systems.ResolveShot(ctx.State, ctx.Actor, p.Dx, p.Dy, ctx.Entities)
	ctx.Actor.AI.Wait(domain.CostAttack)

	return handlers.Result{Msg: logMsg, MsgType: "COMBAT"}, nil
}
