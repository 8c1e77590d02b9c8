package actions

import (
	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/internal/engine/handlers"
	"github.com/TianyuZhao6/Z-Game/internal/systems"
	"github.com/TianyuZhao6/Z-Game/pkg/api"
)

// HandleAttack - удар в ближнем бою. Так дерутся зомби; игрок обычно
// стреляет (FIRE), но добить вплотную тоже может.
func HandleAttack(ctx handlers.Context, p api.EntityPayload) (handlers.Result, error) {
	check := systems.ValidateInteraction(
		ctx.Actor, domain.EntityID(p.TargetID),
		1, false,
		ctx.Finder, ctx.State,
	)
	if !check.Valid {
		return handlers.Result{Msg: check.Message, MsgType: "ERROR"}, nil
	}

	logMsg := systems.ApplyAttack(ctx.Actor, check.Target)

	if ctx.Actor.AI != nil {
		ctx.Actor.AI.Wait(domain.CostAttack)
	}

	return handlers.Result{Msg: logMsg, MsgType: "COMBAT"}, nil
}
