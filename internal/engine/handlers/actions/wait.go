package actions

import (
	"fmt"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/internal/engine/handlers"
)

func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Actor.AI != nil {
		ctx.Actor.AI.Wait(domain.CostWait)
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("%s пропускает ход.", ctx.Actor.Name),
		MsgType: "INFO",
	}, nil
}
