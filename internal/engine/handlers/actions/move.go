package actions

import (
	"fmt"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/internal/engine/handlers"
	"github.com/TianyuZhao6/Z-Game/internal/systems"
	"github.com/TianyuZhao6/Z-Game/pkg/api"
)

func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	if ctx.Actor.AI == nil {
		return handlers.EmptyResult(), nil
	}

	res := systems.CalculateMove(ctx.Actor, p.Dx, p.Dy, ctx.State, ctx.Entities)

	// Врезались в живую сущность: враги дерутся, свои толкаются
	if res.BlockedBy != nil {
		actorHostile := ctx.Actor.AI.IsHostile
		targetHostile := false
		if res.BlockedBy.AI != nil {
			targetHostile = res.BlockedBy.AI.IsHostile
		}

		if actorHostile != targetHostile {
			logMsg := systems.ApplyAttack(ctx.Actor, res.BlockedBy)
			ctx.Actor.AI.Wait(domain.CostAttack)
			return handlers.Result{Msg: logMsg, MsgType: "COMBAT"}, nil
		}
		ctx.Actor.AI.Wait(domain.CostWait)
		return handlers.EmptyResult(), nil
	}

	// Врезались в блок: зомби его грызет, игрок упирается
	if res.Obstacle != nil {
		if ctx.Actor.AI.IsHostile && res.Obstacle.Kind.Destructible() {
			logMsg, _ := systems.AttackObstacle(ctx.State, ctx.Actor, res.Obstacle.Pos)
			ctx.Actor.AI.Wait(domain.CostAttack)
			return handlers.Result{Msg: logMsg, MsgType: "COMBAT"}, nil
		}
		if ctx.Actor.Type == domain.EntityPlayer {
			return handlers.Result{Msg: "Путь прегражден.", MsgType: "ERROR"}, nil
		}
		ctx.Actor.AI.Wait(domain.CostWait)
		return handlers.EmptyResult(), nil
	}

	if res.OutOfMap {
		if ctx.Actor.Type == domain.EntityPlayer {
			return handlers.Result{Msg: "Край арены.", MsgType: "ERROR"}, nil
		}
		ctx.Actor.AI.Wait(domain.CostWait)
		return handlers.EmptyResult(), nil
	}

	ctx.Actor.Pos = res.NewPos
	systems.AdvancePath(ctx.Actor)
	ctx.Actor.AI.Wait(domain.CostMove)

	// Игрок подбирает предмет, на который наступил. Главный предмет
	// остается лежать, пока его блок не сломан.
	if ctx.Actor.Type == domain.EntityPlayer {
		if it, ok := ctx.State.CollectItemAt(ctx.Actor.Pos); ok {
			return collectedResult(ctx, it)
		}
	}

	return handlers.EmptyResult(), nil
}

func collectedResult(ctx handlers.Context, it *domain.Item) (handlers.Result, error) {
	msg := fmt.Sprintf("%s подбирает предмет (осталось %d).", ctx.Actor.Name, ctx.State.ItemsLeft())
	if it.IsMain {
		msg = fmt.Sprintf("%s забирает главный предмет!", ctx.Actor.Name)
	}
	result := handlers.Result{Msg: msg, MsgType: "INFO"}
	if ctx.State.ItemsLeft() == 0 {
		result.Event = levelCompleteEvent()
	}
	return result, nil
}
