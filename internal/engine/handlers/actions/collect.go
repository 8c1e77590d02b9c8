package actions

import (
	"encoding/json"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/internal/engine/handlers"
	"github.com/TianyuZhao6/Z-Game/pkg/api"
)

func levelCompleteEvent() json.RawMessage {
	return json.RawMessage(`{"event":"LEVEL_COMPLETE"}`)
}

// HandleCollect - явный подбор предмета со своей или соседней клетки.
// Нужен для главного предмета: после слома блока игрок стоит рядом и
// может забрать его, не наступая на клетку.
func HandleCollect(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	if ctx.Actor.AI == nil {
		return handlers.EmptyResult(), nil
	}

	target := domain.Position{X: p.X, Y: p.Y}
	if ctx.Actor.Pos.ManhattanTo(target) > 1 {
		return handlers.Result{Msg: "Слишком далеко.", MsgType: "ERROR"}, nil
	}

	it, ok := ctx.State.CollectItemAt(target)
	if !ok {
		if gated := ctx.State.ItemAt(target); gated != nil {
			return handlers.Result{Msg: "Предмет заперт под блоком.", MsgType: "ERROR"}, nil
		}
		return handlers.Result{Msg: "Здесь нечего подбирать.", MsgType: "ERROR"}, nil
	}

	ctx.Actor.AI.Wait(domain.CostWait)
	return collectedResult(ctx, it)
}
