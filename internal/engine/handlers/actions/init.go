package actions

import "github.com/TianyuZhao6/Z-Game/internal/engine/handlers"

// HandleInit не тратит ход: клиент просто просит свежий снимок арены.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Добро пожаловать в Z-Game.",
		MsgType: "INFO",
	}, nil
}
