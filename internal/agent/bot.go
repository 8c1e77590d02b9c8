package agent

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/internal/engine"
	"github.com/TianyuZhao6/Z-Game/pkg/api"
	"github.com/TianyuZhao6/Z-Game/pkg/grid"
	"github.com/TianyuZhao6/Z-Game/pkg/logger"
)

var botLogger = logger.Component("bot")

// Bot - "игрок-компьютер" (Headless Agent). Это пример ВНЕШНЕГО
// клиента: он подключается к движку так же, как живой игрок через
// WebSocket - получает снимки арены и отправляет команды обратно.
// Всю картину мира бот восстанавливает из DTO, никакого доступа к
// внутреннему состоянию уровня у него нет.
//
// Жизненный цикл:
//  1. NewBot -> JoinPlayer + регистрация в хабе, получение Inbox.
//  2. Run -> в отдельной горутине слушает Inbox.
//  3. Когда ActiveEntityID == EntityID, вызывается makeMove.
type Bot struct {
	EntityID domain.EntityID
	Service  *engine.GameService // Прямая ссылка на движок (для простоты в этом проекте)
	Inbox    chan api.ServerResponse
}

func NewBot(name string, service *engine.GameService) (*Bot, error) {
	entityID, err := service.JoinPlayer(name, "bot_"+name)
	if err != nil {
		return nil, err
	}

	botLogger.WithField("entity_id", entityID).Info("Agent created")
	return &Bot{
		EntityID: entityID,
		Service:  service,
		Inbox:    service.Hub.Register(entityID),
	}, nil
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run() {
	defer b.Service.Hub.Unregister(b.EntityID)

	for event := range b.Inbox {
		// Бот реагирует, только когда движок сообщает: "Твой ход".
		if event.ActiveEntityID == b.EntityID.String() {
			b.makeMove(event)
		}
	}
	botLogger.WithField("entity_id", b.EntityID).Info("Agent shut down")
}

// makeMove - мозг бота. Приоритеты простые: отстреливаться от зомби
// на линии огня, подбирать предмет рядом, иначе идти к ближайшему
// предмету по A*.
func (b *Bot) makeMove(state api.ServerResponse) {
	local := b.buildLocalState(state)
	me := b.findSelf(state)

	if me == nil {
		botLogger.WithField("entity_id", b.EntityID).Warn("Self not found in state update")
		b.sendWait()
		return
	}
	if me.Stats != nil && me.Stats.IsDead {
		return // Мертвые не ходят
	}

	myPos := domain.Position{X: me.Pos.X, Y: me.Pos.Y}

	// 1. Зомби на линии огня - стреляем
	if dx, dy, ok := b.zombieInLine(state, local, myPos); ok {
		b.sendFire(dx, dy)
		return
	}

	// 2. Предмет на соседней клетке - подбираем
	for _, it := range state.Items {
		itemPos := domain.Position{X: it.X, Y: it.Y}
		if myPos.ManhattanTo(itemPos) == 1 && local.ObstacleAt(itemPos) == nil {
			b.sendCollect(it.X, it.Y)
			return
		}
	}

	// 3. Идем к ближайшему досягаемому предмету
	if next, ok := b.stepTowardsItem(state, local, myPos); ok {
		dx, dy := myPos.DirectionTo(next)
		b.sendMove(dx, dy)
		return
	}

	b.sendWait()
}

// buildLocalState восстанавливает топологию уровня из DTO.
func (b *Bot) buildLocalState(state api.ServerResponse) *domain.LevelState {
	size := domain.GridSize
	if state.Grid != nil {
		size = state.Grid.Size
	}

	local := domain.NewLevelState(size)
	for _, ov := range state.Obstacles {
		kind := domain.KindIndestructible
		switch ov.Kind {
		case domain.KindDestructible.String():
			kind = domain.KindDestructible
		case domain.KindMainBlock.String():
			kind = domain.KindMainBlock
		}
		local.PlaceObstacle(domain.Position{X: ov.X, Y: ov.Y}, kind)
	}
	return local
}

func (b *Bot) findSelf(state api.ServerResponse) *api.EntityView {
	for i := range state.Entities {
		if state.Entities[i].ID == b.EntityID.String() {
			return &state.Entities[i]
		}
	}
	return nil
}

// zombieInLine ищет живого зомби на одной прямой с ботом без блоков
// между ними.
func (b *Bot) zombieInLine(state api.ServerResponse, local *domain.LevelState, myPos domain.Position) (int, int, bool) {
	for _, ev := range state.Entities {
		if ev.Type != domain.EntityZombie {
			continue
		}
		if ev.Stats != nil && ev.Stats.IsDead {
			continue
		}
		zPos := domain.Position{X: ev.Pos.X, Y: ev.Pos.Y}
		if zPos.X != myPos.X && zPos.Y != myPos.Y {
			continue
		}
		if myPos.ManhattanTo(zPos) > domain.FireRange {
			continue
		}
		if _, blocked := grid.FirstObstacleOnLine(local, myPos, zPos); blocked {
			continue
		}
		dx, dy := myPos.DirectionTo(zPos)
		return dx, dy, true
	}
	return 0, 0, false
}

// stepTowardsItem возвращает следующую клетку маршрута к ближайшему
// досягаемому предмету.
func (b *Bot) stepTowardsItem(state api.ServerResponse, local *domain.LevelState, myPos domain.Position) (domain.Position, bool) {
	costs := grid.BuildCostGrid(local)

	var bestPath []domain.Position
	bestCost := 0.0

	for _, it := range state.Items {
		goal := domain.Position{X: it.X, Y: it.Y}
		target := goal
		if local.ObstacleAt(goal) != nil {
			// Главный предмет заперт под блоком: встаем рядом
			adj, ok := b.adjacentFree(local, goal)
			if !ok {
				continue
			}
			target = adj
		}

		path, cost, ok := costs.FindPath(myPos, target)
		if !ok || len(path) < 2 {
			continue
		}
		if bestPath == nil || cost < bestCost {
			bestPath = path
			bestCost = cost
		}
	}

	if bestPath == nil {
		return domain.Position{}, false
	}

	next := bestPath[1]
	if local.ObstacleAt(next) != nil {
		// Маршрут лежит через блок, а ломать бот не умеет
		return domain.Position{}, false
	}
	return next, true
}

func (b *Bot) adjacentFree(local *domain.LevelState, p domain.Position) (domain.Position, bool) {
	for _, d := range domain.Orthogonal {
		n := domain.Position{X: p.X + d.X, Y: p.Y + d.Y}
		if local.InBounds(n) && local.ObstacleAt(n) == nil {
			return n, true
		}
	}
	return domain.Position{}, false
}

// --- Хелперы для отправки команд на сервер ---

func (b *Bot) sendCommand(action domain.ActionType, payload interface{}) {
	var payloadBytes json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			botLogger.WithError(err).WithFields(logrus.Fields{
				"entity_id": b.EntityID,
				"action":    action.String(),
			}).Error("Failed to marshal payload")
			return
		}
		payloadBytes = data
	}

	b.Service.ProcessCommand(api.ClientCommand{
		Action:  action.String(),
		Payload: payloadBytes,
		Token:   b.EntityID.String(),
	})
}

func (b *Bot) sendMove(dx, dy int) {
	b.sendCommand(domain.ActionMove, api.DirectionPayload{Dx: dx, Dy: dy})
}

func (b *Bot) sendFire(dx, dy int) {
	b.sendCommand(domain.ActionFire, api.DirectionPayload{Dx: dx, Dy: dy})
}

func (b *Bot) sendCollect(x, y int) {
	b.sendCommand(domain.ActionCollect, api.PositionPayload{X: x, Y: y})
}

func (b *Bot) sendWait() {
	b.sendCommand(domain.ActionWait, nil)
}
