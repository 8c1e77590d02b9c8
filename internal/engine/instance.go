package engine

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/internal/engine/handlers"
	"github.com/TianyuZhao6/Z-Game/pkg/api"
	"github.com/TianyuZhao6/Z-Game/pkg/grid"
	"github.com/TianyuZhao6/Z-Game/pkg/logger"
)

// Instance представляет собой один изолированный запущенный уровень.
type Instance struct {
	ID    int                // Номер уровня
	State *domain.LevelState // Арена: блоки, предметы, спавны
	Nav   *grid.Navigator    // Навигация поверх арены

	// Локальные данные симуляции
	Entities    []*domain.Entity
	registry    map[domain.EntityID]*domain.Entity
	TurnManager *TurnManager

	// Каналы коммуникации
	CommandChan chan domain.InternalCommand // Команды от игроков
	JoinChan    chan *domain.Entity         // Вход новых игроков
	LeaveChan   chan domain.EntityID        // Выход/смерть игроков

	// Ссылка на Service для доступа к Hub и глобальным настройкам
	Service *GameService

	CurrentTick int // Локальное время этого уровня

	Logs []api.LogEntry // Локальные логи уровня

	Seed   int64                 // Сид, с которого начался уровень
	Replay *domain.ReplaySession // Лента действий

	// Playback - уровень проигрывает запись: команды приходят из
	// файла, а не от клиентов, и переходы дальше не создаются.
	Playback bool
}

func NewInstance(id int, state *domain.LevelState, service *GameService, seed int64) *Instance {
	return &Instance{
		ID:          id,
		State:       state,
		Nav:         grid.NewNavigator(state),
		Entities:    make([]*domain.Entity, 0),
		registry:    make(map[domain.EntityID]*domain.Entity),
		TurnManager: NewTurnManager(),
		CommandChan: make(chan domain.InternalCommand, 100),
		JoinChan:    make(chan *domain.Entity, 10),
		LeaveChan:   make(chan domain.EntityID, 10),
		Service:     service,
		Logs:        []api.LogEntry{},
		Seed:        seed,
		Replay: &domain.ReplaySession{
			LevelID:   id,
			Seed:      seed,
			Timestamp: time.Now().Unix(),
			Actions:   make([]domain.ReplayAction, 0),
		},
	}
}

// GetEntity реализует handlers.EntityFinder в рамках этого уровня.
func (i *Instance) GetEntity(id domain.EntityID) *domain.Entity {
	return i.registry[id]
}

// Run запускает игровой цикл ЭТОГО инстанса.
func (i *Instance) Run() {
	logger.Log.WithFields(logrus.Fields{
		"instance": i.ID,
		"seed":     i.Seed,
	}).Info("Instance loop started")

	for {
		// 1. Обработка входа/выхода (неблокирующая)
		select {
		case newEntity := <-i.JoinChan:
			i.addEntity(newEntity)
		case leftID := <-i.LeaveChan:
			i.removeEntity(leftID)
		default:
		}

		// 2. Кто ходит?
		item := i.TurnManager.PeekNext()
		if item == nil {
			time.Sleep(100 * time.Millisecond) // Спим, если уровень пуст
			continue
		}

		activeActor := item.Value
		i.CurrentTick = activeActor.AI.NextActionTick

		// 3. Мертвые больше не ходят
		if activeActor.Stats != nil && activeActor.Stats.IsDead {
			i.TurnManager.RemoveEntity(activeActor.ID)
			if activeActor.Type == domain.EntityPlayer {
				i.AddLog("Игра окончена: "+activeActor.Name+" пал.", "INFO")
				i.Service.publishUpdate(activeActor.ID, i)
			}
			continue
		}

		// 4. Рассылка состояния подписчикам
		i.Service.publishUpdate(activeActor.ID, i)

		// 5. Логика хода
		isHuman := i.Service.Hub.HasSubscriber(activeActor.ID)

		if !isHuman {
			i.processZombieTurn(activeActor)
		} else {
			i.waitForPlayerCommand(activeActor)
		}

		// Обновляем приоритет в очереди
		i.TurnManager.UpdatePriority(activeActor.ID, activeActor.AI.NextActionTick)
	}
}

// waitForPlayerCommand блокирует цикл уровня до команды активного
// игрока или тайм-аута.
func (i *Instance) waitForPlayerCommand(activeActor *domain.Entity) {
	timeout := time.After(i.Service.Config.TurnTimeout)

	for {
		select {
		case newEntity := <-i.JoinChan:
			i.addEntity(newEntity)

		case leftID := <-i.LeaveChan:
			i.removeEntity(leftID)
			if leftID == activeActor.ID {
				activeActor.AI.Wait(domain.CostWait)
				return
			}

		case cmd := <-i.CommandChan:
			// INIT не тратит ход и разрешен вне очереди
			if cmd.Action == domain.ActionInit {
				if src := i.registry[domain.EntityID(cmd.Token)]; src != nil {
					i.executeCommand(cmd, src)
					i.Service.publishUpdate(activeActor.ID, i)
				}
				continue
			}
			// Игровое действие принимаем только от активного игрока
			if cmd.Token == activeActor.ID.String() {
				i.executeCommand(cmd, activeActor)
				return
			}

		case <-timeout:
			logger.Log.WithFields(logrus.Fields{
				"instance": i.ID,
				"actor":    activeActor.ID,
			}).Warn("Turn timed out")
			activeActor.AI.Wait(domain.CostWait)
			return
		}
	}
}

// addEntity добавляет сущность в структуры уровня
func (i *Instance) addEntity(e *domain.Entity) {
	i.Entities = append(i.Entities, e)
	i.registry[e.ID] = e

	if e.Stats != nil && !e.Stats.IsDead {
		// Синхронизация времени: новичок ходит не раньше текущего тика
		if nextItem := i.TurnManager.PeekNext(); nextItem != nil {
			e.AI.NextActionTick = nextItem.Priority
		}
		i.TurnManager.AddEntity(e)
	}
}

// removeEntity удаляет сущность из уровня
func (i *Instance) removeEntity(id domain.EntityID) {
	i.TurnManager.RemoveEntity(id)
	delete(i.registry, id)

	for idx, e := range i.Entities {
		if e.ID == id {
			lastIdx := len(i.Entities) - 1
			i.Entities[idx] = i.Entities[lastIdx]
			i.Entities[lastIdx] = nil
			i.Entities = i.Entities[:lastIdx]
			break
		}
	}
}

// executeCommand выполняет команду в контексте уровня
func (i *Instance) executeCommand(cmd domain.InternalCommand, actor *domain.Entity) {
	// Действия людей пишем в ленту повтора
	if actor.ControllerID != "" {
		i.recordAction(cmd, i.CurrentTick)
	}

	handler, ok := i.Service.actionHandlers[cmd.Action]
	if !ok {
		return
	}

	ctx := handlers.Context{
		Finder:   i,
		State:    i.State,
		Nav:      i.Nav,
		Entities: i.Entities,
		Actor:    actor,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"instance": i.ID,
			"actor":    actor.ID,
			"action":   cmd.Action.String(),
		}).WithError(err).Warn("Command rejected")
		return
	}

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		i.AddLog(result.Msg, msgType)
	}

	if result.Event != nil {
		i.Service.processEvent(actor, i, result.Event)
	}
}

func (i *Instance) recordAction(cmd domain.InternalCommand, tick int) {
	i.Replay.Actions = append(i.Replay.Actions, domain.ReplayAction{
		Tick:    tick,
		Token:   domain.EntityID(cmd.Token),
		Action:  cmd.Action,
		Payload: cmd.Payload,
	})
}
