package engine

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/internal/engine/handlers"
	"github.com/TianyuZhao6/Z-Game/internal/engine/handlers/actions"
	"github.com/TianyuZhao6/Z-Game/internal/infrastructure/storage"
	"github.com/TianyuZhao6/Z-Game/internal/network"
	"github.com/TianyuZhao6/Z-Game/pkg/api"
	"github.com/TianyuZhao6/Z-Game/pkg/logger"
)

var serviceLogger = logger.Component("service")

// GameService - дирижер. Управляет жизненным циклом уровней и
// маршрутизирует команды игроков в нужный инстанс.
type GameService struct {
	Config Config

	Hub     *network.Broadcaster
	Replays *storage.ReplayService

	mu        sync.RWMutex
	instances map[int]*Instance                 // Уровни по номеру
	sessions  map[domain.EntityID]*Instance     // Где сейчас находится игрок

	actionHandlers map[domain.ActionType]handlers.HandlerFunc
}

func NewService(cfg Config, replays *storage.ReplayService) *GameService {
	s := &GameService{
		Config:         cfg,
		Hub:            network.NewBroadcaster(),
		Replays:        replays,
		instances:      make(map[int]*Instance),
		sessions:       make(map[domain.EntityID]*Instance),
		actionHandlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}

	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.actionHandlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.actionHandlers[domain.ActionFire] = handlers.WithPayload(actions.HandleFire)
	s.actionHandlers[domain.ActionAttack] = handlers.WithPayload(actions.HandleAttack)
	s.actionHandlers[domain.ActionCollect] = handlers.WithPayload(actions.HandleCollect)
	s.actionHandlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.actionHandlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
}

// getOrCreateInstance возвращает запущенный уровень, при
// необходимости генерируя его.
func (s *GameService) getOrCreateInstance(levelNum int) (*Instance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inst, ok := s.instances[levelNum]; ok {
		return inst, nil
	}

	state, zombies, seed, err := buildLevel(s.Config, levelNum)
	if err != nil {
		return nil, fmt.Errorf("build level %d: %w", levelNum, err)
	}

	inst := NewInstance(levelNum, state, s, seed)
	for _, z := range zombies {
		inst.addEntity(z)
	}

	s.instances[levelNum] = inst
	go inst.Run()

	serviceLogger.WithFields(logrus.Fields{
		"level":   levelNum,
		"zombies": len(zombies),
		"seed":    seed,
	}).Info("Instance created")

	return inst, nil
}

// JoinPlayer создает игрока и помещает его на стартовый уровень.
// Возвращает ID сущности - он же токен для команд.
func (s *GameService) JoinPlayer(name, controllerID string) (domain.EntityID, error) {
	inst, err := s.getOrCreateInstance(s.Config.StartLevel)
	if err != nil {
		return "", err
	}

	player := SpawnPlayer(name, controllerID, inst.State, inst.ID)

	s.mu.Lock()
	s.sessions[player.ID] = inst
	s.mu.Unlock()

	inst.JoinChan <- player

	serviceLogger.WithFields(logrus.Fields{
		"player": player.ID,
		"name":   name,
		"level":  inst.ID,
	}).Info("Player joined")

	return player.ID, nil
}

// LeavePlayer убирает игрока с его текущего уровня.
func (s *GameService) LeavePlayer(id domain.EntityID) {
	s.mu.Lock()
	inst, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		inst.LeaveChan <- id
		serviceLogger.WithField("player", id).Info("Player left")
	}
}

// ProcessCommand принимает команду от внешнего мира (WebSocket) и
// маршрутизирует ее в инстанс, где находится игрок.
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		serviceLogger.WithField("action", externalCmd.Action).Warn("Unknown action")
		return
	}

	s.mu.RLock()
	inst, ok := s.sessions[domain.EntityID(externalCmd.Token)]
	s.mu.RUnlock()

	if !ok {
		serviceLogger.WithField("token", externalCmd.Token).Warn("Command from unknown session")
		return
	}

	inst.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}
}

// Instance возвращает запущенный уровень по номеру или nil.
func (s *GameService) Instance(levelNum int) *Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.instances[levelNum]
}

// InstancesSnapshot возвращает копию карты запущенных уровней.
func (s *GameService) InstancesSnapshot() map[int]*Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[int]*Instance, len(s.instances))
	for id, inst := range s.instances {
		snapshot[id] = inst
	}
	return snapshot
}

// InstanceOf возвращает инстанс, в котором сейчас находится сущность.
func (s *GameService) InstanceOf(id domain.EntityID) *Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// publishUpdate рассылает персональные снимки всем подключенным
// сущностям этого уровня.
func (s *GameService) publishUpdate(activeID domain.EntityID, inst *Instance) {
	for _, e := range inst.Entities {
		if s.Hub.HasSubscriber(e.ID) {
			state := BuildStateFor(e, activeID, inst)
			s.Hub.SendTo(e.ID, *state)
		}
	}
}
