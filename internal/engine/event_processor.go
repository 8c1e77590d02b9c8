package engine

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
)

// processEvent - точка входа для событий, возвращенных хендлерами.
func (s *GameService) processEvent(actor *domain.Entity, inst *Instance, eventData json.RawMessage) {
	var genericEvent struct {
		Event string `json:"event"`
	}
	if err := json.Unmarshal(eventData, &genericEvent); err != nil {
		serviceLogger.WithError(err).Error("Failed to parse event")
		return
	}

	switch genericEvent.Event {
	case "LEVEL_COMPLETE":
		s.handleLevelComplete(actor, inst)
	default:
		serviceLogger.WithField("event", genericEvent.Event).Warn("Unknown event type")
	}
}

// handleLevelComplete сохраняет повтор пройденного уровня и
// переводит игрока на следующий.
func (s *GameService) handleLevelComplete(actor *domain.Entity, inst *Instance) {
	if inst.Playback {
		serviceLogger.WithFields(logrus.Fields{
			"level": inst.ID,
			"tick":  inst.CurrentTick,
		}).Info("Playback: level complete")
		return
	}

	s.saveReplay(actor, inst)

	nextLevel := inst.ID + 1
	next, err := s.getOrCreateInstance(nextLevel)
	if err != nil {
		serviceLogger.WithError(err).WithField("level", nextLevel).Error("Failed to build next level")
		inst.AddLog("Выход завален: дальше пути нет.", "ERROR")
		return
	}

	// Выписываем актора из старого уровня. Очередь ходов инстанса
	// сейчас стоит на этом акторе, так что правим реестр напрямую.
	inst.removeEntity(actor.ID)

	// Прописываем на новом
	actor.Level = nextLevel
	actor.Pos = next.State.PlayerSpawn
	actor.AI.InvalidatePath()
	actor.AI.NextActionTick = 0

	s.mu.Lock()
	s.sessions[actor.ID] = next
	s.mu.Unlock()

	next.JoinChan <- actor

	inst.AddLog(fmt.Sprintf("%s прорывается на уровень %d...", actor.Name, nextLevel), "INFO")
	serviceLogger.WithFields(logrus.Fields{
		"player": actor.ID,
		"from":   inst.ID,
		"to":     nextLevel,
	}).Info("Level complete")
}

// saveReplay фиксирует финальное состояние игрока и пишет ленту
// действий уровня на диск.
func (s *GameService) saveReplay(actor *domain.Entity, inst *Instance) {
	if s.Replays == nil {
		return
	}

	playerState, err := json.Marshal(actor)
	if err == nil {
		inst.Replay.PlayerState = playerState
	}

	path, err := s.Replays.Save(inst.Replay)
	if err != nil {
		serviceLogger.WithError(err).WithField("level", inst.ID).Error("Failed to save replay")
		return
	}

	serviceLogger.WithFields(logrus.Fields{
		"level":   inst.ID,
		"actions": len(inst.Replay.Actions),
		"path":    path,
	}).Info("Replay saved")
}
