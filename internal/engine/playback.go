package engine

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
)

// RunPlayback детерминированно проигрывает записанную партию.
// Уровень пересобирается из сида файла, зомби ходят своим AI, а ходы
// игрока берутся из ленты. Поскольку генерация и AI зависят только от
// rng уровня, симуляция сходится с оригинальной партией тик в тик.
//
// Работает синхронно и возвращается после исчерпания ленты.
func (s *GameService) RunPlayback(path string) error {
	if s.Replays == nil {
		return fmt.Errorf("playback requires a replay service")
	}

	session, err := s.Replays.Load(path)
	if err != nil {
		return fmt.Errorf("load replay: %w", err)
	}
	if len(session.Actions) == 0 {
		return fmt.Errorf("replay %s has no actions", path)
	}

	state, zombies, _, err := buildLevelSeeded(s.Config.Table, session.LevelID, session.Seed)
	if err != nil {
		return fmt.Errorf("rebuild level %d: %w", session.LevelID, err)
	}

	inst := NewInstance(session.LevelID, state, s, session.Seed)
	inst.Playback = true
	for _, z := range zombies {
		inst.addEntity(z)
	}

	player := s.playbackPlayer(session, state)
	inst.addEntity(player)

	serviceLogger.WithFields(logrus.Fields{
		"level":   session.LevelID,
		"seed":    session.Seed,
		"actions": len(session.Actions),
	}).Info("Playback started")

	tape := session.Actions
	cursor := 0

	for cursor < len(tape) {
		item := inst.TurnManager.PeekNext()
		if item == nil {
			break
		}

		actor := item.Value
		inst.CurrentTick = actor.AI.NextActionTick

		if actor.Stats != nil && actor.Stats.IsDead {
			inst.TurnManager.RemoveEntity(actor.ID)
			if actor.ID == player.ID {
				break // Игрок погиб раньше, чем кончилась лента
			}
			continue
		}

		if actor.ID == player.ID {
			inst.executeCommand(domain.InternalCommand{
				Action:  tape[cursor].Action,
				Token:   tape[cursor].Token.String(),
				Payload: tape[cursor].Payload,
			}, actor)
			cursor++
		} else {
			inst.processZombieTurn(actor)
		}

		inst.TurnManager.UpdatePriority(actor.ID, actor.AI.NextActionTick)
	}

	serviceLogger.WithFields(logrus.Fields{
		"level":      session.LevelID,
		"tick":       inst.CurrentTick,
		"played":     cursor,
		"items_left": state.ItemsLeft(),
		"player_hp":  player.Stats.HP,
	}).Info("Playback finished")

	return nil
}

// playbackPlayer восстанавливает игрока записи: ID из ленты, имя из
// сохраненного состояния, позиция со спавна пересобранного уровня.
func (s *GameService) playbackPlayer(session *domain.ReplaySession, state *domain.LevelState) *domain.Entity {
	id := session.Actions[0].Token
	player := domain.NewPlayer(id, state.PlayerSpawn)
	player.Level = session.LevelID

	if len(session.PlayerState) > 0 {
		var saved struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(session.PlayerState, &saved); err == nil && saved.Name != "" {
			player.Name = saved.Name
		}
	}
	return player
}
