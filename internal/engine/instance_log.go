package engine

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/TianyuZhao6/Z-Game/pkg/api"
	"github.com/TianyuZhao6/Z-Game/pkg/logger"
	"github.com/TianyuZhao6/Z-Game/pkg/utils"
)

const maxInstanceLogs = 50

// AddLog добавляет запись в журнал уровня и дублирует ее в общий лог.
func (i *Instance) AddLog(text string, msgType string) {
	i.Logs = append(i.Logs, api.LogEntry{
		ID:        utils.GenerateID(),
		Text:      text,
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
	})

	if len(i.Logs) > maxInstanceLogs {
		i.Logs = i.Logs[len(i.Logs)-maxInstanceLogs:]
	}

	logger.Log.WithFields(logrus.Fields{
		"instance": i.ID,
		"tick":     i.CurrentTick,
		"type":     msgType,
	}).Debug(text)
}
