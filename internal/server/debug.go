package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/TianyuZhao6/Z-Game/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/levels", h.handleListLevels)
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
	mux.HandleFunc("/debug/queue", h.handleTurnQueue)
}

// /debug/levels - список запущенных уровней
func (h *DebugHandler) handleListLevels(w http.ResponseWriter, r *http.Request) {
	type LevelSummary struct {
		LevelID     int   `json:"level_id"`
		Size        int   `json:"size"`
		Seed        int64 `json:"seed"`
		Tick        int   `json:"tick"`
		EntityCount int   `json:"entity_count"`
		ItemsLeft   int   `json:"items_left"`
		Obstacles   int   `json:"obstacles"`
	}

	var summary []LevelSummary

	for id, instance := range h.Service.InstancesSnapshot() {
		summary = append(summary, LevelSummary{
			LevelID:     id,
			Size:        instance.State.Size,
			Seed:        instance.Seed,
			Tick:        instance.CurrentTick,
			EntityCount: len(instance.Entities),
			ItemsLeft:   instance.State.ItemsLeft(),
			Obstacles:   len(instance.State.Obstacles),
		})
	}

	writeJSON(w, summary)
}

// /debug/entities?level=1 - дамп всех сущностей на уровне (включая скрытый AI стейт)
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	levelStr := r.URL.Query().Get("level")
	var levelID int
	fmt.Sscanf(levelStr, "%d", &levelID)

	instance := h.Service.Instance(levelID)
	if instance == nil {
		http.Error(w, "Instance not found or not active", http.StatusNotFound)
		return
	}

	writeJSON(w, instance.Entities)
}

// /debug/queue?level=1 - просмотр очереди ходов
func (h *DebugHandler) handleTurnQueue(w http.ResponseWriter, r *http.Request) {
	levelStr := r.URL.Query().Get("level")
	var levelID int
	fmt.Sscanf(levelStr, "%d", &levelID)

	instance := h.Service.Instance(levelID)
	if instance == nil {
		http.Error(w, "Instance not found", http.StatusNotFound)
		return
	}

	// TurnQueue - это куча: порядок в дампе не совпадает с порядком
	// извлечения, но для дебага сойдет.
	dump := instance.TurnManager.DebugDump()
	writeJSON(w, dump)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Пустой список отдаем как [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
