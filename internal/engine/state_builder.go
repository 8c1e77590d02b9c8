package engine

import (
	"github.com/TianyuZhao6/Z-Game/internal/domain"
	"github.com/TianyuZhao6/Z-Game/pkg/api"
)

// BuildStateFor собирает полный снимок арены для конкретного
// наблюдателя. Арена маленькая, туман войны не нужен: клиент видит
// все блоки, предметы и сущности уровня.
func BuildStateFor(observer *domain.Entity, activeID domain.EntityID, instance *Instance) *api.ServerResponse {
	state := instance.State

	resp := &api.ServerResponse{
		Type:              "UPDATE",
		Tick:              instance.CurrentTick,
		Level:             instance.ID,
		ActiveEntityID:    activeID.String(),
		MyEntityID:        observer.ID.String(),
		Grid:              &api.GridMeta{Size: state.Size},
		ItemsLeft:         state.ItemsLeft(),
		DestructiblesLeft: state.DestructibleCount(),
		Logs:              instance.Logs,
	}

	resp.Obstacles = make([]api.ObstacleView, 0, len(state.Obstacles))
	for idx, ob := range state.Obstacles {
		pos := state.PositionOf(idx)
		view := api.ObstacleView{
			X:    pos.X,
			Y:    pos.Y,
			Kind: ob.Kind.String(),
		}
		if ob.Kind.Destructible() {
			view.HP = ob.Health
			view.MaxHP = ob.MaxHealth
		}
		resp.Obstacles = append(resp.Obstacles, view)
	}

	resp.Items = make([]api.ItemView, 0, len(state.Items))
	for _, item := range state.Items {
		resp.Items = append(resp.Items, api.ItemView{
			ID:     item.ID,
			X:      item.Pos.X,
			Y:      item.Pos.Y,
			IsMain: item.IsMain,
		})
	}

	resp.Entities = make([]api.EntityView, 0, len(instance.Entities))
	for _, e := range instance.Entities {
		view := api.EntityView{
			ID:   e.ID.String(),
			Type: e.Type,
			Name: e.Name,
		}
		view.Pos.X = e.Pos.X
		view.Pos.Y = e.Pos.Y

		if e.Stats != nil {
			view.Stats = &api.StatsView{
				HP:     e.Stats.HP,
				MaxHP:  e.Stats.MaxHP,
				IsDead: e.Stats.IsDead,
			}
			// Атаку показываем только владельцу сущности
			if e.ID == observer.ID {
				view.Stats.Attack = e.Stats.Attack
			}
		}

		resp.Entities = append(resp.Entities, view)
	}

	return resp
}
