package entities

import (
	"fmt"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/ecs"
)

// 玩家战机的基础尺寸（单机形态，像素）
const (
	PlayerWidth  = 30
	PlayerHeight = 40
	// PlayerCombinedWidth 双机合体形态的碰撞盒宽度
	PlayerCombinedWidth = 50
)

// CreatePlayer 创建玩家战机实体
// 初始位置为场地水平居中、底部上方 PlayerBottomMargin 处，
// 单机形态、满生命、无任何升级
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 如果参数非法返回错误
func CreatePlayer(em *ecs.EntityManager, cfg *config.GameplayConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: float64(cfg.WindowWidth) / 2,
		Y: float64(cfg.WindowHeight) - cfg.PlayerBottomMargin - PlayerHeight/2,
	})
	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  PlayerWidth,
		Height: PlayerHeight,
	})
	em.AddComponent(entityID, &components.PlayerComponent{
		Lives:            cfg.PlayerLives,
		CombinedShips:    1,
		MaxCombinedShips: 2,
	})

	return entityID, nil
}
