package entities

import (
	"fmt"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/ecs"
)

// 子弹的碰撞盒尺寸（像素）
const (
	BulletWidth  = 6
	BulletHeight = 12
)

// CreatePlayerBullet 创建一发玩家子弹
// 从 (x, y) 出发以固定速度向上飞行
func CreatePlayerBullet(em *ecs.EntityManager, cfg *config.GameplayConfig, x, y float64) (ecs.EntityID, error) {
	return createBullet(em, x, y, -cfg.PlayerBulletSpeed, components.BulletSidePlayer)
}

// CreateEnemyBullet 创建一发敌机子弹
// 从 (x, y) 出发以固定速度向下飞行
func CreateEnemyBullet(em *ecs.EntityManager, cfg *config.GameplayConfig, x, y float64) (ecs.EntityID, error) {
	return createBullet(em, x, y, cfg.EnemyBulletSpeed, components.BulletSideEnemy)
}

// createBullet 创建子弹实体，速度方向由 vy 的符号决定
func createBullet(em *ecs.EntityManager, x, y, vy float64, side components.BulletSide) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.VelocityComponent{VX: 0, VY: vy})
	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  BulletWidth,
		Height: BulletHeight,
	})
	em.AddComponent(entityID, &components.BulletComponent{Side: side})

	return entityID, nil
}
