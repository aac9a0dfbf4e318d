package systems

import (
	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/ecs"
)

// BulletSystem 子弹移动系统
// 按固定速度推进所有子弹，飞出场地垂直边界的子弹销毁
type BulletSystem struct {
	em  *ecs.EntityManager
	cfg *config.GameplayConfig
}

// NewBulletSystem 创建子弹系统
func NewBulletSystem(em *ecs.EntityManager, cfg *config.GameplayConfig) *BulletSystem {
	return &BulletSystem{em: em, cfg: cfg}
}

// Update 每帧推进所有子弹位置并清理出界子弹
func (s *BulletSystem) Update() {
	bulletIDs := s.em.GetEntitiesWith(bulletType, positionType, velocityType, collisionType)

	for _, id := range bulletIDs {
		pc, _ := s.em.GetComponent(id, positionType)
		vc, _ := s.em.GetComponent(id, velocityType)
		cc, _ := s.em.GetComponent(id, collisionType)
		pos := pc.(*components.PositionComponent)
		vel := vc.(*components.VelocityComponent)
		col := cc.(*components.CollisionComponent)

		pos.X += vel.VX
		pos.Y += vel.VY

		// 完全离开场地上/下边界后销毁
		if pos.Y+col.Height/2 < 0 || pos.Y-col.Height/2 > float64(s.cfg.WindowHeight) {
			s.em.DestroyEntity(id)
		}
	}
}
