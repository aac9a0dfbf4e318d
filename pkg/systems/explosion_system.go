package systems

import (
	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/ecs"
)

// ExplosionSystem 爆炸动画推进
// 每 2 帧推进一格，播完后销毁实体
type ExplosionSystem struct {
	em *ecs.EntityManager
}

// NewExplosionSystem 创建爆炸动画系统
func NewExplosionSystem(em *ecs.EntityManager) *ExplosionSystem {
	return &ExplosionSystem{em: em}
}

// Update 推进所有爆炸动画
func (s *ExplosionSystem) Update() {
	for _, entityID := range s.em.GetEntitiesWith(explosionType) {
		ec, _ := s.em.GetComponent(entityID, explosionType)
		explosion := ec.(*components.ExplosionComponent)

		explosion.Counter++
		if explosion.Counter%2 == 0 {
			explosion.Frame++
		}

		if explosion.Frame >= components.ExplosionFrameCount {
			s.em.DestroyEntity(entityID)
		}
	}
}
