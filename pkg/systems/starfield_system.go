package systems

import (
	"math/rand"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/ecs"
)

// StarfieldSystem 背景星空滚动
// 星星按各自层速下移，滚出底部后回绕到顶部并换一个随机水平位置
type StarfieldSystem struct {
	em  *ecs.EntityManager
	cfg *config.GameplayConfig
	rng *rand.Rand
}

// NewStarfieldSystem 创建星空系统
func NewStarfieldSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, rng *rand.Rand) *StarfieldSystem {
	return &StarfieldSystem{em: em, cfg: cfg, rng: rng}
}

// Update 滚动所有星星
func (s *StarfieldSystem) Update() {
	for _, entityID := range s.em.GetEntitiesWith(starType, positionType) {
		sc, _ := s.em.GetComponent(entityID, starType)
		pc, _ := s.em.GetComponent(entityID, positionType)
		star := sc.(*components.StarComponent)
		pos := pc.(*components.PositionComponent)

		pos.Y += star.Speed
		if pos.Y > float64(s.cfg.WindowHeight) {
			pos.Y = 0
			pos.X = s.rng.Float64() * float64(s.cfg.WindowWidth)
		}
	}
}
