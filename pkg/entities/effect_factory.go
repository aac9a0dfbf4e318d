package entities

import (
	"fmt"
	"math/rand"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/ecs"
)

// CreateExplosion 创建一个爆炸特效实体
// size 为被摧毁实体的尺寸，决定爆炸的最大半径；
// 动画由 ExplosionSystem 逐帧推进，播完自毁
func CreateExplosion(em *ecs.EntityManager, x, y, size float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.ExplosionComponent{
		MaxRadius: size * 1.5,
	})

	return entityID, nil
}

// 星空各层的数量配置
const (
	starCountFar  = 50 // 远景：小而慢
	starCountMid  = 30 // 中景
	starCountNear = 20 // 近景：大而快
)

// CreateStarfield 创建整片滚动星空背景
// 三层星星以不同的尺寸、速度和亮度体现景深
func CreateStarfield(em *ecs.EntityManager, cfg *config.GameplayConfig, rng *rand.Rand) error {
	if em == nil {
		return fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return fmt.Errorf("gameplay config cannot be nil")
	}
	if rng == nil {
		return fmt.Errorf("random source cannot be nil")
	}

	layers := []struct {
		count int
		size  float64
		minV  float64
		maxV  float64
		shade uint8
	}{
		{starCountFar, 1, 0.2, 0.5, 150},
		{starCountMid, 2, 0.5, 1.0, 200},
		{starCountNear, 3, 1.0, 2.0, 255},
	}

	for _, layer := range layers {
		for i := 0; i < layer.count; i++ {
			entityID := em.CreateEntity()
			em.AddComponent(entityID, &components.PositionComponent{
				X: rng.Float64() * float64(cfg.WindowWidth),
				Y: rng.Float64() * float64(cfg.WindowHeight),
			})
			em.AddComponent(entityID, &components.StarComponent{
				Size:  layer.size,
				Speed: layer.minV + rng.Float64()*(layer.maxV-layer.minV),
				Shade: layer.shade,
			})
		}
	}

	return nil
}
