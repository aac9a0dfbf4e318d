package entities

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/ecs"
	"github.com/decker502/galaga/pkg/types"
)

// CreateEnemy 创建一架敌机实体
// 分值/血量/速度等固定属性由种类推导；摆动参数与射击计时按架随机化，
// 让同一阵型中的敌机呈现出参差的运动节奏
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - rng: 随机源（可注入，测试中使用固定种子）
//   - kind: 敌机种类
//   - x, y: 初始位置（碰撞盒中心）
//   - nowMillis: 当前时钟毫秒，用于初始化射击与下压计时
//
// 返回:
//   - ecs.EntityID: 敌机实体ID
//   - error: 如果参数非法返回错误
func CreateEnemy(em *ecs.EntityManager, cfg *config.GameplayConfig, rng *rand.Rand,
	kind types.EnemyKind, x, y float64, nowMillis int64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}
	if rng == nil {
		return 0, fmt.Errorf("random source cannot be nil")
	}

	stats := kind.Stats()
	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  stats.Size,
		Height: stats.Size,
	})

	shotDelayRange := cfg.EnemyShotDelayMax - cfg.EnemyShotDelayMin
	em.AddComponent(entityID, &components.EnemyComponent{
		Kind:        kind,
		Points:      stats.Points,
		Health:      stats.Health,
		SpeedFactor: stats.SpeedFactor,
		CanCapture:  stats.CanCapture,

		BaseX:         x,
		DriftSpeed:    cfg.EnemyBaseDrift * stats.SpeedFactor,
		WaveAmplitude: float64(20 + rng.Intn(21)), // 振幅 20 ~ 40 像素
		WaveSpeed:     0.05 + rng.Float64()*0.05,  // 相位速度 0.05 ~ 0.1 弧度/帧
		WaveOffset:    rng.Float64() * 2 * math.Pi,
		Phase:         rng.Float64() * 2 * math.Pi, // 初始相位随机，避免整队同步摆动

		LastMoveDown: nowMillis,

		State: components.EnemyStateFormation,

		// 初次射击时刻随机提前，避免整波敌机开场齐射
		LastShotAt:    nowMillis - rng.Int63n(2000),
		NextShotDelay: cfg.EnemyShotDelayMin + rng.Int63n(shotDelayRange+1),
	})

	return entityID, nil
}
