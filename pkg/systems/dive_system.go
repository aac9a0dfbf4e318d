package systems

import (
	"math/rand"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/ecs"
	"github.com/decker502/galaga/pkg/game"
)

// DiveSystem 俯冲调度器
// 按固定间隔从编队中随机挑选敌机发起俯冲，目标点锚定玩家当前位置附近
type DiveSystem struct {
	em          *ecs.EntityManager
	cfg         *config.GameplayConfig
	clock       *game.Clock
	rng         *rand.Rand
	enemySystem *EnemySystem

	lastDiveAt int64
}

// NewDiveSystem 创建俯冲调度器
func NewDiveSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, clock *game.Clock,
	rng *rand.Rand, enemySystem *EnemySystem) *DiveSystem {
	return &DiveSystem{
		em:          em,
		cfg:         cfg,
		clock:       clock,
		rng:         rng,
		enemySystem: enemySystem,
		lastDiveAt:  clock.NowMillis(),
	}
}

// Update 俯冲调度
// 间隔未到或场上无敌机时不做任何事；间隔计时在成功调度后才重置，
// 避免空场期间的调度窗口被白白消耗
func (s *DiveSystem) Update() {
	now := s.clock.NowMillis()
	if now-s.lastDiveAt < s.cfg.DiveInterval {
		return
	}

	enemies := s.em.GetEntitiesWith(enemyType)
	if len(enemies) == 0 {
		return
	}

	player, playerPos, _, ok := s.enemySystem.playerSystem.Player()
	if !ok {
		return
	}
	// 玩家被捕获期间不调度新俯冲，等待重生或救援
	if player.IsCaptured {
		return
	}

	s.lastDiveAt = now

	// 每次调度 1~2 架，且不超过场上敌机总数
	count := 1 + s.rng.Intn(2)
	if count > len(enemies) {
		count = len(enemies)
	}

	dived := 0
	for _, idx := range s.rng.Perm(len(enemies)) {
		if dived >= count {
			break
		}

		entityID := enemies[idx]
		ec, _ := s.em.GetComponent(entityID, enemyType)
		enemy := ec.(*components.EnemyComponent)
		// 已在俯冲或正押送捕获玩家的敌机不参与
		if enemy.State == components.EnemyStateDiving || enemy.HasCapturedPlayer {
			continue
		}

		targetX := playerPos.X + (s.rng.Float64()*2-1)*s.cfg.DiveTargetSpreadX
		targetY := float64(s.cfg.WindowHeight) + 50 // 冲出屏幕底部再回收

		s.enemySystem.StartDive(entityID, targetX, targetY)
		dived++
	}
}
