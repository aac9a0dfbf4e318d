package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/ecs"
	"github.com/decker502/galaga/pkg/entities"
	"github.com/decker502/galaga/pkg/game"
)

// Overlaps 检查两个中心对齐的AABB碰撞盒是否重叠
//
// 参数:
//   - pos1, col1: 第一个实体的位置与碰撞组件
//   - pos2, col2: 第二个实体的位置与碰撞组件
//
// 返回:
//   - bool: 如果两个碰撞盒重叠返回 true
func Overlaps(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	left1 := pos1.X - col1.Width/2
	right1 := pos1.X + col1.Width/2
	top1 := pos1.Y - col1.Height/2
	bottom1 := pos1.Y + col1.Height/2

	left2 := pos2.X - col2.Width/2
	right2 := pos2.X + col2.Width/2
	top2 := pos2.Y - col2.Height/2
	bottom2 := pos2.Y + col2.Height/2

	// 任一轴上没有重叠即没有碰撞
	return right1 >= left2 &&
		left1 <= right2 &&
		bottom1 >= top2 &&
		top1 <= bottom2
}

// CollisionSystem 碰撞结算系统
//
// 每帧在所有移动更新完成后执行一次，按固定的优先级顺序结算：
//  1. 玩家子弹 × 敌机（子弹消耗、敌机扣血、击毁计分与救援）
//  2. 敌机子弹 × 玩家（仅自由状态；一帧内至多一次 Hit）
//  3. 敌机机体 × 玩家（仅自由状态；捕获判定或同归于尽）
//
// 此顺序决定了同帧重叠时"谁先生效"，不得重排。
// 三条规则读取的都是本帧移动阶段产出的位置快照，结算中途不重新演算
type CollisionSystem struct {
	em           *ecs.EntityManager
	cfg          *config.GameplayConfig
	rng          *rand.Rand
	events       *game.EventQueue
	gameState    *game.GameState
	playerSystem *PlayerSystem

	// 本帧内已被摧毁（等待延迟清理）的敌机，后续规则不再与其结算
	destroyedThisFrame map[ecs.EntityID]bool
}

// NewCollisionSystem 创建碰撞结算系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - rng: 随机源（捕获判定）
//   - events: 事件队列
//   - gameState: 会话状态（计分）
//   - playerSystem: 玩家系统（Hit/GetCaptured/Rescue/ArmRespawn 入口）
func NewCollisionSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, rng *rand.Rand,
	events *game.EventQueue, gameState *game.GameState, playerSystem *PlayerSystem) *CollisionSystem {
	return &CollisionSystem{
		em:           em,
		cfg:          cfg,
		rng:          rng,
		events:       events,
		gameState:    gameState,
		playerSystem: playerSystem,
	}
}

// Update 按固定优先级结算本帧所有碰撞
func (s *CollisionSystem) Update() {
	s.destroyedThisFrame = make(map[ecs.EntityID]bool)
	s.resolvePlayerBullets()
	s.resolveEnemyBullets()
	s.resolveBodyCollisions()
}

// resolvePlayerBullets 规则1：玩家子弹 × 敌机
//
// 基于本帧位置快照一次性收集所有 (子弹, 敌机) 重叠对：
// 每发参与重叠的子弹整发消耗（不论同时重叠几架敌机），
// 每架被重叠的敌机按重叠子弹数扣血；随后对血量归零的敌机
// 统一结算击毁（若携带被捕获玩家则先救援，再计分、生成爆炸、移除）
func (s *CollisionSystem) resolvePlayerBullets() {
	bulletIDs := s.em.GetEntitiesWith(bulletType, positionType, collisionType)
	enemyIDs := s.em.GetEntitiesWith(enemyType, positionType, collisionType)
	if len(bulletIDs) == 0 || len(enemyIDs) == 0 {
		return
	}

	damaged := make(map[ecs.EntityID]int) // 敌机 -> 本帧命中次数

	for _, bid := range bulletIDs {
		bc, _ := s.em.GetComponent(bid, bulletType)
		if bc.(*components.BulletComponent).Side != components.BulletSidePlayer {
			continue
		}
		bpos, _ := s.em.GetComponent(bid, positionType)
		bcol, _ := s.em.GetComponent(bid, collisionType)

		hitAny := false
		for _, eid := range enemyIDs {
			epos, _ := s.em.GetComponent(eid, positionType)
			ecol, _ := s.em.GetComponent(eid, collisionType)
			if Overlaps(bpos.(*components.PositionComponent), bcol.(*components.CollisionComponent),
				epos.(*components.PositionComponent), ecol.(*components.CollisionComponent)) {
				hitAny = true
				damaged[eid]++
			}
		}

		if hitAny {
			s.em.DestroyEntity(bid)
		}
	}

	// 统一结算伤害与击毁
	for _, eid := range enemyIDs {
		hits := damaged[eid]
		if hits == 0 {
			continue
		}
		ec, _ := s.em.GetComponent(eid, enemyType)
		e := ec.(*components.EnemyComponent)
		e.Health -= hits
		if e.Health <= 0 {
			s.destroyEnemy(eid, e, e.Points)
		}
	}
}

// resolveEnemyBullets 规则2：敌机子弹 × 玩家
// 仅当玩家处于自由状态时结算；所有重叠子弹消耗，
// 但一帧内至多调用一次 Hit
func (s *CollisionSystem) resolveEnemyBullets() {
	p, ppos, pcol, ok := s.playerSystem.Player()
	if !ok || !p.IsFree() {
		return
	}

	hit := false
	bulletIDs := s.em.GetEntitiesWith(bulletType, positionType, collisionType)
	for _, bid := range bulletIDs {
		bc, _ := s.em.GetComponent(bid, bulletType)
		if bc.(*components.BulletComponent).Side != components.BulletSideEnemy {
			continue
		}
		bpos, _ := s.em.GetComponent(bid, positionType)
		bcol, _ := s.em.GetComponent(bid, collisionType)
		if Overlaps(bpos.(*components.PositionComponent), bcol.(*components.CollisionComponent), ppos, pcol) {
			s.em.DestroyEntity(bid)
			hit = true
		}
	}

	if hit {
		s.playerSystem.Hit()
	}
}

// resolveBodyCollisions 规则3：敌机机体 × 玩家
//
// 仅当玩家处于自由状态时进入结算。对每架重叠的敌机：
// 首领机（未携带玩家、玩家未满合体）以固定概率触发捕获，
// 并由会话安排替换战机；其余情况为同归于尽——玩家吃一次 Hit，
// 敌机无视血量直接摧毁（机体碰撞对敌机总是致命的，这是刻意保留的语义）
func (s *CollisionSystem) resolveBodyCollisions() {
	p, ppos, pcol, ok := s.playerSystem.Player()
	if !ok || !p.IsFree() {
		return
	}

	enemyIDs := s.em.GetEntitiesWith(enemyType, positionType, collisionType)
	for _, eid := range enemyIDs {
		if s.destroyedThisFrame[eid] {
			continue
		}
		epos, _ := s.em.GetComponent(eid, positionType)
		ecol, _ := s.em.GetComponent(eid, collisionType)
		if !Overlaps(epos.(*components.PositionComponent), ecol.(*components.CollisionComponent), ppos, pcol) {
			continue
		}

		ec, _ := s.em.GetComponent(eid, enemyType)
		e := ec.(*components.EnemyComponent)

		// 捕获与同归于尽由同一次随机判定二选一
		if e.CanCapture && !e.HasCapturedPlayer &&
			p.CombinedShips < p.MaxCombinedShips &&
			s.rng.Float64() < s.cfg.CaptureChance {
			// GetCaptured 可能因前置条件拒绝（如本帧内已被捕获）；
			// 只有真正捕获成功才建立携带链接
			if s.playerSystem.GetCaptured(eid) {
				e.HasCapturedPlayer = true
				if p.Lives > 0 {
					s.playerSystem.ArmRespawn()
				}
				log.Printf("[CollisionSystem] enemy %d captured player on body collision", eid)
			}
			continue
		}

		// 同归于尽：机体碰撞绕过血量模型，敌机直接摧毁、不计分
		s.playerSystem.Hit()
		s.destroyEnemy(eid, e, 0)
	}
}

// destroyEnemy 击毁一架敌机的统一出口
// 携带被捕获玩家的敌机先触发救援；points 为本次击毁的计分
// （子弹击毁计敌机分值，机体相撞不计分）
func (s *CollisionSystem) destroyEnemy(eid ecs.EntityID, e *components.EnemyComponent, points int) {
	epos, _ := s.em.GetComponent(eid, positionType)
	ecol, _ := s.em.GetComponent(eid, collisionType)
	pos := epos.(*components.PositionComponent)
	col := ecol.(*components.CollisionComponent)

	s.destroyedThisFrame[eid] = true

	if e.HasCapturedPlayer {
		s.playerSystem.Rescue()
		e.HasCapturedPlayer = false
	}

	if points > 0 {
		s.gameState.AddScore(points)
	}

	if _, err := entities.CreateExplosion(s.em, pos.X, pos.Y, col.Width); err != nil {
		log.Printf("[CollisionSystem] failed to create explosion: %v", err)
	}
	s.events.Emit(game.Event{Type: game.EventEnemyDestroyed, X: pos.X, Y: pos.Y, Value: points})
	s.em.DestroyEntity(eid)
}
