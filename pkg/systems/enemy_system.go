package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/ecs"
	"github.com/decker502/galaga/pkg/entities"
	"github.com/decker502/galaga/pkg/game"
)

// 捕获者携带玩家战机时，玩家位置相对捕获者的垂直偏移（像素）
const capturedPlayerOffsetY = 40

// 俯冲/捕获后敌机回到顶行时的垂直位置与水平边距（像素）
const (
	formationTopY    = 50
	formationMarginX = 50
)

// EnemySystem 敌机控制器
//
// 每帧驱动每架敌机的：外观动画计数、射击计时、
// 俯冲路径推进（含途中捕获判定）或编队摆动与定时下压，
// 以及携带被捕获玩家时的位置接管
type EnemySystem struct {
	em           *ecs.EntityManager
	cfg          *config.GameplayConfig
	clock        *game.Clock
	rng          *rand.Rand
	playerSystem *PlayerSystem
}

// NewEnemySystem 创建敌机系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - clock: 模拟时钟
//   - rng: 随机源（射击判定与回位随机化）
//   - playerSystem: 玩家系统，俯冲捕获与位置接管需要访问玩家状态
func NewEnemySystem(em *ecs.EntityManager, cfg *config.GameplayConfig,
	clock *game.Clock, rng *rand.Rand, playerSystem *PlayerSystem) *EnemySystem {
	return &EnemySystem{
		em:           em,
		cfg:          cfg,
		clock:        clock,
		rng:          rng,
		playerSystem: playerSystem,
	}
}

// Update 每帧更新所有敌机
func (s *EnemySystem) Update() {
	now := s.clock.NowMillis()
	enemyIDs := s.em.GetEntitiesWith(enemyType, positionType, collisionType)

	for _, id := range enemyIDs {
		ec, _ := s.em.GetComponent(id, enemyType)
		pc, _ := s.em.GetComponent(id, positionType)
		cc, _ := s.em.GetComponent(id, collisionType)
		e := ec.(*components.EnemyComponent)
		pos := pc.(*components.PositionComponent)
		col := cc.(*components.CollisionComponent)

		e.AnimCounter++

		s.updateShooting(e, pos, col, now)

		if e.State == components.EnemyStateDiving {
			s.updateDive(id, e, pos, col)
		} else {
			s.updateFormation(e, pos, col, now)
		}

		// 携带被捕获玩家时，玩家位置每帧吸附到捕获者下方
		if e.HasCapturedPlayer {
			if _, ppos, _, ok := s.playerSystem.Player(); ok {
				ppos.X = pos.X
				ppos.Y = pos.Y + capturedPlayerOffsetY
			}
		}
	}
}

// updateShooting 射击计时推进
// 计时到期后以固定概率实际开火，然后重抽下一次判定延迟
// （基于时钟毫秒，与帧率无关）
func (s *EnemySystem) updateShooting(e *components.EnemyComponent,
	pos *components.PositionComponent, col *components.CollisionComponent, now int64) {
	if now-e.LastShotAt <= e.NextShotDelay {
		return
	}

	if s.rng.Float64() < s.cfg.EnemyFireChance {
		bottom := pos.Y + col.Height/2
		if _, err := entities.CreateEnemyBullet(s.em, s.cfg, pos.X, bottom); err != nil {
			log.Printf("[EnemySystem] failed to create enemy bullet: %v", err)
		}
	}

	e.LastShotAt = now
	delayRange := s.cfg.EnemyShotDelayMax - s.cfg.EnemyShotDelayMin
	e.NextShotDelay = s.cfg.EnemyShotDelayMin + s.rng.Int63n(delayRange+1)
}

// updateDive 沿预计算路径推进俯冲
//
// 路径过半后，具备捕获能力且尚未携带玩家的首领机开始尝试捕获：
// 与自由状态且未满合体的玩家重叠即捕获成功，
// 立即放弃剩余路径回到顶行随机位置。
// 路径走完未捕获则回到编队；若路径把敌机带出了场地底部，重新定位到顶行
func (s *EnemySystem) updateDive(id ecs.EntityID, e *components.EnemyComponent,
	pos *components.PositionComponent, col *components.CollisionComponent) {
	if e.DiveIndex < len(e.DivePath) {
		pt := e.DivePath[e.DiveIndex]
		pos.X, pos.Y = pt.X, pt.Y
		e.DiveIndex++

		if e.CanCapture && !e.HasCapturedPlayer && e.DiveIndex > len(e.DivePath)/2 {
			s.tryCaptureDuringDive(id, e, pos, col)
		}
		return
	}

	// 路径走完，回到编队
	s.endDive(e)
	if pos.Y > float64(s.cfg.WindowHeight) {
		s.relocateToTopRow(e, pos)
	}
}

// tryCaptureDuringDive 俯冲途中的捕获判定
func (s *EnemySystem) tryCaptureDuringDive(id ecs.EntityID, e *components.EnemyComponent,
	pos *components.PositionComponent, col *components.CollisionComponent) {
	pp, ppos, pcol, ok := s.playerSystem.Player()
	if !ok || !pp.IsFree() || pp.CombinedShips >= pp.MaxCombinedShips {
		return
	}
	if !Overlaps(pos, col, ppos, pcol) {
		return
	}

	// GetCaptured 可能因前置条件拒绝；只有真正捕获成功才建立携带链接，
	// 保证全场至多一架敌机携带玩家
	if !s.playerSystem.GetCaptured(id) {
		return
	}
	e.HasCapturedPlayer = true

	// 捕获成功立即中止俯冲，带着战利品回到顶行
	s.endDive(e)
	s.relocateToTopRow(e, pos)
	log.Printf("[EnemySystem] enemy %d captured player during dive", id)
}

// updateFormation 编队摆动与定时下压
//
// 水平位置 = 锚点 + 振幅 × sin(相位)；锚点自身缓慢漂移，
// 摆动将要越界时反转漂移方向并夹紧锚点
func (s *EnemySystem) updateFormation(e *components.EnemyComponent,
	pos *components.PositionComponent, col *components.CollisionComponent, now int64) {
	e.Phase += e.WaveSpeed
	pos.X = e.BaseX + e.WaveAmplitude*math.Sin(e.Phase+e.WaveOffset)

	fieldWidth := float64(s.cfg.WindowWidth)
	if pos.X+col.Width/2 > fieldWidth {
		e.BaseX = fieldWidth - col.Width/2 - e.WaveAmplitude
		e.DriftSpeed = -math.Abs(e.DriftSpeed)
	} else if pos.X-col.Width/2 < 0 {
		e.BaseX = col.Width/2 + e.WaveAmplitude
		e.DriftSpeed = math.Abs(e.DriftSpeed)
	}
	e.BaseX += e.DriftSpeed

	// 定时整体下压
	if now-e.LastMoveDown > s.cfg.MoveDownInterval {
		pos.Y += s.cfg.MoveDownStep
		e.LastMoveDown = now
	}
}

// StartDive 让指定敌机开始向 (targetX, targetY) 俯冲
//
// 携带被捕获玩家的敌机忽略此调用。
// 路径为一条二次贝塞尔曲线：控制点在起点附近随机水平偏移、
// 垂直方向取起终点中点再上提，采样为 DiveSteps+1 个路径点（含起终点）
func (s *EnemySystem) StartDive(id ecs.EntityID, targetX, targetY float64) {
	ec, ok := s.em.GetComponent(id, enemyType)
	if !ok {
		return
	}
	pc, ok := s.em.GetComponent(id, positionType)
	if !ok {
		return
	}
	e := ec.(*components.EnemyComponent)
	pos := pc.(*components.PositionComponent)

	if e.HasCapturedPlayer {
		return
	}

	startX, startY := pos.X, pos.Y
	controlX := startX + (s.rng.Float64()*2-1)*s.cfg.DiveControlSpread
	controlY := (startY+targetY)/2 - s.cfg.DiveControlLift

	steps := s.cfg.DiveSteps
	path := make([]components.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		// 二次贝塞尔曲线公式
		x := (1-t)*(1-t)*startX + 2*(1-t)*t*controlX + t*t*targetX
		y := (1-t)*(1-t)*startY + 2*(1-t)*t*controlY + t*t*targetY
		path = append(path, components.Point{X: x, Y: y})
	}

	e.DivePath = path
	e.DiveIndex = 0
	e.State = components.EnemyStateDiving
}

// endDive 结束俯冲，回到编队状态
func (s *EnemySystem) endDive(e *components.EnemyComponent) {
	e.State = components.EnemyStateFormation
	e.DivePath = nil
	e.DiveIndex = 0
}

// relocateToTopRow 将敌机重新定位到顶行的随机水平位置
func (s *EnemySystem) relocateToTopRow(e *components.EnemyComponent, pos *components.PositionComponent) {
	pos.Y = formationTopY
	pos.X = formationMarginX + s.rng.Float64()*float64(s.cfg.WindowWidth-2*formationMarginX)
	e.BaseX = pos.X
}
