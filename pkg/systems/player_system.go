package systems

import (
	"log"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/ecs"
	"github.com/decker502/galaga/pkg/entities"
	"github.com/decker502/galaga/pkg/game"
)

// PlayerSystem 玩家战机状态机
//
// 负责玩家的移动、射击冷却、无敌计时、被捕获/获救转换与捕获后重生。
// Hit / GetCaptured / Rescue 是状态机的三个外部入口，
// 由碰撞结算系统和敌机控制系统调用；
// 所有入口在前置条件不满足时静默忽略（这是刻意的宽容语义，不是缺陷）
type PlayerSystem struct {
	em       *ecs.EntityManager
	cfg      *config.GameplayConfig
	clock    *game.Clock
	events   *game.EventQueue
	playerID ecs.EntityID
}

// NewPlayerSystem 创建玩家系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - clock: 模拟时钟
//   - events: 事件队列
//   - playerID: 玩家实体ID（整局唯一且不会销毁）
func NewPlayerSystem(em *ecs.EntityManager, cfg *config.GameplayConfig,
	clock *game.Clock, events *game.EventQueue, playerID ecs.EntityID) *PlayerSystem {
	return &PlayerSystem{
		em:       em,
		cfg:      cfg,
		clock:    clock,
		events:   events,
		playerID: playerID,
	}
}

// PlayerID 返回玩家实体ID
func (s *PlayerSystem) PlayerID() ecs.EntityID {
	return s.playerID
}

// Player 返回玩家的三个核心组件
// 玩家实体不存在时最后一个返回值为 false
func (s *PlayerSystem) Player() (*components.PlayerComponent, *components.PositionComponent, *components.CollisionComponent, bool) {
	pc, ok := s.em.GetComponent(s.playerID, playerType)
	if !ok {
		return nil, nil, nil, false
	}
	pos, ok := s.em.GetComponent(s.playerID, positionType)
	if !ok {
		return nil, nil, nil, false
	}
	col, ok := s.em.GetComponent(s.playerID, collisionType)
	if !ok {
		return nil, nil, nil, false
	}
	return pc.(*components.PlayerComponent), pos.(*components.PositionComponent), col.(*components.CollisionComponent), true
}

// Update 每帧更新玩家状态：计时器推进、移动与开火
//
// 参数:
//   - intents: 本帧采样到的操作意图
func (s *PlayerSystem) Update(intents InputIntents) {
	p, pos, col, ok := s.Player()
	if !ok {
		return
	}
	now := s.clock.NowMillis()

	// 捕获后的重生等待：时间一到进入无敌保护期
	if p.Respawning && now-p.RespawnSince > s.cfg.RespawnDelay {
		p.Respawning = false
		s.startInvincibility(p, now)
	}

	// 无敌期结束判定与闪烁帧计数
	if p.Invincible {
		if now-p.InvincibleSince > s.cfg.InvincibleDuration {
			p.Invincible = false
		}
		p.FlashCounter++
	}

	p.EngineAnimCounter++

	// 被捕获时不处理移动与射击，位置由捕获者每帧接管
	if p.IsCaptured {
		return
	}

	// 水平移动，不越出场地边界
	if intents.MoveLeft && pos.X-col.Width/2 > 0 {
		pos.X -= s.cfg.PlayerSpeed
	}
	if intents.MoveRight && pos.X+col.Width/2 < float64(s.cfg.WindowWidth) {
		pos.X += s.cfg.PlayerSpeed
	}

	if intents.Fire {
		s.Shoot()
	}
}

// Shoot 玩家开火
//
// 被捕获时忽略；受射击冷却限制。子弹数由战机形态决定：
//   - 单机：1 发
//   - 单机 + 双发升级：2 发（中央 + 左偏移）
//   - 双机合体：3 发（中央 + 左右偏移）
func (s *PlayerSystem) Shoot() {
	p, pos, col, ok := s.Player()
	if !ok || p.IsCaptured {
		return
	}

	now := s.clock.NowMillis()
	if now-p.LastShotAt <= s.cfg.PlayerShootCooldown {
		return
	}
	p.LastShotAt = now

	top := pos.Y - col.Height/2
	offset := s.cfg.DoubleFireOffset

	s.spawnBullet(pos.X, top)
	if p.CombinedShips == 2 {
		// 双机合体：从两侧机身各补一发
		s.spawnBullet(pos.X-offset, top)
		s.spawnBullet(pos.X+offset, top)
	} else if p.HasDoubleFire {
		// 单机双发升级
		s.spawnBullet(pos.X-offset, top)
	}

	s.events.Emit(game.Event{Type: game.EventShotFired, X: pos.X, Y: top})
}

// spawnBullet 创建一发玩家子弹
func (s *PlayerSystem) spawnBullet(x, y float64) {
	if _, err := entities.CreatePlayerBullet(s.em, s.cfg, x, y); err != nil {
		log.Printf("[PlayerSystem] failed to create bullet: %v", err)
	}
}

// Hit 玩家被击中（敌机子弹或机体碰撞）
//
// 无敌或被捕获时忽略。双机形态先失去一架合体机（双发升级保留），
// 单机形态扣除一条生命；只要还有生命就进入无敌保护期
func (s *PlayerSystem) Hit() {
	p, pos, col, ok := s.Player()
	if !ok || p.Invincible || p.IsCaptured {
		return
	}
	now := s.clock.NowMillis()

	s.events.Emit(game.Event{Type: game.EventPlayerHit, X: pos.X, Y: pos.Y})

	if p.CombinedShips > 1 {
		p.CombinedShips--
		p.HasDoubleFire = true // 失去合体机后双发升级保留
		col.Width = entities.PlayerWidth
		s.startInvincibility(p, now)
		log.Printf("[PlayerSystem] hit: lost combined ship, ships=%d", p.CombinedShips)
		return
	}

	p.Lives--
	log.Printf("[PlayerSystem] hit: lives=%d", p.Lives)
	if p.Lives > 0 {
		s.startInvincibility(p, now)
	}
	// 生命耗尽由会话循环检测并结束对局
}

// GetCaptured 玩家战机被首领机捕获
//
// 仅当玩家处于自由状态且未满合体时才会发生。
// 扣除一条生命；替换战机的补充由会话循环负责
//
// 返回:
//   - bool: 捕获是否真正发生（false 表示前置条件不满足，调用方不得设置捕获链接）
func (s *PlayerSystem) GetCaptured(captor ecs.EntityID) bool {
	p, pos, _, ok := s.Player()
	if !ok || p.Invincible || p.IsCaptured {
		return false
	}
	if p.CombinedShips >= p.MaxCombinedShips {
		return false
	}

	p.IsCaptured = true
	p.CapturedBy = captor
	p.Lives--

	s.events.Emit(game.Event{Type: game.EventPlayerCaptured, X: pos.X, Y: pos.Y})
	log.Printf("[PlayerSystem] captured by enemy %d, lives=%d", captor, p.Lives)
	return true
}

// Rescue 被捕获的战机获救（捕获者被击毁时由碰撞结算调用）
//
// 解除捕获链接；未满合体时合体数 +1 并加宽碰撞盒。
// 无条件获得双发升级并进入无敌保护期
func (s *PlayerSystem) Rescue() {
	p, pos, col, ok := s.Player()
	if !ok {
		return
	}
	now := s.clock.NowMillis()

	p.IsCaptured = false
	p.CapturedBy = 0

	if p.CombinedShips < p.MaxCombinedShips {
		p.CombinedShips++
		if p.CombinedShips == 2 {
			// 合体成功：碰撞盒加宽，战机回到场地底部
			col.Width = entities.PlayerCombinedWidth
			pos.X = float64(s.cfg.WindowWidth) / 2
			pos.Y = float64(s.cfg.WindowHeight) - s.cfg.PlayerBottomMargin - col.Height/2
		}
	}

	p.HasDoubleFire = true
	s.startInvincibility(p, now)

	s.events.Emit(game.Event{Type: game.EventPlayerRescued, X: pos.X, Y: pos.Y})
	log.Printf("[PlayerSystem] rescued: ships=%d", p.CombinedShips)
}

// ArmRespawn 捕获发生后由会话循环调用，安排替换战机入场
// 位置重置到场地底部中央，RespawnDelay 后进入无敌保护期
func (s *PlayerSystem) ArmRespawn() {
	p, pos, col, ok := s.Player()
	if !ok {
		return
	}

	p.Respawning = true
	p.RespawnSince = s.clock.NowMillis()
	pos.X = float64(s.cfg.WindowWidth) / 2
	pos.Y = float64(s.cfg.WindowHeight) - s.cfg.PlayerBottomMargin - col.Height/2
}

// startInvincibility 进入无敌保护期
func (s *PlayerSystem) startInvincibility(p *components.PlayerComponent, now int64) {
	p.Invincible = true
	p.InvincibleSince = now
	p.FlashCounter = 0
}
