package systems

import (
	"testing"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/entities"
	"github.com/decker502/galaga/pkg/game"
	"github.com/decker502/galaga/pkg/types"
)

func newCollisionSystem(env *testEnv) *CollisionSystem {
	return NewCollisionSystem(env.em, env.cfg, env.rng, env.events, env.gameState, env.playerSystem)
}

// spawnPlayerBullet 在指定位置放置一发玩家子弹
func (env *testEnv) spawnPlayerBullet(t *testing.T, x, y float64) {
	t.Helper()
	if _, err := entities.CreatePlayerBullet(env.em, env.cfg, x, y); err != nil {
		t.Fatalf("Failed to create player bullet: %v", err)
	}
}

// spawnEnemyBullet 在指定位置放置一发敌机子弹
func (env *testEnv) spawnEnemyBullet(t *testing.T, x, y float64) {
	t.Helper()
	if _, err := entities.CreateEnemyBullet(env.em, env.cfg, x, y); err != nil {
		t.Fatalf("Failed to create enemy bullet: %v", err)
	}
}

// TestOverlaps 碰撞盒重叠判定（含边缘相切）
func TestOverlaps(t *testing.T) {
	box := &components.CollisionComponent{Width: 20, Height: 20}
	at := func(x, y float64) *components.PositionComponent {
		return &components.PositionComponent{X: x, Y: y}
	}

	tests := []struct {
		name   string
		x2, y2 float64
		want   bool
	}{
		{"完全重合", 100, 100, true},
		{"部分重叠", 110, 110, true},
		{"边缘相切", 120, 100, true},
		{"水平分离", 121, 100, false},
		{"垂直分离", 100, 121, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(at(100, 100), box, at(tt.x2, tt.y2), box); got != tt.want {
				t.Errorf("Overlaps: got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestBulletKillsEnemy 玩家子弹击毁低血量敌机：计分、爆炸、事件、移除
func TestBulletKillsEnemy(t *testing.T) {
	env := newTestEnv(t)
	cs := newCollisionSystem(env)
	env.spawnEnemy(t, types.EnemyKindSmall, 300, 100)
	env.spawnPlayerBullet(t, 300, 100)

	cs.Update()
	env.em.RemoveMarkedEntities()

	wantScore := types.EnemyKindSmall.Stats().Points
	if env.gameState.Score != wantScore {
		t.Errorf("Score: got %d, want %d", env.gameState.Score, wantScore)
	}
	if got := env.em.CountEntitiesWith(enemyType); got != 0 {
		t.Errorf("Enemy should be removed, %d left", got)
	}
	if got := env.countBullets(components.BulletSidePlayer); got != 0 {
		t.Errorf("Bullet should be consumed, %d left", got)
	}
	if got := env.em.CountEntitiesWith(explosionType); got != 1 {
		t.Errorf("Explosion count: got %d, want 1", got)
	}
	if !hasEvent(env.drainEventTypes(), game.EventEnemyDestroyed) {
		t.Error("EventEnemyDestroyed should be emitted")
	}
}

// TestBulletDamagesWithoutKill 血量未归零的敌机只扣血不摧毁
func TestBulletDamagesWithoutKill(t *testing.T) {
	env := newTestEnv(t)
	cs := newCollisionSystem(env)
	_, e := env.spawnEnemy(t, types.EnemyKindMedium, 300, 100)
	env.spawnPlayerBullet(t, 300, 100)

	cs.Update()
	env.em.RemoveMarkedEntities()

	if e.Health != 1 {
		t.Errorf("Health: got %d, want 1", e.Health)
	}
	if env.gameState.Score != 0 {
		t.Errorf("No score for non-lethal hit, got %d", env.gameState.Score)
	}
	if got := env.em.CountEntitiesWith(enemyType); got != 1 {
		t.Errorf("Enemy should survive, count %d", got)
	}
	if got := env.countBullets(components.BulletSidePlayer); got != 0 {
		t.Error("Bullet should be consumed even without kill")
	}
}

// TestOneBulletHitsTwoEnemies 一发子弹同帧重叠两架敌机：整发消耗，两架都受击
func TestOneBulletHitsTwoEnemies(t *testing.T) {
	env := newTestEnv(t)
	cs := newCollisionSystem(env)
	env.spawnEnemy(t, types.EnemyKindSmall, 295, 100)
	env.spawnEnemy(t, types.EnemyKindSmall, 305, 100)
	env.spawnPlayerBullet(t, 300, 100)

	cs.Update()
	env.em.RemoveMarkedEntities()

	wantScore := 2 * types.EnemyKindSmall.Stats().Points
	if env.gameState.Score != wantScore {
		t.Errorf("Score: got %d, want %d", env.gameState.Score, wantScore)
	}
	if got := env.em.CountEntitiesWith(enemyType); got != 0 {
		t.Errorf("Both enemies should be destroyed, %d left", got)
	}
}

// TestEnemyBulletHitsPlayer 敌机子弹命中自由状态玩家：一帧至多一次 Hit
func TestEnemyBulletHitsPlayer(t *testing.T) {
	env := newTestEnv(t)
	cs := newCollisionSystem(env)
	p, pos, _ := env.player(t)
	livesBefore := p.Lives

	// 两发子弹同帧命中，也只损失一条生命
	env.spawnEnemyBullet(t, pos.X, pos.Y)
	env.spawnEnemyBullet(t, pos.X+2, pos.Y)

	cs.Update()
	env.em.RemoveMarkedEntities()

	if p.Lives != livesBefore-1 {
		t.Errorf("Lives: got %d, want %d", p.Lives, livesBefore-1)
	}
	if !p.Invincible {
		t.Error("Player should be invincible after hit")
	}
	if got := env.countBullets(components.BulletSideEnemy); got != 0 {
		t.Errorf("All overlapping bullets consumed, %d left", got)
	}
	if !hasEvent(env.drainEventTypes(), game.EventPlayerHit) {
		t.Error("EventPlayerHit should be emitted")
	}
}

// TestEnemyBulletsIgnoredWhileInvincible 无敌期内敌弹规则整体跳过，子弹不消耗
func TestEnemyBulletsIgnoredWhileInvincible(t *testing.T) {
	env := newTestEnv(t)
	cs := newCollisionSystem(env)
	p, pos, _ := env.player(t)
	p.Invincible = true
	livesBefore := p.Lives

	env.spawnEnemyBullet(t, pos.X, pos.Y)

	cs.Update()
	env.em.RemoveMarkedEntities()

	if p.Lives != livesBefore {
		t.Errorf("Lives should be unchanged, got %d", p.Lives)
	}
	if got := env.countBullets(components.BulletSideEnemy); got != 1 {
		t.Errorf("Bullet should survive, count %d", got)
	}
}

// TestBodyCollisionDestroysEnemy 机体相撞：玩家受击，敌机无视血量直接摧毁且不计分
func TestBodyCollisionDestroysEnemy(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.CaptureChance = 0
	cs := newCollisionSystem(env)
	p, pos, _ := env.player(t)
	livesBefore := p.Lives

	// 满血首领机也会被机体碰撞直接摧毁
	env.spawnEnemy(t, types.EnemyKindLarge, pos.X, pos.Y)

	cs.Update()
	env.em.RemoveMarkedEntities()

	if p.Lives != livesBefore-1 {
		t.Errorf("Lives: got %d, want %d", p.Lives, livesBefore-1)
	}
	if got := env.em.CountEntitiesWith(enemyType); got != 0 {
		t.Errorf("Enemy should be destroyed, count %d", got)
	}
	if env.gameState.Score != 0 {
		t.Errorf("Body collision scores nothing, got %d", env.gameState.Score)
	}
	eventTypes := env.drainEventTypes()
	if !hasEvent(eventTypes, game.EventPlayerHit) || !hasEvent(eventTypes, game.EventEnemyDestroyed) {
		t.Errorf("Expected hit + destroyed events, got %v", eventTypes)
	}
}

// TestBodyCollisionCapture 首领机机体接触触发捕获
func TestBodyCollisionCapture(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.CaptureChance = 1
	cs := newCollisionSystem(env)
	p, pos, _ := env.player(t)
	livesBefore := p.Lives

	eid, e := env.spawnEnemy(t, types.EnemyKindLarge, pos.X, pos.Y)

	cs.Update()
	env.em.RemoveMarkedEntities()

	if !p.IsCaptured {
		t.Fatal("Player should be captured")
	}
	if p.CapturedBy != eid {
		t.Errorf("CapturedBy: got %d, want %d", p.CapturedBy, eid)
	}
	if !e.HasCapturedPlayer {
		t.Error("Captor should carry the player")
	}
	if p.Lives != livesBefore-1 {
		t.Errorf("Lives: got %d, want %d", p.Lives, livesBefore-1)
	}
	if !p.Respawning {
		t.Error("Replacement ship should be armed while lives remain")
	}
	if got := env.em.CountEntitiesWith(enemyType); got != 1 {
		t.Errorf("Captor must survive, count %d", got)
	}
	if !hasEvent(env.drainEventTypes(), game.EventPlayerCaptured) {
		t.Error("EventPlayerCaptured should be emitted")
	}
}

// TestSmallEnemyNeverCaptures 非首领机即使捕获概率为 1 也只能同归于尽
func TestSmallEnemyNeverCaptures(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.CaptureChance = 1
	cs := newCollisionSystem(env)
	p, pos, _ := env.player(t)

	env.spawnEnemy(t, types.EnemyKindSmall, pos.X, pos.Y)

	cs.Update()
	env.em.RemoveMarkedEntities()

	if p.IsCaptured {
		t.Error("Small enemy must not capture")
	}
	if got := env.em.CountEntitiesWith(enemyType); got != 0 {
		t.Errorf("Enemy should be destroyed instead, count %d", got)
	}
}

// TestRescueOnCaptorDeath 击毁携带玩家的首领机触发救援与合体
func TestRescueOnCaptorDeath(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.CaptureChance = 1
	cs := newCollisionSystem(env)
	p, pos, col := env.player(t)

	_, e := env.spawnEnemy(t, types.EnemyKindLarge, pos.X, pos.Y)
	cs.Update()
	if !p.IsCaptured {
		t.Fatal("Capture setup failed")
	}
	env.drainEventTypes()

	// 首领机血量 3，三发子弹同帧击毁
	env.spawnPlayerBullet(t, pos.X, pos.Y)
	env.spawnPlayerBullet(t, pos.X+2, pos.Y)
	env.spawnPlayerBullet(t, pos.X-2, pos.Y)

	cs.Update()
	env.em.RemoveMarkedEntities()

	if p.IsCaptured || p.CapturedBy != 0 {
		t.Error("Player should be released")
	}
	if e.HasCapturedPlayer {
		t.Error("Captor carry flag should be cleared")
	}
	if p.CombinedShips != 2 {
		t.Errorf("CombinedShips: got %d, want 2", p.CombinedShips)
	}
	if !p.HasDoubleFire {
		t.Error("Rescue grants double fire")
	}
	if col.Width != entities.PlayerCombinedWidth {
		t.Errorf("Collision width: got %v, want %v", col.Width, entities.PlayerCombinedWidth)
	}
	if !p.Invincible {
		t.Error("Rescue grants invincibility")
	}
	wantScore := types.EnemyKindLarge.Stats().Points
	if env.gameState.Score != wantScore {
		t.Errorf("Score: got %d, want %d", env.gameState.Score, wantScore)
	}
	eventTypes := env.drainEventTypes()
	if !hasEvent(eventTypes, game.EventPlayerRescued) {
		t.Error("EventPlayerRescued should be emitted")
	}
}

// TestKilledEnemySkipsBodyCollision 同帧内被子弹击毁的敌机不再参与机体碰撞
func TestKilledEnemySkipsBodyCollision(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.CaptureChance = 0
	cs := newCollisionSystem(env)
	p, pos, _ := env.player(t)
	livesBefore := p.Lives

	// 敌机正压在玩家身上，但本帧已被子弹击毁
	env.spawnEnemy(t, types.EnemyKindSmall, pos.X, pos.Y)
	env.spawnPlayerBullet(t, pos.X, pos.Y)

	cs.Update()
	env.em.RemoveMarkedEntities()

	if p.Lives != livesBefore {
		t.Errorf("Lives should be unchanged, got %d", p.Lives)
	}
	eventTypes := env.drainEventTypes()
	if hasEvent(eventTypes, game.EventPlayerHit) {
		t.Error("Dead enemy must not hit the player")
	}
	if !hasEvent(eventTypes, game.EventEnemyDestroyed) {
		t.Error("Bullet kill should still be recorded")
	}
}
