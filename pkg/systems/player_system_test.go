package systems

import (
	"testing"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/entities"
	"github.com/decker502/galaga/pkg/game"
	"github.com/decker502/galaga/pkg/types"
)

// TestShootCooldown 射击受冷却限制
func TestShootCooldown(t *testing.T) {
	env := newTestEnv(t)
	env.advance(1000)

	env.playerSystem.Shoot()
	if got := env.countBullets(components.BulletSidePlayer); got != 1 {
		t.Fatalf("Bullets after first shot: got %d, want 1", got)
	}

	// 冷却期内的开火被忽略
	env.advance(100)
	env.playerSystem.Shoot()
	if got := env.countBullets(components.BulletSidePlayer); got != 1 {
		t.Errorf("Bullets during cooldown: got %d, want 1", got)
	}

	// 冷却结束后可再次开火
	env.advance(env.cfg.PlayerShootCooldown)
	env.playerSystem.Shoot()
	if got := env.countBullets(components.BulletSidePlayer); got != 2 {
		t.Errorf("Bullets after cooldown: got %d, want 2", got)
	}
}

// TestShootVolleySize 子弹数由战机形态决定
func TestShootVolleySize(t *testing.T) {
	tests := []struct {
		name          string
		combinedShips int
		hasDoubleFire bool
		wantBullets   int
	}{
		{"single ship", 1, false, 1},
		{"single with double fire", 1, true, 2},
		{"dual fighter", 2, false, 3},
		{"dual fighter with double fire", 2, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			p, _, _ := env.player(t)
			p.CombinedShips = tt.combinedShips
			p.HasDoubleFire = tt.hasDoubleFire

			env.advance(1000)
			env.playerSystem.Shoot()

			if got := env.countBullets(components.BulletSidePlayer); got != tt.wantBullets {
				t.Errorf("Bullets: got %d, want %d", got, tt.wantBullets)
			}
			// 每次开火只发一条事件，不论子弹数
			types := env.drainEventTypes()
			if len(types) != 1 || types[0] != game.EventShotFired {
				t.Errorf("Events: got %v, want [shot_fired]", types)
			}
		})
	}
}

// TestShootIgnoredWhileCaptured 被捕获时不能开火
func TestShootIgnoredWhileCaptured(t *testing.T) {
	env := newTestEnv(t)
	p, _, _ := env.player(t)
	p.IsCaptured = true

	env.advance(1000)
	env.playerSystem.Shoot()

	if got := env.countBullets(components.BulletSidePlayer); got != 0 {
		t.Errorf("Captured player should not shoot, got %d bullets", got)
	}
}

// TestHitSingleShip 单机被击中扣生命并进入无敌期
func TestHitSingleShip(t *testing.T) {
	env := newTestEnv(t)
	p, _, _ := env.player(t)
	env.advance(1000)

	env.playerSystem.Hit()

	if p.Lives != env.cfg.PlayerLives-1 {
		t.Errorf("Lives: got %d, want %d", p.Lives, env.cfg.PlayerLives-1)
	}
	if !p.Invincible {
		t.Error("Player should be invincible after hit")
	}

	// 无敌期内的再次击中被忽略
	env.playerSystem.Hit()
	if p.Lives != env.cfg.PlayerLives-1 {
		t.Errorf("Invincible player should not lose lives, got %d", p.Lives)
	}
}

// TestHitDualFighter 双机形态被击中先失去合体机，生命保留
func TestHitDualFighter(t *testing.T) {
	env := newTestEnv(t)
	p, _, col := env.player(t)
	p.CombinedShips = 2
	col.Width = entities.PlayerCombinedWidth
	env.advance(1000)

	env.playerSystem.Hit()

	if p.Lives != env.cfg.PlayerLives {
		t.Errorf("Lives should be kept: got %d, want %d", p.Lives, env.cfg.PlayerLives)
	}
	if p.CombinedShips != 1 {
		t.Errorf("CombinedShips: got %d, want 1", p.CombinedShips)
	}
	// 双发升级保留，碰撞盒恢复单机宽度
	if !p.HasDoubleFire {
		t.Error("Double fire should be kept after losing combined ship")
	}
	if col.Width != entities.PlayerWidth {
		t.Errorf("Collision width: got %v, want %v", col.Width, entities.PlayerWidth)
	}
	if !p.Invincible {
		t.Error("Player should be invincible")
	}
}

// TestHitLastLife 最后一条生命耗尽后不进入无敌期
func TestHitLastLife(t *testing.T) {
	env := newTestEnv(t)
	p, _, _ := env.player(t)
	p.Lives = 1
	env.advance(1000)

	env.playerSystem.Hit()

	if p.Lives != 0 {
		t.Errorf("Lives: got %d, want 0", p.Lives)
	}
	if p.Invincible {
		t.Error("Dead player should not be invincible")
	}
}

// TestGetCaptured 捕获成功扣生命并建立链接
func TestGetCaptured(t *testing.T) {
	env := newTestEnv(t)
	p, _, _ := env.player(t)
	captorID, _ := env.spawnEnemy(t, types.EnemyKindLarge, 300, 100)

	if !env.playerSystem.GetCaptured(captorID) {
		t.Fatal("Capture should succeed on a free single-ship player")
	}
	if !p.IsCaptured || p.CapturedBy != captorID {
		t.Errorf("Capture link: IsCaptured=%v CapturedBy=%d", p.IsCaptured, p.CapturedBy)
	}
	if p.Lives != env.cfg.PlayerLives-1 {
		t.Errorf("Lives after capture: got %d, want %d", p.Lives, env.cfg.PlayerLives-1)
	}
	if !hasEvent(env.drainEventTypes(), game.EventPlayerCaptured) {
		t.Error("EventPlayerCaptured should be emitted")
	}
}

// TestGetCapturedGuards 前置条件不满足时捕获无效
func TestGetCapturedGuards(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *components.PlayerComponent)
	}{
		{"invincible", func(p *components.PlayerComponent) { p.Invincible = true }},
		{"already captured", func(p *components.PlayerComponent) { p.IsCaptured = true }},
		{"dual fighter", func(p *components.PlayerComponent) { p.CombinedShips = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			p, _, _ := env.player(t)
			tt.mutate(p)
			livesBefore := p.Lives
			capturedBefore := p.CapturedBy

			if env.playerSystem.GetCaptured(42) {
				t.Error("Capture should be rejected")
			}
			if p.Lives != livesBefore {
				t.Error("Rejected capture should not cost a life")
			}
			if p.CapturedBy != capturedBefore {
				t.Error("Rejected capture should not change capture link")
			}
		})
	}
}

// TestRescue 获救后合体、获得双发并进入无敌期
func TestRescue(t *testing.T) {
	env := newTestEnv(t)
	p, pos, col := env.player(t)
	captorID, _ := env.spawnEnemy(t, types.EnemyKindLarge, 300, 100)
	env.playerSystem.GetCaptured(captorID)
	env.advance(1000)

	env.playerSystem.Rescue()

	if p.IsCaptured || p.CapturedBy != 0 {
		t.Error("Capture link should be cleared")
	}
	if p.CombinedShips != 2 {
		t.Errorf("CombinedShips: got %d, want 2", p.CombinedShips)
	}
	if !p.HasDoubleFire {
		t.Error("Rescue should grant double fire")
	}
	if !p.Invincible {
		t.Error("Rescue should grant invincibility")
	}
	if col.Width != entities.PlayerCombinedWidth {
		t.Errorf("Collision width: got %v, want %v", col.Width, entities.PlayerCombinedWidth)
	}
	// 合体成功后战机回到场地底部中央
	if pos.X != float64(env.cfg.WindowWidth)/2 {
		t.Errorf("Player X after merge: got %v", pos.X)
	}
	if !hasEvent(env.drainEventTypes(), game.EventPlayerRescued) {
		t.Error("EventPlayerRescued should be emitted")
	}
}

// TestRespawnFlow 捕获后的重生等待期结束时进入无敌保护
func TestRespawnFlow(t *testing.T) {
	env := newTestEnv(t)
	p, pos, _ := env.player(t)
	pos.X = 100

	env.playerSystem.ArmRespawn()

	if !p.Respawning {
		t.Fatal("ArmRespawn should mark respawning")
	}
	if pos.X != float64(env.cfg.WindowWidth)/2 {
		t.Errorf("Respawn should reset position, got X=%v", pos.X)
	}

	// 等待期内保持重生状态
	env.advance(env.cfg.RespawnDelay / 2)
	env.playerSystem.Update(InputIntents{})
	if !p.Respawning {
		t.Error("Respawn wait should not end early")
	}

	// 等待期结束后进入无敌保护
	env.advance(env.cfg.RespawnDelay)
	env.playerSystem.Update(InputIntents{})
	if p.Respawning {
		t.Error("Respawn wait should be over")
	}
	if !p.Invincible {
		t.Error("Respawned player should be invincible")
	}
}

// TestInvincibilityExpires 无敌期到时自动解除
func TestInvincibilityExpires(t *testing.T) {
	env := newTestEnv(t)
	p, _, _ := env.player(t)
	env.advance(1000)
	env.playerSystem.Hit()

	env.advance(env.cfg.InvincibleDuration / 2)
	env.playerSystem.Update(InputIntents{})
	if !p.Invincible {
		t.Error("Invincibility should not expire early")
	}

	env.advance(env.cfg.InvincibleDuration)
	env.playerSystem.Update(InputIntents{})
	if p.Invincible {
		t.Error("Invincibility should have expired")
	}
}

// TestMovementClamped 移动不越出场地边界
func TestMovementClamped(t *testing.T) {
	env := newTestEnv(t)
	_, pos, col := env.player(t)

	// 紧贴左边界时继续向左无效
	pos.X = col.Width / 2
	env.playerSystem.Update(InputIntents{MoveLeft: true})
	if pos.X != col.Width/2 {
		t.Errorf("Player should not move past left edge, got X=%v", pos.X)
	}

	// 正常向右移动
	env.playerSystem.Update(InputIntents{MoveRight: true})
	if pos.X != col.Width/2+env.cfg.PlayerSpeed {
		t.Errorf("Player X after move right: got %v", pos.X)
	}
}

// TestCapturedPlayerIgnoresInput 被捕获时移动与射击均无效
func TestCapturedPlayerIgnoresInput(t *testing.T) {
	env := newTestEnv(t)
	p, pos, _ := env.player(t)
	p.IsCaptured = true
	xBefore := pos.X
	env.advance(1000)

	env.playerSystem.Update(InputIntents{MoveLeft: true, Fire: true})

	if pos.X != xBefore {
		t.Error("Captured player should not move")
	}
	if env.countBullets(components.BulletSidePlayer) != 0 {
		t.Error("Captured player should not shoot")
	}
}
