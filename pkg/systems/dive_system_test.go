package systems

import (
	"testing"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/types"
)

func newDiveSystem(env *testEnv) *DiveSystem {
	es := NewEnemySystem(env.em, env.cfg, env.clock, env.rng, env.playerSystem)
	return NewDiveSystem(env.em, env.cfg, env.clock, env.rng, es)
}

// countDiving 统计处于俯冲状态的敌机数
func countDiving(env *testEnv) int {
	count := 0
	for _, id := range env.em.GetEntitiesWith(enemyType) {
		ec, _ := env.em.GetComponent(id, enemyType)
		if ec.(*components.EnemyComponent).State == components.EnemyStateDiving {
			count++
		}
	}
	return count
}

// TestNoDiveBeforeInterval 调度间隔未到时不发起俯冲
func TestNoDiveBeforeInterval(t *testing.T) {
	env := newTestEnv(t)
	ds := newDiveSystem(env)
	env.spawnEnemy(t, types.EnemyKindSmall, 200, 100)
	env.spawnEnemy(t, types.EnemyKindMedium, 300, 100)

	ds.Update()
	if got := countDiving(env); got != 0 {
		t.Errorf("No dive before interval, got %d diving", got)
	}

	env.advance(env.cfg.DiveInterval - 1)
	ds.Update()
	if got := countDiving(env); got != 0 {
		t.Errorf("Still inside interval, got %d diving", got)
	}
}

// TestDiveAfterInterval 间隔到达后每次调度 1~2 架
func TestDiveAfterInterval(t *testing.T) {
	env := newTestEnv(t)
	ds := newDiveSystem(env)
	for i := 0; i < 5; i++ {
		env.spawnEnemy(t, types.EnemyKindSmall, 100+float64(i)*80, 100)
	}

	env.advance(env.cfg.DiveInterval)
	ds.Update()

	if got := countDiving(env); got < 1 || got > 2 {
		t.Errorf("Diving count: got %d, want 1 or 2", got)
	}
}

// TestDiveCappedByPopulation 场上只有一架时俯冲数不超过一
func TestDiveCappedByPopulation(t *testing.T) {
	env := newTestEnv(t)
	ds := newDiveSystem(env)
	env.spawnEnemy(t, types.EnemyKindSmall, 300, 100)

	env.advance(env.cfg.DiveInterval)
	ds.Update()

	if got := countDiving(env); got != 1 {
		t.Errorf("Diving count: got %d, want 1", got)
	}
}

// TestDiveSkipsCarrier 押送捕获玩家的首领机不参与俯冲调度
func TestDiveSkipsCarrier(t *testing.T) {
	env := newTestEnv(t)
	ds := newDiveSystem(env)
	_, carrier := env.spawnEnemy(t, types.EnemyKindLarge, 300, 50)
	carrier.HasCapturedPlayer = true

	env.advance(env.cfg.DiveInterval)
	ds.Update()

	if carrier.State != components.EnemyStateFormation {
		t.Error("Carrier must stay in formation")
	}
}

// TestNoDiveWhilePlayerCaptured 玩家被捕获期间暂停俯冲调度
func TestNoDiveWhilePlayerCaptured(t *testing.T) {
	env := newTestEnv(t)
	ds := newDiveSystem(env)
	env.spawnEnemy(t, types.EnemyKindSmall, 200, 100)
	p, _, _ := env.player(t)
	p.IsCaptured = true

	env.advance(env.cfg.DiveInterval)
	ds.Update()

	if got := countDiving(env); got != 0 {
		t.Errorf("No dives while player captured, got %d", got)
	}
}

// TestDiveCooldownResets 成功调度后间隔计时重新开始
func TestDiveCooldownResets(t *testing.T) {
	env := newTestEnv(t)
	ds := newDiveSystem(env)
	for i := 0; i < 4; i++ {
		env.spawnEnemy(t, types.EnemyKindSmall, 100+float64(i)*100, 100)
	}

	env.advance(env.cfg.DiveInterval)
	ds.Update()
	firstWave := countDiving(env)
	if firstWave == 0 {
		t.Fatal("Expected at least one dive")
	}

	// 紧接着的下一帧不会再调度
	ds.Update()
	if got := countDiving(env); got != firstWave {
		t.Errorf("Cooldown not respected: got %d diving, want %d", got, firstWave)
	}

	env.advance(env.cfg.DiveInterval)
	ds.Update()
	if got := countDiving(env); got <= firstWave {
		t.Errorf("Second wave should add divers, got %d", got)
	}
}
