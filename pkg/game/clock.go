package game

import "time"

// Clock 是模拟层的统一时间来源
//
// 提供两套并存的计时基准（两者不可互相替代）：
//   - NowMillis: 单调毫秒时间戳，用于射击冷却、无敌时长、俯冲调度、
//     编队下压等所有"真实时间"行为
//   - Frame: 帧计数器，用于外观动画的交替（假设稳定 60FPS，
//     若宿主无法保证 60Hz，动画节奏会相对时钟计时漂移，这是已知特性）
//
// 毫秒来源可注入，测试中用虚拟时间即可让所有计时行为完全确定
type Clock struct {
	frame   int64
	start   time.Time
	timeNow func() time.Time
}

// NewClock 创建使用系统单调时钟的 Clock
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource 创建使用指定时间来源的 Clock
// 测试中传入可手动推进的虚拟时间函数
func NewClockWithSource(timeNow func() time.Time) *Clock {
	return &Clock{
		start:   timeNow(),
		timeNow: timeNow,
	}
}

// Tick 推进帧计数器，每个模拟帧开始时调用一次
func (c *Clock) Tick() {
	c.frame++
}

// Frame 返回当前帧号
func (c *Clock) Frame() int64 {
	return c.frame
}

// NowMillis 返回自 Clock 创建以来经过的单调毫秒数
func (c *Clock) NowMillis() int64 {
	return c.timeNow().Sub(c.start).Milliseconds()
}
