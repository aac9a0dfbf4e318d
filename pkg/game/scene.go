package game

import "github.com/hajimehoshi/ebiten/v2"

// Scene 游戏场景接口
// 开始画面、对局画面和结束画面都实现此接口，
// 同一时刻只有一个场景处于活动状态
type Scene interface {
	// Update 更新场景逻辑
	// deltaTime 为距上一帧经过的时间（秒），固定时间步下恒为 1/60
	Update(deltaTime float64)

	// Draw 将场景渲染到屏幕
	Draw(screen *ebiten.Image)
}
