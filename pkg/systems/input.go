package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputIntents 一帧内采样到的玩家操作意图
// 模拟层只消费离散意图，不直接接触键盘状态，
// 便于测试中构造任意输入序列
type InputIntents struct {
	MoveLeft  bool // 向左移动（按住生效）
	MoveRight bool // 向右移动（按住生效）
	Fire      bool // 开火（按住生效，射速由冷却限制）
	Quit      bool // 结束当前对局
}

// PollInput 采样当前帧的键盘输入并转换为操作意图
// 每帧调用一次
func PollInput() InputIntents {
	return InputIntents{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:      ebiten.IsKeyPressed(ebiten.KeySpace),
		Quit:      inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}
