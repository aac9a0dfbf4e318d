package components

// StarComponent 滚动星空背景中的一颗星
// 星空分三层：远景（小、慢、暗）、中景、近景（大、快、亮），
// 通过不同的 Size/Speed/Shade 组合体现景深
type StarComponent struct {
	Size  float64 // 绘制半径（像素）
	Speed float64 // 下落速度（像素/帧）
	Shade uint8   // 灰度亮度（150/200/255）
}
