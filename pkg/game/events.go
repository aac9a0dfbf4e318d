package game

// EventType 模拟层对外可观察的离散事件类型
// 表现层（渲染/音效）每帧消费一次事件队列来触发音效与特效，
// 模拟层自身从不读取这些事件
type EventType int

const (
	// EventShotFired 玩家开火（每次开火一条，不论子弹数）
	EventShotFired EventType = iota
	// EventEnemyDestroyed 敌机被击毁或撞毁，Value 为获得的分值（撞毁为 0）
	EventEnemyDestroyed
	// EventPlayerHit 玩家被击中（掉命或失去合体机）
	EventPlayerHit
	// EventPlayerCaptured 玩家战机被首领机捕获
	EventPlayerCaptured
	// EventPlayerRescued 被捕获的战机获救并合体
	EventPlayerRescued
	// EventWaveComplete 一波敌机清空，Value 为新的波次序号
	EventWaveComplete
	// EventGameOver 生命耗尽，会话结束，Value 为最终得分
	EventGameOver
)

// String 返回事件类型的可读名称（用于日志输出）
func (t EventType) String() string {
	switch t {
	case EventShotFired:
		return "shot_fired"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventPlayerCaptured:
		return "player_captured"
	case EventPlayerRescued:
		return "player_rescued"
	case EventWaveComplete:
		return "wave_complete"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event 一条模拟层事件
type Event struct {
	Type  EventType
	X, Y  float64 // 事件发生位置（无位置语义的事件为 0,0）
	Value int     // 事件附带数值（分值、波次序号等）
}

// EventQueue 单线程事件队列
// 模拟层各系统在一帧内 Emit，表现层在帧末 Drain 一次性取走全部事件
// 整个核心运行在单一模拟线程上，无需任何锁
type EventQueue struct {
	events []Event
}

// NewEventQueue 创建空的事件队列
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 16)}
}

// Emit 追加一条事件
func (q *EventQueue) Emit(e Event) {
	q.events = append(q.events, e)
}

// Drain 按发生顺序返回所有待处理事件并清空队列
// 无事件时返回 nil
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	drained := make([]Event, len(q.events))
	copy(drained, q.events)
	q.events = q.events[:0]
	return drained
}

// Len 返回队列中待处理的事件数
func (q *EventQueue) Len() int {
	return len(q.events)
}
