package systems

import (
	"reflect"

	"github.com/decker502/galaga/pkg/components"
)

// 各组件的 reflect.Type 缓存
// 系统查询实体时反复需要这些类型，统一在此定义避免每帧重复构造
var (
	positionType  = reflect.TypeOf(&components.PositionComponent{})
	velocityType  = reflect.TypeOf(&components.VelocityComponent{})
	collisionType = reflect.TypeOf(&components.CollisionComponent{})
	playerType    = reflect.TypeOf(&components.PlayerComponent{})
	enemyType     = reflect.TypeOf(&components.EnemyComponent{})
	bulletType    = reflect.TypeOf(&components.BulletComponent{})
	explosionType = reflect.TypeOf(&components.ExplosionComponent{})
	starType      = reflect.TypeOf(&components.StarComponent{})
)
