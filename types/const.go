package types

// 物理常量定义
const (
	VacuumPermittivity = 8.854e-12 // 真空介电常数(F/m)
)

// 时间域常量定义
const (
	DefaultTimeMax = 5.0 // 默认仿真时长(s)
	DefaultSamples = 500 // 默认采样点数
	MinSamples     = 2   // 最少采样点数
	ChargeSteps    = 100 // 充电电荷曲线的离散步数(0..99)
)
