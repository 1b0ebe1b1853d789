package waveform

import (
	"capsim/types"
	"fmt"
	"math"
)

// Request 波形生成请求，所有字段必填
type Request struct {
	Capacitance    float64               // 电容(F)
	Resistance     float64               // 电阻(Ω)
	InitialVoltage float64               // 初始电压(V)
	Simulation     types.SimulationMode  // 仿真模式
	Measurement    types.MeasurementMode // 测量模式
}

// Tau 时间常数 τ = R·C
func (req Request) Tau() float64 { return req.Resistance * req.Capacitance }

// Func 闭式表达式 f(t)
type Func func(t float64) float64

// check 参数检查
func (req Request) check() error {
	if !finite(req.Capacitance) || req.Capacitance <= 0 {
		return fmt.Errorf("%w: 电容 %v 必须为正的有限值", types.ErrInvalidParameter, req.Capacitance)
	}
	if !finite(req.Resistance) || req.Resistance <= 0 {
		return fmt.Errorf("%w: 电阻 %v 必须为正的有限值", types.ErrInvalidParameter, req.Resistance)
	}
	if !finite(req.InitialVoltage) {
		return fmt.Errorf("%w: 初始电压 %v 必须为有限值", types.ErrInvalidParameter, req.InitialVoltage)
	}
	if !req.Simulation.Valid() || !req.Measurement.Valid() {
		return fmt.Errorf("%w: %s/%s", types.ErrUnsupportedMode, req.Simulation, req.Measurement)
	}
	return nil
}

// Law 返回模式组合对应的闭式表达式
// 充电/电荷为线性近似 Q = C·t，其中 t 为步序号而非秒。
func Law(req Request) (Func, error) {
	if err := req.check(); err != nil {
		return nil, err
	}
	c, r, v0, tau := req.Capacitance, req.Resistance, req.InitialVoltage, req.Tau()
	decay := func(t float64) float64 { return math.Exp(-t / tau) }
	switch req.Simulation {
	case types.Discharging:
		switch req.Measurement {
		case types.Voltage:
			return func(t float64) float64 { return v0 * decay(t) }, nil
		case types.Current:
			return func(t float64) float64 { return v0 / r * decay(t) }, nil
		case types.Charge:
			return func(t float64) float64 { return v0 * c * decay(t) }, nil
		}
	case types.Charging:
		switch req.Measurement {
		case types.Charge:
			return func(t float64) float64 { return c * t }, nil
		case types.Current:
			return func(t float64) float64 { return v0 / r * decay(t) }, nil
		case types.Voltage:
			return func(t float64) float64 { return v0 * (1 - decay(t)) }, nil
		}
	case types.Impulse:
		if req.Measurement == types.Voltage {
			return decay, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", types.ErrUnsupportedMode, req.Simulation, req.Measurement)
}

// ExactChargingCharge 充电电荷的物理曲线 Q = C·V₀·(1 − e^(−t/τ))
func ExactChargingCharge(req Request) (Func, error) {
	if err := req.check(); err != nil {
		return nil, err
	}
	q, tau := req.Capacitance*req.InitialVoltage, req.Tau()
	return func(t float64) float64 { return q * (1 - math.Exp(-t/tau)) }, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
