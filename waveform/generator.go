package waveform

import (
	"capsim/types"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Generator 波形生成器
// 时间域为 [0, timeMax] 上 samples 个等距点。创建后只读，可并发使用。
type Generator struct {
	timeMax     float64 // 仿真时长(s)
	samples     int     // 采样点数
	exactCharge bool    // 充电电荷使用物理曲线
}

// Option 生成器配置
type Option func(*Generator)

// WithTimeMax 设置仿真时长
func WithTimeMax(t float64) Option { return func(g *Generator) { g.timeMax = t } }

// WithSamples 设置采样点数
func WithSamples(n int) Option { return func(g *Generator) { g.samples = n } }

// WithExactChargingCharge 充电电荷改用 Q = C·V₀·(1 − e^(−t/τ))，时间轴与其余组合一致
func WithExactChargingCharge(exact bool) Option {
	return func(g *Generator) { g.exactCharge = exact }
}

// NewGenerator 创建波形生成器
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{timeMax: types.DefaultTimeMax, samples: types.DefaultSamples}
	for _, opt := range opts {
		opt(g)
	}
	if math.IsNaN(g.timeMax) || math.IsInf(g.timeMax, 0) || g.timeMax <= 0 {
		return nil, fmt.Errorf("%w: 仿真时长 %v 必须为正的有限值", types.ErrInvalidParameter, g.timeMax)
	}
	if g.samples < types.MinSamples {
		return nil, fmt.Errorf("%w: 采样点数 %d 至少为 %d", types.ErrInvalidParameter, g.samples, types.MinSamples)
	}
	return g, nil
}

// TimeMax 仿真时长
func (g *Generator) TimeMax() float64 { return g.timeMax }

// Samples 采样点数
func (g *Generator) Samples() int { return g.samples }

// Generate 生成采样序列
func (g *Generator) Generate(req Request) (types.Waveform, error) {
	if req.Simulation == types.Charging && req.Measurement == types.Charge {
		if g.exactCharge {
			f, err := ExactChargingCharge(req)
			if err != nil {
				return types.Waveform{}, err
			}
			return g.sample(req, f, g.span(), false), nil
		}
		f, err := Law(req)
		if err != nil {
			return types.Waveform{}, err
		}
		return g.sample(req, f, steps(types.ChargeSteps), true), nil
	}
	f, err := Law(req)
	if err != nil {
		return types.Waveform{}, err
	}
	return g.sample(req, f, g.span(), false), nil
}

// sample 在时间点上求值
func (g *Generator) sample(req Request, f Func, times []float64, discrete bool) types.Waveform {
	samples := make([]types.Sample, len(times))
	for i, t := range times {
		samples[i] = types.Sample{Time: t, Value: f(t)}
	}
	return types.Waveform{
		Simulation:  req.Simulation,
		Measurement: req.Measurement,
		Tau:         req.Tau(),
		Discrete:    discrete,
		Samples:     samples,
	}
}

// span 连续时间域 [0, timeMax]
func (g *Generator) span() []float64 {
	return floats.Span(make([]float64, g.samples), 0, g.timeMax)
}

// steps 离散步序号 0..n-1
func steps(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

var defaultGenerator = &Generator{timeMax: types.DefaultTimeMax, samples: types.DefaultSamples}

// Default 默认生成器(5s, 500点)
func Default() *Generator { return defaultGenerator }

// Generate 使用默认生成器生成采样序列
func Generate(req Request) (types.Waveform, error) {
	return defaultGenerator.Generate(req)
}
