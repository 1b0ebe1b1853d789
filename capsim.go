package capsim

import (
	"capsim/load"
	"capsim/types"
	"capsim/utils"
	"capsim/waveform"
	"fmt"
)

// Simulator 电容仿真器
// 几何参数 → 电容值 → 单位格式化 + 波形。无内部状态，可并发调用。
type Simulator struct {
	gen *waveform.Generator
}

// Result 仿真结果
type Result struct {
	Capacitance float64        `json:"capacitance"` // 电容值(F)
	Label       string         `json:"label"`       // 格式化的电容值
	Waveform    types.Waveform `json:"waveform"`
}

// NewSimulator 初始化，gen 为空时使用默认生成器
func NewSimulator(gen *waveform.Generator) *Simulator {
	if gen == nil {
		gen = waveform.Default()
	}
	return &Simulator{gen: gen}
}

// Generator 波形生成器
func (sim *Simulator) Generator() *waveform.Generator { return sim.gen }

// Simulate 进行仿真
func (sim *Simulator) Simulate(req load.Request) (*Result, error) {
	c, err := req.Capacitor.Capacitance(req.Permittivity)
	if err != nil {
		return nil, fmt.Errorf("计算电容失败: %w", err)
	}
	label, err := utils.FormatCapacitance(c)
	if err != nil {
		return nil, err
	}
	w, err := sim.gen.Generate(req.Waveform(c))
	if err != nil {
		return nil, fmt.Errorf("生成波形失败: %w", err)
	}
	return &Result{Capacitance: c, Label: label, Waveform: w}, nil
}

// Load 加载 TOML 请求文件并仿真
func (sim *Simulator) Load(filename string) (*Result, error) {
	req, err := load.LoadFile(filename)
	if err != nil {
		return nil, err
	}
	return sim.Simulate(req)
}
