package types

import "fmt"

// Sample 采样点
type Sample struct {
	Time  float64 `json:"t"` // 时间(s)，充电电荷曲线为步序号
	Value float64 `json:"v"` // 测量值，单位由测量模式决定
}

// Waveform 按时间升序排列的采样序列
type Waveform struct {
	Simulation  SimulationMode  `json:"-"`
	Measurement MeasurementMode `json:"-"`
	Tau         float64         `json:"tau"`      // 时间常数 R·C(s)
	Discrete    bool            `json:"discrete"` // 时间轴为离散步序号
	Samples     []Sample        `json:"samples"`
}

// Len 采样点数
func (w Waveform) Len() int { return len(w.Samples) }

// Unit 测量单位
func (w Waveform) Unit() string { return w.Measurement.Unit() }

// Title 曲线标题
func (w Waveform) Title() string {
	return fmt.Sprintf("%s (%s)", w.Simulation.Label(), w.Measurement)
}

// TimeLabel 横轴名称
func (w Waveform) TimeLabel() string {
	if w.Discrete {
		return "Step"
	}
	return "Time (s)"
}

// ValueLabel 纵轴名称
func (w Waveform) ValueLabel() string {
	return fmt.Sprintf("%s (%s)", w.Measurement, w.Unit())
}

// Times 时间列
func (w Waveform) Times() []float64 {
	out := make([]float64, len(w.Samples))
	for i, s := range w.Samples {
		out[i] = s.Time
	}
	return out
}

// Values 数值列
func (w Waveform) Values() []float64 {
	out := make([]float64, len(w.Samples))
	for i, s := range w.Samples {
		out[i] = s.Value
	}
	return out
}
