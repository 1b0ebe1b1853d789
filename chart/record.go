package chart

import (
	"capsim"
	"encoding/json"
	"io"
)

// Record 波形记录
type Record struct {
	Title       string    `json:"title"`       // 曲线标题
	Label       string    `json:"label"`       // 格式化的电容值
	Capacitance float64   `json:"capacitance"` // 电容值(F)
	Simulation  string    `json:"simulation"`  // 仿真模式
	Measurement string    `json:"measurement"` // 测量模式
	Tau         float64   `json:"tau"`         // 时间常数(s)
	XLabel      string    `json:"x_label"`     // 横轴名称
	YLabel      string    `json:"y_label"`     // 纵轴名称
	Time        []float64 `json:"time"`        // 时间列
	Value       []float64 `json:"value"`       // 数值列
}

// NewRecord 记录仿真结果
func NewRecord(res *capsim.Result) *Record {
	w := res.Waveform
	return &Record{
		Title:       w.Title(),
		Label:       res.Label,
		Capacitance: res.Capacitance,
		Simulation:  w.Simulation.String(),
		Measurement: w.Measurement.String(),
		Tau:         w.Tau,
		XLabel:      w.TimeLabel(),
		YLabel:      w.ValueLabel(),
		Time:        w.Times(),
		Value:       w.Values(),
	}
}

// Len 采样点数
func (r *Record) Len() int { return len(r.Time) }

// Render 以 JSON 输出
func (r *Record) Render(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
