package types

import (
	"fmt"
	"strings"
)

// SimulationMode 仿真模式
type SimulationMode int

// 仿真模式常量定义
const (
	Charging    SimulationMode = iota + 1 // 直流充电
	Discharging                           // 直流放电
	Impulse                               // 冲激响应
)

// simulationModeString 仿真模式映射
var simulationModeString = map[SimulationMode]struct {
	Name  string
	Label string
}{
	Charging:    {Name: "Charging", Label: "DC Charging"},
	Discharging: {Name: "Discharging", Label: "DC Discharging"},
	Impulse:     {Name: "Impulse", Label: "Impulse Response"},
}

// String 返回仿真模式名称
func (m SimulationMode) String() string {
	if s, ok := simulationModeString[m]; ok {
		return s.Name
	}
	return fmt.Sprintf("SimulationMode(%d)", int(m))
}

// Label 界面显示名称
func (m SimulationMode) Label() string {
	if s, ok := simulationModeString[m]; ok {
		return s.Label
	}
	return m.String()
}

// Valid 是否为已知模式
func (m SimulationMode) Valid() bool {
	_, ok := simulationModeString[m]
	return ok
}

// ParseSimulationMode 解析仿真模式，接受名称或界面显示名称(不区分大小写)
func ParseSimulationMode(s string) (SimulationMode, error) {
	s = strings.TrimSpace(s)
	for m, v := range simulationModeString {
		if strings.EqualFold(s, v.Name) || strings.EqualFold(s, v.Label) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: 仿真模式 %q", ErrUnsupportedMode, s)
}

// MeasurementMode 测量模式
type MeasurementMode int

// 测量模式常量定义
const (
	Voltage MeasurementMode = iota + 1 // 电压(V)
	Current                            // 电流(A)
	Charge                             // 电荷(C)
)

// measurementModeString 测量模式映射
var measurementModeString = map[MeasurementMode]struct {
	Name string
	Unit string
}{
	Voltage: {Name: "Voltage", Unit: "V"},
	Current: {Name: "Current", Unit: "A"},
	Charge:  {Name: "Charge", Unit: "C"},
}

// String 返回测量模式名称
func (m MeasurementMode) String() string {
	if s, ok := measurementModeString[m]; ok {
		return s.Name
	}
	return fmt.Sprintf("MeasurementMode(%d)", int(m))
}

// Unit 测量单位
func (m MeasurementMode) Unit() string {
	return measurementModeString[m].Unit
}

// Valid 是否为已知模式
func (m MeasurementMode) Valid() bool {
	_, ok := measurementModeString[m]
	return ok
}

// ParseMeasurementMode 解析测量模式(不区分大小写)
func ParseMeasurementMode(s string) (MeasurementMode, error) {
	s = strings.TrimSpace(s)
	for m, v := range measurementModeString {
		if strings.EqualFold(s, v.Name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: 测量模式 %q", ErrUnsupportedMode, s)
}
