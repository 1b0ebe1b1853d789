package capacitor

import (
	"capsim/types"
	"fmt"
	"math"
)

// Capacitor 理想平行板电容
// 创建后不可修改，由调用方独占。
type Capacitor struct {
	Area       float64 // 极板面积(m²)
	Separation float64 // 极板间距(m)
}

// New 创建平行板电容，面积和间距必须为正的有限值
func New(area, separation float64) (Capacitor, error) {
	c := Capacitor{Area: area, Separation: separation}
	if err := c.check(); err != nil {
		return Capacitor{}, err
	}
	return c, nil
}

// Capacitance 计算电容值 C = ε₀·εᵣ·A/d (F)
func (c Capacitor) Capacitance(permittivity float64) (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	if err := positive("permittivity", permittivity); err != nil {
		return 0, err
	}
	return types.VacuumPermittivity * permittivity * c.Area / c.Separation, nil
}

// String 网表格式
func (c Capacitor) String() string {
	return fmt.Sprintf("A=%.6g d=%.6g", c.Area, c.Separation)
}

func (c Capacitor) check() error {
	if err := positive("area", c.Area); err != nil {
		return err
	}
	return positive("separation", c.Separation)
}

// Capacitance 由几何尺寸与相对介电常数直接计算电容值
func Capacitance(area, separation, permittivity float64) (float64, error) {
	c, err := New(area, separation)
	if err != nil {
		return 0, err
	}
	return c.Capacitance(permittivity)
}

// positive 检查参数为正的有限值
func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s=%v 必须为正的有限值", types.ErrInvalidParameter, name, v)
	}
	return nil
}
