package load

import (
	"bytes"
	"capsim/element/capacitor"
	"capsim/types"
	"capsim/utils"
	"capsim/waveform"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// ErrMissingField 表单字段缺失
var ErrMissingField = errors.New("请填写所有表单字段")

// Form 外部输入(表单、JSON、TOML)，所有字段均为字符串
type Form struct {
	Area           string `form:"area" json:"area" toml:"area" validate:"required"`
	Separation     string `form:"separation" json:"separation" toml:"separation" validate:"required"`
	Permittivity   string `form:"permittivity" json:"permittivity" toml:"permittivity" validate:"required"`
	Resistance     string `form:"resistance" json:"resistance" toml:"resistance" validate:"required"`
	InitialVoltage string `form:"initial_voltage" json:"initial_voltage" toml:"initial_voltage" validate:"required"`
	Simulation     string `form:"simulation" json:"simulation" toml:"simulation" validate:"required"`
	Measurement    string `form:"measurement" json:"measurement" toml:"measurement" validate:"required"`
}

// Request 解析后的强类型仿真请求
type Request struct {
	Capacitor      capacitor.Capacitor
	Permittivity   float64
	Resistance     float64
	InitialVoltage float64
	Simulation     types.SimulationMode
	Measurement    types.MeasurementMode
}

// Waveform 由电容值构造波形请求
func (req Request) Waveform(capacitance float64) waveform.Request {
	return waveform.Request{
		Capacitance:    capacitance,
		Resistance:     req.Resistance,
		InitialVoltage: req.InitialVoltage,
		Simulation:     req.Simulation,
		Measurement:    req.Measurement,
	}
}

var validate = validator.New()

// Validate 检查必填字段
func (f Form) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = fe.Field()
	}
	return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(fields, ", "))
}

// Parse 校验并解析为强类型请求
func (f Form) Parse() (req Request, err error) {
	if err = f.Validate(); err != nil {
		return req, err
	}
	var area, separation float64
	for _, v := range []struct {
		name string
		src  string
		dst  *float64
	}{
		{"area", f.Area, &area},
		{"separation", f.Separation, &separation},
		{"permittivity", f.Permittivity, &req.Permittivity},
		{"resistance", f.Resistance, &req.Resistance},
		{"initial_voltage", f.InitialVoltage, &req.InitialVoltage},
	} {
		if *v.dst, err = utils.ParseValue(v.src); err != nil {
			return Request{}, fmt.Errorf("%s: %w", v.name, err)
		}
	}
	if req.Capacitor, err = capacitor.New(area, separation); err != nil {
		return Request{}, err
	}
	if req.Permittivity <= 0 {
		return Request{}, fmt.Errorf("%w: permittivity=%v 必须为正", types.ErrInvalidParameter, req.Permittivity)
	}
	if req.Resistance <= 0 {
		return Request{}, fmt.Errorf("%w: resistance=%v 必须为正", types.ErrInvalidParameter, req.Resistance)
	}
	if req.Simulation, err = types.ParseSimulationMode(f.Simulation); err != nil {
		return Request{}, err
	}
	if req.Measurement, err = types.ParseMeasurementMode(f.Measurement); err != nil {
		return Request{}, err
	}
	return req, nil
}

// LoadFile 加载 TOML 请求文件
func LoadFile(path string) (Request, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Request{}, err
	}
	return LoadReader(bytes.NewReader(b))
}

// LoadReader 从 TOML 读取请求
func LoadReader(r io.Reader) (Request, error) {
	var f Form
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Request{}, fmt.Errorf("解析请求文件失败: %w", err)
	}
	return f.Parse()
}
