package app

import (
	"bytes"
	"capsim"
	"capsim/chart"
	"capsim/load"
	"capsim/types"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// sampleJSON 采样点
type sampleJSON struct {
	T float64 `json:"t"`
	V float64 `json:"v"`
}

// resultJSON 仿真结果
type resultJSON struct {
	Capacitance float64      `json:"capacitance"`
	Label       string       `json:"label"`
	Simulation  string       `json:"simulation"`
	Measurement string       `json:"measurement"`
	Unit        string       `json:"unit"`
	Tau         float64      `json:"tau"`
	Discrete    bool         `json:"discrete"`
	Samples     []sampleJSON `json:"samples"`
}

func newResultJSON(res *capsim.Result) resultJSON {
	w := res.Waveform
	return resultJSON{
		Capacitance: res.Capacitance,
		Label:       res.Label,
		Simulation:  w.Simulation.String(),
		Measurement: w.Measurement.String(),
		Unit:        w.Unit(),
		Tau:         w.Tau,
		Discrete:    w.Discrete,
		Samples: lo.Map(w.Samples, func(s types.Sample, _ int) sampleJSON {
			return sampleJSON{T: s.Time, V: s.Value}
		}),
	}
}

// errorStatus 错误对应的状态码
func errorStatus(err error) int {
	switch {
	case errors.Is(err, load.ErrMissingField),
		errors.Is(err, types.ErrInvalidParameter),
		errors.Is(err, types.ErrUnsupportedMode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// run 解析表单并仿真
func (s *Server) run(c *gin.Context, form load.Form) (*capsim.Result, bool) {
	req, err := form.Parse()
	if err == nil {
		var res *capsim.Result
		if res, err = s.sim.Simulate(req); err == nil {
			return res, true
		}
	}
	_ = c.Error(err)
	msg := err.Error()
	if errors.Is(err, load.ErrMissingField) {
		msg = load.ErrMissingField.Error()
	}
	if c.ContentType() == gin.MIMEJSON || c.Request.Method == http.MethodGet {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.String(errorStatus(err), msg)
	}
	return nil, false
}

// index 表单页
func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, pageName, pageData{Simulations: simulationOptions, Measurements: measurementOptions})
}

// submit 表单提交，返回电容值与曲线
func (s *Server) submit(c *gin.Context) {
	var form load.Form
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	res, ok := s.run(c, form)
	if !ok {
		return
	}
	var buf bytes.Buffer
	charts := &chart.Charts{Record: chart.NewRecord(res)}
	if err := charts.Render(&buf); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, pageName, pageData{
		Simulations:  simulationOptions,
		Measurements: measurementOptions,
		Form:         form,
		Label:        res.Label,
		Chart:        buf.String(),
	})
}

// simulate JSON 接口
func (s *Server) simulate(c *gin.Context) {
	var form load.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, ok := s.run(c, form)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newResultJSON(res))
}

// plot 静态 PNG 曲线，参数取自查询字符串
func (s *Server) plot(c *gin.Context) {
	var form load.Form
	if err := c.ShouldBindQuery(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, ok := s.run(c, form)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := chart.NewRecord(res).WritePlot(&buf, "png"); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
