package chart

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// 图片默认尺寸
const (
	PlotWidth  = 8 * vg.Inch
	PlotHeight = 5 * vg.Inch
)

// Plot 构建静态图
func (r *Record) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.Title + "  " + r.Label
	p.X.Label.Text = r.XLabel
	p.Y.Label.Text = r.YLabel
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, r.Len())
	for i := range xys {
		xys[i].X, xys[i].Y = r.Time[i], r.Value[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("创建曲线失败: %w", err)
	}
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add(r.Simulation, line)
	return p, nil
}

// WritePlot 以指定格式(png、svg、pdf 等)输出静态图
func (r *Record) WritePlot(w io.Writer, format string) error {
	p, err := r.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(PlotWidth, PlotHeight, strings.ToLower(format))
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SavePlot 保存静态图，格式由扩展名决定
func (r *Record) SavePlot(filename string) error {
	if filepath.Ext(filename) == "" {
		return fmt.Errorf("文件 %s 缺少扩展名", filename)
	}
	p, err := r.Plot()
	if err != nil {
		return err
	}
	return p.Save(PlotWidth, PlotHeight, filename)
}
