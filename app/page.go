package app

import (
	"capsim/load"
	"capsim/types"
	"html/template"
)

// pageData 页面数据
type pageData struct {
	Simulations  []string
	Measurements []string
	Form         load.Form
	Label        string
	Chart        string // go-echarts 页面，嵌入 iframe srcdoc
}

var (
	simulationOptions  = []string{types.Charging.Label(), types.Discharging.Label(), types.Impulse.Label()}
	measurementOptions = []string{types.Voltage.String(), types.Current.String(), types.Charge.String()}
)

// pageName 页面模板名
const pageName = "index"

var pageTemplate = template.Must(template.New(pageName).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Plate Capacitor Simulator</title>
</head>
<body>
<h1>Plate Capacitor Simulator</h1>
<form method="post" action="/">
  <label>Area (m²) <input name="area" value="{{.Form.Area}}"></label><br>
  <label>Separation (m) <input name="separation" value="{{.Form.Separation}}"></label><br>
  <label>Permittivity <input name="permittivity" value="{{.Form.Permittivity}}"></label><br>
  <label>Resistance (Ω) <input name="resistance" value="{{.Form.Resistance}}"></label><br>
  <label>Initial voltage (V) <input name="initial_voltage" value="{{.Form.InitialVoltage}}"></label><br>
  <label>Simulation <select name="simulation">
  {{- range .Simulations}}
    <option{{if eq . $.Form.Simulation}} selected{{end}}>{{.}}</option>
  {{- end}}
  </select></label><br>
  <label>Measurement <select name="measurement">
  {{- range .Measurements}}
    <option{{if eq . $.Form.Measurement}} selected{{end}}>{{.}}</option>
  {{- end}}
  </select></label><br>
  <button type="submit">Simulate</button>
</form>
{{- if .Label}}
<p id="capacitance">{{.Label}}</p>
{{- end}}
{{- if .Chart}}
<iframe title="waveform" width="960" height="560" frameborder="0" srcdoc="{{.Chart}}"></iframe>
{{- end}}
</body>
</html>
`))
