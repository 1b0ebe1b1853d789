package waveform

import (
	"capsim/types"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rc 1µF、1kΩ、5V，τ = 1ms
func rc(sim types.SimulationMode, meas types.MeasurementMode) Request {
	return Request{
		Capacitance:    1e-6,
		Resistance:     1e3,
		InitialVoltage: 5,
		Simulation:     sim,
		Measurement:    meas,
	}
}

func TestDischargingVoltage(t *testing.T) {
	req := rc(types.Discharging, types.Voltage)
	f, err := Law(req)
	require.NoError(t, err)
	assert.InDelta(t, 5.00, f(0), 1e-12)
	assert.InDelta(t, 5*math.Exp(-1), f(req.Tau()), 1e-12)
	assert.InDelta(t, 1.8394, f(0.001), 1e-4)

	w, err := Generate(req)
	require.NoError(t, err)
	require.Equal(t, types.DefaultSamples, w.Len())
	assert.Equal(t, 0.0, w.Samples[0].Time)
	assert.InDelta(t, types.DefaultTimeMax, w.Samples[w.Len()-1].Time, 1e-12)
	assert.Equal(t, 5.0, w.Samples[0].Value)
	assert.False(t, w.Discrete)
	// 下溢为 0 之前严格递减，之后保持不增
	for i := 1; i < w.Len(); i++ {
		prev, cur := w.Samples[i-1].Value, w.Samples[i].Value
		if prev > 0 {
			assert.Less(t, cur, prev, "第 %d 点应严格递减", i)
		} else {
			assert.LessOrEqual(t, cur, prev)
		}
	}
}

func TestDischargingStrictlyDecreasingSlowDecay(t *testing.T) {
	req := rc(types.Discharging, types.Voltage)
	req.Resistance = 1e6 // τ = 1s
	w, err := Generate(req)
	require.NoError(t, err)
	for i := 1; i < w.Len(); i++ {
		assert.Less(t, w.Samples[i].Value, w.Samples[i-1].Value)
	}
}

func TestChargingVoltage(t *testing.T) {
	req := rc(types.Charging, types.Voltage)
	w, err := Generate(req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w.Samples[0].Value)
	for i := 1; i < w.Len(); i++ {
		assert.GreaterOrEqual(t, w.Samples[i].Value, w.Samples[i-1].Value)
		assert.LessOrEqual(t, w.Samples[i].Value, 5.0)
	}
	assert.InDelta(t, 5.0, w.Samples[w.Len()-1].Value, 1e-9)
}

func TestCurrentAndCharge(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		at0  float64
	}{
		{"放电电流", rc(types.Discharging, types.Current), 5.0 / 1e3},
		{"放电电荷", rc(types.Discharging, types.Charge), 5.0 * 1e-6},
		{"充电电流", rc(types.Charging, types.Current), 5.0 / 1e3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Law(tt.req)
			require.NoError(t, err)
			assert.InDelta(t, tt.at0, f(0), 1e-15)
			assert.InDelta(t, tt.at0*math.Exp(-1), f(tt.req.Tau()), 1e-15)

			w, err := Generate(tt.req)
			require.NoError(t, err)
			assert.Equal(t, types.DefaultSamples, w.Len())
			assert.Equal(t, tt.at0, w.Samples[0].Value)
		})
	}
}

func TestChargingChargeDiscreteSteps(t *testing.T) {
	req := rc(types.Charging, types.Charge)
	w, err := Generate(req)
	require.NoError(t, err)
	require.Equal(t, 100, w.Len())
	assert.True(t, w.Discrete)
	assert.Equal(t, "Step", w.TimeLabel())
	for i, s := range w.Samples {
		assert.Equal(t, float64(i), s.Time)
		assert.Equal(t, req.Capacitance*float64(i), s.Value)
	}
}

func TestChargingChargeExact(t *testing.T) {
	g, err := NewGenerator(WithExactChargingCharge(true))
	require.NoError(t, err)
	req := rc(types.Charging, types.Charge)
	req.Resistance = 1e6
	w, err := g.Generate(req)
	require.NoError(t, err)
	require.Equal(t, types.DefaultSamples, w.Len())
	assert.False(t, w.Discrete)
	assert.Equal(t, 0.0, w.Samples[0].Value)
	q := req.Capacitance * req.InitialVoltage
	last := w.Samples[w.Len()-1]
	assert.InDelta(t, q*(1-math.Exp(-last.Time)), last.Value, 1e-18)
}

func TestImpulseResponse(t *testing.T) {
	req := rc(types.Impulse, types.Voltage)
	w, err := Generate(req)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w.Samples[0].Value)

	for _, m := range []types.MeasurementMode{types.Current, types.Charge} {
		_, err := Generate(rc(types.Impulse, m))
		require.ErrorIs(t, err, types.ErrUnsupportedMode)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	for _, sim := range []types.SimulationMode{types.Charging, types.Discharging} {
		for _, meas := range []types.MeasurementMode{types.Voltage, types.Current, types.Charge} {
			a, err := Generate(rc(sim, meas))
			require.NoError(t, err)
			b, err := Generate(rc(sim, meas))
			require.NoError(t, err)
			assert.Equal(t, a, b, "%s/%s", sim, meas)
			if len(a.Samples) > 0 {
				assert.NotSame(t, &a.Samples[0], &b.Samples[0], "每次调用应分配新的序列")
			}
		}
	}
}

func TestGenerateConcurrent(t *testing.T) {
	exact, err := NewGenerator(WithExactChargingCharge(true))
	require.NoError(t, err)
	gens := []*Generator{Default(), exact}

	sims := []types.SimulationMode{types.Charging, types.Discharging, types.Impulse}
	want := make(map[[3]int]types.Waveform)
	for gi, g := range gens {
		for _, sim := range sims {
			for _, meas := range []types.MeasurementMode{types.Voltage, types.Current, types.Charge} {
				w, err := g.Generate(rc(sim, meas))
				if err == nil {
					want[[3]int{gi, int(sim), int(meas)}] = w
				}
			}
		}
	}
	require.NotEmpty(t, want)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers*len(want))
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key, w := range want {
				got, err := gens[key[0]].Generate(rc(types.SimulationMode(key[1]), types.MeasurementMode(key[2])))
				if err != nil {
					errs <- err
					continue
				}
				if !assert.Equal(t, w, got, "%v", key) {
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestGenerateInvalid(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Request)
		want error
	}{
		{"电阻为零", func(r *Request) { r.Resistance = 0 }, types.ErrInvalidParameter},
		{"电阻为负", func(r *Request) { r.Resistance = -1 }, types.ErrInvalidParameter},
		{"电容为零", func(r *Request) { r.Capacitance = 0 }, types.ErrInvalidParameter},
		{"电容NaN", func(r *Request) { r.Capacitance = math.NaN() }, types.ErrInvalidParameter},
		{"电压Inf", func(r *Request) { r.InitialVoltage = math.Inf(1) }, types.ErrInvalidParameter},
		{"未知仿真模式", func(r *Request) { r.Simulation = 0 }, types.ErrUnsupportedMode},
		{"未知测量模式", func(r *Request) { r.Measurement = 42 }, types.ErrUnsupportedMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, sim := range []types.SimulationMode{types.Charging, types.Discharging} {
				req := rc(sim, types.Charge)
				tt.edit(&req)
				_, err := Generate(req)
				require.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestNewGenerator(t *testing.T) {
	g, err := NewGenerator(WithTimeMax(1), WithSamples(5000))
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.TimeMax())
	w, err := g.Generate(rc(types.Discharging, types.Voltage))
	require.NoError(t, err)
	assert.Equal(t, 5000, w.Len())
	assert.InDelta(t, 1.0, w.Samples[4999].Time, 1e-12)

	_, err = NewGenerator(WithSamples(1))
	require.ErrorIs(t, err, types.ErrInvalidParameter)
	_, err = NewGenerator(WithTimeMax(0))
	require.ErrorIs(t, err, types.ErrInvalidParameter)
	_, err = NewGenerator(WithTimeMax(math.Inf(1)))
	require.ErrorIs(t, err, types.ErrInvalidParameter)
}
