package utils

import (
	"capsim/types"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// unitFactor SPICE 数量级后缀
var unitFactor = map[string]float64{
	"T":   1e12,
	"G":   1e9,
	"meg": 1e6,
	"K":   1e3,
	"k":   1e3,
	"m":   1e-3,
	"u":   1e-6,
	"µ":   1e-6,
	"n":   1e-9,
	"p":   1e-12,
	"f":   1e-15,
}

var valueExp = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGKkmuµnpf])?$`)

// ParseValue 解析数值，支持科学计数法与 SPICE 后缀(如 "10k"、"4.7u"、"1meg")
// 结果必须为有限值。
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: 空数值", types.ErrInvalidParameter)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		m := valueExp.FindStringSubmatch(s)
		if m == nil {
			return 0, fmt.Errorf("%w: 无法解析数值 %q", types.ErrInvalidParameter, s)
		}
		if v, err = strconv.ParseFloat(m[1], 64); err != nil {
			return 0, fmt.Errorf("%w: 无法解析数值 %q", types.ErrInvalidParameter, s)
		}
		if m[2] != "" {
			factor, ok := unitFactor[m[2]]
			if !ok {
				return 0, fmt.Errorf("%w: 未知数量级后缀 %q", types.ErrInvalidParameter, m[2])
			}
			v *= factor
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: 数值 %q 不是有限值", types.ErrInvalidParameter, s)
	}
	return v, nil
}
