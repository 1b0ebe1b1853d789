package utils

import (
	"capsim/types"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// CapacitanceUnits 电容单位阶梯，按数量级递减，相邻单位相差 1000 倍
var CapacitanceUnits = []string{"F", "mF", "µF", "nF", "pF"}

// FormatCapacitance 将电容值(F)格式化为最易读的单位
// 数值小于 1 且仍有更小单位时放大 1000 倍并换用下一单位，最多换到 pF；
// 小于 1pF 的值仍以 pF 表示。负值、NaN 和 Inf 返回 ErrInvalidParameter。
func FormatCapacitance(value float64) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return "", fmt.Errorf("%w: 电容值 %v", types.ErrInvalidParameter, value)
	}
	i := 0
	for value < 1 && i < len(CapacitanceUnits)-1 {
		value *= 1000
		i++
	}
	return fmt.Sprintf("Capacitance: %s %s", decimal.NewFromFloat(value).StringFixed(2), CapacitanceUnits[i]), nil
}
