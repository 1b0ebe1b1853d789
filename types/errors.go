package types

import "errors"

// 核心计算错误
var (
	// ErrInvalidParameter 数值参数违反取值范围(非正、NaN 或 Inf)。
	ErrInvalidParameter = errors.New("参数无效")

	// ErrUnsupportedMode 无法识别的仿真模式/测量模式组合。
	ErrUnsupportedMode = errors.New("不支持的模式")
)
