package layout

import (
	"errors"
	"fmt"
)

// 解码失败的两种根因，通过 errors.Is 判别。
var (
	// ErrTooShort 表示在读取下一个字段前缓冲区已耗尽。
	ErrTooShort = errors.New("buffer too short")
	// ErrInvalidOptionTag 表示 Option 存在性标记不在 {0,1} 范围内。
	ErrInvalidOptionTag = errors.New("invalid option tag")
)

// DecodeError 记录一次账户数据解码失败：失败字段名与该字段的起始偏移。
// 解码器在任何失败路径上都不返回部分填充的记录。
type DecodeError struct {
	Field  string // 失败字段名
	Offset int    // 字段起始偏移（字节）
	Err    error  // ErrTooShort 或 ErrInvalidOptionTag
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newTooShort(field string, offset int) *DecodeError {
	return &DecodeError{Field: field, Offset: offset, Err: ErrTooShort}
}
