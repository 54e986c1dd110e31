package layout

import (
	"encoding/binary"

	"frt-state-sol/internal/pkg/types"
)

// reader 是账户数据的顺序读取游标。
// 每次读取前都显式校验剩余长度，长度不足立即以字段起始偏移报 ErrTooShort，
// 绝不做越界切片。所有多字节整数均为小端序。
type reader struct {
	buf []byte
	off int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

// consumed 返回已消费的字节数（SystemState 为变长记录，长度依赖 Option 标记）。
func (r *reader) consumed() int {
	return r.off
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) u8(field string) (byte, error) {
	if r.remaining() < 1 {
		return 0, newTooShort(field, r.off)
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

func (r *reader) bool8(field string) (bool, error) {
	v, err := r.u8(field)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func (r *reader) u64(field string) (uint64, error) {
	if r.remaining() < 8 {
		return 0, newTooShort(field, r.off)
	}
	v := binary.LittleEndian.Uint64(r.buf[r.off : r.off+8])
	r.off += 8
	return v, nil
}

func (r *reader) i64(field string) (int64, error) {
	v, err := r.u64(field)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

func (r *reader) pubkey(field string) (types.Pubkey, error) {
	if r.remaining() < 32 {
		return types.Pubkey{}, newTooShort(field, r.off)
	}
	var p types.Pubkey
	copy(p[:], r.buf[r.off:r.off+32])
	r.off += 32
	return p, nil
}

// optionTag 读取 Option 存在性标记，仅接受 0 / 1。
func (r *reader) optionTag(field string) (bool, error) {
	off := r.off
	v, err := r.u8(field)
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &DecodeError{Field: field, Offset: off, Err: ErrInvalidOptionTag}
	}
}
