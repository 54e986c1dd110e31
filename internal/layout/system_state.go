package layout

import (
	"frt-state-sol/internal/pkg/types"
)

// SystemState 链上布局（变长，取决于 pending 标记）:
// [0]      is_paused(u8)
// [1:9]    pause_timestamp(i64)
// [9]      pause_reason_code(u8)
// [10:42]  admin_authority(32)
// [42]     pending 标记(u8, 仅接受 0/1)
// [43:75]  pending_admin_authority(32)，仅当标记为 1 时存在
// 末尾 8 字节 admin_change_timestamp(i64)
const (
	SystemStateSizeNoPending   = 51 // 标记为 0 时的记录长度
	SystemStateSizeWithPending = 83 // 标记为 1 时的记录长度
)

// SystemState 表示系统全局状态账户快照（暂停开关与管理员信息）。
// 待生效管理员是显式二态：HasPendingAdmin 为 false 时 PendingAdminAuthority 无意义，
// 解码器校验存在性标记而不是默认补零。
type SystemState struct {
	IsPaused              bool         // 系统是否处于暂停态
	PauseTimestamp        int64        // 暂停发生时间（Unix 时间戳）
	PauseReasonCode       uint8        // 暂停原因码
	AdminAuthority        types.Pubkey // 当前管理员
	HasPendingAdmin       bool         // pending 标记
	PendingAdminAuthority types.Pubkey // 待生效管理员，仅 HasPendingAdmin 时有效
	AdminChangeTimestamp  int64        // 管理员变更时间
}

// Size 返回该记录在链上占用的字节数（随 pending 标记变化）。
func (s *SystemState) Size() int {
	if s.HasPendingAdmin {
		return SystemStateSizeWithPending
	}
	return SystemStateSizeNoPending
}

// DecodeSystemState 将账户原始数据解码为 SystemState。
// 这是唯一的变长记录：解码器必须按 pending 标记分支；
// 标记不为 0/1 时返回 ErrInvalidOptionTag。
func DecodeSystemState(data []byte) (*SystemState, error) {
	r := newReader(data)
	s := &SystemState{}
	var err error

	if s.IsPaused, err = r.bool8("is_paused"); err != nil {
		return nil, err
	}
	if s.PauseTimestamp, err = r.i64("pause_timestamp"); err != nil {
		return nil, err
	}
	if s.PauseReasonCode, err = r.u8("pause_reason_code"); err != nil {
		return nil, err
	}
	if s.AdminAuthority, err = r.pubkey("admin_authority"); err != nil {
		return nil, err
	}
	if s.HasPendingAdmin, err = r.optionTag("pending_admin_flag"); err != nil {
		return nil, err
	}
	if s.HasPendingAdmin {
		if s.PendingAdminAuthority, err = r.pubkey("pending_admin_authority"); err != nil {
			return nil, err
		}
	}
	if s.AdminChangeTimestamp, err = r.i64("admin_change_timestamp"); err != nil {
		return nil, err
	}

	return s, nil
}
