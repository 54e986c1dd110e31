package layout

import (
	"errors"
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frt-state-sol/internal/pkg/types"
)

// systemStateLayout 是 SystemState 的链上布局镜像。
// PendingAdminAuthority 用指针表达 borsh Option：nil → 标记 0，非 nil → 标记 1 + 32 字节。
type systemStateLayout struct {
	IsPaused              bool
	PauseTimestamp        int64
	PauseReasonCode       uint8
	AdminAuthority        [32]byte
	PendingAdminAuthority *[32]byte
	AdminChangeTimestamp  int64
}

func buildSystemStateData(t *testing.T, l systemStateLayout) []byte {
	t.Helper()
	data, err := borsh.Serialize(l)
	require.NoError(t, err)
	return data
}

func TestDecodeSystemState_NoPendingAdmin(t *testing.T) {
	admin := fillPubkey(0xA1)
	data := buildSystemStateData(t, systemStateLayout{
		IsPaused:             true,
		PauseTimestamp:       1_755_000_000,
		PauseReasonCode:      7,
		AdminAuthority:       admin,
		AdminChangeTimestamp: 1_755_000_100,
	})
	// 标记为 0 时记录总长 51 字节
	require.Len(t, data, SystemStateSizeNoPending)

	s, err := DecodeSystemState(data)
	require.NoError(t, err)

	assert.True(t, s.IsPaused)
	assert.Equal(t, int64(1_755_000_000), s.PauseTimestamp)
	assert.Equal(t, uint8(7), s.PauseReasonCode)
	assert.Equal(t, types.Pubkey(admin), s.AdminAuthority)
	assert.False(t, s.HasPendingAdmin)
	assert.True(t, s.PendingAdminAuthority.IsZero())
	assert.Equal(t, int64(1_755_000_100), s.AdminChangeTimestamp)
	assert.Equal(t, SystemStateSizeNoPending, s.Size())
}

func TestDecodeSystemState_WithPendingAdmin(t *testing.T) {
	admin := fillPubkey(0xA1)
	pending := fillPubkey(0xB2)
	data := buildSystemStateData(t, systemStateLayout{
		IsPaused:              false,
		PauseTimestamp:        0,
		PauseReasonCode:       0,
		AdminAuthority:        admin,
		PendingAdminAuthority: &pending,
		AdminChangeTimestamp:  1_756_000_000,
	})
	// 标记为 1 时额外消费 32 字节，记录总长 83 字节
	require.Len(t, data, SystemStateSizeWithPending)

	s, err := DecodeSystemState(data)
	require.NoError(t, err)

	assert.False(t, s.IsPaused)
	assert.True(t, s.HasPendingAdmin)
	assert.Equal(t, types.Pubkey(pending), s.PendingAdminAuthority)
	assert.Equal(t, int64(1_756_000_000), s.AdminChangeTimestamp)
	assert.Equal(t, SystemStateSizeWithPending, s.Size())
}

// 两种分支消费长度不同，但都必须成功解码（变长记录的关键性质）。
func TestDecodeSystemState_VariableLength(t *testing.T) {
	pending := fillPubkey(0xB2)
	without := buildSystemStateData(t, systemStateLayout{AdminAuthority: fillPubkey(0xA1)})
	with := buildSystemStateData(t, systemStateLayout{AdminAuthority: fillPubkey(0xA1), PendingAdminAuthority: &pending})

	assert.Equal(t, 32, len(with)-len(without))

	s1, err := DecodeSystemState(without)
	require.NoError(t, err)
	s2, err := DecodeSystemState(with)
	require.NoError(t, err)
	assert.NotEqual(t, s1.Size(), s2.Size())
}

// 存在性标记只接受 0/1，其它值必须拒绝而不是猜测。
func TestDecodeSystemState_InvalidOptionTag(t *testing.T) {
	data := buildSystemStateData(t, systemStateLayout{AdminAuthority: fillPubkey(0xA1)})
	data[42] = 2 // pending 标记位于偏移 42

	s, err := DecodeSystemState(data)
	assert.Nil(t, s)
	require.ErrorIs(t, err, ErrInvalidOptionTag)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "pending_admin_flag", de.Field)
	assert.Equal(t, 42, de.Offset)
}

func TestDecodeSystemState_TruncatedAtEveryOffset(t *testing.T) {
	pending := fillPubkey(0xB2)
	cases := map[string][]byte{
		"no_pending":   buildSystemStateData(t, systemStateLayout{AdminAuthority: fillPubkey(0xA1)}),
		"with_pending": buildSystemStateData(t, systemStateLayout{AdminAuthority: fillPubkey(0xA1), PendingAdminAuthority: &pending}),
	}

	for name, data := range cases {
		for size := 0; size < len(data); size++ {
			s, err := DecodeSystemState(data[:size])
			if s != nil {
				t.Fatalf("%s size=%d: expected nil state, got %+v", name, size, s)
			}
			if !errors.Is(err, ErrTooShort) {
				t.Fatalf("%s size=%d: expected ErrTooShort, got %v", name, size, err)
			}
		}
	}
}
