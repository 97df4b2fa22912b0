package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoticeKind_Valid(t *testing.T) {
	assert.True(t, NoticeKindTape.Valid())
	assert.True(t, NoticeKindRuleConsoleAchievement.Valid())
	assert.False(t, NoticeKind("").Valid())
	assert.False(t, NoticeKind("Tape").Valid())
}

func TestNotice_Subject(t *testing.T) {
	n := &Notice{Kind: NoticeKindAwardedConsoleAchievement}
	assert.Equal(t, "notices.awarded_console_achievement", n.Subject())
}

func TestNotice_MessageID(t *testing.T) {
	a := &Notice{Kind: NoticeKindTape, InputIndex: 12, NoticeIndex: 3}
	b := &Notice{Kind: NoticeKindProfile, InputIndex: 12, NoticeIndex: 3}
	c := &Notice{Kind: NoticeKindTape, InputIndex: 1, NoticeIndex: 23}

	assert.Equal(t, "notice-12-3", a.MessageID())
	assert.Equal(t, a.MessageID(), b.MessageID())
	assert.NotEqual(t, a.MessageID(), c.MessageID())
}
