package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// NoticeKind identifies which entity fragment a notice carries
type NoticeKind string

const (
	NoticeKindProfile                   NoticeKind = "profile"
	NoticeKindCartridge                 NoticeKind = "cartridge"
	NoticeKindCollectedCartridge        NoticeKind = "collected_cartridge"
	NoticeKindTape                      NoticeKind = "tape"
	NoticeKindCollectedTape             NoticeKind = "collected_tape"
	NoticeKindRule                      NoticeKind = "rule"
	NoticeKindConsoleAchievement        NoticeKind = "console_achievement"
	NoticeKindRuleConsoleAchievement    NoticeKind = "rule_console_achievement"
	NoticeKindAwardedConsoleAchievement NoticeKind = "awarded_console_achievement"
	NoticeKindNotification              NoticeKind = "notification"
)

// Valid checks if a notice kind is known
func (k NoticeKind) Valid() bool {
	switch k {
	case NoticeKindProfile,
		NoticeKindCartridge,
		NoticeKindCollectedCartridge,
		NoticeKindTape,
		NoticeKindCollectedTape,
		NoticeKindRule,
		NoticeKindConsoleAchievement,
		NoticeKindRuleConsoleAchievement,
		NoticeKindAwardedConsoleAchievement,
		NoticeKindNotification:
		return true
	}
	return false
}

// Notice is a decoded, verified notice as published by the decoder onto the
// notice stream. Payload holds the entity fragment for Kind; only the fields
// known when the notice was emitted are present.
type Notice struct {
	Kind        NoticeKind      `json:"kind"`
	Payload     json.RawMessage `json:"payload"`
	InputIndex  uint64          `json:"input_index"`         // index of the dapp input that produced the notice
	NoticeIndex uint64          `json:"notice_index"`        // index of the notice within that input
	Timestamp   *time.Time      `json:"timestamp,omitempty"` // block timestamp of the input, if known
}

// Subject returns the stream subject the notice is published under
func (n *Notice) Subject() string {
	return "notices." + string(n.Kind)
}

// MessageID identifies the notice on the stream. Republishing a notice with
// the same indexes inside the stream's duplicate window is dropped by JetStream.
func (n *Notice) MessageID() string {
	return fmt.Sprintf("notice-%d-%d", n.InputIndex, n.NoticeIndex)
}
