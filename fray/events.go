package fray

// Result kinds for a single call to ResolveAction.
const (
	RESULT_RESOLVED = iota + 1
	RESULT_REJECTED
	RESULT_GAMEOVER
	RESULT_TERMINAL
)

// Reason tags for rejected actions. Rejections never mutate the battle
// beyond an error log line.
const (
	REASON_NONE          = ""
	REASON_INVALID_INDEX = "invalid-index"
	REASON_NO_PP         = "no-pp"
	REASON_TERMINAL      = "battle-over"
)

// ActionRecord is the structured per-action event emitted alongside the
// human-readable log. One record is appended per resolution attempt; an
// external collector can serialize the slice as-is.
type ActionRecord struct {
	Round int    `json:"round"`
	Side  string `json:"side"`
	// Move is empty when the action never produced a move attempt
	Move   string `json:"move,omitempty"`
	Hit    bool   `json:"hit"`
	Damage int    `json:"damage"`
	HpA    int    `json:"hp_a"`
	HpB    int    `json:"hp_b"`
	Reason string `json:"reason,omitempty"`
}

// ActionResult reports what a single ResolveAction call did. The battle
// itself is mutated in place; this is the caller-facing summary.
type ActionResult struct {
	Kind   int
	Reason string
	Record ActionRecord
}

func (r ActionResult) Rejected() bool {
	return r.Kind == RESULT_REJECTED || r.Kind == RESULT_TERMINAL
}
