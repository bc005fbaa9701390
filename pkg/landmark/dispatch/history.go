package dispatch

// DefaultHistorySize is used when a non-positive size is requested.
const DefaultHistorySize = 32

// Outcome describes what happened to a dispatched command.
type Outcome int

const (
	OutcomeExecuted Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExecuted:
		return "executed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// HistoryEntry is a single dispatched command.
type HistoryEntry struct {
	Command Command
	Outcome Outcome
}

// History is a bounded log of dispatched commands.
// When full, the oldest entry is dropped.
type History struct {
	entries []HistoryEntry
	max     int
}

// NewHistory creates an empty history holding at most max entries.
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &History{
		entries: make([]HistoryEntry, 0, max),
		max:     max,
	}
}

// Push appends an entry, evicting the oldest one if the history is full.
func (h *History) Push(cmd Command, outcome Outcome) {
	if len(h.entries) == h.max {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, HistoryEntry{Command: cmd, Outcome: outcome})
}

// Peek returns the most recent entry without removing it.
// Returns nil if the history is empty.
func (h *History) Peek() *HistoryEntry {
	if len(h.entries) == 0 {
		return nil
	}
	return &h.entries[len(h.entries)-1]
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// IsEmpty returns true if nothing has been recorded.
func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear removes all entries.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}
