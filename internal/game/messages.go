package game

import "strings"

// MsgPriority controls the color of a message in the comms log.
type MsgPriority uint8

const (
	MsgInfo    MsgPriority = iota // cyan
	MsgNav                        // white: course changes and arrivals
	MsgWarning                    // yellow
	MsgContact                    // red: collisions with ships
	MsgLanding                    // green
)

// commsWidth is the widest line the comms panel shows.
const commsWidth = 55

// Message is a single line in the comms log, stamped with the game day.
type Message struct {
	Day      float64
	Text     string
	Priority MsgPriority
}

// MessageLog is a bounded FIFO of messages.
type MessageLog struct {
	Messages []Message
	maxSize  int
}

// NewMessageLog creates a log that keeps the most recent maxSize lines.
func NewMessageLog(maxSize int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add appends text, wrapped to the panel width, evicting the oldest
// lines when full.
func (l *MessageLog) Add(day float64, text string, priority MsgPriority) {
	for _, line := range wrapText(text, commsWidth) {
		msg := Message{Day: day, Text: line, Priority: priority}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// wrapText splits text into lines no longer than maxWidth. A single word
// longer than maxWidth gets a line of its own.
func wrapText(s string, maxWidth int) []string {
	if len(s) <= maxWidth {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(lines, line)
}

// Recent returns the last n messages (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

// MsgPriorityName returns a label for a priority.
func MsgPriorityName(p MsgPriority) string {
	switch p {
	case MsgInfo:
		return "Info"
	case MsgNav:
		return "Nav"
	case MsgWarning:
		return "Warning"
	case MsgContact:
		return "Contact"
	case MsgLanding:
		return "Landing"
	default:
		return "Unknown"
	}
}
