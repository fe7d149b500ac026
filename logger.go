package umldraw

import (
	"fmt"
	"io"
	"log"

	"github.com/gregoryv/umldraw/model"
)

func init() {
	log.SetFlags(0) // quiet by default
}

// NewLogger returns a logger with max id len 11 discarding all
// output until SetOutput is called.
func NewLogger() *Logger {
	l := &Logger{
		Logger: log.New(io.Discard, "", log.Flags()),
	}
	l.SetMaxIDLen(11)
	return l
}

type Logger struct {
	*log.Logger
	debug bool
	// node ids
	maxLen uint
}

// SetDebug includes absolute bounds of nodes in each entry.
func (l *Logger) SetDebug(v bool) { l.debug = v }

// SetMaxIDLen configures the logger to trim node ids to number of
// characters. Use 0 to not trim.
func (l *Logger) SetMaxIDLen(max uint) {
	l.maxLen = max
}

// Node logs action on n.
func (l *Logger) Node(action string, n Node) {
	// padded actions align the ids which makes scanning easier
	msg := fmt.Sprintf("%-7s %s", action, l.nodeRef(n))
	if l.debug {
		msg += " " + n.AbsoluteBounds().String()
	}
	l.Print(msg)
}

// Connection logs action on c.
func (l *Logger) Connection(action string, c *Connection) {
	l.Printf("%-7s %s %s -> %s",
		action, c.relation, l.nodeRef(c.source), l.nodeRef(c.target),
	)
}

// Reject logs a relation refused by either end.
func (l *Logger) Reject(rt model.RelationType, source, target Node) {
	l.Printf("%-7s %s %s -> %s",
		"reject", rt, l.nodeRef(source), l.nodeRef(target),
	)
}

func (l *Logger) nodeRef(n Node) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%s %s %q",
		trimID(n.ID().String(), l.maxLen), n.Kind(), nameOf(n),
	)
}

func trimID(s string, width uint) string {
	if v := uint(len(s)); width > 0 && v > width {
		return prefixStr + s[v-width:]
	}
	return s
}

const prefixStr = "~"
