package state

// NoticeLevel is the severity of a notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeError
)

// Notice is a transient, non-blocking message.
type Notice struct {
	ID    uint64
	Level NoticeLevel
	Text  string
}

// Notices is a bounded stack of visible notices, oldest first.
type Notices struct {
	Items  []Notice
	Max    int
	nextID uint64
}

// Push adds a notice and returns its id. The oldest notice is dropped when full.
func (n *Notices) Push(level NoticeLevel, text string) uint64 {
	n.nextID++
	n.Items = append(n.Items, Notice{ID: n.nextID, Level: level, Text: text})
	if n.Max > 0 && len(n.Items) > n.Max {
		n.Items = append([]Notice(nil), n.Items[len(n.Items)-n.Max:]...)
	}
	return n.nextID
}

// Expire removes the notice with id, if it is still visible.
func (n *Notices) Expire(id uint64) {
	for i, item := range n.Items {
		if item.ID == id {
			n.Items = append(n.Items[:i], n.Items[i+1:]...)
			return
		}
	}
}

// Latest returns the most recent notice.
func (n *Notices) Latest() (Notice, bool) {
	if len(n.Items) == 0 {
		return Notice{}, false
	}
	return n.Items[len(n.Items)-1], true
}
