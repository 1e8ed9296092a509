package platform

// Message is a caption and body shown in a modal box.
type Message struct {
	Caption string
	Body    string
}

// MessageQueue holds the modal boxes waiting to be dismissed, oldest first.
type MessageQueue struct {
	items []Message
}

func (q *MessageQueue) Show(caption, body string) {
	q.items = append(q.items, Message{Caption: caption, Body: body})
}

func (q *MessageQueue) Open() bool { return len(q.items) > 0 }

// Current returns the box on screen.
func (q *MessageQueue) Current() (Message, bool) {
	if len(q.items) == 0 {
		return Message{}, false
	}
	return q.items[0], true
}

// Handle consumes a key while a box is open. Enter, Space and Escape close
// the current box; every other key is swallowed.
func (q *MessageQueue) Handle(k Key) {
	if len(q.items) == 0 {
		return
	}
	switch k {
	case KeyEnter, KeySpace, KeyEscape:
		q.items = q.items[1:]
	}
}
