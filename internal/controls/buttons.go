package controls

import "fmt"

// Buttons is a radio group: exactly one button is active at a time.
type Buttons struct {
	labels   []string
	active   int
	onChange func(int)
}

// NewButtons creates a group with the given labels and initial selection.
func NewButtons(labels []string, active int, onChange func(int)) (*Buttons, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("button group needs at least one label")
	}
	if active < 0 || active >= len(labels) {
		return nil, fmt.Errorf("active button %d out of range [0, %d)", active, len(labels))
	}
	return &Buttons{
		labels:   labels,
		active:   active,
		onChange: onChange,
	}, nil
}

// Len returns the number of buttons.
func (b *Buttons) Len() int {
	return len(b.labels)
}

// Label returns the label of button i.
func (b *Buttons) Label(i int) string {
	return b.labels[i]
}

// Active returns the index of the active button.
func (b *Buttons) Active() int {
	return b.active
}

// Press activates button i. onChange fires only when the selection
// actually changes. It reports whether it did; out-of-range presses are
// ignored.
func (b *Buttons) Press(i int) bool {
	if i < 0 || i >= len(b.labels) || i == b.active {
		return false
	}
	b.active = i
	if b.onChange != nil {
		b.onChange(i)
	}
	return true
}
