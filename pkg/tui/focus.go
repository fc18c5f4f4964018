package tui

// FocusOutline hides focus indicators until the keyboard is used. While the
// root element carries -noFocusOutline, focused controls render plain; the
// first Tab removes the class for the rest of the element's life.
type FocusOutline struct {
	root     *Element
	listener int
	mounted  bool
}

func NewFocusOutline(root *Element) *FocusOutline {
	return &FocusOutline{root: root}
}

// Mount adds the class and starts listening for Tab. A listener left by an
// earlier Mount is replaced.
func (f *FocusOutline) Mount() {
	if f.mounted {
		f.root.RemoveKeyUpListener(f.listener)
	}
	f.root.AddClass(classNoFocusOutline)
	f.listener = f.root.AddKeyUpListener(f.handleKeyUp)
	f.mounted = true
}

// Unmount removes the listener. The class is left as it is.
func (f *FocusOutline) Unmount() {
	if !f.mounted {
		return
	}
	f.root.RemoveKeyUpListener(f.listener)
	f.mounted = false
}

// Visible reports whether focus indicators should be drawn.
func (f *FocusOutline) Visible() bool {
	return !f.root.HasClass(classNoFocusOutline)
}

func (f *FocusOutline) handleKeyUp(key string) {
	if key == "tab" {
		f.root.RemoveClass(classNoFocusOutline)
	}
}
