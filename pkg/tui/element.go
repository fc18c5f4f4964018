package tui

import (
	"strings"
	"sync"
)

// KeyUpListener receives the name of every released key, as reported by
// tea.KeyMsg.String.
type KeyUpListener func(key string)

// Element is the root of a rendered calendar. It carries the root classes
// and the key listeners registered against it.
type Element struct {
	mu        sync.Mutex
	classes   []string
	listeners map[int]KeyUpListener
	nextID    int
}

// NewElement returns an element with the given classes.
func NewElement(classes ...string) *Element {
	e := &Element{listeners: map[int]KeyUpListener{}}
	for _, c := range classes {
		e.AddClass(c)
	}
	return e
}

func (e *Element) HasClass(class string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.indexOf(class) >= 0
}

func (e *Element) AddClass(class string) {
	if class == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.indexOf(class) < 0 {
		e.classes = append(e.classes, class)
	}
}

func (e *Element) RemoveClass(class string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i := e.indexOf(class); i >= 0 {
		e.classes = append(e.classes[:i], e.classes[i+1:]...)
	}
}

// Classes returns a copy of the class list in insertion order.
func (e *Element) Classes() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.classes...)
}

// ClassName joins the classes with spaces.
func (e *Element) ClassName() string {
	return strings.Join(e.Classes(), " ")
}

func (e *Element) indexOf(class string) int {
	for i, c := range e.classes {
		if c == class {
			return i
		}
	}
	return -1
}

// AddKeyUpListener registers l and returns its handle.
func (e *Element) AddKeyUpListener(l KeyUpListener) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextID
	e.nextID++
	e.listeners[id] = l
	return id
}

// RemoveKeyUpListener drops the listener registered under id.
func (e *Element) RemoveKeyUpListener(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.listeners, id)
}

// ListenerCount is the number of registered key listeners.
func (e *Element) ListenerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}

// DispatchKeyUp calls every listener with key. Listeners may add or remove
// listeners while being called.
func (e *Element) DispatchKeyUp(key string) {
	e.mu.Lock()
	ls := make([]KeyUpListener, 0, len(e.listeners))
	for id := 0; id < e.nextID; id++ {
		if l, ok := e.listeners[id]; ok {
			ls = append(ls, l)
		}
	}
	e.mu.Unlock()

	for _, l := range ls {
		l(key)
	}
}
