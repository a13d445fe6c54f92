// This file is part of trs80tape.
//
// trs80tape is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// trs80tape is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with trs80tape.  If not, see <https://www.gnu.org/licenses/>.

// Package annotation describes geometric hints that can be drawn over a
// waveform by a renderer. Nothing in the decoders consumes annotations, they
// are purely an output for debugging.
package annotation

import "fmt"

// Annotation is implemented by all annotation types.
type Annotation interface {
	fmt.Stringer
	annotation()
}

// Point marks a single sample.
type Point struct {
	Frame int
	Value int
}

func (Point) annotation() {}

func (a Point) String() string {
	return fmt.Sprintf("point %d at %d", a.Value, a.Frame)
}

// HorizontalLine marks an amplitude across a range of frames.
type HorizontalLine struct {
	Value float64
	Left  int
	Right int
}

func (HorizontalLine) annotation() {}

func (a HorizontalLine) String() string {
	return fmt.Sprintf("horizontal line %.1f from %d to %d", a.Value, a.Left, a.Right)
}

// VerticalLine marks a frame.
type VerticalLine struct {
	Frame int
}

func (VerticalLine) annotation() {}

func (a VerticalLine) String() string {
	return fmt.Sprintf("vertical line at %d", a.Frame)
}

// Label names a span of frames. Detail labels are fine-grained, for example
// individual bits, and a renderer may choose to only show them when zoomed in.
type Label struct {
	Text   string
	Left   int
	Right  int
	Detail bool
}

func (Label) annotation() {}

func (a Label) String() string {
	return fmt.Sprintf("label %q from %d to %d", a.Text, a.Left, a.Right)
}

// List collects annotations. A nil List discards everything added to it so
// that callers who are not interested in annotations pay nothing for them.
type List struct {
	items []Annotation
}

// Add annotations to the list.
func (l *List) Add(a ...Annotation) {
	if l == nil {
		return
	}
	l.items = append(l.items, a...)
}

// Items returns the annotations in the order they were added.
func (l *List) Items() []Annotation {
	if l == nil {
		return nil
	}
	return l.items
}

// Labels returns only the Label annotations in the list.
func (l *List) Labels() []Label {
	if l == nil {
		return nil
	}
	var labels []Label
	for _, a := range l.items {
		if lb, ok := a.(Label); ok {
			labels = append(labels, lb)
		}
	}
	return labels
}
