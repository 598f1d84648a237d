// Package fortune holds the static sixty-stick (六十甲子籤) table and the
// pure lookup used to resolve a locked conversation to its stick content.
package fortune

import "fmt"

// StickCount is the size of the sexagenary cycle.
const StickCount = 60

// Stick is one fortune stick record. Records are read-only; the table is
// fixed at build time and never mutated at runtime.
type Stick struct {
	Number int    `json:"number"`
	Cycle  string `json:"cycle"`
	Poem   string `json:"poem"`
	Advice string `json:"advice"`
}

// Content renders the stick as the reference text embedded into the locked
// persona prompt.
func (s *Stick) Content() string {
	return fmt.Sprintf("第 %d 籤（%s）\n籤詩：%s\n解曰：%s", s.Number, s.Cycle, s.Poem, s.Advice)
}

// Lookup returns the stick for a number in [1,60], nil otherwise.
func Lookup(number int) *Stick {
	if number < 1 || number > StickCount {
		return nil
	}
	return &sticks[number-1]
}
