// This file is part of Gopher65816.
//
// Gopher65816 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65816 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65816.  If not, see <https://www.gnu.org/licenses/>.

package symbols

import (
	"fmt"
	"sort"
	"strings"
)

// Table maps an address to a symbol. it also keeps track of the widest symbol
// in the Table.
type Table struct {
	entries map[uint32]string

	// index of keys in entries. sortable through the sort.Interface
	idx []uint32

	// the longest symbol in the entries map
	maxWidth int
}

func newTable() *Table {
	return &Table{
		entries: make(map[uint32]string),
		idx:     make([]uint32, 0),
	}
}

func (t Table) String() string {
	s := strings.Builder{}
	for _, a := range t.idx {
		s.WriteString(fmt.Sprintf("$%06x -> %s\n", a, t.entries[a]))
	}
	return s.String()
}

// add symbol to table. if the address already has a symbol it is replaced
// only if prefer is true.
func (t *Table) add(address uint32, symbol string, prefer bool) {
	if _, ok := t.entries[address]; ok {
		if !prefer {
			return
		}
		t.entries[address] = symbol
	} else {
		t.entries[address] = symbol
		t.idx = append(t.idx, address)
		sort.Sort(t)
	}

	if len(symbol) > t.maxWidth {
		t.maxWidth = len(symbol)
	}
}

// merge adds every entry in other table, replacing existing symbols.
func (t *Table) merge(o *Table) {
	for _, a := range o.idx {
		if _, ok := t.entries[a]; !ok {
			t.idx = append(t.idx, a)
		}
		t.entries[a] = o.entries[a]
	}
	sort.Sort(t)
	if o.maxWidth > t.maxWidth {
		t.maxWidth = o.maxWidth
	}
}

// search is case-insensitive.
func (t Table) search(symbol string) (uint32, bool) {
	for _, a := range t.idx {
		if strings.EqualFold(t.entries[a], symbol) {
			return a, true
		}
	}
	return 0, false
}

// nearest returns the highest address in the table that is less than or equal
// to the address.
func (t Table) nearest(address uint32) (uint32, bool) {
	i := sort.Search(len(t.idx), func(i int) bool {
		return t.idx[i] > address
	})
	if i == 0 {
		return 0, false
	}
	return t.idx[i-1], true
}

// Len implements the sort.Interface.
func (t Table) Len() int {
	return len(t.idx)
}

// Less implements the sort.Interface.
func (t Table) Less(i, j int) bool {
	return t.idx[i] < t.idx[j]
}

// Swap implements the sort.Interface.
func (t Table) Swap(i, j int) {
	t.idx[i], t.idx[j] = t.idx[j], t.idx[i]
}
