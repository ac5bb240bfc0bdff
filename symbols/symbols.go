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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/logger"
)

// Sentinal error patterns.
const (
	FileError  = "symbols: %v"
	ParseError = "symbols: line %d: %v"
)

// Format of a symbols file.
type Format int

// List of valid Format values.
const (
	FormatAuto Format = iota
	FormatWLA
	FormatMesen
	FormatBsnes
	FormatAsar
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatWLA:
		return "WLA-DX"
	case FormatMesen:
		return "Mesen"
	case FormatBsnes:
		return "bsnes"
	case FormatAsar:
		return "Asar"
	}
	return ""
}

// Symbols is the collection of address labels for a program.
type Symbols struct {
	crit  sync.Mutex
	table *Table
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
func NewSymbols() *Symbols {
	return &Symbols{
		table: newTable(),
	}
}

func (sym *Symbols) String() string {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.table.String()
}

// Len returns the number of symbols.
func (sym *Symbols) Len() int {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.table.Len()
}

// Clear all symbols.
func (sym *Symbols) Clear() {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	sym.table = newTable()
}

// Add a symbol for the address. An existing symbol for the address is
// replaced. Returns false if the symbol is not a valid label.
func (sym *Symbols) Add(address uint32, symbol string) bool {
	if !validLabel(symbol) {
		return false
	}
	sym.crit.Lock()
	defer sym.crit.Unlock()
	sym.table.add(address&0xffffff, symbol, true)
	return true
}

// Lookup returns the symbol for the address.
func (sym *Symbols) Lookup(address uint32) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	s, ok := sym.table.entries[address&0xffffff]
	return s, ok
}

// Search returns the address of the symbol. Matching is case-insensitive.
func (sym *Symbols) Search(symbol string) (uint32, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.table.search(symbol)
}

// FormatAddress returns the symbol for the address if there is one. Otherwise,
// if there is a symbol no more than maxOffset bytes before the address the
// symbol is returned with the offset. eg. Reset+$4
//
// If neither applies the address is returned as a hex number.
func (sym *Symbols) FormatAddress(address uint32, maxOffset uint32) string {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	address &= 0xffffff

	if s, ok := sym.table.entries[address]; ok {
		return s
	}

	if a, ok := sym.table.nearest(address); ok {
		if address-a <= maxOffset {
			return fmt.Sprintf("%s+$%x", sym.table.entries[a], address-a)
		}
	}

	return fmt.Sprintf("$%06x", address)
}

// List writes every symbol in address order.
func (sym *Symbols) List(output io.Writer) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	for _, a := range sym.table.idx {
		fmt.Fprintf(output, "$%06x  %-*s\n", a, sym.table.maxWidth, sym.table.entries[a])
	}
}

// ReadFile adds the symbols in the named file. The format of the file is
// detected automatically.
func (sym *Symbols) ReadFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	defer f.Close()

	format := FormatAuto
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mlb":
		format = FormatMesen
	case ".asm", ".s":
		format = FormatAsar
	}

	return sym.Read(f, format)
}

// Read adds the symbols from the io.Reader. If format is FormatAuto then the
// format is detected from the content.
//
// Lines that can not be parsed are skipped. If an error is returned then no
// symbols from the io.Reader have been added.
func (sym *Symbols) Read(r io.Reader, format Format) error {
	lines := make([]string, 0, 256)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return curated.Errorf(ParseError, len(lines)+1, err)
	}

	if format == FormatAuto {
		format = DetectFormat(lines)
	}

	scratch := newTable()

	switch format {
	case FormatWLA:
		readWLA(scratch, lines)
	case FormatMesen:
		readMesen(scratch, lines)
	case FormatAsar:
		readAsar(scratch, lines)
	default:
		readBsnes(scratch, lines)
	}

	sym.crit.Lock()
	defer sym.crit.Unlock()
	sym.table.merge(scratch)

	return nil
}

// DetectFormat looks for the distinguishing features of each symbols file
// format. FormatBsnes is returned if nothing else is found.
func DetectFormat(lines []string) Format {
	asar := false
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if strings.EqualFold(l, "[labels]") {
			return FormatWLA
		}
		if strings.HasPrefix(l, "PRG:") {
			return FormatMesen
		}
		if strings.HasPrefix(l, "#_") {
			asar = true
		}
	}
	if asar {
		return FormatAsar
	}
	return FormatBsnes
}

// comments in all formats begin with a semi-colon. bsnes files also allow a
// hash.
func ignore(l string) bool {
	return l == "" || l[0] == ';' || l[0] == '#'
}

func skipped(format Format, line int, l string) {
	logger.Logf(logger.Allow, "symbols", "%s: line %d: skipped (%s)", format, line, l)
}

func readWLA(t *Table, lines []string) {
	inLabels := false

	for i, l := range lines {
		l = strings.TrimSpace(l)
		if ignore(l) {
			continue // for loop
		}

		if l[0] == '[' {
			inLabels = strings.EqualFold(l, "[labels]")
			continue // for loop
		}

		if !inLabels {
			continue // for loop
		}

		// bank:offset label
		p := strings.Fields(l)
		if len(p) < 2 || !validLabel(p[1]) {
			skipped(FormatWLA, i+1, l)
			continue // for loop
		}

		bo := strings.Split(p[0], ":")
		if len(bo) != 2 || len(bo[0]) != 2 || len(bo[1]) != 4 {
			skipped(FormatWLA, i+1, l)
			continue // for loop
		}

		bank, err := strconv.ParseUint(bo[0], 16, 8)
		if err != nil {
			skipped(FormatWLA, i+1, l)
			continue // for loop
		}
		offset, err := strconv.ParseUint(bo[1], 16, 16)
		if err != nil {
			skipped(FormatWLA, i+1, l)
			continue // for loop
		}

		t.add(uint32(bank)<<16|uint32(offset), p[1], true)
	}
}

func readMesen(t *Table, lines []string) {
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if ignore(l) {
			continue // for loop
		}

		// PRG:address:label or address:label. Mesen allows a trailing comment
		// after a third colon. other memory types (SnesWorkRam: etc.) are
		// offsets into that memory and not CPU addresses
		p := strings.Split(strings.TrimPrefix(l, "PRG:"), ":")
		if len(p) < 2 {
			skipped(FormatMesen, i+1, l)
			continue // for loop
		}

		address, ok := ParseAddress(p[0])
		label := strings.TrimSpace(p[1])
		if !ok || !validLabel(label) {
			skipped(FormatMesen, i+1, l)
			continue // for loop
		}

		t.add(address, label, true)
	}
}

func readBsnes(t *Table, lines []string) {
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if ignore(l) || l[0] == '[' {
			continue // for loop
		}

		p := strings.Fields(l)
		if len(p) < 2 || len(p[0]) != 6 || !validLabel(p[1]) {
			skipped(FormatBsnes, i+1, l)
			continue // for loop
		}

		address, ok := ParseAddress(p[0])
		if !ok {
			skipped(FormatBsnes, i+1, l)
			continue // for loop
		}

		t.add(address, p[1], true)
	}
}

var (
	asarAddress = regexp.MustCompile(`^#_([0-9A-Fa-f]{6}):`)
	asarLabel   = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*):`)
	asarLocal   = regexp.MustCompile(`^(\.[A-Za-z_][A-Za-z0-9_]*)`)
)

// Asar listings interleave label definitions with address lines of the form
// #_008000: and a label takes the address of the next address line. local
// labels are qualified by the preceding global label, eg. Reset.loop
func readAsar(t *Table, lines []string) {
	var global string
	var pending string

	for _, l := range lines {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" || trimmed[0] == ';' {
			continue // for loop
		}

		if m := asarAddress.FindStringSubmatch(l); m != nil {
			if pending != "" {
				if address, ok := ParseAddress(m[1]); ok {
					t.add(address, pending, true)
				}
				pending = ""
			}
		}

		if l[0] != ' ' && l[0] != '\t' && l[0] != '#' {
			if m := asarLabel.FindStringSubmatch(l); m != nil {
				global = m[1]
				pending = global
			}
		}

		if m := asarLocal.FindStringSubmatch(trimmed); m != nil {
			pending = global + m[1]
		}
	}
}

// ParseAddress parses a hex address of up to six digits. The address may be
// prefixed with $ or 0x and may have a trailing colon.
func ParseAddress(s string) (uint32, bool) {
	s = strings.TrimPrefix(s, "$")
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	s = strings.TrimSuffix(s, ":")

	if s == "" || len(s) > 6 {
		return 0, false
	}

	a, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}

	return uint32(a), true
}

// a label begins with a letter, underscore or period and contains only
// letters, digits, underscores and periods.
func validLabel(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '.' || unicode.IsLetter(r) {
			continue // for loop
		}
		if i > 0 && unicode.IsDigit(r) {
			continue // for loop
		}
		return false
	}
	return true
}
