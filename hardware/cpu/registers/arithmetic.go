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

package registers

// Add returns the binary sum of a, b and the carry in the given width. The
// result is masked to the width. The returned carry is set if the sum
// overflowed the width and overflow is set if the signed result is invalid.
func Add(a, b uint16, carry bool, w Width) (result uint16, rcarry bool, overflow bool) {
	mask := uint32(w.Mask())
	sign := uint32(w.Sign())
	acc := uint32(a) & mask
	val := uint32(b) & mask

	r := acc + val
	if carry {
		r++
	}

	overflow = ^(acc^val)&(acc^r)&sign != 0
	return uint16(r & mask), r > mask, overflow
}

// Subtract is the binary subtraction used by SBC. The carry flag is the
// inverse of a borrow.
func Subtract(a, b uint16, carry bool, w Width) (result uint16, rcarry bool, overflow bool) {
	return Add(a, ^b, carry, w)
}

// AddDecimal adds a, b and the carry as though both values are binary coded
// decimal.
//
// Each digit is added in turn. If a digit (other than the most significant)
// exceeds nine it is corrected by six and the carry into the next digit is
// forced. Overflow is computed before the most significant digit is corrected
// and the returned carry is taken after the correction.
func AddDecimal(a, b uint16, carry bool, w Width) (result uint16, rcarry bool, overflow bool) {
	mask := int(w.Mask())
	sign := int(w.Sign())
	acc := int(a) & mask
	val := int(b) & mask
	n := w.nibbles()

	r := 0
	if carry {
		r = 1
	}

	for i := 0; i < n; i++ {
		shift := 4 * i
		digit := 0xf << shift
		r = (acc & digit) + (val & digit) + r

		if i < n-1 && r >= 0xa<<shift {
			limit := 0x10 << shift
			r = ((r + (0x6 << shift)) & (limit - 1)) + limit
		}
	}

	overflow = (acc&sign) == (val&sign) && (val&sign) != (r&sign)

	top := 4 * (n - 1)
	if r >= 0xa<<top {
		r += 0x6 << top
	}

	return uint16(r & mask), r > mask, overflow
}

// SubtractDecimal subtracts b and the inverse of the carry from a as though
// both values are binary coded decimal. The operand is complemented before
// the digits are combined and digits that do not produce a carry are
// corrected by six.
func SubtractDecimal(a, b uint16, carry bool, w Width) (result uint16, rcarry bool, overflow bool) {
	mask := int(w.Mask())
	sign := int(w.Sign())
	acc := int(a) & mask
	val := int(^b) & mask
	n := w.nibbles()

	r := 0
	if carry {
		r = 1
	}

	for i := 0; i < n; i++ {
		shift := 4 * i
		digit := 0xf << shift
		r = (acc & digit) + (val & digit) + r

		limit := 0x10 << shift
		if i < n-1 && r < limit {
			d := r - (0x6 << shift)
			if d < 0 {
				r = d & (limit - 1)
			} else {
				r = d & (limit<<1 - 1)
			}
		}
	}

	overflow = (acc&sign) == (val&sign) && (val&sign) != (r&sign)

	top := 4 * (n - 1)
	if r < 0x10<<top {
		r -= 0x6 << top
	}

	return uint16(r & mask), r > mask, overflow
}
