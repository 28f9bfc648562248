// Copyright 2025 go-specfunc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bessel

// window is a rolling view of three consecutive members of a family obeying
//
//	f_{nu-1} = (2 nu / x) f_nu - f_{nu+1},
//
// which both J_nu and, with nu = l + 1/2, the spherical j_l satisfy. The
// recurrence is stable in the downward direction for the minimal solution.
type window struct {
	prev, cur, next float64
	nu              float64 // order of cur
	x               float64
}

func newWindow(x, nu, cur, next float64) window {
	return window{cur: cur, next: next, nu: nu, x: x}
}

// down moves the window one order lower.
func (w *window) down() {
	w.prev = 2*w.nu/w.x*w.cur - w.next
	w.next, w.cur = w.cur, w.prev
	w.nu--
}

// downTo steps the window until its order is nu. If emit is non-nil it is
// called with every newly produced value and its order.
func (w *window) downTo(nu float64, emit func(nu, v float64)) {
	for w.nu > nu {
		w.down()
		if emit != nil {
			emit(w.nu, w.cur)
		}
	}
}
