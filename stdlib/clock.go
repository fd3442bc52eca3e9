/*
 * golox
 *
 * Copyright 2026 golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package stdlib

import (
	"time"

	"devt.de/golox/loxcallable"
)

/*
clock is the single standard-library intrinsic Lox exposes (Section
4.5): arity 0, returns the current wall-clock time in fractional
seconds.
*/
func clock() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

var _ loxcallable.Callable = (*NativeFunc)(nil)
