/*
 * golox
 *
 * Copyright 2026 golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

/*
isTruthy implements Section 3's truthiness rule: nil and false are
falsey, everything else (including 0 and "") is truthy.
*/
func isTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

/*
isEqual implements Section 3's equality: nil equals only nil, and there
is no implicit conversion between types (a number is never equal to a
string holding its digits).
*/
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}
