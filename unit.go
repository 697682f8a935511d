// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

// Unit is a type not containing any value.
//
// Effect-only transforms (e.g., "create the directory if missing")
// are Func[string, Unit]: they are run for what they do, not for
// what they return.
type Unit struct{}
