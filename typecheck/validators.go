// SPDX-License-Identifier: GPL-3.0-or-later

package typecheck

import "github.com/bassosimone/argcheck"

func newCheck(name string, fn func(string) bool, failure string) argcheck.Descriptor[bool] {
	return argcheck.Descriptor[bool]{
		Name:     name,
		Func:     argcheck.PureFunc(fn),
		Singular: "value " + failure,
		Plural:   "at least one value " + failure,
	}
}

// ValueIsInt accepts base-10 integers.
func ValueIsInt() argcheck.Descriptor[bool] {
	return newCheck("is-convertible-to-int", IsConvertibleToInt, "is not convertible to int")
}

// ValueIsFloat accepts floating point numbers.
func ValueIsFloat() argcheck.Descriptor[bool] {
	return newCheck("is-convertible-to-float", IsConvertibleToFloat, "is not convertible to float")
}

// ValueIsUUID accepts UUIDs.
func ValueIsUUID() argcheck.Descriptor[bool] {
	return newCheck("is-convertible-to-uuid", IsConvertibleToUUID, "is not convertible to UUID")
}

// ValueIsTruthy accepts truthy values.
func ValueIsTruthy() argcheck.Descriptor[bool] {
	return newCheck("is-truthy", IsTruthy, "is not truthy")
}

// ValueIsFalsy accepts falsy values.
func ValueIsFalsy() argcheck.Descriptor[bool] {
	return newCheck("is-falsy", IsFalsy, "is not falsy")
}

// Register adds every validator in this package to reg.
func Register(reg *argcheck.Registry) error {
	return reg.Register(
		argcheck.CheckEntry("value is convertible to int", ValueIsInt()),
		argcheck.CheckEntry("value is convertible to float", ValueIsFloat()),
		argcheck.CheckEntry("value is convertible to UUID", ValueIsUUID()),
		argcheck.CheckEntry("value is truthy", ValueIsTruthy()),
		argcheck.CheckEntry("value is falsy", ValueIsFalsy()),
	)
}
