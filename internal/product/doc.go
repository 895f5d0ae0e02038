// Package product builds products from a type label.
//
// Labels are matched case-insensitively. A label the factory does not know
// yields no product; callers must check the second return value before
// using the result.
package product
