// Package rop contains the railway result types: the Error value, the Status
// enumeration and Base/Result[T], which every operation that can succeed or
// fail returns instead of panicking.
//
// Highlights:
// - NewBase/New: validating constructors, Unknown status is rejected
// - Succeed/Fail: constructors that cannot produce an invalid status
// - IsSuccess/IsFailure: exactly one is true for any built result
// - FromMaybe/ToMaybe: move between optional values and results
package rop
