// Package crypto exposes the primitives the payment adapter uses to keep
// card numbers out of receipts and logs.
//
// Contents
//
//   - Stable card tokens derived with BLAKE2b-256 (CardToken)
//   - Display masking of card numbers (MaskPAN)
//
// # Notes
//
// Tokens are unkeyed digests and only stand in for the number inside this
// process; they are not a substitute for a processor-issued token.
package crypto
