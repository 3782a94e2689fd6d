// Package crypto exposes the minimal primitives used by tokenbox.
//
// Contents
//
//   - X25519 box key generation, sealing and opening (GenerateBoxKeyPair,
//     Seal, Open) on top of nacl/box
//   - Ed25519 signing key generation, signing and verification
//     (GenerateSigningKeyPair, SignEd25519, VerifyEd25519)
//   - Hex and UTF-8 text conversions (HexEncode, HexDecode, TextToBytes,
//     BytesToText)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Box and signing keys are distinct fixed-size types from internal/domain and
// cannot be passed for one another. Callers should treat returned secrets as
// sensitive and rely on Wipe when practical to reduce lifetime in memory.
package crypto
