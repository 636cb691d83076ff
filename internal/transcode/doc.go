// Package transcode toggles the values of a Secret's data map between
// plaintext and base64.
//
// Encode and Decode are deliberately asymmetric. Encode never re-encodes a
// value that already looks encoded, so encoding twice is a no-op. Decode never
// turns a binary payload into text: a value is only decoded when every decoded
// byte is printable ASCII, tab, line feed or carriage return.
//
// Both operations share a single classifier, IsProbablyEncoded, so they stay
// complementary. The classifier accepts the standard base64 alphabet only
// (A-Z, a-z, 0-9, '+', '/') with up to two '=' padding characters; URL-safe
// characters ('-', '_') are treated as plaintext.
//
// Failures are per key. A key that cannot be transcoded is reported in the
// Summary and left untouched, and the remaining keys are still processed. Only
// the values of the data map change; the document's kind, key set and every
// other field are left as they were.
package transcode
