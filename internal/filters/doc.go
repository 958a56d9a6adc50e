// Package filters undoes the compression wrappers that saved web pages
// commonly come in.
//
// Pages fetched with Content-Encoding, or archived by crawlers, are often
// stored gzip or zlib compressed. Decode recognises both by their magic
// bytes and returns the markup inside:
//
//	markup, enc, err := filters.Decode(data)
//
// Data that is not compressed is returned unchanged with encoding None.
//
// # Limits
//
// Decompressed output is capped at MaxDecodedSize bytes; larger payloads
// fail with ErrTooLarge instead of exhausting memory.
package filters
