// Package outfile writes rendered documents to disk.
//
// Writes go to a temporary file in the destination directory and are renamed
// into place while holding an exclusive lock on "<path>.lock", so readers never
// observe a partial document and concurrent runs do not interleave.
package outfile
