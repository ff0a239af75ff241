// Package synthfs writes rendered badge artifacts to the output directory.
//
// Files of one batch are first materialised by a synthfs pipeline inside a
// private staging directory next to their destination, then renamed into
// place one by one. A rename within one directory is atomic, so readers of
// the output directory see either the previous file or the complete new one,
// never a partial write. Concurrent writers use separate staging directories.
package synthfs
