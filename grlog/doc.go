// Package grlog provides the process-wide logger singleton: one-shot
// initialization of a tee writer (log file plus stdout), with the
// minimum level selected from the GRASIM_LOG environment variable
// (ERROR, WARN, INFO, DEBUG, TRACE; default INFO).
//
// Init is safe to call more than once; every call after the first
// returns the already-built logger and ignores its argument and the
// environment. Writes from concurrent callers are serialized under an
// internal mutex shared by both destinations, so lines from different
// goroutines are never interleaved mid-record.
package grlog
