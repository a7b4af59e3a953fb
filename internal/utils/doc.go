// Package utils holds small helpers shared by the opcalc packages: a
// wall-clock [Timer] for calculation latency and string helpers used when
// input or catalog data ends up in log records.
package utils
