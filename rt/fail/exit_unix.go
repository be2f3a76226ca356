//go:build unix

package fail

// 128 + SIGABRT, what a shell reports for abort().
const abortStatus = 134
