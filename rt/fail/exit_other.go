//go:build !unix

package fail

// abort() exit status of the Microsoft C runtime.
const abortStatus = 3
