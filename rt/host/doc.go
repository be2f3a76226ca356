// Package host connects runtime programs to the operating system.
//
// Every operation takes and returns *str.Str and reports failures through
// rt/fail. Files are read and written whole; commands run through the
// platform shell; time comes from a monotonic clock.
//
// Console output goes through a Console so that it can be redirected:
//
//	c := host.NewConsole(os.Stdout)
//	c.PrintStr(host.Format(str.Lit("{} + {} = {}"), host.I64(1), host.I64(2), host.I64(3)))
//	c.Println()
package host
