// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different flags
// for each mode.
//
// Arguments are given with NewArgs() and then parsed with Parse(). Modes are
// added with AddSubModes() before the call to Parse(). The first mode is the
// default mode and is used when the first argument is not a mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "DISASM")
//	md.AddAlias("PLAY", "RUN")
//	_, _ = md.Parse()
//
// Mode comparisons are case insensitive and Mode() always returns the upper
// case name. An alias is replaced by the mode it stands for.
//
// Once the mode has been decided NewMode() starts a new layer of flags for the
// remaining arguments:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 6.0, "window scaling")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		run(md.GetArg(0), *scale)
//	}
//
// The -help flag is handled by Parse() for every layer. Help is written to the
// Output field, which must be set for help to be visible.
package modalflag
