// Package ebuild renders Gentoo ebuilds for npm packages and writes them into
// an overlay-style tree.
//
// # Layout
//
// Every recipe lives under the [Category] directory, keyed by package name:
//
//	dev-nodejs/<name>/<name>-<version>.ebuild
//
// A trailing npm revision ("-<digits>") is dropped from the file name by
// [StripRevision]. Such versions also omit the MY_PV/SRC_URI/S block from the
// recipe body, because the tarball name no longer matches the ebuild version.
//
// # Dependencies
//
// npm constraints are reduced to a plain lower bound by [CleanConstraint],
// which deletes the characters ~ = > and <. A constraint of "*" becomes an
// unversioned atom:
//
//	DependencyLine("debug", "*")      // "       dev-nodejs/debug\n"
//	DependencyLine("debug", "2.6.9")  // "       >=dev-nodejs/debug-2.6.9\n"
//
// # Sinks
//
// [FileSink] writes recipes below a root directory. [DryRunSink] reports the
// same existence checks against disk but prints recipes instead of writing
// them, and treats anything it already printed as existing.
package ebuild
