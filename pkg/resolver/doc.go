// Package resolver walks an npm package's dependency tree and emits one
// ebuild per package reached.
//
// # Algorithm
//
// For a package name the [Resolver]:
//
//  1. fetches the registry document through its [Fetcher],
//  2. picks the highest published version with [version.SelectMaximum],
//  3. resolves each runtime dependency of that release, in name order,
//     before rendering its own RDEPEND line,
//  4. writes the rendered recipe through its [Sink] unless a recipe is
//     already present at the target path.
//
// The constraint a parent declares is recorded on the child as MinVersion
// but does not influence which version is chosen: the latest release always
// wins.
//
// # Cycles
//
// npm allows dependency cycles. A name that is already being resolved higher
// up the current path is not fetched again; it appears in the tree as a
// [Package] with Cycle set and still contributes its RDEPEND line.
//
// There is no memoization across paths. A package reached twice through
// independent parents is fetched twice and its second recipe write is
// skipped by the existence check.
package resolver
