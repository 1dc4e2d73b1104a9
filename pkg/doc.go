// Package pkg provides the libraries behind npm2ebuild.
//
// # Overview
//
// npm2ebuild turns an npm package and everything it depends on into Gentoo
// ebuilds under dev-nodejs/. The pkg directory is organized as:
//
//  1. [version] - Version grammar and ordering (pick the latest release)
//  2. [integrations] - Registry HTTP client ([integrations/npm])
//  3. [resolver] - Recursive dependency walk
//  4. [ebuild] - Recipe rendering and output sinks
//  5. [render/nodelink] - Graphviz export of a resolved tree
//
// Cross-cutting packages: [errors] (coded errors), [observability] (hooks),
// [buildinfo] (version stamping).
//
// # Architecture
//
// The data flow for one run:
//
//	npm registry document
//	         ↓
//	    [version] SelectMaximum (latest version)
//	         ↓
//	    [resolver] (recurse into dependencies, depth first)
//	         ↓
//	    [ebuild] Recipe.Render → Sink.Write
//	         ↓
//	    dev-nodejs/<name>/<name>-<version>.ebuild
//
// # Quick Start
//
//	client := npm.NewClient(npm.DefaultRegistry, 30*time.Second)
//	r := resolver.New(client, ebuild.FileSink{Root: "."}, resolver.Options{})
//
//	root, err := r.Resolve(ctx, "express", "")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(root.Stats())
package pkg
