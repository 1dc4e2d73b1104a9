// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// This package fetches package documents from the npm registry
// (https://registry.npmjs.org) or any registry that serves the same JSON
// shape, such as a local Verdaccio mirror.
//
// # Usage
//
//	client := npm.NewClient(npm.DefaultRegistry, 30*time.Second)
//
//	doc, err := client.Fetch(ctx, "express")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, v := range doc.VersionStrings() {
//	    fmt.Println(v, doc.Versions[v].Dependencies.Names())
//	}
//
// # Document
//
// [Client.Fetch] returns the whole [Document]: every published version, not
// just the one tagged "latest" in dist-tags. Picking a version is left to
// the caller. Only runtime "dependencies" are decoded; devDependencies,
// peerDependencies and optionalDependencies are ignored.
//
// # Caching and retries
//
// None. Every call performs exactly one GET.
package npm
