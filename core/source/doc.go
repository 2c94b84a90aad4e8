// Package source locates the upstream order exports.
//
// It owns the file-location policy, which the reconcile engine does not know about:
// which data directory to use (a preferred directory, then fallbacks such as ../data)
// or which bucket and prefix to read from when the exports live in object storage.
//
// Both backends implement Fetcher and report a missing export as fs.ErrNotExist,
// which the engine treats as "this source contributes no records".
package source
