// Package resolver maps normalized model references to candidate asset
// files inside an extracted resourcepack tree. Resolution is best-effort:
// a reference that matches nothing yields zero candidates and never an
// error, and a reference may legitimately match several files.
//
// The Resolver interface decouples lookup from storage so a scan can wrap
// the filesystem implementation with a per-archive cache.
package resolver
