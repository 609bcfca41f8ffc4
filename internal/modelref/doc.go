// internal/modelref/doc.go

/*
Package modelref provides a structured representation for model reference
strings found in resourcepack item definitions, based on the canonical
format `namespace:segment/segment`.

A reference is either a regular asset path, e.g. `minecraft:item/bow`,
or a bracketed type marker, e.g. `[type:minecraft:player_head]`, which names a
special handler instead of a model file and is never resolved against the
asset tree.

This package centralizes all normalization and formatting logic so that
resolution and caching work from one canonical form.
*/
package modelref
