// Package pack turns one resourcepack archive into extracted override
// rows. Each scan unpacks the archive into a private temporary workspace,
// walks every JSON file under its assets tree, and resolves model
// references against the same workspace. The workspace never outlives the
// scan, so archives cannot see each other's files.
package pack
