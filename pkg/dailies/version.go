// Package dailies holds build metadata for the dailies module.
package dailies

// Version is the dailies release, printed by `dailies version`.
const Version = "0.1.0"

// Commit is the source revision, set at link time by `mage build`.
var Commit = "unknown"
