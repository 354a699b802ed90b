// Package cli implements the interactive TaskHub client: a small REPL over
// the gRPC API with a login that persists between runs.
//
// Commands:
//
//	register, login, logout, deleteaccount
//	tags, addtag <name>, deltag <id>
//	tasks, range <start> <end>, filter
//	add, done <id>, undone <id>, rename <id> <title>, deltask <id>
//	help, exit | quit
package cli
