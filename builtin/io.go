package builtin

import (
	"fmt"
	"net/http"
	"os"

	"ari-lang/ast"
	"ari-lang/lexer"
)

// readFileFn returns a file's contents as a String, or Null on any
// failure — the one builtin family (§4.8, §7) allowed to fail silently
// instead of going through the diagnostic facility.
func readFileFn(call lexer.Token, args []ast.Value) ast.Value {
	path := expectString(call, args[0], "read_file")
	data, err := os.ReadFile(path)
	if err != nil {
		return ast.Null()
	}
	return ast.String(string(data))
}

// writeFileFn writes data to path, returning 1 on success and 0 on
// failure.
func writeFileFn(call lexer.Token, args []ast.Value) ast.Value {
	path := expectString(call, args[0], "write_file")
	data := expectString(call, args[1], "write_file")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return ast.Number(0)
	}
	return ast.Number(1)
}

// serveStaticFolderFn blocks the evaluator serving folder as a static
// file site; it never returns on success, only on a fatal bind error.
func serveStaticFolderFn(call lexer.Token, args []ast.Value) ast.Value {
	folder := expectString(call, args[0], "serve_static_folder")
	address := expectString(call, args[1], "serve_static_folder")
	port := expectInt(call, args[2], "serve_static_folder")

	addr := fmt.Sprintf("%s:%d", address, port)
	handler := http.FileServer(http.Dir(folder))
	if err := http.ListenAndServe(addr, handler); err != nil {
		fatal(call, "serve_static_folder: %v", err)
	}
	return ast.Null()
}
