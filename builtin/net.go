package builtin

import (
	"io"
	"net/http"
	"net/url"

	"ari-lang/ast"
	"ari-lang/lexer"
)

// webGetFn issues a GET request, returning the response body as a String
// or Null on any failure (non-2xx status, network error, ...).
func webGetFn(call lexer.Token, args []ast.Value) ast.Value {
	target := expectString(call, args[0], "web_get")
	resp, err := http.Get(target)
	if err != nil {
		return ast.Null()
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ast.Null()
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ast.Null()
	}
	return ast.String(string(body))
}

// webPostFn issues a form-encoded POST request; fields is a flat array of
// alternating key, value Strings.
func webPostFn(call lexer.Token, args []ast.Value) ast.Value {
	target := expectString(call, args[0], "web_post")
	fields := expectArray(call, args[1], "web_post")
	if len(fields)%2 != 0 {
		fatal(call, "web_post: fields array must hold an even number of key/value strings")
	}

	form := url.Values{}
	for i := 0; i+1 < len(fields); i += 2 {
		key := expectString(call, fields[i], "web_post")
		value := expectString(call, fields[i+1], "web_post")
		form.Set(key, value)
	}

	resp, err := http.PostForm(target, form)
	if err != nil {
		return ast.Null()
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ast.Null()
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ast.Null()
	}
	return ast.String(string(body))
}
