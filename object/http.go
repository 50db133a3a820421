/*
File    : lox-mix/object/http.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPClient is the proxy value returned by the `requests()` builtin.
// Its only method is `.get(url)`, exposed through the same
// container-with-methods dispatch the rest of this package uses.
type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: 15 * time.Second}}
}

func (c *HTTPClient) Type() Type       { return HTTPType }
func (c *HTTPClient) ToString() string { return "<requests client>" }
func (c *HTTPClient) ToObject() string { return c.ToString() }

// Method exposes `.get(url)`.
func (c *HTTPClient) Method(name string) (*Builtin, bool) {
	if name != "get" {
		return nil, false
	}
	return NewBuiltin("get", 1, func(args []Value) (Value, error) {
		url, ok := args[0].(*String)
		if !ok {
			return nil, fmt.Errorf("requests.get: url must be a string")
		}
		return c.get(url.Value)
	}), true
}

// get performs the GET. The response body is parsed as JSON if
// possible; otherwise the scalar fields (status, headers, text) are
// exposed as a hash.
func (c *HTTPClient) get(url string) (Value, error) {
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("requests.get failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("requests.get: failed to read response body: %w", err)
	}

	if v, ok := tryDecodeJSON(body); ok {
		return v, nil
	}

	h := NewHash()
	h.Set(NewString("status"), &Integer{Value: int64(resp.StatusCode)})
	h.Set(NewString("text"), NewString(string(body)))

	headers := NewHash()
	for k, v := range resp.Header {
		headers.Set(NewString(k), NewString(strings.Join(v, ", ")))
	}
	h.Set(NewString("headers"), headers)
	return h, nil
}

// tryDecodeJSON decodes body into a Lox value tree (Hash/Array/
// scalar), or reports ok=false if it is not valid JSON at all.
func tryDecodeJSON(body []byte) (Value, bool) {
	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, false
	}
	return jsonToValue(decoded), true
}

// JSONToValue converts a decoded `encoding/json` value tree into a Lox
// value tree; exported so the json_decode built-in can share the same
// conversion the HTTP client uses for response bodies.
func JSONToValue(v interface{}) Value { return jsonToValue(v) }

func jsonToValue(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return NilValue
	case bool:
		return BoolOf(t)
	case float64:
		if t == float64(int64(t)) {
			return &Integer{Value: int64(t)}
		}
		return &Float{Value: t}
	case string:
		return NewString(t)
	case []interface{}:
		elems := make([]Value, len(t))
		for i, e := range t {
			elems[i] = jsonToValue(e)
		}
		return NewArray(elems)
	case map[string]interface{}:
		h := NewHash()
		for k, e := range t {
			h.Set(NewString(k), jsonToValue(e))
		}
		return h
	default:
		return NilValue
	}
}
