package nets

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reusee/classcheck/configs"
	"github.com/reusee/classcheck/modes"
	"github.com/reusee/dscope"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		for addr, want := range map[string]bool{
			"127.0.0.1:10000": true,
			"[::1]:80":        true,
			"10.0.0.8":        true,
			"192.168.1.1:443": true,
			"8.8.8.8:53":      false,
		} {
			got, err := isLocalAddr(addr)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("%s: got %v", addr, got)
			}
		}
	})
}

func TestProxyAddr(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks://127.0.0.1:1")
	dscope.New(
		modes.ForProduction(),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, configs.Schema)
		},
	).Call(func(
		addr ProxyAddr,
		getURL GetProxyURL,
	) {
		if addr != "socks://127.0.0.1:1" {
			t.Fatalf("got %v", addr)
		}
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" {
			t.Fatalf("got %v", u.Scheme)
		}
	})

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		addr ProxyAddr,
	) {
		if addr != "" {
			t.Fatalf("got %v", addr)
		}
	})
}

func TestHTTPClientLocal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "class A { int x; x = 1; }")
	}))
	defer server.Close()

	t.Setenv("ALL_PROXY", "socks5://127.0.0.1:1")
	dscope.New(
		modes.ForProduction(),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, configs.Schema)
		},
	).Call(func(
		client HTTPClient,
	) {
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != "class A { int x; x = 1; }" {
			t.Fatalf("got %q", body)
		}
	})
}
