package headercolor_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estrys/fediprofile/internal/headercolor"
	"github.com/estrys/fediprofile/internal/logger/mocks"
	"github.com/estrys/fediprofile/internal/mastodon"
)

func pngBytes(t *testing.T, fill color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
	var buffer bytes.Buffer
	require.NoError(t, png.Encode(&buffer, img))
	return buffer.Bytes()
}

func TestLoader_Load(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	tests := []struct {
		name     string
		account  func(base string) *mastodon.Account
		handler  func(t *testing.T, requests *[]string) http.HandlerFunc
		expected func(base string) *headercolor.Header
		requests []string
	}{
		{
			name: "cross origin allowed",
			account: func(base string) *mastodon.Account {
				return &mastodon.Account{Header: base + "/header.png", HeaderStatic: base + "/header.png"}
			},
			handler: func(t *testing.T, requests *[]string) http.HandlerFunc {
				return func(writer http.ResponseWriter, request *http.Request) {
					*requests = append(*requests, request.URL.Path+" "+request.Header.Get("Origin"))
					writer.Header().Set("Access-Control-Allow-Origin", "*")
					_, _ = writer.Write(pngBytes(t, white))
				}
			},
			expected: func(base string) *headercolor.Header {
				corner := headercolor.Color{R: 255, G: 255, B: 255, A: 1}
				return &headercolor.Header{
					URL:     base + "/header.png",
					Corners: &headercolor.Corners{corner, corner, corner, corner},
				}
			},
			requests: []string{"/header.png https://client.example"},
		},
		{
			name: "falls back to static then to plain request",
			account: func(base string) *mastodon.Account {
				return &mastodon.Account{Header: base + "/header.gif", HeaderStatic: base + "/static.png"}
			},
			handler: func(t *testing.T, requests *[]string) http.HandlerFunc {
				return func(writer http.ResponseWriter, request *http.Request) {
					*requests = append(*requests, request.URL.Path+" "+request.Header.Get("Origin"))
					if request.URL.Path == "/static.png" {
						writer.WriteHeader(http.StatusNotFound)
						return
					}
					_, _ = writer.Write(pngBytes(t, white))
				}
			},
			expected: func(base string) *headercolor.Header {
				return &headercolor.Header{URL: base + "/header.gif"}
			},
			requests: []string{
				"/header.gif https://client.example",
				"/static.png https://client.example",
				"/header.gif ",
			},
		},
		{
			name: "everything fails",
			account: func(base string) *mastodon.Account {
				return &mastodon.Account{Header: base + "/header.png"}
			},
			handler: func(t *testing.T, requests *[]string) http.HandlerFunc {
				return func(writer http.ResponseWriter, request *http.Request) {
					*requests = append(*requests, request.URL.Path+" "+request.Header.Get("Origin"))
					writer.WriteHeader(http.StatusForbidden)
				}
			},
			expected: func(base string) *headercolor.Header { return nil },
			requests: []string{
				"/header.png https://client.example",
				"/header.png ",
			},
		},
		{
			name: "missing header uses avatar",
			account: func(base string) *mastodon.Account {
				return &mastodon.Account{
					Header: base + "/headers/original/missing.png",
					Avatar: base + "/avatar.png",
				}
			},
			handler: func(t *testing.T, requests *[]string) http.HandlerFunc {
				return func(writer http.ResponseWriter, request *http.Request) {
					*requests = append(*requests, request.URL.Path+" "+request.Header.Get("Origin"))
					writer.Header().Set("Access-Control-Allow-Origin", "https://client.example")
					_, _ = writer.Write(pngBytes(t, color.NRGBA{A: 255}))
				}
			},
			expected: func(base string) *headercolor.Header {
				corner := headercolor.Color{A: 0.1}
				return &headercolor.Header{
					URL:      base + "/avatar.png",
					IsAvatar: true,
					Corners:  &headercolor.Corners{corner, corner, corner, corner},
				}
			},
			requests: []string{"/avatar.png https://client.example"},
		},
		{
			name: "no image at all",
			account: func(base string) *mastodon.Account {
				return &mastodon.Account{Header: base + "/missing.png"}
			},
			handler: func(t *testing.T, requests *[]string) http.HandlerFunc {
				return func(writer http.ResponseWriter, request *http.Request) {
					t.Fatal("no request expected")
				}
			},
			expected: func(base string) *headercolor.Header { return nil },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests []string
			server := httptest.NewServer(tt.handler(t, &requests))
			defer server.Close()

			loader := headercolor.NewLoader(server.Client(), "https://client.example", mocks.NewNullLogger())
			header := loader.Load(context.Background(), tt.account(server.URL))

			assert.Equal(t, tt.expected(server.URL), header)
			assert.Equal(t, tt.requests, requests)
		})
	}
}

func TestHeaderImage(t *testing.T) {
	header, headerStatic, isAvatar := headercolor.HeaderImage(&mastodon.Account{
		Header:       "https://files.example/missing.png",
		HeaderStatic: "https://files.example/missing.png",
		Avatar:       "https://files.example/avatar.gif",
		AvatarStatic: "https://files.example/avatar.png",
	})
	assert.Equal(t, "https://files.example/avatar.gif", header)
	assert.Equal(t, "https://files.example/avatar.png", headerStatic)
	assert.True(t, isAvatar)

	header, _, isAvatar = headercolor.HeaderImage(&mastodon.Account{Header: "https://files.example/banner.jpg"})
	assert.Equal(t, "https://files.example/banner.jpg", header)
	assert.False(t, isAvatar)
}
