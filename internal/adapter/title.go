package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/MKhiriev/go-bangs/internal/config"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/utils"
)

// maxTitleLength caps stored titles to the column limit used by bookmarks.
const maxTitleLength = 255

type httpTitleFetcher struct {
	client       *utils.HTTPClient
	maxBodyBytes int64
	logger       *logger.Logger
}

// NewHTTPTitleFetcher constructs a [TitleFetcher] over a resty client with
// the configured timeout and user agent.
func NewHTTPTitleFetcher(cfg config.Adapter, log *logger.Logger) TitleFetcher {
	client := utils.NewHTTPClient(cfg.TitleFetchTimeout, cfg.UserAgent)
	client.SetHeader("Accept", "text/html,application/xhtml+xml")

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	return &httpTitleFetcher{client: client, maxBodyBytes: maxBody, logger: log}
}

// FetchTitle implements [TitleFetcher]. At most maxBodyBytes of the page are
// read.
func (f *httpTitleFetcher) FetchTitle(ctx context.Context, pageURL string) (string, error) {
	start := time.Now()

	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if ct := resp.Header().Get("Content-Type"); ct != "" {
		mediaType, _, parseErr := mime.ParseMediaType(ct)
		if parseErr == nil && mediaType != "text/html" && mediaType != "application/xhtml+xml" {
			return "", fmt.Errorf("%w: %s", ErrNotHTML, mediaType)
		}
	}

	title, err := ExtractTitle(io.LimitReader(body, f.maxBodyBytes))
	if err != nil {
		return "", err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "httpTitleFetcher.FetchTitle").
		Str("url", pageURL).
		Dur("elapsed", time.Since(start)).
		Msg("fetched page title")

	return title, nil
}

// ExtractTitle returns the first <title> text of an HTML document, falling
// back to the og:title meta property. Whitespace is collapsed.
func ExtractTitle(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)

	var (
		inTitle bool
		title   strings.Builder
		ogTitle string
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return finishTitle(title.String(), ogTitle)
			}
			return "", fmt.Errorf("%w: %w", ErrRequestFailed, z.Err())

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.DataAtom {
			case atom.Title:
				inTitle = true
			case atom.Meta:
				if ogTitle == "" && attr(tok, "property") == "og:title" {
					ogTitle = attr(tok, "content")
				}
			case atom.Body:
				if title.Len() > 0 || ogTitle != "" {
					return finishTitle(title.String(), ogTitle)
				}
			}

		case html.TextToken:
			if inTitle {
				title.Write(z.Text())
			}

		case html.EndTagToken:
			if inTitle {
				if name, _ := z.TagName(); atom.Lookup(name) == atom.Title {
					return finishTitle(title.String(), ogTitle)
				}
			}
		}
	}
}

func finishTitle(title, ogTitle string) (string, error) {
	t := strings.Join(strings.Fields(title), " ")
	if t == "" {
		t = strings.Join(strings.Fields(ogTitle), " ")
	}
	if t == "" {
		return "", ErrNoTitle
	}

	if r := []rune(t); len(r) > maxTitleLength {
		t = string(r[:maxTitleLength])
	}
	return t, nil
}

func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
