package jd

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// fetchTimeout bounds a job description download.
const fetchTimeout = 30 * time.Second

// Fetch retrieves a job description named by an intake source: an http(s)
// URL is downloaded and stripped of HTML, anything else is read as a file
// path.
func Fetch(ctx context.Context, source string) (content string, err error) {
	parsed, parseErr := url.Parse(source)
	if parseErr == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") {
		content, err = fetchFromURL(ctx, source)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch job description from URL: %s", source)
			return content, err
		}
		return content, err
	}

	content, err = fetchFromFile(source)
	if err != nil {
		err = errors.Wrapf(err, "failed to read job description file: %s", source)
		return content, err
	}

	return content, err
}

// fetchFromFile reads a job description from disk.
func fetchFromFile(path string) (content string, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		return content, err
	}

	content = strings.TrimSpace(string(data))
	if content == "" {
		err = errors.New("file is empty")
		return content, err
	}

	return content, err
}

// fetchFromURL downloads a job description posting.
func fetchFromURL(ctx context.Context, urlStr string) (content string, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return content, err
	}
	req.Header.Set("User-Agent", "resumegen/1.0")

	client := &http.Client{Timeout: fetchTimeout}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return content, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return content, err
	}

	var body []byte
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return content, err
	}

	content = strings.TrimSpace(stripHTML(string(body)))
	if content == "" {
		err = errors.New("fetched content is empty after processing")
		return content, err
	}

	return content, err
}

// stripHTML reduces an HTML page to its text. Script and style bodies are
// dropped entirely, then remaining tags are removed.
func stripHTML(html string) (text string) {
	text = dropElement(html, "script")
	text = dropElement(text, "style")

	var sb strings.Builder
	inTag := false
	for _, char := range text {
		switch {
		case char == '<':
			inTag = true
		case char == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(char)
		}
	}

	text = sb.String()
	return text
}

// dropElement removes every occurrence of an HTML element and its content.
func dropElement(html, tag string) (result string) {
	result = html
	openTag := "<" + tag
	closeTag := "</" + tag + ">"

	for {
		start := strings.Index(result, openTag)
		if start == -1 {
			break
		}

		end := strings.Index(result[start:], closeTag)
		if end == -1 {
			break
		}

		result = result[:start] + result[start+end+len(closeTag):]
	}

	return result
}
