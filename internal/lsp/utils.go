package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/orta/language-tools/internal/document"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func uriToPath(uri protocol.DocumentUri) (string, error) {
	parsed, err := url.Parse(string(uri))
	if err != nil {
		return "", fmt.Errorf("invalid document URI %q: %w", uri, err)
	}
	if parsed.Scheme != "file" {
		return "", fmt.Errorf("unsupported URI scheme %q", parsed.Scheme)
	}

	path := parsed.Path
	// Windows URIs carry a leading slash before the drive letter. A
	// colon elsewhere in the path is just a file name character.
	if len(path) >= 3 && path[0] == '/' && isDriveLetter(path[1]) && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func pathToURI(path string) protocol.DocumentUri {
	return protocol.DocumentUri("file://" + filepath.ToSlash(path))
}

func fromProtocolPosition(pos protocol.Position) document.Position {
	return document.Position{
		Line:      pos.Line,
		Character: pos.Character,
	}
}

func toProtocolPosition(pos document.Position) protocol.Position {
	return protocol.Position{
		Line:      pos.Line,
		Character: pos.Character,
	}
}
