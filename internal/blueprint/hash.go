package blueprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// InputsHash fingerprints everything a generation depends on: the source
// content, the brand facts, and the caller-pinned settings. A stored
// blueprint whose hash differs from the current inputs needs regeneration.
func InputsHash(req Request) string {
	h := sha256.New()
	fmt.Fprintf(h, "doc=%s\n", req.DocumentID)
	fmt.Fprintf(h, "brand=%s|%s|%s|%s\n", req.Brand.Name, req.Brand.Industry, req.Brand.Tone, req.Brand.Positioning)
	fmt.Fprintf(h, "style=%s\n", req.Style)
	fmt.Fprintf(h, "avoid=%v prefer=%v\n", req.Avoid, req.Prefer)
	fmt.Fprintf(h, "title=%s words=%d\n", req.Analysis.Title, req.Analysis.WordCount)
	for _, s := range req.Analysis.Sections {
		io.WriteString(h, s.ID)
		io.WriteString(h, "\x1f")
		io.WriteString(h, s.Heading)
		io.WriteString(h, "\x1f")
		io.WriteString(h, strings.TrimSpace(s.Body))
		io.WriteString(h, "\x1e")
	}
	return hex.EncodeToString(h.Sum(nil))
}
