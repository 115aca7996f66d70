package captions

import (
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"strings"
)

// timedtext is the XML document the caption content endpoint serves:
//
//	<transcript>
//	  <text start="1.2" dur="3.4">Hello &amp; welcome</text>
//	</transcript>
type timedtext struct {
	XMLName xml.Name        `xml:"transcript"`
	Texts   []timedtextText `xml:"text"`
}

type timedtextText struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Body  string  `xml:",chardata"`
}

func decodeTimedText(r io.Reader) ([]Segment, error) {
	var doc timedtext
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode timedtext: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Texts))
	for _, entry := range doc.Texts {
		// Track bodies arrive double-escaped: the XML decoder leaves
		// entities like &amp;#39; half-decoded.
		text := strings.TrimSpace(html.UnescapeString(entry.Body))
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Start: entry.Start,
			Dur:   entry.Dur,
			Text:  text,
		})
	}
	return segments, nil
}
