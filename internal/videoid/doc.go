// Package videoid resolves YouTube video identifiers from the URL shapes
// users paste: watch URLs, short links, embeds, legacy /v/ paths, shorts and
// live URLs, or a bare identifier. Resolution is pure string matching; no
// network access happens here.
package videoid
