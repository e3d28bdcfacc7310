// Package constants provides shared constants used throughout the figurines codebase.
// This includes the on-disk layout of a project, file permissions, and image limits
// that must stay consistent between the store, the asset manager and the CLI.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Project layout constants, relative to the project root.
// Stored paths always use forward slashes.
const (
	// DataDir holds the collection document
	DataDir = "data"

	// CollectionFileName is the name of the collection document inside DataDir
	CollectionFileName = "collection.json"

	// ImagesDir is the parent of both managed image directories
	ImagesDir = "images"

	// FullImagesDir holds full-resolution copies, relative to the project root
	FullImagesDir = "images/full"

	// ThumbnailsDir holds derived thumbnails, relative to the project root
	ThumbnailsDir = "images/thumbnails"

	// DefaultConfigName is the config file name searched in $HOME and the working directory
	DefaultConfigName = ".figurines"
)

// Document constants
const (
	// JSONIndent is the indentation used when writing the collection document
	JSONIndent = "  "
)

// Image constants
const (
	// ThumbnailMaxWidth is the default bounding box width for thumbnails
	ThumbnailMaxWidth = 300

	// ThumbnailMaxHeight is the default bounding box height for thumbnails
	ThumbnailMaxHeight = 300

	// JPEGQuality is the quality used when re-encoding JPEG thumbnails
	JPEGQuality = 95
)

// Format constants
const (
	// TimeFormatISO8601 is the format used to write modification timestamps
	TimeFormatISO8601 = time.RFC3339Nano

	// TimeFormatLocalMicro is the zone-less ISO-8601 form found in older collection files
	TimeFormatLocalMicro = "2006-01-02T15:04:05.999999999"

	// TimeFormatHuman is a human-readable time format
	TimeFormatHuman = "Jan 2, 2006 at 3:04pm"
)

// Timeout constants
const (
	// ShutdownTimeout bounds the CLI shutdown
	ShutdownTimeout = 5 * time.Second
)
