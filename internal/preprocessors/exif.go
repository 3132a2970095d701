// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"pattern-scan/internal/observability"

	"github.com/rwcarlsen/goexif/exif"
)

// Identity-relevant EXIF tags surfaced as scannable text lines.
var exifTextTags = []exif.FieldName{
	exif.Artist,
	exif.Make,
	exif.Model,
	exif.Software,
	exif.DateTime,
	exif.DateTimeOriginal,
	exif.ImageDescription,
	exif.Copyright,
}

// ExifPreprocessor extracts EXIF metadata from images and renders it as text
// lines. GPS coordinates are emitted in degrees-minutes-seconds form so the
// coordinate validator can confirm them.
type ExifPreprocessor struct {
	observer *observability.StandardObserver
}

// NewExifPreprocessor creates an image metadata preprocessor.
func NewExifPreprocessor() *ExifPreprocessor {
	return &ExifPreprocessor{}
}

func (p *ExifPreprocessor) GetName() string {
	return "exif"
}

func (p *ExifPreprocessor) GetSupportedExtensions() []string {
	return []string{".jpg", ".jpeg", ".tif", ".tiff", ".png", ".heic"}
}

// SetObserver sets the observability component
func (p *ExifPreprocessor) SetObserver(observer *observability.StandardObserver) {
	p.observer = observer
}

func (p *ExifPreprocessor) CanProcess(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, supported := range p.GetSupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func (p *ExifPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	var finishTiming func(bool, map[string]interface{})
	if p.observer != nil {
		finishTiming = p.observer.StartTiming("exif_preprocessor", "process", filePath)
	}

	content := &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Format:        "image",
		ProcessorType: p.GetName(),
	}

	f, err := os.Open(filePath)
	if err != nil {
		content.Error = err
		if finishTiming != nil {
			finishTiming(false, nil)
		}
		return content, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		content.Error = fmt.Errorf("no EXIF data in %s: %w", filePath, err)
		if finishTiming != nil {
			finishTiming(false, nil)
		}
		return content, content.Error
	}

	var lines []string
	for _, name := range exifTextTags {
		tag, err := x.Get(name)
		if err != nil || tag == nil {
			continue
		}
		value := strings.Trim(tag.String(), `"`)
		if strings.TrimSpace(value) != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", name, value))
		}
	}

	if position := formatGPSPosition(x); position != "" {
		lines = append(lines, "GPSPosition: "+position)
	}

	content.Text = strings.Join(lines, "\n")
	content.Success = true
	content.countContent()

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"tag_count": len(lines),
		})
	}
	return content, nil
}

// formatGPSPosition renders the image's GPS coordinates as a
// degrees-minutes-seconds pair, or "" when the image carries none.
func formatGPSPosition(x *exif.Exif) string {
	lat, long, err := x.LatLong()
	if err != nil {
		return ""
	}

	// Some files report unsigned coordinates with the hemisphere only in the
	// reference tags; trust the references for the sign.
	if hemisphereIs(x, exif.GPSLatitudeRef, "S") {
		lat = -math.Abs(lat)
	}
	if hemisphereIs(x, exif.GPSLongitudeRef, "W") {
		long = -math.Abs(long)
	}

	return formatDMS(lat, 'N', 'S') + " " + formatDMS(long, 'E', 'W')
}

func hemisphereIs(x *exif.Exif, field exif.FieldName, want string) bool {
	tag, err := x.Get(field)
	if err != nil || tag == nil {
		return false
	}
	return strings.Trim(tag.String(), `"`) == want
}

// formatDMS converts a signed decimal coordinate to degrees, minutes and
// decimal seconds with a hemisphere letter.
func formatDMS(value float64, positive, negative byte) string {
	hemisphere := positive
	if value < 0 {
		value = -value
		hemisphere = negative
	}

	degrees := int(value)
	minutesFloat := (value - float64(degrees)) * 60
	minutes := int(minutesFloat)
	seconds := (minutesFloat - float64(minutes)) * 60

	// Carry rounding so seconds stay below 60 after formatting.
	if seconds >= 59.95 {
		seconds = 0
		minutes++
		if minutes == 60 {
			minutes = 0
			degrees++
		}
	}

	return fmt.Sprintf("%d°%02d′%04.1f″%c", degrees, minutes, seconds, hemisphere)
}
