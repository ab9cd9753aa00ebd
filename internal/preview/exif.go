package preview

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
)

// Describe returns a short summary of an image: its format, pixel size and
// byte size, followed by EXIF details when present. Data that is not a
// decodable image still gets its byte size.
func Describe(data []byte) []string {
	lines := []string{formatHeader(data)}
	return append(lines, ExifSummary(data)...)
}

func formatHeader(data []byte) string {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return humanBytes(len(data))
	}
	return fmt.Sprintf("%s %dx%d, %s", format, cfg.Width, cfg.Height, humanBytes(len(data)))
}

// ExifSummary extracts the camera, capture time, software, author and GPS
// tags of data. It returns nil when the data has no EXIF block.
func ExifSummary(data []byte) []string {
	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil || rawExif == nil {
		return nil
	}
	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return nil
	}
	return summarizeTags(entries)
}

// summarizeTags keeps the first value of each interesting tag and renders
// them in a fixed order.
func summarizeTags(entries []exif.ExifTag) []string {
	values := make(map[string]string)
	for _, entry := range entries {
		if _, ok := values[entry.TagName]; ok {
			continue
		}
		if v := strings.TrimSpace(entry.Formatted); v != "" {
			values[entry.TagName] = v
		}
	}

	var lines []string
	add := func(label string, parts ...string) {
		var kept []string
		for _, p := range parts {
			if p != "" {
				kept = append(kept, p)
			}
		}
		if len(kept) > 0 {
			lines = append(lines, label+": "+strings.Join(kept, " "))
		}
	}

	add("Camera", values["Make"], values["Model"])
	add("Lens", values["LensModel"])
	taken := values["DateTimeOriginal"]
	if taken == "" {
		taken = values["DateTime"]
	}
	add("Taken", taken)
	add("Software", values["Software"])
	add("Author", values["Artist"])
	add("Copyright", values["Copyright"])
	if w, h := values["PixelXDimension"], values["PixelYDimension"]; w != "" && h != "" {
		add("Dimensions", w+"x"+h)
	}
	if lat, lon := values["GPSLatitude"], values["GPSLongitude"]; lat != "" && lon != "" {
		add("GPS", lat, values["GPSLatitudeRef"]+",", lon, values["GPSLongitudeRef"])
	}

	if len(lines) == 0 {
		return nil
	}
	return append([]string{"EXIF"}, lines...)
}

func humanBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := int64(n) / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGT"[exp])
}
