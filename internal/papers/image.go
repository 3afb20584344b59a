package papers

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Image is a paper illustration. In the source document it is either a bare
// URL string or an object with image_url (or url) and an optional caption.
type Image struct {
	URL     string
	Caption string

	// bare records that the image was written as a plain string so it
	// encodes back to the same shape.
	bare bool
}

type imageObject struct {
	ImageURL string `json:"image_url,omitempty"`
	URL      string `json:"url,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

// UnmarshalJSON accepts a string or an object. image_url wins over url.
func (img *Image) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*img = Image{URL: s, bare: true}
		return nil
	}

	var obj imageObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("image must be a string or an object: %w", err)
	}
	url := obj.ImageURL
	if url == "" {
		url = obj.URL
	}
	*img = Image{URL: url, Caption: obj.Caption}
	return nil
}

// MarshalJSON writes the image in the shape it was read in.
func (img Image) MarshalJSON() ([]byte, error) {
	if img.bare {
		return json.Marshal(img.URL)
	}
	return json.Marshal(imageObject{ImageURL: img.URL, Caption: img.Caption})
}

// PlainImage returns an Image that encodes as a bare URL string.
func PlainImage(url string) Image {
	return Image{URL: url, bare: true}
}
