package cache

import "strconv"

// Keyer derives cache keys for rendered artifacts.
type Keyer interface {
	// PreviewKey returns the key of an encoded preview of the design whose
	// canonical JSON hashes to specHash.
	PreviewKey(specHash string, opts PreviewKeyOpts) string
}

// PreviewKeyOpts holds every render option that changes preview bytes.
type PreviewKeyOpts struct {
	Width   int  `json:"width"`
	Height  int  `json:"height"`
	Handles bool `json:"handles"`
	Draft   int  `json:"draft"`
}

// DefaultKeyer produces "preview:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PreviewKey implements Keyer.
func (DefaultKeyer) PreviewKey(specHash string, opts PreviewKeyOpts) string {
	return hashKey("preview", specHash, opts)
}

// String describes opts for log output.
func (o PreviewKeyOpts) String() string {
	s := strconv.Itoa(o.Width) + "x" + strconv.Itoa(o.Height)
	if o.Handles {
		s += " handles"
	}
	if o.Draft > 1 {
		s += " draft/" + strconv.Itoa(o.Draft)
	}
	return s
}
