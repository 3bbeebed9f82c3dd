package panelist

import (
	"image"

	"github.com/inkfold/panelist/border"
)

// Panel begins a fluent border-removal operation on a single panel image.
// The image is not modified; Clean returns a new image.
//
// Example:
//
//	cleaned := panelist.Panel(img).SearchZone(0.3).Padding(8).Clean()
func Panel(img image.Image) *PanelClean {
	return &PanelClean{
		img:    img,
		config: border.DefaultCleanerConfig(),
	}
}

// PanelClean configures and runs border removal. Each configuration method
// returns a new PanelClean instance.
type PanelClean struct {
	img    image.Image
	config border.CleanerConfig
}

func (p *PanelClean) clone() *PanelClean {
	return &PanelClean{
		img:    p.img,
		config: p.config,
	}
}

// SearchZone sets how far inward from each edge the border search extends,
// as a fraction of the panel dimension.
func (p *PanelClean) SearchZone(ratio float64) *PanelClean {
	out := p.clone()
	out.config.SearchZoneRatio = ratio
	return out
}

// Padding sets the number of extra pixels cleared inside the detected
// border.
func (p *PanelClean) Padding(px int) *PanelClean {
	out := p.clone()
	out.config.InternalPadding = px
	return out
}

// Clean returns the image with its outer border removed, or the input
// unchanged when no border is found. It never fails.
func (p *PanelClean) Clean() image.Image {
	return border.NewCleanerWithConfig(p.config).Clean(p.img)
}
