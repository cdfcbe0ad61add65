// Package qr synthesizes QR image URLs for equipment pages. The actual
// rendering is delegated to an external image service; this package only
// builds the URL that points at the rendered PNG.
package qr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rahulmenon/labtrack-backend/pkg/config"
)

// Generator turns a target URL into a reference to a rendered QR image.
// Implementations must be safe for concurrent use.
type Generator interface {
	ImageURL(target string) string
}

// ServerGenerator builds image URLs against a qrserver-compatible endpoint:
// <service>?size=<size>&data=<urlencoded target>.
type ServerGenerator struct {
	serviceURL string
	size       string
}

// NewServerGenerator constructs a generator from the QR config, falling back
// to the packaged defaults for anything left blank.
func NewServerGenerator(cfg config.QRConfig) *ServerGenerator {
	serviceURL := strings.TrimSpace(cfg.ServiceURL)
	if serviceURL == "" {
		serviceURL = "https://api.qrserver.com/v1/create-qr-code/"
	}
	size := strings.TrimSpace(cfg.Size)
	if size == "" {
		size = "300x300"
	}
	return &ServerGenerator{serviceURL: serviceURL, size: size}
}

// ImageURL returns the rendering-service URL for the target. The target is
// query-encoded so the full equipment page URL survives inside the data param.
func (g *ServerGenerator) ImageURL(target string) string {
	return fmt.Sprintf("%s?size=%s&data=%s", g.serviceURL, g.size, url.QueryEscape(target))
}

// EquipmentTarget builds the front-end equipment page URL that gets encoded
// into the QR code.
func EquipmentTarget(frontendBase, equipmentID string) string {
	base := strings.TrimRight(strings.TrimSpace(frontendBase), "/")
	return fmt.Sprintf("%s/equipment/%s", base, equipmentID)
}
