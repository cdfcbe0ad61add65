package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rahulmenon/labtrack-backend/pkg/config"
)

func TestServerGeneratorDefaults(t *testing.T) {
	gen := NewServerGenerator(config.QRConfig{})

	got := gen.ImageURL("https://labtrack.test/equipment/LAB-001")
	assert.Equal(t,
		"https://api.qrserver.com/v1/create-qr-code/?size=300x300&data=https%3A%2F%2Flabtrack.test%2Fequipment%2FLAB-001",
		got)
}

func TestServerGeneratorCustomServiceAndSize(t *testing.T) {
	gen := NewServerGenerator(config.QRConfig{
		ServiceURL: "https://qr.internal/render",
		Size:       "150x150",
	})

	got := gen.ImageURL("https://labtrack.test/equipment/LAB-002")
	assert.Equal(t,
		"https://qr.internal/render?size=150x150&data=https%3A%2F%2Flabtrack.test%2Fequipment%2FLAB-002",
		got)
}

func TestEquipmentTargetTrimsTrailingSlash(t *testing.T) {
	assert.Equal(t,
		"https://labtrack.test/equipment/LAB-003",
		EquipmentTarget("https://labtrack.test/", "LAB-003"))
	assert.Equal(t,
		"https://labtrack.test/equipment/LAB-003",
		EquipmentTarget("https://labtrack.test", "LAB-003"))
}
