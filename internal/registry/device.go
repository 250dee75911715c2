package registry

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// DeviceType is a hardware class.
type DeviceType string

const (
	Desktop DeviceType = "Desktop"
	Laptop  DeviceType = "Laptop"
	Mobile  DeviceType = "Mobile"
	Tablet  DeviceType = "Tablet"
)

// DeviceTypes lists the supported classes in a fixed order.
var DeviceTypes = []DeviceType{Desktop, Laptop, Mobile, Tablet}

// Handheld reports whether d is a Mobile or Tablet class.
func (d DeviceType) Handheld() bool {
	return d == Mobile || d == Tablet
}

// ParseDeviceType matches a device class case-insensitively.
func ParseDeviceType(s string) (DeviceType, error) {
	for _, d := range DeviceTypes {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDeviceType, s)
}

// Resolution is a screen size in CSS pixels.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return strconv.Itoa(r.Width) + "x" + strconv.Itoa(r.Height)
}

// HardwareRange bounds the hardware values plausible for a device class.
// Every field is a choice list; generators pick one element of each.
type HardwareRange struct {
	CPUCores     []int
	DeviceMemory []int // GB
	Resolutions  []Resolution
	PixelRatios  []float64
	TouchPoints  []int
	ColorDepths  []int
}

// MinCores returns the smallest core count in the range.
func (h HardwareRange) MinCores() int { return slices.Min(h.CPUCores) }

// MaxCores returns the largest core count in the range.
func (h HardwareRange) MaxCores() int { return slices.Max(h.CPUCores) }

// MinMemory returns the smallest memory size in GB.
func (h HardwareRange) MinMemory() int { return slices.Min(h.DeviceMemory) }

// MaxMemory returns the largest memory size in GB.
func (h HardwareRange) MaxMemory() int { return slices.Max(h.DeviceMemory) }

// MaxWidth returns the widest screen in the range.
func (h HardwareRange) MaxWidth() int {
	w := 0
	for _, r := range h.Resolutions {
		w = max(w, r.Width)
	}
	return w
}

var deviceProfiles = map[DeviceType]HardwareRange{
	Desktop: {
		CPUCores:     []int{4, 6, 8, 12, 16, 24},
		DeviceMemory: []int{8, 16, 32, 64},
		Resolutions: []Resolution{
			{1920, 1080}, {2560, 1440}, {3840, 2160}, {1680, 1050}, {2560, 1080}, {3440, 1440},
		},
		PixelRatios: []float64{1, 1.25, 1.5, 2},
		TouchPoints: []int{0},
		ColorDepths: []int{24, 30},
	},
	Laptop: {
		CPUCores:     []int{4, 6, 8, 10, 12},
		DeviceMemory: []int{8, 16, 32},
		Resolutions: []Resolution{
			{1366, 768}, {1440, 900}, {1536, 864}, {1280, 720}, {1920, 1080}, {1280, 800}, {1512, 982},
		},
		PixelRatios: []float64{1, 1.25, 1.5, 2},
		TouchPoints: []int{0, 10},
		ColorDepths: []int{24, 30},
	},
	Mobile: {
		CPUCores:     []int{4, 6, 8},
		DeviceMemory: []int{2, 3, 4, 6},
		Resolutions: []Resolution{
			{390, 844}, {414, 896}, {375, 812}, {360, 800}, {393, 873}, {412, 915}, {430, 932},
		},
		PixelRatios: []float64{2, 2.625, 2.75, 3},
		TouchPoints: []int{5, 10},
		ColorDepths: []int{24},
	},
	Tablet: {
		CPUCores:     []int{4, 6, 8},
		DeviceMemory: []int{3, 4, 6},
		Resolutions: []Resolution{
			{820, 1180}, {768, 1024}, {810, 1080}, {800, 1280}, {834, 1194}, {1024, 1366},
		},
		PixelRatios: []float64{1.5, 2},
		TouchPoints: []int{5, 10},
		ColorDepths: []int{24},
	},
}

// DeviceProfile returns the hardware range for a device class.
func DeviceProfile(deviceType string) (HardwareRange, error) {
	d, err := ParseDeviceType(deviceType)
	if err != nil {
		return HardwareRange{}, err
	}
	return deviceProfiles[d], nil
}
