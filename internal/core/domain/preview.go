package domain

import (
	"net/url"
	"strings"
)

const (
	// HeadlineJoiner separates headlines in the rendered ad title
	HeadlineJoiner = " | "

	// PlaceholderDescription stands in when no description has text yet
	PlaceholderDescription = "Description text goes here. It should be long enough to demonstrate how it wraps on different devices."
)

// PlaceholderHeadlines stand in when no headline has text yet
var PlaceholderHeadlines = []string{"Headline 1", "Headline 2", "Headline 3"}

// PreviewResult is one displayable combination of the ad's assets.
// It is derived on demand and never stored.
type PreviewResult struct {
	DisplayDomain       string
	DisplayPath         string
	SelectedHeadlines   []string
	SelectedDescription string
}

// HeadlineText joins the selected headlines the way the ad renders them
func (p PreviewResult) HeadlineText() string {
	return strings.Join(p.SelectedHeadlines, HeadlineJoiner)
}

// DisplayURL is the domain followed by the display path
func (p PreviewResult) DisplayURL() string {
	return p.DisplayDomain + p.DisplayPath
}

// FaviconURL points at the favicon lookup for the display domain
func (p PreviewResult) FaviconURL() string {
	return "https://www.google.com/s2/favicons?domain=" + url.QueryEscape(p.DisplayDomain)
}

// Device selects the width the preview card is rendered at
type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
)

// Width returns the card width in terminal columns
func (d Device) Width() int {
	if d == DeviceMobile {
		return 44
	}
	return 72
}

// Toggle switches between desktop and mobile
func (d Device) Toggle() Device {
	if d == DeviceMobile {
		return DeviceDesktop
	}
	return DeviceMobile
}

// ParseDevice accepts "desktop" or "mobile"; anything else is desktop
func ParseDevice(s string) Device {
	if strings.EqualFold(s, string(DeviceMobile)) {
		return DeviceMobile
	}
	return DeviceDesktop
}
