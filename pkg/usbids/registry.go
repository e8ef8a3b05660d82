package usbids

import (
	"fmt"
	"sort"
	"strings"
)

// Registry is a parsed snapshot of the USB ID Repository. It is read-only
// after parsing and safe for concurrent readers.
type Registry struct {
	// Version and Date come from the snapshot's header comments.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`

	Vendors map[uint16]*Vendor `json:"-" yaml:"-"`
	Classes map[uint8]*Class   `json:"-" yaml:"-"`

	Languages  map[uint16]*Language  `json:"-" yaml:"-"`
	UsagePages map[uint16]*UsagePage `json:"-" yaml:"-"`

	AudioTerminals     map[uint16]string `json:"-" yaml:"-"`
	HIDDescriptorTypes map[uint8]string  `json:"-" yaml:"-"`
	HIDItemTypes       map[uint8]string  `json:"-" yaml:"-"`
	PhysicalBiases     map[uint8]string  `json:"-" yaml:"-"`
	PhysicalItems      map[uint8]string  `json:"-" yaml:"-"`
	CountryCodes       map[uint8]string  `json:"-" yaml:"-"`
	VideoTerminals     map[uint16]string `json:"-" yaml:"-"`
}

func newRegistry() *Registry {
	return &Registry{
		Vendors:            make(map[uint16]*Vendor),
		Classes:            make(map[uint8]*Class),
		Languages:          make(map[uint16]*Language),
		UsagePages:         make(map[uint16]*UsagePage),
		AudioTerminals:     make(map[uint16]string),
		HIDDescriptorTypes: make(map[uint8]string),
		HIDItemTypes:       make(map[uint8]string),
		PhysicalBiases:     make(map[uint8]string),
		PhysicalItems:      make(map[uint8]string),
		CountryCodes:       make(map[uint8]string),
		VideoTerminals:     make(map[uint16]string),
	}
}

// Vendor returns the vendor with the given id, or nil if the registry does
// not know it.
func (r *Registry) Vendor(vid uint16) *Vendor {
	return r.Vendors[vid]
}

// Device returns the device with the given vendor and product ids, or nil.
// Absence of an entry is not an error.
func (r *Registry) Device(vid, pid uint16) *Device {
	vendor := r.Vendor(vid)
	if vendor == nil {
		return nil
	}
	return vendor.Device(pid)
}

// Class returns the device class with the given code, or nil.
func (r *Registry) Class(cc uint8) *Class {
	return r.Classes[cc]
}

// SubClass returns the subclass with the given class and subclass codes, or
// nil.
func (r *Registry) SubClass(cc, sc uint8) *SubClass {
	class := r.Class(cc)
	if class == nil {
		return nil
	}
	return class.SubClass(sc)
}

// Protocol returns the protocol with the given class, subclass and protocol
// codes, or nil.
func (r *Registry) Protocol(cc, sc, pc uint8) *Protocol {
	subclass := r.SubClass(cc, sc)
	if subclass == nil {
		return nil
	}
	return subclass.Protocol(pc)
}

// Language returns the language with the given id, or nil.
func (r *Registry) Language(id uint16) *Language {
	return r.Languages[id]
}

// UsagePage returns the HID usage page with the given id, or nil.
func (r *Registry) UsagePage(id uint16) *UsagePage {
	return r.UsagePages[id]
}

// AudioTerminal returns the audio terminal type name for id.
func (r *Registry) AudioTerminal(id uint16) (string, bool) {
	name, ok := r.AudioTerminals[id]
	return name, ok
}

// CountryCode returns the HID country code name for id.
func (r *Registry) CountryCode(id uint8) (string, bool) {
	name, ok := r.CountryCodes[id]
	return name, ok
}

// VideoTerminal returns the video terminal type name for id.
func (r *Registry) VideoTerminal(id uint16) (string, bool) {
	name, ok := r.VideoTerminals[id]
	return name, ok
}

// SortedVendors returns all vendors ordered by id, for deterministic output.
func (r *Registry) SortedVendors() []*Vendor {
	vendors := make([]*Vendor, 0, len(r.Vendors))
	for _, v := range r.Vendors {
		vendors = append(vendors, v)
	}
	sort.Slice(vendors, func(i, j int) bool {
		return vendors[i].ID < vendors[j].ID
	})
	return vendors
}

// SortedClasses returns all classes ordered by code, for deterministic output.
func (r *Registry) SortedClasses() []*Class {
	classes := make([]*Class, 0, len(r.Classes))
	for _, c := range r.Classes {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].ID < classes[j].ID
	})
	return classes
}

// Describe returns a human-readable description of the (vid, pid) pair,
// falling back to hex ids for unknown entries.
func (r *Registry) Describe(vid, pid uint16) string {
	vendor := r.Vendor(vid)
	if vendor == nil {
		return fmt.Sprintf("Unknown %04x:%04x", vid, pid)
	}
	device := vendor.Device(pid)
	if device == nil {
		return fmt.Sprintf("Unknown %04x (%s)", pid, vendor.Name)
	}
	return fmt.Sprintf("%s (%s)", device.Name, vendor.Name)
}

// Match is one result of a name search. Device is nil when only the vendor
// name matched.
type Match struct {
	Vendor *Vendor
	Device *Device
}

// Search returns vendors and devices whose names contain query,
// case-insensitively, ordered by vendor id then device id.
func (r *Registry) Search(query string) []Match {
	query = strings.ToLower(query)

	var matches []Match
	for _, vendor := range r.SortedVendors() {
		if strings.Contains(strings.ToLower(vendor.Name), query) {
			matches = append(matches, Match{Vendor: vendor})
		}
		for i := range vendor.Devices {
			device := &vendor.Devices[i]
			if strings.Contains(strings.ToLower(device.Name), query) {
				matches = append(matches, Match{Vendor: vendor, Device: device})
			}
		}
	}
	return matches
}

// Stats reports entity counts for a registry snapshot.
type Stats struct {
	Vendors    int `json:"vendors" yaml:"vendors"`
	Devices    int `json:"devices" yaml:"devices"`
	Classes    int `json:"classes" yaml:"classes"`
	SubClasses int `json:"subclasses" yaml:"subclasses"`
	Protocols  int `json:"protocols" yaml:"protocols"`
	Languages  int `json:"languages" yaml:"languages"`
	UsagePages int `json:"usage-pages" yaml:"usage-pages"`
}

func (r *Registry) Stats() Stats {
	stats := Stats{
		Vendors:    len(r.Vendors),
		Classes:    len(r.Classes),
		Languages:  len(r.Languages),
		UsagePages: len(r.UsagePages),
	}
	for _, vendor := range r.Vendors {
		stats.Devices += len(vendor.Devices)
	}
	for _, class := range r.Classes {
		stats.SubClasses += len(class.SubClasses)
		for i := range class.SubClasses {
			stats.Protocols += len(class.SubClasses[i].Protocols)
		}
	}
	return stats
}
