package usbids

import "github.com/jpnorenam/usb-ids/pkg/types"

// Vendor is a device vendor registered in the USB ID Repository, with its
// devices in file order.
type Vendor struct {
	ID      types.HexInt `json:"id" yaml:"id"`
	Name    string       `json:"name" yaml:"name"`
	Devices []Device     `json:"devices,omitempty" yaml:"devices,omitempty"`
}

// Device is a single product of a vendor.
type Device struct {
	VendorID types.HexInt `json:"vendor-id" yaml:"vendor-id"`
	ID       types.HexInt `json:"id" yaml:"id"`
	Name     string       `json:"name" yaml:"name"`

	// The registry lists interfaces for very few devices; this list is not
	// authoritative.
	Interfaces []Interface `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
}

type Interface struct {
	ID   types.HexByte `json:"id" yaml:"id"`
	Name string        `json:"name" yaml:"name"`
}

// Class is a USB-IF device class, with its subclasses in file order.
type Class struct {
	ID         types.HexByte `json:"id" yaml:"id"`
	Name       string        `json:"name" yaml:"name"`
	SubClasses []SubClass    `json:"subclasses,omitempty" yaml:"subclasses,omitempty"`
}

type SubClass struct {
	ClassID   types.HexByte `json:"class-id" yaml:"class-id"`
	ID        types.HexByte `json:"id" yaml:"id"`
	Name      string        `json:"name" yaml:"name"`
	Protocols []Protocol    `json:"protocols,omitempty" yaml:"protocols,omitempty"`
}

type Protocol struct {
	ID   types.HexByte `json:"id" yaml:"id"`
	Name string        `json:"name" yaml:"name"`
}

// Language is a language identifier with its dialects, from the registry's
// "L" section.
type Language struct {
	ID       types.HexInt `json:"id" yaml:"id"`
	Name     string       `json:"name" yaml:"name"`
	Dialects []Dialect    `json:"dialects,omitempty" yaml:"dialects,omitempty"`
}

type Dialect struct {
	ID   types.HexByte `json:"id" yaml:"id"`
	Name string        `json:"name" yaml:"name"`
}

// UsagePage is a HID usage page with its usages, from the registry's "HUT"
// section.
type UsagePage struct {
	ID     types.HexInt `json:"id" yaml:"id"`
	Name   string       `json:"name" yaml:"name"`
	Usages []Usage      `json:"usages,omitempty" yaml:"usages,omitempty"`
}

type Usage struct {
	ID   types.HexInt `json:"id" yaml:"id"`
	Name string       `json:"name" yaml:"name"`
}

// VidPid returns the (vendor id, product id) pair for the device, for
// interactions with other USB libraries.
func (d *Device) VidPid() (uint16, uint16) {
	return uint16(d.VendorID), uint16(d.ID)
}

// Device returns the vendor's device with the given product id, or nil if the
// vendor has no such device.
func (v *Vendor) Device(pid uint16) *Device {
	for i := range v.Devices {
		if uint16(v.Devices[i].ID) == pid {
			return &v.Devices[i]
		}
	}
	return nil
}

// SubClass returns the class's subclass with the given id, or nil.
func (c *Class) SubClass(sc uint8) *SubClass {
	for i := range c.SubClasses {
		if uint8(c.SubClasses[i].ID) == sc {
			return &c.SubClasses[i]
		}
	}
	return nil
}

// Protocol returns the subclass's protocol with the given id, or nil.
func (s *SubClass) Protocol(pc uint8) *Protocol {
	for i := range s.Protocols {
		if uint8(s.Protocols[i].ID) == pc {
			return &s.Protocols[i]
		}
	}
	return nil
}

// Dialect returns the language's dialect with the given id, or nil.
func (l *Language) Dialect(id uint8) *Dialect {
	for i := range l.Dialects {
		if uint8(l.Dialects[i].ID) == id {
			return &l.Dialects[i]
		}
	}
	return nil
}

// Usage returns the page's usage with the given id, or nil.
func (p *UsagePage) Usage(id uint16) *Usage {
	for i := range p.Usages {
		if uint16(p.Usages[i].ID) == id {
			return &p.Usages[i]
		}
	}
	return nil
}
