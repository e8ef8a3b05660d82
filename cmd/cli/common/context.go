package common

import "github.com/jpnorenam/usb-ids/pkg/storage"

type Context struct {
	Verbose bool
	Config  storage.Config
}
