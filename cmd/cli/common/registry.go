package common

import (
	"errors"
	"fmt"

	"github.com/jpnorenam/usb-ids/pkg/dbfile"
	"github.com/jpnorenam/usb-ids/pkg/storage"
	"github.com/jpnorenam/usb-ids/pkg/usbids"
)

// LoadRegistry resolves the active snapshot for ctx: the configured db-path
// when set, otherwise dbfile's default lookup order.
func LoadRegistry(ctx *Context) (*usbids.Registry, dbfile.Source, error) {
	dbPath, err := ctx.Config.Get(storage.KeyDBPath)
	if err != nil && !errors.Is(err, storage.ErrorNotFound) {
		return nil, dbfile.Source{}, fmt.Errorf("error reading configuration: %v", err)
	}
	return dbfile.Load(dbPath, ctx.Verbose)
}
