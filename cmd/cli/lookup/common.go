package lookup

import (
	"github.com/spf13/cobra"
)

const groupID = "lookup"

func Group(title string) *cobra.Group {
	return &cobra.Group{
		ID:    groupID,
		Title: title,
	}
}
