package database

import (
	"github.com/spf13/cobra"
)

const groupID = "database"

func Group(title string) *cobra.Group {
	return &cobra.Group{
		ID:    groupID,
		Title: title,
	}
}
